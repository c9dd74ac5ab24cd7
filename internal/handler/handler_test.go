package handler_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/itspatil/cinebook/internal/database"
	"github.com/itspatil/cinebook/internal/handler"
	"github.com/itspatil/cinebook/internal/repository"
	"github.com/itspatil/cinebook/internal/router"
)

// Fixture showing used across the handler tests: movie 1 playing at
// theater 1 on 2025-01-01 at 10:00 AM with seats A1..A3 and B1.
const (
	fixtureDate  = "2025-01-01"
	fixtureTime  = "10:00 AM"
	fixturePrice = 250.0
)

type testEnv struct {
	db *sql.DB
	e  *echo.Echo
}

// newTestEnv spins up the API against a fresh in-memory store with the
// fixture showing loaded.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, db))

	mustExec(t, db, `INSERT INTO movies (title, image, price, description, duration)
	                 VALUES ('Inception', '/images/inception.png', ?, 'A thief who steals corporate secrets', '2h 28min')`,
		fixturePrice)
	mustExec(t, db, `INSERT INTO theaters (name, address, area)
	                 VALUES ('Inox Bund Garden', 'Bund Garden Road', 'Bund Garden')`)
	mustExec(t, db, `INSERT INTO showtimes (movie_id, theater_id, show_date, show_time)
	                 VALUES (1, 1, ?, ?)`, fixtureDate, fixtureTime)
	for _, seat := range []string{"A1", "A2", "A3", "B1"} {
		mustExec(t, db, `INSERT INTO seats (showtime_id, seat_number, is_booked) VALUES (1, ?, 0)`, seat)
	}

	movieRepo := repository.NewMovieRepo(db)
	theaterRepo := repository.NewTheaterRepo(db)
	showtimeRepo := repository.NewShowtimeRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	mh := handler.NewMovieHandler(movieRepo, showtimeRepo, seatRepo)
	th := handler.NewTheaterHandler(theaterRepo)
	bh := handler.NewBookingHandler(movieRepo, theaterRepo, showtimeRepo, seatRepo, bookingRepo, nil)

	e := echo.New()
	passthrough := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	router.RegisterRoutes(e, mh, th, bh, passthrough, passthrough)

	return &testEnv{db: db, e: e}
}

func mustExec(t *testing.T, db *sql.DB, query string, args ...interface{}) {
	t.Helper()
	_, err := db.Exec(query, args...)
	require.NoError(t, err)
}

// do performs a request against the in-process API and decodes the
// JSON response into out when it is non-nil.
func (env *testEnv) do(t *testing.T, method, path, body string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func (env *testEnv) get(t *testing.T, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return env.do(t, http.MethodGet, path, "", out)
}

func (env *testEnv) postBooking(t *testing.T, body string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return env.do(t, http.MethodPost, "/api/bookings", body, out)
}

// seatStates returns seat_number -> is_booked for the fixture showing.
func (env *testEnv) seatStates(t *testing.T) map[string]bool {
	t.Helper()
	rows, err := env.db.Query(`SELECT seat_number, is_booked FROM seats WHERE showtime_id = 1`)
	require.NoError(t, err)
	defer rows.Close()
	out := map[string]bool{}
	for rows.Next() {
		var label string
		var booked bool
		require.NoError(t, rows.Scan(&label, &booked))
		out[label] = booked
	}
	require.NoError(t, rows.Err())
	return out
}

func (env *testEnv) bookingCount(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, env.db.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&n))
	return n
}
