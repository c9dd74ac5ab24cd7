package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itspatil/cinebook/internal/handler"
)

func TestListMovies(t *testing.T) {
	env := newTestEnv(t)

	var movies []map[string]interface{}
	rec := env.get(t, "/api/movies", &movies)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0]["title"])
	assert.Equal(t, fixturePrice, movies[0]["price"])
}

func TestGetMovie(t *testing.T) {
	env := newTestEnv(t)

	var movie map[string]interface{}
	rec := env.get(t, "/api/movies/1", &movie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), movie["id"])
	assert.Equal(t, "Inception", movie["title"])
	assert.Equal(t, "2h 28min", movie["duration"])
}

func TestGetMovie_NotFound(t *testing.T) {
	env := newTestEnv(t)

	var resp map[string]interface{}
	rec := env.get(t, "/api/movies/99", &resp)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Movie not found", resp["error"])
}

func TestListTheaters(t *testing.T) {
	env := newTestEnv(t)

	var theaters []map[string]interface{}
	rec := env.get(t, "/api/theaters", &theaters)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, theaters, 1)
	assert.Equal(t, "Inox Bund Garden", theaters[0]["name"])
	assert.Equal(t, "Pune", theaters[0]["city"])
}

func TestListShowtimes_SortedByDateThenTime(t *testing.T) {
	env := newTestEnv(t)

	// Extra showtimes inserted out of order; the endpoint must return
	// them sorted by date first, then by time as stored strings.
	mustExec(t, env.db, `INSERT INTO showtimes (movie_id, theater_id, show_date, show_time)
	                     VALUES (1, 1, '2025-01-02', '10:00 AM')`)
	mustExec(t, env.db, `INSERT INTO showtimes (movie_id, theater_id, show_date, show_time)
	                     VALUES (1, 1, '2025-01-01', '01:00 PM')`)

	var showtimes []map[string]interface{}
	rec := env.get(t, "/api/movies/1/showtimes", &showtimes)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, showtimes, 3)
	assert.Equal(t, "2025-01-01", showtimes[0]["show_date"])
	assert.Equal(t, "01:00 PM", showtimes[0]["show_time"])
	assert.Equal(t, "2025-01-01", showtimes[1]["show_date"])
	assert.Equal(t, "10:00 AM", showtimes[1]["show_time"])
	assert.Equal(t, "2025-01-02", showtimes[2]["show_date"])
	assert.Equal(t, "Inox Bund Garden", showtimes[0]["theater_name"])
	assert.Equal(t, "Bund Garden", showtimes[0]["area"])
}

func TestListSeats(t *testing.T) {
	env := newTestEnv(t)

	var seats []handler.SeatView
	rec := env.get(t, seatsPath(fixtureDate, fixtureTime), &seats)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, seats, 4)
	assert.Equal(t, "A1", seats[0].SeatNumber)
	assert.False(t, seats[0].IsBooked)
	assert.Equal(t, int64(1), seats[0].MovieID)
	assert.Equal(t, int64(1), seats[0].TheaterID)
	assert.Equal(t, fixtureDate, seats[0].ShowDate)
	assert.Equal(t, fixtureTime, seats[0].ShowTime)
}

func TestListSeats_ReflectsBooking(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postBooking(t, bookingBody(`"A1"`, "Asha Rao", "asha@example.com"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var seats []handler.SeatView
	rec = env.get(t, seatsPath(fixtureDate, fixtureTime), &seats)
	require.Equal(t, http.StatusOK, rec.Code)

	byLabel := map[string]bool{}
	for _, s := range seats {
		byLabel[s.SeatNumber] = s.IsBooked
	}
	assert.True(t, byLabel["A1"])
	assert.False(t, byLabel["A2"])
}

func TestListSeats_MissingParam(t *testing.T) {
	env := newTestEnv(t)

	var resp map[string]interface{}
	rec := env.get(t, "/api/movies/1/seats?theater_id=1&show_date="+fixtureDate, &resp)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "theater_id, show_date, and show_time are required", resp["error"])
}

func TestListSeats_UnknownShowing(t *testing.T) {
	env := newTestEnv(t)

	var seats []handler.SeatView
	rec := env.get(t, seatsPath("2025-06-30", fixtureTime), &seats)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, seats)
}

func TestReads_Idempotent(t *testing.T) {
	env := newTestEnv(t)

	first := env.get(t, "/api/movies/1", nil)
	second := env.get(t, "/api/movies/1", nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func seatsPath(date, timeSlot string) string {
	return "/api/movies/1/seats?theater_id=1&show_date=" + url.QueryEscape(date) +
		"&show_time=" + url.QueryEscape(timeSlot)
}
