package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/itspatil/cinebook/internal/model"
)

// ShowtimeListing is a showtime joined with theater display fields for
// the movie showtimes endpoint.
type ShowtimeListing struct {
	ShowDate    string `json:"show_date"`
	ShowTime    string `json:"show_time"`
	TheaterID   int64  `json:"theater_id"`
	TheaterName string `json:"theater_name"`
	Area        string `json:"area"`
}

// ShowtimeRepo manages persistence for showtimes. A showtime row is the
// stored form of a showing: the unique (movie, theater, date, time)
// combination that seats and bookings reference by id.
type ShowtimeRepo struct {
	db *sql.DB
}

// NewShowtimeRepo constructs a ShowtimeRepo with the provided DB handle.
func NewShowtimeRepo(db *sql.DB) *ShowtimeRepo {
	return &ShowtimeRepo{db: db}
}

// DB exposes the underlying sql.DB. Use this method to begin
// transactions spanning multiple repositories.
func (r *ShowtimeRepo) DB() *sql.DB {
	return r.db
}

// ListByMovie returns the showtimes of one movie joined with theater
// name and area, ordered by date then time.
func (r *ShowtimeRepo) ListByMovie(ctx context.Context, movieID int64) ([]ShowtimeListing, error) {
	const q = `SELECT DISTINCT st.show_date, st.show_time, st.theater_id, t.name, t.area
	           FROM showtimes st
	           JOIN theaters t ON t.id = st.theater_id
	           WHERE st.movie_id = ?
	           ORDER BY st.show_date, st.show_time`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ShowtimeListing, 0)
	for rows.Next() {
		var s ShowtimeListing
		if err := rows.Scan(&s.ShowDate, &s.ShowTime, &s.TheaterID, &s.TheaterName, &s.Area); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveShowing maps a showing identity to its showtime id. It
// returns ErrShowingNotFound when the combination does not exist.
func (r *ShowtimeRepo) ResolveShowing(ctx context.Context, sh model.Showing) (int64, error) {
	return resolveShowing(ctx, r.db, sh)
}

// ResolveShowingTx is ResolveShowing scoped to an existing transaction.
func (r *ShowtimeRepo) ResolveShowingTx(ctx context.Context, tx *sql.Tx, sh model.Showing) (int64, error) {
	return resolveShowing(ctx, tx, sh)
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func resolveShowing(ctx context.Context, q queryRower, sh model.Showing) (int64, error) {
	const query = `SELECT id FROM showtimes
	               WHERE movie_id = ? AND theater_id = ? AND show_date = ? AND show_time = ?`
	var id int64
	if err := q.QueryRowContext(ctx, query, sh.MovieID, sh.TheaterID, sh.ShowDate, sh.ShowTime).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrShowingNotFound
		}
		return 0, err
	}
	return id, nil
}
