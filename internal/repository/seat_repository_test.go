package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itspatil/cinebook/internal/database"
	"github.com/itspatil/cinebook/internal/model"
	"github.com/itspatil/cinebook/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, db))

	_, err = db.Exec(`INSERT INTO movies (title, image, price, description, duration)
	                  VALUES ('The Matrix', '', 995, '', '2h 16min')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO theaters (name, address, area) VALUES ('City Pride Kothrud', 'Karve Road', 'Kothrud')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO showtimes (movie_id, theater_id, show_date, show_time)
	                  VALUES (1, 1, '2025-01-01', '10:00 AM')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO seats (showtime_id, seat_number, is_booked) VALUES (1, 'A1', 0), (1, 'A2', 1)`)
	require.NoError(t, err)
	return db
}

func TestSeatRepo_BookTx_ConditionalFlip(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSeatRepo(db)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	ok, err := repo.BookTx(ctx, tx, 1, "A1")
	require.NoError(t, err)
	assert.True(t, ok, "free seat must flip")

	ok, err = repo.BookTx(ctx, tx, 1, "A1")
	require.NoError(t, err)
	assert.False(t, ok, "second flip of the same seat must report no rows")

	ok, err = repo.BookTx(ctx, tx, 1, "A2")
	require.NoError(t, err)
	assert.False(t, ok, "already booked seat must not flip")

	ok, err = repo.BookTx(ctx, tx, 1, "Z9")
	require.NoError(t, err)
	assert.False(t, ok, "unknown seat must not flip")

	require.NoError(t, tx.Rollback())

	// The rollback must leave A1 unbooked.
	seats, err := repo.ListByShowtime(ctx, 1)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.False(t, seats[0].IsBooked)
	assert.True(t, seats[1].IsBooked)
}

func TestSeatRepo_AvailableTx(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSeatRepo(db)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	ok, err := repo.AvailableTx(ctx, tx, 1, "A1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AvailableTx(ctx, tx, 1, "A2")
	require.NoError(t, err)
	assert.False(t, ok, "booked seat is not available")

	ok, err = repo.AvailableTx(ctx, tx, 1, "Z9")
	require.NoError(t, err)
	assert.False(t, ok, "missing seat is not available")
}

func TestShowtimeRepo_ResolveShowing(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewShowtimeRepo(db)
	ctx := context.Background()

	id, err := repo.ResolveShowing(ctx, model.Showing{
		MovieID: 1, TheaterID: 1, ShowDate: "2025-01-01", ShowTime: "10:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = repo.ResolveShowing(ctx, model.Showing{
		MovieID: 1, TheaterID: 1, ShowDate: "2025-01-01", ShowTime: "11:00 AM",
	})
	assert.ErrorIs(t, err, repository.ErrShowingNotFound)
}

func TestBookingRepo_CreateAndDetail(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	record := &repository.BookingRecord{
		ShowtimeID:    1,
		Seats:         []string{"B2", "A1"},
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		TotalPrice:    1990,
	}
	require.NoError(t, repo.CreateTx(ctx, tx, record))
	require.NotZero(t, record.ID)
	require.NoError(t, tx.Commit())

	detail, err := repo.GetDetail(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", detail.MovieTitle)
	assert.Equal(t, "City Pride Kothrud", detail.TheaterName)
	assert.Equal(t, []string{"B2", "A1"}, detail.Seats, "seat order must survive storage")
	assert.Equal(t, "2025-01-01", detail.ShowDate)
	assert.Equal(t, float64(1990), detail.TotalPrice)

	_, err = repo.GetDetail(ctx, record.ID+1)
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}
