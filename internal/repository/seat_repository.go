package repository

import (
	"context"
	"database/sql"

	"github.com/itspatil/cinebook/internal/model"
)

// SeatRepo encapsulates database operations on seats. Seats carry the
// only mutable state in the store; the booking write path goes through
// the Tx methods so the flip and the booking insert commit together.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the provided DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// ListByShowtime returns every seat of one showing ordered by id, which
// matches the insertion order of the seed grid (A1..A8, B1..).
func (r *SeatRepo) ListByShowtime(ctx context.Context, showtimeID int64) ([]*model.Seat, error) {
	const q = `SELECT id, showtime_id, seat_number, is_booked FROM seats WHERE showtime_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Seat, 0)
	for rows.Next() {
		s := new(model.Seat)
		if err := rows.Scan(&s.ID, &s.ShowtimeID, &s.Number, &s.IsBooked); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AvailableTx reports whether the labelled seat exists for the showing
// and is currently unbooked, within the caller's transaction.
func (r *SeatRepo) AvailableTx(ctx context.Context, tx *sql.Tx, showtimeID int64, label string) (bool, error) {
	const q = `SELECT EXISTS (
	             SELECT 1 FROM seats WHERE showtime_id = ? AND seat_number = ? AND is_booked = 0
	           )`
	var ok bool
	if err := tx.QueryRowContext(ctx, q, showtimeID, label).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// BookTx flips one seat to booked with a conditional update. The
// is_booked = 0 guard makes the flip atomic: if another booking claimed
// the seat first, zero rows are affected and the caller must roll the
// whole transaction back.
func (r *SeatRepo) BookTx(ctx context.Context, tx *sql.Tx, showtimeID int64, label string) (bool, error) {
	const q = `UPDATE seats SET is_booked = 1
	           WHERE showtime_id = ? AND seat_number = ? AND is_booked = 0`
	res, err := tx.ExecContext(ctx, q, showtimeID, label)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
