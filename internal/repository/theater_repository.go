package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/itspatil/cinebook/internal/model"
)

// TheaterRepo encapsulates all database queries related to theaters.
type TheaterRepo struct {
	db *sql.DB
}

// NewTheaterRepo constructs a TheaterRepo with the provided DB handle.
func NewTheaterRepo(db *sql.DB) *TheaterRepo {
	return &TheaterRepo{db: db}
}

// ListAll returns every theater ordered by id.
func (r *TheaterRepo) ListAll(ctx context.Context) ([]*model.Theater, error) {
	const q = `SELECT id, name, address, area, city FROM theaters ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Theater, 0)
	for rows.Next() {
		t := new(model.Theater)
		if err := rows.Scan(&t.ID, &t.Name, &t.Address, &t.Area, &t.City); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a theater by id. It returns ErrTheaterNotFound when
// no row exists.
func (r *TheaterRepo) GetByID(ctx context.Context, id int64) (*model.Theater, error) {
	const q = `SELECT id, name, address, area, city FROM theaters WHERE id = ?`
	var t model.Theater
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Name, &t.Address, &t.Area, &t.City); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTheaterNotFound
		}
		return nil, err
	}
	return &t, nil
}
