// Package repository contains data access logic separated from HTTP
// handlers. Each repository wraps a *sql.DB handle injected at startup;
// write-path methods take a *sql.Tx so a handler can span several
// repositories inside one transaction.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/itspatil/cinebook/internal/model"
)

// MovieRepo encapsulates all database queries related to movies.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// ListAll returns every movie ordered by id.
func (r *MovieRepo) ListAll(ctx context.Context) ([]*model.Movie, error) {
	const q = `SELECT id, title, image, price, description, duration FROM movies ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Movie, 0)
	for rows.Next() {
		m := new(model.Movie)
		if err := rows.Scan(&m.ID, &m.Title, &m.Image, &m.Price, &m.Description, &m.Duration); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a movie by id. It returns ErrMovieNotFound when no
// row exists.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	const q = `SELECT id, title, image, price, description, duration FROM movies WHERE id = ?`
	var m model.Movie
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Title, &m.Image, &m.Price, &m.Description, &m.Duration); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}
