package database

import (
	"context"
	"database/sql"
)

// Migrate creates the five tables when they do not exist yet.  The
// showing identity (movie, theater, date, time) is stored once in
// showtimes; seats and bookings reference it by foreign key, so the
// seat/booking relationship is a single column instead of four parallel
// ones.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT NOT NULL,
			image       TEXT,
			price       REAL NOT NULL,
			description TEXT,
			duration    TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS theaters (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			name    TEXT NOT NULL,
			address TEXT NOT NULL,
			area    TEXT NOT NULL,
			city    TEXT DEFAULT 'Pune'
		)`,
		`CREATE TABLE IF NOT EXISTS showtimes (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			movie_id   INTEGER NOT NULL REFERENCES movies (id),
			theater_id INTEGER NOT NULL REFERENCES theaters (id),
			show_date  TEXT NOT NULL,
			show_time  TEXT NOT NULL,
			UNIQUE (movie_id, theater_id, show_date, show_time)
		)`,
		`CREATE TABLE IF NOT EXISTS seats (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			showtime_id INTEGER NOT NULL REFERENCES showtimes (id),
			seat_number TEXT NOT NULL,
			is_booked   INTEGER NOT NULL DEFAULT 0,
			UNIQUE (showtime_id, seat_number)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			showtime_id    INTEGER NOT NULL REFERENCES showtimes (id),
			seats          TEXT NOT NULL,
			customer_name  TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			total_price    REAL NOT NULL,
			booking_date   DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
