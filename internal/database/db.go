package database

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) the SQLite database file at path and verifies
// the connection.  The pool is capped at a single connection so every
// request runs its reads and writes serially against the store; the
// busy timeout covers the brief contention window while a write
// transaction commits.
func Open(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Single connection: SQLite allows one writer and the whole store
	// lives in one file, so a pool buys nothing here.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
