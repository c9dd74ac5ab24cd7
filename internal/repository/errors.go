// Package repository defines sentinel errors shared across the
// repositories. Handlers use them to map storage failures onto HTTP
// statuses: not-found sentinels become 404 responses and
// ErrSeatUnavailable becomes a 400 naming the rejected seat.
package repository

import (
	"errors"
	"fmt"
)

// ErrMovieNotFound is returned when a movie id matches no row.
var ErrMovieNotFound = errors.New("movie not found")

// ErrTheaterNotFound is returned when a theater id matches no row.
var ErrTheaterNotFound = errors.New("theater not found")

// ErrShowingNotFound is returned when a (movie, theater, date, time)
// identity resolves to no showtime row.
var ErrShowingNotFound = errors.New("showing not found")

// ErrBookingNotFound is returned when a booking id matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSeatUnavailable signals that a requested seat does not exist for
// the showing or is already booked. The whole booking request is
// rejected; Seat carries the label reported to the customer.
type ErrSeatUnavailable struct {
	Seat string
}

func (e *ErrSeatUnavailable) Error() string {
	return fmt.Sprintf("Seat %s is not available", e.Seat)
}
