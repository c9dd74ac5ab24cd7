// Package queue defines message payloads exchanged over the message
// broker, plus the publisher and the background consumer for them.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/itspatil/cinebook/internal/model"
)

// BookingCreatedEvent is published after a booking commits. It carries
// enough information for downstream consumers to log or notify without
// querying the store.
type BookingCreatedEvent struct {
	EventID     string   `json:"event_id"`
	BookingID   int64    `json:"booking_id"`
	MovieTitle  string   `json:"movie_title"`
	TheaterName string   `json:"theater_name"`
	ShowDate    string   `json:"show_date"`
	ShowTime    string   `json:"show_time"`
	Seats       []string `json:"seats"`
	TotalPrice  float64  `json:"total_price"`
	CreatedAt   string   `json:"created_at"`
}

// NewBookingCreatedEvent builds the event for one committed booking.
// Each event gets a fresh UUID so consumers can deduplicate redelivered
// messages.
func NewBookingCreatedEvent(bookingID int64, movieTitle, theaterName string, showing model.Showing, seats []string, totalPrice float64, createdAt time.Time) BookingCreatedEvent {
	return BookingCreatedEvent{
		EventID:     uuid.New().String(),
		BookingID:   bookingID,
		MovieTitle:  movieTitle,
		TheaterName: theaterName,
		ShowDate:    showing.ShowDate,
		ShowTime:    showing.ShowTime,
		Seats:       seats,
		TotalPrice:  totalPrice,
		CreatedAt:   createdAt.Format(time.RFC3339),
	}
}
