package model

// Seat is the per-showing availability flag for one seat label.  It is
// the only mutable entity in the store: IsBooked flips from false to
// true exactly once, inside the booking transaction.
//
// Fields:
//  ID         – primary key identifier.
//  ShowtimeID – showing this seat belongs to.
//  Number     – seat label, row letter plus position (e.g. "A1").
//  IsBooked   – whether the seat has been sold.
type Seat struct {
	ID         int64  // seats.id
	ShowtimeID int64  // seats.showtime_id
	Number     string // seats.seat_number
	IsBooked   bool   // seats.is_booked
}
