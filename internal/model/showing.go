package model

// Showing identifies one screening: a movie playing at a theater on a
// specific date and time slot.  It is the composite key clients use on
// the wire; internally every showing resolves to a showtimes.id and all
// seat and booking rows hang off that single identifier.
//
// Dates are "YYYY-MM-DD" strings and times are clock-label strings such
// as "10:00 AM".  Both are treated as opaque ordered strings, matching
// how the seed data generates them.
type Showing struct {
	MovieID   int64  `json:"movie_id"`
	TheaterID int64  `json:"theater_id"`
	ShowDate  string `json:"show_date"`
	ShowTime  string `json:"show_time"`
}

// Complete reports whether every field of the showing identity is set.
func (s Showing) Complete() bool {
	return s.MovieID != 0 && s.TheaterID != 0 && s.ShowDate != "" && s.ShowTime != ""
}
