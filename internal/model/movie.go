package model

// Movie is a film available for booking.  Movies are created by the
// seed data and never modified afterwards.  The price applies to every
// seat of every showing of the movie.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – display title of the movie.
//  Image       – path to the poster image served from the client bundle.
//  Price       – ticket price per seat.
//  Description – short synopsis shown on the movie card.
//  Duration    – human-readable running time (e.g. "2h 28min").
type Movie struct {
	ID          int64   `json:"id"`          // movies.id
	Title       string  `json:"title"`       // movies.title
	Image       string  `json:"image"`       // movies.image
	Price       float64 `json:"price"`       // movies.price
	Description string  `json:"description"` // movies.description
	Duration    string  `json:"duration"`    // movies.duration
}
