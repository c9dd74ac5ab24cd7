package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// BookingRecord mirrors the bookings table for inserts. Seats are
// joined into a single stored value preserving the order the customer
// selected them.
type BookingRecord struct {
	ID            int64
	ShowtimeID    int64
	Seats         []string
	CustomerName  string
	CustomerEmail string
	TotalPrice    float64
}

// BookingDetail is a booking joined with movie and theater display
// fields, returned by the booking detail endpoint.
type BookingDetail struct {
	ID             int64    `json:"id"`
	MovieID        int64    `json:"movie_id"`
	TheaterID      int64    `json:"theater_id"`
	ShowDate       string   `json:"show_date"`
	ShowTime       string   `json:"show_time"`
	Seats          []string `json:"seats"`
	CustomerName   string   `json:"customer_name"`
	CustomerEmail  string   `json:"customer_email"`
	TotalPrice     float64  `json:"total_price"`
	BookingDate    string   `json:"booking_date"`
	MovieTitle     string   `json:"movie_title"`
	MovieImage     string   `json:"movie_image"`
	Duration       string   `json:"duration"`
	TheaterName    string   `json:"theater_name"`
	TheaterAddress string   `json:"theater_address"`
	TheaterArea    string   `json:"theater_area"`
}

// BookingRepo provides persistence for bookings. Bookings are immutable
// once created; there is no update path.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the provided DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// CreateTx inserts a booking within the caller's transaction and
// populates the generated ID on the record.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *BookingRecord) error {
	const q = `INSERT INTO bookings (showtime_id, seats, customer_name, customer_email, total_price)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		b.ShowtimeID, strings.Join(b.Seats, ","), b.CustomerName, b.CustomerEmail, b.TotalPrice)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// GetDetail returns one booking joined with its showing, movie and
// theater. The stored seat list is split back into labels. It returns
// ErrBookingNotFound when no row exists.
func (r *BookingRepo) GetDetail(ctx context.Context, id int64) (*BookingDetail, error) {
	const q = `SELECT b.id, st.movie_id, st.theater_id, st.show_date, st.show_time,
	                  b.seats, b.customer_name, b.customer_email, b.total_price, b.booking_date,
	                  m.title, m.image, m.duration,
	                  t.name, t.address, t.area
	           FROM bookings b
	           JOIN showtimes st ON st.id = b.showtime_id
	           JOIN movies m ON m.id = st.movie_id
	           JOIN theaters t ON t.id = st.theater_id
	           WHERE b.id = ?`
	var d BookingDetail
	var seats string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.MovieID, &d.TheaterID, &d.ShowDate, &d.ShowTime,
		&seats, &d.CustomerName, &d.CustomerEmail, &d.TotalPrice, &d.BookingDate,
		&d.MovieTitle, &d.MovieImage, &d.Duration,
		&d.TheaterName, &d.TheaterAddress, &d.TheaterArea,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	d.Seats = strings.Split(seats, ",")
	return &d, nil
}

// CountByShowtime returns the number of bookings recorded for one
// showing. Used by tests to assert the all-or-nothing contract.
func (r *BookingRepo) CountByShowtime(ctx context.Context, showtimeID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM bookings WHERE showtime_id = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, showtimeID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
