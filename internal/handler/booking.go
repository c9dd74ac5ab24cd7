package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/itspatil/cinebook/internal/model"
	"github.com/itspatil/cinebook/internal/queue"
	"github.com/itspatil/cinebook/internal/repository"
)

// emailPattern is a syntactic sanity check, not RFC validation: some
// non-space/non-@ characters, an @, a domain part containing a dot.
// Intentionally permissive.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BookingRequest is the body of POST /api/bookings. Seats keep the
// order the customer selected them in.
type BookingRequest struct {
	MovieID       int64    `json:"movie_id"`
	TheaterID     int64    `json:"theater_id"`
	ShowDate      string   `json:"show_date"`
	ShowTime      string   `json:"show_time"`
	Seats         []string `json:"seats"`
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email"`
}

// BookingHandler implements the seat-booking transaction and the
// booking detail lookup. The write path validates fail-fast, then runs
// the seat flips and the booking insert inside one transaction so a
// request either books every seat or changes nothing.
type BookingHandler struct {
	MovieRepo    *repository.MovieRepo
	TheaterRepo  *repository.TheaterRepo
	ShowtimeRepo *repository.ShowtimeRepo
	SeatRepo     *repository.SeatRepo
	BookingRepo  *repository.BookingRepo
	Publisher    *queue.Publisher // optional; nil disables booking events
}

// NewBookingHandler constructs a BookingHandler with the provided
// repositories. The publisher may be nil; all repositories must be
// non-nil.
func NewBookingHandler(movieRepo *repository.MovieRepo, theaterRepo *repository.TheaterRepo, showtimeRepo *repository.ShowtimeRepo, seatRepo *repository.SeatRepo, bookingRepo *repository.BookingRepo, publisher *queue.Publisher) *BookingHandler {
	if movieRepo == nil || theaterRepo == nil || showtimeRepo == nil || seatRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{
		MovieRepo:    movieRepo,
		TheaterRepo:  theaterRepo,
		ShowtimeRepo: showtimeRepo,
		SeatRepo:     seatRepo,
		BookingRepo:  bookingRepo,
		Publisher:    publisher,
	}
}

// CreateBooking handles POST /api/bookings. Validation runs in a fixed
// order and stops at the first violated rule: required fields, customer
// name, customer email, movie exists, theater exists, every seat
// available. Only then does the transaction start; inside it each seat
// is flipped with a conditional update, so a concurrent booking that
// wins a seat makes this one roll back entirely.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid booking data. All fields are required."})
	}
	showing := model.Showing{
		MovieID:   req.MovieID,
		TheaterID: req.TheaterID,
		ShowDate:  req.ShowDate,
		ShowTime:  req.ShowTime,
	}
	if !showing.Complete() || len(req.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid booking data. All fields are required."})
	}
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Customer name is required"})
	}
	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Customer email is required"})
	}
	if !emailPattern.MatchString(email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Valid email address is required"})
	}

	ctx := c.Request().Context()
	movie, err := h.MovieRepo.GetByID(ctx, req.MovieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	theater, err := h.TheaterRepo.GetByID(ctx, req.TheaterID)
	if err != nil {
		if errors.Is(err, repository.ErrTheaterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	tx, err := h.ShowtimeRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	showtimeID, err := h.ShowtimeRepo.ResolveShowingTx(ctx, tx, showing)
	if err != nil {
		if errors.Is(err, repository.ErrShowingNotFound) {
			// No showtime row means no seat rows exist for this
			// showing, so the first requested seat cannot be found.
			av := &repository.ErrSeatUnavailable{Seat: req.Seats[0]}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": av.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	// Check every seat before mutating anything so the customer is told
	// which seat failed without a half-written booking.
	for _, seat := range req.Seats {
		ok, err := h.SeatRepo.AvailableTx(ctx, tx, showtimeID, seat)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if !ok {
			av := &repository.ErrSeatUnavailable{Seat: seat}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": av.Error()})
		}
	}

	// Conditional flips: the is_booked = 0 guard on each update closes
	// the check-then-write window, the rollback undoes any earlier
	// flips of this request.
	for _, seat := range req.Seats {
		ok, err := h.SeatRepo.BookTx(ctx, tx, showtimeID, seat)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if !ok {
			av := &repository.ErrSeatUnavailable{Seat: seat}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": av.Error()})
		}
	}

	totalPrice := movie.Price * float64(len(req.Seats))
	record := &repository.BookingRecord{
		ShowtimeID:    showtimeID,
		Seats:         req.Seats,
		CustomerName:  name,
		CustomerEmail: email,
		TotalPrice:    totalPrice,
	}
	if err := h.BookingRepo.CreateTx(ctx, tx, record); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	committed = true

	if h.Publisher != nil {
		event := queue.NewBookingCreatedEvent(record.ID, movie.Title, theater.Name, showing, req.Seats, totalPrice, time.Now().UTC())
		if err := h.Publisher.PublishBookingCreated(ctx, event); err != nil {
			log.Warn().Err(err).Int64("booking_id", record.ID).Msg("booking event not published")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"booking_id":  record.ID,
		"movie":       movie.Title,
		"seats":       req.Seats,
		"show_date":   showing.ShowDate,
		"show_time":   showing.ShowTime,
		"total_price": totalPrice,
		"message":     "Booking successful!",
	})
}

// GetBooking handles GET /api/bookings/:id. It returns the booking
// joined with movie and theater display fields, or 404.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	detail, err := h.BookingRepo.GetDetail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, detail)
}
