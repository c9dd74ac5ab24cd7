// Package handler exposes the HTTP handlers of the booking API. Read
// endpoints project store rows into response payloads and carry no
// business rules; the booking write path lives in booking.go.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/itspatil/cinebook/internal/model"
	"github.com/itspatil/cinebook/internal/repository"
)

// MovieHandler groups the repositories backing the movie read
// endpoints: the movie list and detail, the showtimes of a movie and
// the seat map of one showing.
type MovieHandler struct {
	MovieRepo    *repository.MovieRepo
	ShowtimeRepo *repository.ShowtimeRepo
	SeatRepo     *repository.SeatRepo
}

// NewMovieHandler constructs a MovieHandler with the provided
// repositories. All dependencies must be non-nil.
func NewMovieHandler(movieRepo *repository.MovieRepo, showtimeRepo *repository.ShowtimeRepo, seatRepo *repository.SeatRepo) *MovieHandler {
	if movieRepo == nil || showtimeRepo == nil || seatRepo == nil {
		panic("nil repository passed to NewMovieHandler")
	}
	return &MovieHandler{MovieRepo: movieRepo, ShowtimeRepo: showtimeRepo, SeatRepo: seatRepo}
}

// SeatView is the seat projection returned by the seat map endpoint.
// The showing identity fields are echoed back alongside each seat so
// the client can render the grid without a second lookup.
type SeatView struct {
	ID         int64  `json:"id"`
	MovieID    int64  `json:"movie_id"`
	TheaterID  int64  `json:"theater_id"`
	ShowDate   string `json:"show_date"`
	ShowTime   string `json:"show_time"`
	SeatNumber string `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}

// ListMovies handles GET /api/movies.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	movies, err := h.MovieRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, movies)
}

// GetMovie handles GET /api/movies/:id. It returns 404 when the movie
// does not exist.
func (h *MovieHandler) GetMovie(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	movie, err := h.MovieRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, movie)
}

// ListShowtimes handles GET /api/movies/:id/showtimes. Showtimes are
// joined with theater name and area and ordered by date then time; an
// unknown movie yields an empty array.
func (h *MovieHandler) ListShowtimes(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	showtimes, err := h.ShowtimeRepo.ListByMovie(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, showtimes)
}

// ListSeats handles GET /api/movies/:id/seats. The showing identity is
// completed by the theater_id, show_date and show_time query
// parameters; all three are required together and missing any of them
// is a 400 before the store is touched. A showing that does not exist
// yields an empty array.
func (h *MovieHandler) ListSeats(c echo.Context) error {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || movieID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	theaterParam := c.QueryParam("theater_id")
	showDate := c.QueryParam("show_date")
	showTime := c.QueryParam("show_time")
	if theaterParam == "" || showDate == "" || showTime == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "theater_id, show_date, and show_time are required"})
	}
	theaterID, err := strconv.ParseInt(theaterParam, 10, 64)
	if err != nil || theaterID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theater id"})
	}

	showing := model.Showing{
		MovieID:   movieID,
		TheaterID: theaterID,
		ShowDate:  showDate,
		ShowTime:  showTime,
	}
	ctx := c.Request().Context()
	showtimeID, err := h.ShowtimeRepo.ResolveShowing(ctx, showing)
	if err != nil {
		if errors.Is(err, repository.ErrShowingNotFound) {
			return c.JSON(http.StatusOK, []SeatView{})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	seats, err := h.SeatRepo.ListByShowtime(ctx, showtimeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	out := make([]SeatView, 0, len(seats))
	for _, s := range seats {
		out = append(out, SeatView{
			ID:         s.ID,
			MovieID:    showing.MovieID,
			TheaterID:  showing.TheaterID,
			ShowDate:   showing.ShowDate,
			ShowTime:   showing.ShowTime,
			SeatNumber: s.Number,
			IsBooked:   s.IsBooked,
		})
	}
	return c.JSON(http.StatusOK, out)
}
