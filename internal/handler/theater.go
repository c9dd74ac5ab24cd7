package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itspatil/cinebook/internal/repository"
)

// TheaterHandler serves the theater reference data.
type TheaterHandler struct {
	TheaterRepo *repository.TheaterRepo
}

// NewTheaterHandler constructs a TheaterHandler with the provided repository.
func NewTheaterHandler(theaterRepo *repository.TheaterRepo) *TheaterHandler {
	if theaterRepo == nil {
		panic("nil repository passed to NewTheaterHandler")
	}
	return &TheaterHandler{TheaterRepo: theaterRepo}
}

// ListTheaters handles GET /api/theaters.
func (h *TheaterHandler) ListTheaters(c echo.Context) error {
	theaters, err := h.TheaterRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, theaters)
}
