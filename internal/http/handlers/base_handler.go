// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cabsafar/internal/modules/booking"
	"cabsafar/internal/modules/catalog"
	"cabsafar/internal/modules/leads"
	"cabsafar/internal/modules/quote"
	"cabsafar/internal/modules/rates"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// writeServiceError maps module sentinel errors onto HTTP statuses. Anything
// unrecognized is an internal error and the detail stays out of the response.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quote.ErrInvalidTrip),
		errors.Is(err, rates.ErrBadQuery),
		errors.Is(err, booking.ErrBadRequest),
		errors.Is(err, catalog.ErrBadRequest),
		errors.Is(err, leads.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNotFound), errors.Is(err, leads.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrNoRate):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

const dateLayout = "2006-01-02"

// parseDate accepts an empty string as "no date" (zero time).
func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, v)
}
