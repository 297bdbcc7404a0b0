package http

import (
	"errors"
	"net/http"
	"strings"

	"lendcore/internal/domain/sentinel"

	"github.com/labstack/echo/v4"
)

// writeErr maps the core error taxonomy onto transport codes. The core
// itself never constructs status codes.
func writeErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, sentinel.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, sentinel.ErrCryptoFailure), errors.Is(err, sentinel.ErrIntegrity):
		// internal faults are not the caller's doing; hide the detail
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
