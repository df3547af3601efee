package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/grezzle/goblin-closet/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, payload)
}

func Unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrUnauthenticated.Error()})
}

func Forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, errorResponse{Error: domain.ErrForbidden.Error()})
}

func BadRequestMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

// Error maps domain failures onto status codes. Anything unrecognized is an
// upstream failure and surfaces as a 500 with the message attached.
func Error(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthenticated):
		return Unauthenticated(c)
	case errors.Is(err, domain.ErrForbidden):
		return Forbidden(c)
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
