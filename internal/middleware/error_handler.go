package middleware

import (
	"errors"
	"net/http"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as {"message": ...}. Typed domain
// errors that reach here without a handler mapping still get sensible
// status codes.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	var validationErr *service.ValidationError
	var transitionErr *service.InvalidTransitionError

	switch {
	case errors.As(err, &validationErr):
		code = http.StatusBadRequest
	case errors.As(err, &transitionErr):
		code = http.StatusConflict
	}

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
