// Package middleware contains Echo middleware for the HTTP delivery.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "finboard/internal/delivery/context"
	"finboard/internal/delivery/http/response"
	"finboard/internal/delivery/http/validator"
	domainerrors "finboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Request validation failures carry per-field details
	var invalid *validator.ValidationErrors
	if errors.As(err, &invalid) {
		_ = response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(invalid.Fields))
		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
		return
	}

	// Anything that is not an AppError is unexpected: log it before the
	// generic 500 goes out
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		m.logger.Error("Unhandled error",
			slog.String("request_id", deliverycontext.GetRequestID(c)),
			slog.String("error", err.Error()),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	_ = response.HandleAppError(c, err)
}
