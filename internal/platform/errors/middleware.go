package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPErrorsTotal counts HTTP errors by category.
var HTTPErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "reviewpulse",
		Name:      "http_errors_total",
		Help:      "Total HTTP errors by error type",
	},
	[]string{"type"},
)

// Middleware converts errors returned by handlers into {"detail": ...}
// responses, logs them with request context and records metrics.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			// Router-level errors (unknown route, wrong method) arrive as
			// echo.HTTPError; reshape them so every error body has the same form.
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				structured := fromHTTPError(httpErr)
				HTTPErrorsTotal.WithLabelValues(string(structured.Type)).Inc()
				logError(c, structured)
				return writeResponse(c, httpErr.Code, structured.ToResponse())
			}

			structured := AsStructuredError(err)
			HTTPErrorsTotal.WithLabelValues(string(structured.Type)).Inc()
			logError(c, structured)
			return writeResponse(c, structured.HTTPStatus(), structured.ToResponse())
		}
	}
}

func writeResponse(c echo.Context, status int, body ErrorResponse) error {
	if c.Response().Committed {
		return nil
	}
	if err := c.JSON(status, body); err != nil {
		return fmt.Errorf("failed to write error response: %w", err)
	}
	return nil
}

func fromHTTPError(httpErr *echo.HTTPError) *Error {
	message := "Something went wrong"
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	switch httpErr.Code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &Error{Type: TypeValidation, Message: message, Cause: httpErr.Internal}
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return &Error{Type: TypeNotFound, Message: message, Cause: httpErr.Internal}
	}

	// Other client-caused codes (413 from BodyLimit, 429, ...) must not be
	// reported as a storage failure.
	if httpErr.Code >= 400 && httpErr.Code < 500 {
		return &Error{Type: TypeValidation, Message: "Something went wrong", Cause: httpErr.Internal}
	}

	return &Error{Type: TypeInternal, Message: message, Cause: httpErr.Internal}
}

func logError(c echo.Context, err *Error) {
	ctx := c.Request().Context()
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}
	if err.Cause != nil {
		attrs = append(attrs, "cause", err.Cause)
	}

	switch err.Type {
	case TypeValidation:
		slog.InfoContext(ctx, "Validation error", attrs...)
	case TypeNotFound:
		slog.InfoContext(ctx, "Not found", attrs...)
	default:
		slog.ErrorContext(ctx, "Internal error", attrs...)
	}
}
