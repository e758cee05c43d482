package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Garmonik/reviewpulse/internal/platform/correlation"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware attaches a request ID to the request context so every
// log line for the request carries it, and echoes it back in the response.
func requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = correlation.NewID()
			}

			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(requestIDHeader, id)

			return next(c)
		}
	}
}
