package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMiddleware(t *testing.T, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Middleware()(handler)(c)
	require.NoError(t, err)
	return rec
}

func TestMiddleware_PassesThroughSuccess(t *testing.T) {
	rec := runMiddleware(t, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "detail")
}

func TestMiddleware_ValidationError(t *testing.T) {
	rec := runMiddleware(t, func(echo.Context) error {
		return ValidationError("Invalid request body")
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail": "Invalid request body"}`, rec.Body.String())
}

func TestMiddleware_InternalErrorIsGeneric(t *testing.T) {
	rec := runMiddleware(t, func(echo.Context) error {
		return InternalError("insert failed", assert.AnError)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail": "Internal database error"}`, rec.Body.String())
}

func TestMiddleware_UnstructuredErrorBecomesInternal(t *testing.T) {
	rec := runMiddleware(t, func(echo.Context) error {
		return assert.AnError
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail": "Internal database error"}`, rec.Body.String())
}

func TestMiddleware_BodyTooLargeIsClientError(t *testing.T) {
	rec := runMiddleware(t, func(echo.Context) error {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large")
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"detail": "Something went wrong"}`, rec.Body.String())
}

func TestMiddleware_EchoHTTPErrorReshaped(t *testing.T) {
	rec := runMiddleware(t, func(echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Not Found")
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "Not found"}`, rec.Body.String())
}
