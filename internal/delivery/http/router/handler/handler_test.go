package handler

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	appmiddleware "finboard/internal/delivery/http/middleware"
	"finboard/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the response.Response shape for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = appmiddleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	return e
}

// invoke runs a handler func through the test server's error handling and
// decodes the response envelope.
func invoke(t *testing.T, e *echo.Echo, fn echo.HandlerFunc, c echo.Context, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	if err := fn(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}
