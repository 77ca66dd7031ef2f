package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finboard/internal/domain/entity"
	"finboard/internal/infra/persistence/memory"
	"finboard/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserHandlerForTest() *UserHandler {
	return NewUserHandler(impl.NewUserService(memory.NewUserRepository()))
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_CreateUser_ReturnsPassword(t *testing.T) {
	e := newTestEcho()
	h := newUserHandlerForTest()

	c, rec := postJSON(e, "/api/users", `{"username":"alice","password":"secret","fullName":"Alice Doe"}`)
	body := invoke(t, e, h.CreateUser, c, rec)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)

	var user entity.User
	require.NoError(t, json.Unmarshal(body.Data, &user))
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "secret", user.Password)
}

func TestUserHandler_CreateUser_MissingPassword(t *testing.T) {
	e := newTestEcho()
	h := newUserHandlerForTest()

	c, rec := postJSON(e, "/api/users", `{"username":"alice"}`)
	body := invoke(t, e, h.CreateUser, c, rec)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
}

func TestUserHandler_CreateUser_DuplicateUsername(t *testing.T) {
	e := newTestEcho()
	h := newUserHandlerForTest()

	c, rec := postJSON(e, "/api/users", `{"username":"alice","password":"secret"}`)
	invoke(t, e, h.CreateUser, c, rec)

	c, rec = postJSON(e, "/api/users", `{"username":"alice","password":"other"}`)
	body := invoke(t, e, h.CreateUser, c, rec)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "USERNAME_TAKEN", body.Error.Code)
}

func TestUserHandler_GetUser_StripsPassword(t *testing.T) {
	e := newTestEcho()
	h := newUserHandlerForTest()

	c, rec := postJSON(e, "/api/users", `{"username":"alice","password":"secret"}`)
	invoke(t, e, h.CreateUser, c, rec)

	req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	body := invoke(t, e, h.GetUser, c, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, string(body.Data), "password")
	assert.Contains(t, string(body.Data), `"username":"alice"`)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	e := newTestEcho()
	h := newUserHandlerForTest()

	req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	body := invoke(t, e, h.GetUser, c, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "USER_NOT_FOUND", body.Error.Code)
}

func TestUserHandler_UpdateUser_PartialPatch(t *testing.T) {
	e := newTestEcho()
	h := newUserHandlerForTest()

	c, rec := postJSON(e, "/api/users", `{"username":"alice","password":"secret","fullName":"Alice Doe"}`)
	invoke(t, e, h.CreateUser, c, rec)

	req := httptest.NewRequest(http.MethodPatch, "/api/users/1", strings.NewReader(`{"fullName":"Alice Smith"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	body := invoke(t, e, h.UpdateUser, c, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"fullName":"Alice Smith"`)
	assert.Contains(t, string(body.Data), `"username":"alice"`)
	assert.NotContains(t, string(body.Data), "password")
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	e := newTestEcho()
	h := newUserHandlerForTest()

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	body := invoke(t, e, h.GetUser, c, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)
}
