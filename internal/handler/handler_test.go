package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/middleware"
	"road-ready/internal/model"
	"road-ready/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newCtx(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperror.Response {
	t.Helper()
	var resp apperror.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRespond(t *testing.T) {
	c, rec := newCtx(http.MethodGet, "")
	require.NoError(t, Respond(c, apperror.NotFound("Car with ID %d not found.", 5)))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, apperror.Response{Error: "Car with ID 5 not found.", Type: "NotFoundError"}, decodeError(t, rec))

	c, rec = newCtx(http.MethodGet, "")
	require.NoError(t, Respond(c, errors.New("pq: relation \"cars\" does not exist")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	require.Equal(t, "InternalError", resp.Type)
	require.NotContains(t, resp.Error, "relation")
}

func TestBind(t *testing.T) {
	c, _ := newCtx(http.MethodPost, `{"email":"a@example.com","password":"x"}`)
	var req api.LoginRequest
	require.NoError(t, Bind(c, &req))
	require.Equal(t, "a@example.com", req.Email)

	c, _ = newCtx(http.MethodPost, `{"email":`)
	err := Bind(c, &req)
	require.True(t, apperror.IsValidation(err))

	c, _ = newCtx(http.MethodPost, `{"email":"nope"}`)
	err = Bind(c, &api.LoginRequest{})
	require.True(t, apperror.IsValidation(err))
	require.Contains(t, err.Error(), "email must be a valid email address.")
}

func TestParamID(t *testing.T) {
	c, _ := newCtx(http.MethodGet, "")
	c.SetParamNames("carId")
	c.SetParamValues("12")
	id, err := ParamID(c, "carId")
	require.NoError(t, err)
	require.Equal(t, 12, id)

	for _, v := range []string{"abc", "0", "-3", ""} {
		c.SetParamValues(v)
		_, err = ParamID(c, "carId")
		require.True(t, apperror.IsValidation(err), v)
	}
}

func TestCurrentUser(t *testing.T) {
	c, _ := newCtx(http.MethodGet, "")
	_, err := CurrentUser(c)
	require.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	c.Set(middleware.ContextUserKey, &service.Claims{UserID: 3, Role: model.RoleHost})
	claims, err := CurrentUser(c)
	require.NoError(t, err)
	require.Equal(t, 3, claims.UserID)
}

func TestErrorHandler(t *testing.T) {
	c, rec := newCtx(http.MethodGet, "")
	ErrorHandler(echo.ErrNotFound, c)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NotFoundError", decodeError(t, rec).Type)

	c, rec = newCtx(http.MethodGet, "")
	ErrorHandler(echo.NewHTTPError(http.StatusInternalServerError, "panic: boom").SetInternal(errors.New("boom")), c)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "boom")

	c, rec = newCtx(http.MethodGet, "")
	ErrorHandler(apperror.Forbidden("nope"), c)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, apperror.Response{Error: "nope", Type: "ForbiddenError"}, decodeError(t, rec))

	c, rec = newCtx(http.MethodGet, "")
	ErrorHandler(apperror.RateLimited("slow down"), c)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	c, rec = newCtx(http.MethodGet, "")
	require.NoError(t, c.String(http.StatusOK, "done"))
	ErrorHandler(errors.New("late"), c)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestKindForStatus(t *testing.T) {
	require.Equal(t, apperror.KindValidation, kindForStatus(http.StatusBadRequest))
	require.Equal(t, apperror.KindDuplicate, kindForStatus(http.StatusConflict))
	require.Equal(t, apperror.KindInternal, kindForStatus(http.StatusBadGateway))
}
