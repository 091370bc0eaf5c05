package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"road-ready/internal/cache"
	"road-ready/internal/database"
	"road-ready/internal/handler"
	"road-ready/internal/mailer"
	"road-ready/internal/model"
	"road-ready/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct{}

func (fakeTokens) Issue(int, model.Role) (string, time.Time, error) {
	return "t", time.Time{}, nil
}

// Verify token 內容即角色名稱
func (fakeTokens) Verify(token string) (*service.Claims, error) {
	role := model.Role(token)
	if !role.Valid() {
		return nil, errors.New("bad token")
	}
	return &service.Claims{UserID: 1, Role: role}, nil
}

type nopMailer struct{}

func (nopMailer) Send(context.Context, mailer.Message) error { return nil }

func newServer(db *database.FakeDB) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler
	Setup(e, Deps{DB: db, Cache: &cache.FakeCache{}, Tokens: fakeTokens{}, Mailer: nopMailer{}})
	return e
}

func serve(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSetupRoutes(t *testing.T) {
	e := newServer(&database.FakeDB{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /swagger/*",
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/Auth/register",
		http.MethodPost + " /api/Auth/login",
		http.MethodPost + " /api/Auth/forgot-password",
		http.MethodPost + " /api/Auth/reset-password",
		http.MethodGet + " /api/User",
		http.MethodPost + " /api/User",
		http.MethodPut + " /api/User",
		http.MethodDelete + " /api/User",
		http.MethodGet + " /api/User/profile",
		http.MethodGet + " /api/User/:userId",
		http.MethodDelete + " /api/User/:userId",
		http.MethodGet + " /api/Car",
		http.MethodPost + " /api/Car",
		http.MethodPut + " /api/Car",
		http.MethodGet + " /api/Car/:carId",
		http.MethodDelete + " /api/Car/:carId",
		http.MethodGet + " /api/Reservation",
		http.MethodPost + " /api/Reservation",
		http.MethodPut + " /api/Reservation",
		http.MethodGet + " /api/Reservation/user/reservations",
		http.MethodGet + " /api/Reservation/car/:carId",
		http.MethodGet + " /api/Reservation/:reservationId",
		http.MethodDelete + " /api/Reservation/:reservationId",
		http.MethodGet + " /api/Payment",
		http.MethodPost + " /api/Payment",
		http.MethodPut + " /api/Payment",
		http.MethodGet + " /api/Payment/reservation/:reservationId",
		http.MethodGet + " /api/Payment/:paymentId",
		http.MethodDelete + " /api/Payment/:paymentId",
		http.MethodGet + " /api/Review",
		http.MethodPost + " /api/Review",
		http.MethodPut + " /api/Review",
		http.MethodGet + " /api/Review/car/:carId",
		http.MethodGet + " /api/Review/:reviewId",
		http.MethodDelete + " /api/Review/:reviewId",
		http.MethodGet + " /api/AdminReport",
		http.MethodPost + " /api/AdminReport",
		http.MethodPost + " /api/AdminReport/generate",
		http.MethodGet + " /api/AdminReport/:reportId",
		http.MethodPut + " /api/AdminReport/:reportId",
		http.MethodDelete + " /api/AdminReport/:reportId",
		http.MethodGet + " /api/PasswordReset",
		http.MethodGet + " /api/PasswordReset/:resetId",
		http.MethodDelete + " /api/PasswordReset/:resetId",
	}
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestPolicy(t *testing.T) {
	p := Policy()
	require.True(t, p.IsPublic(http.MethodPost, "/api/Auth/login"))
	require.False(t, p.IsPublic(http.MethodGet, "/api/ping"))

	require.True(t, p.Permits(http.MethodGet, "/api/Car", model.RoleUser))
	require.False(t, p.Permits(http.MethodPost, "/api/Car", model.RoleUser))
	require.True(t, p.Permits(http.MethodPost, "/api/Car", model.RoleHost))
	require.False(t, p.Permits(http.MethodPost, "/api/Reservation", model.RoleAdmin))
	require.False(t, p.Permits(http.MethodPut, "/api/Reservation", model.RoleHost))
	require.False(t, p.Permits(http.MethodGet, "/api/Payment/reservation/:reservationId", model.RoleUser))
	require.False(t, p.Permits(http.MethodPost, "/api/AdminReport/generate", model.RoleHost))
	require.True(t, p.Permits(http.MethodDelete, "/api/User", model.RoleHost))
}

func TestGateThroughRouter(t *testing.T) {
	db := &database.FakeDB{
		PingFn: func(context.Context) error { return nil },
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &database.FakeRows{}, nil
		},
	}
	e := newServer(db)

	rec := serve(e, http.MethodGet, "/api/User", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), `"type":"UnauthorizedError"`)

	rec = serve(e, http.MethodGet, "/api/User", "nonsense", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodGet, "/api/User", "User", "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), `"type":"ForbiddenError"`)

	rec = serve(e, http.MethodGet, "/api/User", "Admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]\n", rec.Body.String())

	rec = serve(e, http.MethodGet, "/api/ping", "Host", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "pong")

	// 公開路由不需 token，直接進入 handler 驗證
	rec = serve(e, http.MethodPost, "/api/Auth/login", "", `{"email":"bad"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"type":"ValidationError"`)
}
