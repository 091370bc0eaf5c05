// Package handlertest 提供 handler 子套件測試共用的 echo context 建構工具
package handlertest

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"road-ready/internal/apperror"
	"road-ready/internal/handler"
	"road-ready/internal/middleware"
	"road-ready/internal/model"
	"road-ready/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// NewContext 建立帶 JSON body 的請求 context，validator 與正式環境相同
func NewContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = handler.NewValidator()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// WithParam 設定單一路徑參數
func WithParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

// As 模擬 Gate 驗證後放入的 claims
func As(c echo.Context, userID int, role model.Role) echo.Context {
	c.Set(middleware.ContextUserKey, &service.Claims{UserID: userID, Role: role})
	return c
}

func Decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

// ErrorType 回傳錯誤回應中的 type
func ErrorType(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp apperror.Response
	Decode(t, rec, &resp)
	return resp.Type
}
