// File: internal/handler/handler.go
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/middleware"
	"road-ready/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator 將 go-playground/validator 接到 echo
type CustomValidator struct {
	Validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.Validator.Struct(i)
}

func NewValidator() *CustomValidator {
	return &CustomValidator{Validator: api.NewValidator()}
}

// Respond 以 {error, type} 格式回傳錯誤；InternalError 只記 log，不回傳底層訊息
func Respond(c echo.Context, err error) error {
	ae := apperror.From(err)
	if ae.Kind == apperror.KindInternal {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(ae.StatusCode(), ae.Response())
}

// Bind 綁定並驗證請求，失敗回傳 ValidationError
func Bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperror.Validation("Invalid request payload.")
	}
	if err := c.Validate(req); err != nil {
		return apperror.Validation("%s", api.ValidationMessage(err))
	}
	return nil
}

// ParamID 解析路徑上的正整數 ID
func ParamID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, apperror.Validation("Invalid %s.", name)
	}
	return id, nil
}

// CurrentUser 取出 Gate 驗證過的呼叫者
func CurrentUser(c echo.Context) (*service.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return nil, apperror.Unauthorized("Authentication required.")
	}
	return claims, nil
}

// ErrorHandler 全域錯誤處理：路由、binder、recover 的錯誤也以相同格式回傳
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), he.Internal)
		}
		msg := fmt.Sprint(he.Message)
		if he.Code >= http.StatusInternalServerError {
			msg = "An unexpected error occurred."
		}
		resp := apperror.Response{Error: msg, Type: string(kindForStatus(he.Code))}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(he.Code)
		} else {
			err = c.JSON(he.Code, resp)
		}
		if err != nil {
			c.Logger().Error(err)
		}
		return
	}
	if err := Respond(c, err); err != nil {
		c.Logger().Error(err)
	}
}

func kindForStatus(code int) apperror.Kind {
	switch code {
	case http.StatusBadRequest:
		return apperror.KindValidation
	case http.StatusUnauthorized:
		return apperror.KindUnauthorized
	case http.StatusForbidden:
		return apperror.KindForbidden
	case http.StatusNotFound:
		return apperror.KindNotFound
	case http.StatusConflict:
		return apperror.KindDuplicate
	case http.StatusTooManyRequests:
		return apperror.KindRateLimited
	case http.StatusMethodNotAllowed:
		return "MethodNotAllowed"
	default:
		return apperror.KindInternal
	}
}
