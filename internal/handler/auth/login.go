// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/handler"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} apperror.Response
// @Failure     401  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Router      /Auth/login [post]
func LoginHandler(users UserStore, tokens TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}

		user, err := users.GetByEmail(c.Request().Context(), strings.ToLower(req.Email))
		if err != nil {
			// 不透露 email 是否存在
			if apperror.IsNotFound(err) {
				return handler.Respond(c, apperror.Unauthorized("Invalid email or password."))
			}
			return handler.Respond(c, err)
		}

		if err := authenticateUser(user, req.Password); err != nil {
			return handler.Respond(c, err)
		}

		token, exp, err := tokens.Issue(user.ID, user.Role)
		if err != nil {
			return handler.Respond(c, apperror.Internal(err, "Failed to issue token."))
		}
		return c.JSON(http.StatusOK, api.LoginResponse{Token: token, ExpiresAt: exp})
	}
}
