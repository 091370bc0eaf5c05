// File: internal/handler/auth/register.go
package auth

import (
	"net/http"
	"strings"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/handler"
	"road-ready/internal/model"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 自行註冊帳號
// @Summary     Register
// @Description 建立新帳號，角色只能是 User 或 Host；Email 會轉為小寫
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.UserDTO
// @Failure     400  {object} apperror.Response
// @Failure     409  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Router      /Auth/register [post]
func RegisterHandler(users UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return handler.Respond(c, apperror.Internal(err, "Failed to hash password."))
		}

		user := &model.User{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       strings.ToLower(req.Email),
			Password:    hash,
			PhoneNumber: req.PhoneNumber,
			Role:        model.Role(req.Role),
		}
		if err := users.Add(c.Request().Context(), user); err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusCreated, api.ToUserDTO(*user))
	}
}
