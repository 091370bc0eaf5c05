// File: internal/handler/resets/reset.go
package resets

import (
	"context"
	"net/http"

	"road-ready/internal/api"
	"road-ready/internal/handler"
	"road-ready/internal/model"

	"github.com/labstack/echo/v4"
)

// Store 為 resets 用到的 PasswordResetRepository 方法
type Store interface {
	GetAll(ctx context.Context) ([]model.PasswordReset, error)
	GetByID(ctx context.Context, id int) (*model.PasswordReset, error)
	Delete(ctx context.Context, id int) error
}

// @Summary     List password resets
// @Description 取得所有密碼重設紀錄（僅限 Admin）
// @Tags        password-resets
// @Produce     json
// @Success     200 {array}  api.PasswordResetDTO
// @Failure     401 {object} apperror.Response
// @Failure     403 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /PasswordReset [get]
func ListResetsHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := store.GetAll(c.Request().Context())
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToPasswordResetDTOs(list))
	}
}

// @Summary     Get a password reset
// @Tags        password-resets
// @Produce     json
// @Param       resetId path     int true "重設紀錄 ID"
// @Success     200     {object} api.PasswordResetDTO
// @Failure     400     {object} apperror.Response
// @Failure     404     {object} apperror.Response
// @Failure     500     {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /PasswordReset/{resetId} [get]
func GetResetHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "resetId")
		if err != nil {
			return handler.Respond(c, err)
		}
		p, err := store.GetByID(c.Request().Context(), id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToPasswordResetDTO(*p))
	}
}

// @Summary     Delete a password reset
// @Tags        password-resets
// @Param       resetId path int true "重設紀錄 ID"
// @Success     204     "No Content"
// @Failure     400     {object} apperror.Response
// @Failure     404     {object} apperror.Response
// @Failure     500     {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /PasswordReset/{resetId} [delete]
func DeleteResetHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "resetId")
		if err != nil {
			return handler.Respond(c, err)
		}
		if err := store.Delete(c.Request().Context(), id); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
