// File: internal/handler/users/user.go
package users

import (
	"context"
	"net/http"
	"strings"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/handler"
	"road-ready/internal/model"
	"road-ready/internal/service"

	"github.com/labstack/echo/v4"
)

// Store 為 users 用到的 UserRepository 方法
type Store interface {
	GetAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	Add(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int) error
}

var hashPassword = service.HashPassword

// @Summary     List users
// @Description 取得所有使用者（僅限 Admin）
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserDTO
// @Failure     401 {object} apperror.Response
// @Failure     403 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /User [get]
func ListUsersHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := store.GetAll(c.Request().Context())
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToUserDTOs(list))
	}
}

// @Summary     Create a user
// @Description 管理員建立帳號，可指定任何角色 (Email 會自動轉小寫)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.UserDTO
// @Failure     400  {object} apperror.Response
// @Failure     409  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /User [post]
func CreateUserHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
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
		if err := store.Add(c.Request().Context(), user); err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusCreated, api.ToUserDTO(*user))
	}
}

// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者詳細資訊
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserDTO
// @Failure     401 {object} apperror.Response
// @Failure     404 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /User/profile [get]
func ProfileHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return handler.Respond(c, err)
		}
		user, err := store.GetByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToUserDTO(*user))
	}
}

// @Summary     Update current user info
// @Description 更新當前使用者資料，空欄位保持不變；角色與密碼不可在此變更
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.UserUpdateRequest true "更新資料"
// @Success     204  "No Content"
// @Failure     400  {object} apperror.Response
// @Failure     401  {object} apperror.Response
// @Failure     404  {object} apperror.Response
// @Failure     409  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /User [put]
func UpdateMeHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.UserUpdateRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		req.Email = strings.ToLower(req.Email)

		ctx := c.Request().Context()
		user, err := store.GetByID(ctx, claims.UserID)
		if err != nil {
			return handler.Respond(c, err)
		}
		req.Apply(user)
		if err := store.Update(ctx, user); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete current user
// @Description 使用 JWT Token 刪除當前使用者帳號
// @Tags        users
// @Success     204 "No Content"
// @Failure     401 {object} apperror.Response
// @Failure     404 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /User [delete]
func DeleteMeHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return handler.Respond(c, err)
		}
		if err := store.Delete(c.Request().Context(), claims.UserID); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Get a user by ID
// @Description 透過 ID 查詢使用者（僅限 Admin）
// @Tags        users
// @Produce     json
// @Param       userId path     int true "使用者 ID"
// @Success     200    {object} api.UserDTO
// @Failure     400    {object} apperror.Response
// @Failure     404    {object} apperror.Response
// @Failure     500    {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /User/{userId} [get]
func GetUserHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "userId")
		if err != nil {
			return handler.Respond(c, err)
		}
		user, err := store.GetByID(c.Request().Context(), id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToUserDTO(*user))
	}
}

// @Summary     Delete a user by ID
// @Description 根據使用者 ID 刪除帳號（僅限 Admin）
// @Tags        users
// @Param       userId path int true "使用者 ID"
// @Success     204    "No Content"
// @Failure     400    {object} apperror.Response
// @Failure     404    {object} apperror.Response
// @Failure     500    {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /User/{userId} [delete]
func DeleteUserHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "userId")
		if err != nil {
			return handler.Respond(c, err)
		}
		if err := store.Delete(c.Request().Context(), id); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
