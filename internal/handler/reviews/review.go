// File: internal/handler/reviews/review.go
package reviews

import (
	"context"
	"net/http"
	"time"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/handler"
	"road-ready/internal/model"

	"github.com/labstack/echo/v4"
)

// Store 為 reviews 用到的 ReviewRepository 方法
type Store interface {
	GetAll(ctx context.Context) ([]model.Review, error)
	GetByID(ctx context.Context, id int) (*model.Review, error)
	GetByCarID(ctx context.Context, carID int) ([]model.Review, error)
	Add(ctx context.Context, r *model.Review) error
	Update(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, id int) error
}

var timeNow = time.Now

// @Summary     List reviews
// @Tags        reviews
// @Produce     json
// @Success     200 {array}  api.ReviewDTO
// @Failure     401 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Review [get]
func ListReviewsHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := store.GetAll(c.Request().Context())
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToReviewDTOs(list))
	}
}

// @Summary     Get a review by ID
// @Tags        reviews
// @Produce     json
// @Param       reviewId path     int true "評論 ID"
// @Success     200      {object} api.ReviewDTO
// @Failure     400      {object} apperror.Response
// @Failure     404      {object} apperror.Response
// @Failure     500      {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Review/{reviewId} [get]
func GetReviewHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "reviewId")
		if err != nil {
			return handler.Respond(c, err)
		}
		rv, err := store.GetByID(c.Request().Context(), id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToReviewDTO(*rv))
	}
}

// @Summary     List reviews of a car
// @Tags        reviews
// @Produce     json
// @Param       carId path     int true "車輛 ID"
// @Success     200   {array}  api.ReviewDTO
// @Failure     400   {object} apperror.Response
// @Failure     404   {object} apperror.Response
// @Failure     500   {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Review/car/{carId} [get]
func CarReviewsHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		carID, err := handler.ParamID(c, "carId")
		if err != nil {
			return handler.Respond(c, err)
		}
		list, err := store.GetByCarID(c.Request().Context(), carID)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToReviewDTOs(list))
	}
}

// @Summary     Create a review
// @Description 以登入者身分評論車輛，每位使用者對同一台車只能評論一次；未給日期時為今天
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       body body     api.ReviewDTO true "評論資料"
// @Success     201  {object} api.ReviewDTO
// @Failure     400  {object} apperror.Response
// @Failure     409  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Review [post]
func CreateReviewHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.ReviewDTO
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		rv := api.ReviewDTOToModel(req)
		rv.ID = 0
		rv.UserID = claims.UserID
		if rv.ReviewDate.IsZero() {
			rv.ReviewDate = api.NewDate(timeNow()).Time
		}
		if err := store.Add(c.Request().Context(), &rv); err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusCreated, api.ToReviewDTO(rv))
	}
}

// @Summary     Update a review
// @Description User 只能修改自己的評論
// @Tags        reviews
// @Accept      json
// @Param       body body api.ReviewDTO true "評論資料"
// @Success     204  "No Content"
// @Failure     400  {object} apperror.Response
// @Failure     403  {object} apperror.Response
// @Failure     404  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Review [put]
func UpdateReviewHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.ReviewDTO
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		if req.ReviewID <= 0 {
			return handler.Respond(c, apperror.Validation("reviewId is required."))
		}
		ctx := c.Request().Context()

		existing, err := store.GetByID(ctx, req.ReviewID)
		if err != nil {
			return handler.Respond(c, err)
		}
		if claims.Role == model.RoleUser && existing.UserID != claims.UserID {
			return handler.Respond(c, apperror.Forbidden("You can only update your own reviews."))
		}

		rv := api.ReviewDTOToModel(req)
		rv.UserID = existing.UserID
		if rv.ReviewDate.IsZero() {
			rv.ReviewDate = existing.ReviewDate
		}
		if err := store.Update(ctx, &rv); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a review
// @Description User 只能刪除自己的評論
// @Tags        reviews
// @Param       reviewId path int true "評論 ID"
// @Success     204      "No Content"
// @Failure     400      {object} apperror.Response
// @Failure     403      {object} apperror.Response
// @Failure     404      {object} apperror.Response
// @Failure     500      {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Review/{reviewId} [delete]
func DeleteReviewHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return handler.Respond(c, err)
		}
		id, err := handler.ParamID(c, "reviewId")
		if err != nil {
			return handler.Respond(c, err)
		}
		ctx := c.Request().Context()

		existing, err := store.GetByID(ctx, id)
		if err != nil {
			return handler.Respond(c, err)
		}
		if claims.Role == model.RoleUser && existing.UserID != claims.UserID {
			return handler.Respond(c, apperror.Forbidden("You can only delete your own reviews."))
		}
		if err := store.Delete(ctx, id); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
