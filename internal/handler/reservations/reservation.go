// File: internal/handler/reservations/reservation.go
package reservations

import (
	"context"
	"net/http"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/booking"
	"road-ready/internal/handler"
	"road-ready/internal/model"
	"road-ready/internal/service"

	"github.com/labstack/echo/v4"
)

// Store 為 reservations 用到的 ReservationRepository 方法
type Store interface {
	GetAll(ctx context.Context) ([]model.Reservation, error)
	GetByID(ctx context.Context, id int) (*model.Reservation, error)
	GetByUserID(ctx context.Context, userID int) ([]model.Reservation, error)
	GetByCarID(ctx context.Context, carID int) ([]model.Reservation, error)
	Update(ctx context.Context, r *model.Reservation) error
	Delete(ctx context.Context, id int) error
}

// Booker 由 *booking.Service 實作
type Booker interface {
	Book(ctx context.Context, userID int, req booking.Request) (*model.Reservation, error)
}

// ownedBy User 角色只能操作自己的預約，其他角色不受限
func ownedBy(claims *service.Claims, r *model.Reservation) bool {
	return claims.Role != model.RoleUser || r.UserID == claims.UserID
}

// @Summary     List reservations
// @Description 取得所有預約（僅限 Admin）
// @Tags        reservations
// @Produce     json
// @Success     200 {array}  api.ReservationDTO
// @Failure     401 {object} apperror.Response
// @Failure     403 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Reservation [get]
func ListReservationsHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := store.GetAll(c.Request().Context())
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToReservationDTOs(list))
	}
}

// @Summary     Create a reservation
// @Description 以登入者身分預約車輛；總價由伺服器依天數與日租計算，body 內的 userId、totalPrice 會被忽略
// @Tags        reservations
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateReservationRequest true "預約資料"
// @Success     201  {object} api.ReservationDTO
// @Failure     400  {object} apperror.Response
// @Failure     401  {object} apperror.Response
// @Failure     404  {object} apperror.Response
// @Failure     409  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Reservation [post]
func CreateReservationHandler(booker Booker) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.CreateReservationRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		res, err := booker.Book(c.Request().Context(), claims.UserID, req.BookingRequest())
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusCreated, api.ToReservationDTO(*res))
	}
}

// @Summary     Update a reservation
// @Description User 只能修改自己的預約；日期變更時依車輛日租重新計價
// @Tags        reservations
// @Accept      json
// @Param       body body api.ReservationDTO true "預約資料"
// @Success     204  "No Content"
// @Failure     400  {object} apperror.Response
// @Failure     403  {object} apperror.Response
// @Failure     404  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Reservation [put]
func UpdateReservationHandler(store Store, cars booking.CarFinder) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.ReservationDTO
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		if req.ReservationID <= 0 {
			return handler.Respond(c, apperror.Validation("reservationId is required."))
		}
		ctx := c.Request().Context()

		existing, err := store.GetByID(ctx, req.ReservationID)
		if err != nil {
			return handler.Respond(c, err)
		}
		if !ownedBy(claims, existing) {
			return handler.Respond(c, apperror.Forbidden("You can only update your own reservations."))
		}

		updated := api.ReservationDTOToModel(req)
		if err := booking.CompareDates(updated.PickupDate, updated.DropoffDate); err != nil {
			return handler.Respond(c, err)
		}
		car, err := cars.GetByID(ctx, updated.CarID)
		if err != nil {
			return handler.Respond(c, err)
		}
		// 預約人不可轉移
		updated.UserID = existing.UserID
		updated.TotalPrice = booking.TotalPrice(booking.Days(updated.PickupDate, updated.DropoffDate), car.PricePerDay)
		if updated.Status == "" {
			updated.Status = existing.Status
		}
		if err := store.Update(ctx, &updated); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a reservation
// @Description User 只能刪除自己的預約
// @Tags        reservations
// @Param       reservationId path int true "預約 ID"
// @Success     204           "No Content"
// @Failure     400           {object} apperror.Response
// @Failure     403           {object} apperror.Response
// @Failure     404           {object} apperror.Response
// @Failure     500           {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Reservation/{reservationId} [delete]
func DeleteReservationHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return handler.Respond(c, err)
		}
		id, err := handler.ParamID(c, "reservationId")
		if err != nil {
			return handler.Respond(c, err)
		}
		ctx := c.Request().Context()

		existing, err := store.GetByID(ctx, id)
		if err != nil {
			return handler.Respond(c, err)
		}
		if !ownedBy(claims, existing) {
			return handler.Respond(c, apperror.Forbidden("You can only delete your own reservations."))
		}
		if err := store.Delete(ctx, id); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Get a reservation by ID
// @Tags        reservations
// @Produce     json
// @Param       reservationId path     int true "預約 ID"
// @Success     200           {object} api.ReservationDTO
// @Failure     400           {object} apperror.Response
// @Failure     404           {object} apperror.Response
// @Failure     500           {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Reservation/{reservationId} [get]
func GetReservationHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "reservationId")
		if err != nil {
			return handler.Respond(c, err)
		}
		res, err := store.GetByID(c.Request().Context(), id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToReservationDTO(*res))
	}
}

// @Summary     List my reservations
// @Description 取得登入者自己的預約；沒有任何預約時回傳 404
// @Tags        reservations
// @Produce     json
// @Success     200 {array}  api.ReservationDTO
// @Failure     401 {object} apperror.Response
// @Failure     404 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Reservation/user/reservations [get]
func MyReservationsHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return handler.Respond(c, err)
		}
		list, err := store.GetByUserID(c.Request().Context(), claims.UserID)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToReservationDTOs(list))
	}
}

// @Summary     List reservations of a car
// @Tags        reservations
// @Produce     json
// @Param       carId path     int true "車輛 ID"
// @Success     200   {array}  api.ReservationDTO
// @Failure     400   {object} apperror.Response
// @Failure     404   {object} apperror.Response
// @Failure     500   {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Reservation/car/{carId} [get]
func CarReservationsHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		carID, err := handler.ParamID(c, "carId")
		if err != nil {
			return handler.Respond(c, err)
		}
		list, err := store.GetByCarID(c.Request().Context(), carID)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToReservationDTOs(list))
	}
}
