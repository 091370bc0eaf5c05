// File: internal/handler/payments/payment.go
package payments

import (
	"context"
	"net/http"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/handler"
	"road-ready/internal/model"

	"github.com/labstack/echo/v4"
)

// Store 為 payments 用到的 PaymentRepository 方法
type Store interface {
	GetAll(ctx context.Context) ([]model.Payment, error)
	GetByID(ctx context.Context, id int) (*model.Payment, error)
	GetByReservationID(ctx context.Context, reservationID int) ([]model.Payment, error)
	Add(ctx context.Context, p *model.Payment) error
	Update(ctx context.Context, p *model.Payment) error
	Delete(ctx context.Context, id int) error
}

// @Summary     List payments
// @Tags        payments
// @Produce     json
// @Success     200 {array}  api.PaymentDTO
// @Failure     401 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Payment [get]
func ListPaymentsHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := store.GetAll(c.Request().Context())
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToPaymentDTOs(list))
	}
}

// @Summary     Get a payment by ID
// @Tags        payments
// @Produce     json
// @Param       paymentId path     int true "付款 ID"
// @Success     200       {object} api.PaymentDTO
// @Failure     400       {object} apperror.Response
// @Failure     404       {object} apperror.Response
// @Failure     500       {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Payment/{paymentId} [get]
func GetPaymentHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "paymentId")
		if err != nil {
			return handler.Respond(c, err)
		}
		p, err := store.GetByID(c.Request().Context(), id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToPaymentDTO(*p))
	}
}

// @Summary     List payments of a reservation
// @Description 依預約查詢付款紀錄；沒有紀錄時回傳 404
// @Tags        payments
// @Produce     json
// @Param       reservationId path     int true "預約 ID"
// @Success     200           {array}  api.PaymentDTO
// @Failure     400           {object} apperror.Response
// @Failure     404           {object} apperror.Response
// @Failure     500           {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Payment/reservation/{reservationId} [get]
func ReservationPaymentsHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "reservationId")
		if err != nil {
			return handler.Respond(c, err)
		}
		list, err := store.GetByReservationID(c.Request().Context(), id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToPaymentDTOs(list))
	}
}

// @Summary     Create a payment
// @Description 新增付款紀錄；未指定 status 時為 Pending
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       body body     api.PaymentDTO true "付款資料"
// @Success     201  {object} api.PaymentDTO
// @Failure     400  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Payment [post]
func CreatePaymentHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.PaymentDTO
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		p := api.PaymentDTOToModel(req)
		if err := store.Add(c.Request().Context(), &p); err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusCreated, api.ToPaymentDTO(p))
	}
}

// @Summary     Update a payment
// @Tags        payments
// @Accept      json
// @Param       body body api.PaymentDTO true "付款資料"
// @Success     204  "No Content"
// @Failure     400  {object} apperror.Response
// @Failure     404  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Payment [put]
func UpdatePaymentHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.PaymentDTO
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		if req.PaymentID <= 0 {
			return handler.Respond(c, apperror.Validation("paymentId is required."))
		}
		p := api.PaymentDTOToModel(req)
		if p.Status == "" {
			p.Status = model.PaymentPending
		}
		if err := store.Update(c.Request().Context(), &p); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a payment
// @Tags        payments
// @Param       paymentId path int true "付款 ID"
// @Success     204       "No Content"
// @Failure     400       {object} apperror.Response
// @Failure     404       {object} apperror.Response
// @Failure     500       {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Payment/{paymentId} [delete]
func DeletePaymentHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "paymentId")
		if err != nil {
			return handler.Respond(c, err)
		}
		if err := store.Delete(c.Request().Context(), id); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
