// File: internal/handler/cars/car.go
package cars

import (
	"context"
	"net/http"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/handler"
	"road-ready/internal/model"

	"github.com/labstack/echo/v4"
)

// Store 為 cars 用到的 CarRepository 方法
type Store interface {
	GetAll(ctx context.Context) ([]model.Car, error)
	GetByID(ctx context.Context, id int) (*model.Car, error)
	Add(ctx context.Context, c *model.Car) error
	Update(ctx context.Context, c *model.Car) error
	Delete(ctx context.Context, id int) error
}

// @Summary     List cars
// @Description 取得所有車輛
// @Tags        cars
// @Produce     json
// @Success     200 {array}  api.CarDTO
// @Failure     401 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Car [get]
func ListCarsHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := store.GetAll(c.Request().Context())
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToCarDTOs(list))
	}
}

// @Summary     Get a car by ID
// @Tags        cars
// @Produce     json
// @Param       carId path     int true "車輛 ID"
// @Success     200   {object} api.CarDTO
// @Failure     400   {object} apperror.Response
// @Failure     404   {object} apperror.Response
// @Failure     500   {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Car/{carId} [get]
func GetCarHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "carId")
		if err != nil {
			return handler.Respond(c, err)
		}
		car, err := store.GetByID(c.Request().Context(), id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToCarDTO(*car))
	}
}

// @Summary     Create a car
// @Description 新增車輛（Admin、Host）；carId 由資料庫產生
// @Tags        cars
// @Accept      json
// @Produce     json
// @Param       body body     api.CarDTO true "車輛資料"
// @Success     201  {object} api.CarDTO
// @Failure     400  {object} apperror.Response
// @Failure     409  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Car [post]
func CreateCarHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CarDTO
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		car := api.CarDTOToModel(req)
		if err := store.Add(c.Request().Context(), &car); err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusCreated, api.ToCarDTO(car))
	}
}

// @Summary     Update a car
// @Description 以 body 內的 carId 覆寫整筆車輛資料（Admin、Host）
// @Tags        cars
// @Accept      json
// @Param       body body api.CarDTO true "車輛資料"
// @Success     204  "No Content"
// @Failure     400  {object} apperror.Response
// @Failure     404  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Car [put]
func UpdateCarHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CarDTO
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		if req.CarID <= 0 {
			return handler.Respond(c, apperror.Validation("carId is required."))
		}
		car := api.CarDTOToModel(req)
		if err := store.Update(c.Request().Context(), &car); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a car
// @Tags        cars
// @Param       carId path int true "車輛 ID"
// @Success     204   "No Content"
// @Failure     400   {object} apperror.Response
// @Failure     404   {object} apperror.Response
// @Failure     500   {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /Car/{carId} [delete]
func DeleteCarHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "carId")
		if err != nil {
			return handler.Respond(c, err)
		}
		if err := store.Delete(c.Request().Context(), id); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
