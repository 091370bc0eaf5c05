// File: internal/handler/reports/report.go
package reports

import (
	"context"
	"net/http"
	"strings"
	"time"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/handler"
	"road-ready/internal/model"

	"github.com/labstack/echo/v4"
)

// Store 為 reports 用到的 AdminReportRepository 方法
type Store interface {
	GetAll(ctx context.Context) ([]model.AdminReport, error)
	GetByID(ctx context.Context, id int) (*model.AdminReport, error)
	Add(ctx context.Context, a *model.AdminReport) error
	Update(ctx context.Context, a *model.AdminReport) error
	Delete(ctx context.Context, id int) error
}

// Summarizer 由 *repository.ReservationRepository 實作
type Summarizer interface {
	Summary(ctx context.Context) (*model.ReservationSummary, error)
}

var timeNow = time.Now

// @Summary     List admin reports
// @Tags        reports
// @Produce     json
// @Success     200 {array}  api.AdminReportDTO
// @Failure     401 {object} apperror.Response
// @Failure     403 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /AdminReport [get]
func ListReportsHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := store.GetAll(c.Request().Context())
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToAdminReportDTOs(list))
	}
}

// @Summary     Get an admin report
// @Tags        reports
// @Produce     json
// @Param       reportId path     int true "報表 ID"
// @Success     200      {object} api.AdminReportDTO
// @Failure     400      {object} apperror.Response
// @Failure     404      {object} apperror.Response
// @Failure     500      {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /AdminReport/{reportId} [get]
func GetReportHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "reportId")
		if err != nil {
			return handler.Respond(c, err)
		}
		report, err := store.GetByID(c.Request().Context(), id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.ToAdminReportDTO(*report))
	}
}

// @Summary     Create an admin report
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       body body     api.AdminReportDTO true "報表資料"
// @Success     201  {object} api.AdminReportDTO
// @Failure     400  {object} apperror.Response
// @Failure     409  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /AdminReport [post]
func CreateReportHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.AdminReportDTO
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		report := api.AdminReportDTOToModel(req)
		if err := store.Add(c.Request().Context(), &report); err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusCreated, api.ToAdminReportDTO(report))
	}
}

// @Summary     Update an admin report
// @Description 路徑與 body 的 reportId 不一致時回傳 400
// @Tags        reports
// @Accept      json
// @Param       reportId path int                true "報表 ID"
// @Param       body     body api.AdminReportDTO true "報表資料"
// @Success     204      "No Content"
// @Failure     400      {object} apperror.Response
// @Failure     404      {object} apperror.Response
// @Failure     500      {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /AdminReport/{reportId} [put]
func UpdateReportHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "reportId")
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.AdminReportDTO
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		if req.ReportID != 0 && req.ReportID != id {
			return handler.Respond(c, apperror.Validation("Report ID mismatch."))
		}
		report := api.AdminReportDTOToModel(req)
		report.ID = id
		if err := store.Update(c.Request().Context(), &report); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete an admin report
// @Tags        reports
// @Param       reportId path int true "報表 ID"
// @Success     204      "No Content"
// @Failure     400      {object} apperror.Response
// @Failure     404      {object} apperror.Response
// @Failure     500      {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /AdminReport/{reportId} [delete]
func DeleteReportHandler(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "reportId")
		if err != nil {
			return handler.Respond(c, err)
		}
		if err := store.Delete(c.Request().Context(), id); err != nil {
			return handler.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Generate an admin report
// @Description 依目前所有預約統計筆數、營收、前三熱門車款與最活躍使用者，產生今日報表
// @Tags        reports
// @Produce     json
// @Success     201 {object} api.AdminReportDTO
// @Failure     401 {object} apperror.Response
// @Failure     403 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /AdminReport/generate [post]
func GenerateReportHandler(store Store, reservations Summarizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		sum, err := reservations.Summary(ctx)
		if err != nil {
			return handler.Respond(c, err)
		}
		report := &model.AdminReport{
			ReportDate:        api.NewDate(timeNow()).Time,
			TotalReservations: sum.TotalReservations,
			TotalRevenue:      sum.TotalRevenue,
			TopCars:           strings.Join(sum.TopCars, ", "),
			MostActiveUser:    sum.MostActiveUser,
		}
		if err := store.Add(ctx, report); err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusCreated, api.ToAdminReportDTO(*report))
	}
}
