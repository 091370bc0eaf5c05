// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"road-ready/internal/apperror"
	"road-ready/internal/cache"
	"road-ready/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	Message  string `json:"message" example:"pong"`
	Database string `json:"database" example:"up"`
	Cache    string `json:"cache" example:"up"`
}

// PingHandler 依序檢查 PostgreSQL 與 Redis，任一失敗回 500
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     401 {object} apperror.Response
// @Failure     500 {object} apperror.Response
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return Respond(c, apperror.Internal(err, "database unhealthy"))
		}
		if err := cch.Ping(ctx).Err(); err != nil {
			return Respond(c, apperror.Internal(err, "cache unhealthy"))
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong", Database: "up", Cache: "up"})
	}
}
