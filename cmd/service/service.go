// File: cmd/service/service.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"road-ready/internal/cache"
	"road-ready/internal/config"
	"road-ready/internal/database"
	"road-ready/internal/handler"
	"road-ready/internal/handler/auth"
	"road-ready/internal/mailer"
	"road-ready/internal/router"
	"road-ready/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"

	_ "road-ready/docs" // 引入 swag 產出的 docs
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	newTokenIssuer  = service.NewTokenIssuer
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func newApp() *cli.App {
	return &cli.App{
		Name:   "road-ready",
		Usage:  "RoadReady car rental API",
		Action: serveCmd,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "套用 migration 後啟動 HTTP 服務（預設）",
				Action: serveCmd,
			},
			{
				Name:   "migrate",
				Usage:  "套用所有尚未執行的 migration",
				Action: migrateCmd,
			},
			{
				Name:   "rollback",
				Usage:  "回滾所有 migration",
				Action: rollbackCmd,
			},
		},
	}
}

func serveCmd(*cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return run(cfg)
}

func migrateCmd(*cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}
	log.Print("migrations applied")
	return nil
}

func rollbackCmd(*cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("RollbackAll 失敗: %v", err)
	}
	log.Print("migrations rolled back")
	return nil
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	return e
}

func run(cfg *config.Config) error {
	tokens, err := newTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)
	if err != nil {
		return fmt.Errorf("JWT 設定錯誤: %v", err)
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	e := newEcho(cfg)
	if cfg.SendGridAPIKey == "" {
		e.Logger.Warn("SENDGRID_API_KEY 未設定，密碼重設信件只會寫入 log")
	}

	router.Setup(e, router.Deps{
		DB:     db,
		Cache:  rdb,
		Tokens: tokens,
		Mailer: mailer.New(cfg.SendGridAPIKey, cfg.MailFrom, cfg.MailFromName, e.Logger),
		Reset: auth.ResetOptions{
			TokenTTL: cfg.ResetTokenTTL,
			Throttle: cfg.ResetThrottle,
		},
	})

	return startServer(e, ":"+cfg.Port)
}
