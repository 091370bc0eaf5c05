// File: internal/router/router.go
package router

import (
	"net/http"

	"road-ready/internal/booking"
	"road-ready/internal/cache"
	"road-ready/internal/database"
	"road-ready/internal/handler"
	"road-ready/internal/handler/auth"
	"road-ready/internal/handler/cars"
	"road-ready/internal/handler/payments"
	"road-ready/internal/handler/reports"
	"road-ready/internal/handler/reservations"
	"road-ready/internal/handler/resets"
	"road-ready/internal/handler/reviews"
	"road-ready/internal/handler/users"
	"road-ready/internal/mailer"
	"road-ready/internal/middleware"
	"road-ready/internal/model"
	"road-ready/internal/repository"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Tokens 由 *service.TokenIssuer 實作
type Tokens interface {
	auth.TokenIssuer
	middleware.TokenVerifier
}

// Deps 路由需要的外部資源
type Deps struct {
	DB     database.DB
	Cache  cache.Cache
	Tokens Tokens
	Mailer mailer.Mailer
	Reset  auth.ResetOptions
}

const (
	admin = model.RoleAdmin
	user  = model.RoleUser
	host  = model.RoleHost
)

// Policy 路由權限表；未列出的 /api 路由只要求登入
func Policy() *middleware.Policy {
	p := middleware.NewPolicy()

	p.Public(http.MethodPost, "/api/Auth/register").
		Public(http.MethodPost, "/api/Auth/login").
		Public(http.MethodPost, "/api/Auth/forgot-password").
		Public(http.MethodPost, "/api/Auth/reset-password")

	p.Allow(http.MethodGet, "/api/User", admin).
		Allow(http.MethodPost, "/api/User", admin).
		Allow(http.MethodGet, "/api/User/profile", user, admin, host).
		Allow(http.MethodPut, "/api/User", user, admin, host).
		Allow(http.MethodDelete, "/api/User", user, admin, host).
		Allow(http.MethodGet, "/api/User/:userId", admin).
		Allow(http.MethodDelete, "/api/User/:userId", admin)

	p.Allow(http.MethodPost, "/api/Car", admin, host).
		Allow(http.MethodPut, "/api/Car", admin, host).
		Allow(http.MethodDelete, "/api/Car/:carId", admin, host)

	p.Allow(http.MethodGet, "/api/Reservation", admin).
		Allow(http.MethodPost, "/api/Reservation", user).
		Allow(http.MethodPut, "/api/Reservation", user, admin).
		Allow(http.MethodDelete, "/api/Reservation/:reservationId", user, admin).
		Allow(http.MethodGet, "/api/Reservation/:reservationId", user, admin, host).
		Allow(http.MethodGet, "/api/Reservation/user/reservations", user).
		Allow(http.MethodGet, "/api/Reservation/car/:carId", host, admin, user)

	p.Allow(http.MethodGet, "/api/Payment", user, admin).
		Allow(http.MethodGet, "/api/Payment/:paymentId", user, admin).
		Allow(http.MethodPost, "/api/Payment", user, admin).
		Allow(http.MethodGet, "/api/Payment/reservation/:reservationId", host, admin).
		Allow(http.MethodPut, "/api/Payment", admin).
		Allow(http.MethodDelete, "/api/Payment/:paymentId", admin)

	p.Allow(http.MethodGet, "/api/Review", user, admin).
		Allow(http.MethodGet, "/api/Review/:reviewId", user, admin).
		Allow(http.MethodPost, "/api/Review", user).
		Allow(http.MethodGet, "/api/Review/car/:carId", host, admin, user).
		Allow(http.MethodPut, "/api/Review", user, admin).
		Allow(http.MethodDelete, "/api/Review/:reviewId", user, admin)

	p.Allow(http.MethodGet, "/api/AdminReport", admin).
		Allow(http.MethodGet, "/api/AdminReport/:reportId", admin).
		Allow(http.MethodPost, "/api/AdminReport", admin).
		Allow(http.MethodPut, "/api/AdminReport/:reportId", admin).
		Allow(http.MethodDelete, "/api/AdminReport/:reportId", admin).
		Allow(http.MethodPost, "/api/AdminReport/generate", admin)

	p.Allow(http.MethodGet, "/api/PasswordReset", admin).
		Allow(http.MethodGet, "/api/PasswordReset/:resetId", admin).
		Allow(http.MethodDelete, "/api/PasswordReset/:resetId", admin)

	return p
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	userRepo := repository.NewUserRepository(d.DB)
	carRepo := repository.NewCarRepository(d.DB)
	reservationRepo := repository.NewReservationRepository(d.DB)
	paymentRepo := repository.NewPaymentRepository(d.DB)
	reviewRepo := repository.NewReviewRepository(d.DB)
	reportRepo := repository.NewAdminReportRepository(d.DB)
	resetRepo := repository.NewPasswordResetRepository(d.DB)
	bookings := booking.NewService(carRepo, reservationRepo)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", middleware.Gate(d.Tokens, Policy()))

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	apiAuth := api.Group("/Auth")
	apiAuth.POST("/register", auth.RegisterHandler(userRepo))
	apiAuth.POST("/login", auth.LoginHandler(userRepo, d.Tokens))
	apiAuth.POST("/forgot-password", auth.ForgotPasswordHandler(userRepo, resetRepo, d.Cache, d.Mailer, d.Reset))
	apiAuth.POST("/reset-password", auth.ResetPasswordHandler(userRepo, resetRepo))

	apiUsers := api.Group("/User")
	apiUsers.GET("", users.ListUsersHandler(userRepo))
	apiUsers.POST("", users.CreateUserHandler(userRepo))
	apiUsers.PUT("", users.UpdateMeHandler(userRepo))
	apiUsers.DELETE("", users.DeleteMeHandler(userRepo))
	apiUsers.GET("/profile", users.ProfileHandler(userRepo))
	apiUsers.GET("/:userId", users.GetUserHandler(userRepo))
	apiUsers.DELETE("/:userId", users.DeleteUserHandler(userRepo))

	apiCars := api.Group("/Car")
	apiCars.GET("", cars.ListCarsHandler(carRepo))
	apiCars.POST("", cars.CreateCarHandler(carRepo))
	apiCars.PUT("", cars.UpdateCarHandler(carRepo))
	apiCars.GET("/:carId", cars.GetCarHandler(carRepo))
	apiCars.DELETE("/:carId", cars.DeleteCarHandler(carRepo))

	apiReservations := api.Group("/Reservation")
	apiReservations.GET("", reservations.ListReservationsHandler(reservationRepo))
	apiReservations.POST("", reservations.CreateReservationHandler(bookings))
	apiReservations.PUT("", reservations.UpdateReservationHandler(reservationRepo, carRepo))
	apiReservations.GET("/user/reservations", reservations.MyReservationsHandler(reservationRepo))
	apiReservations.GET("/car/:carId", reservations.CarReservationsHandler(reservationRepo))
	apiReservations.GET("/:reservationId", reservations.GetReservationHandler(reservationRepo))
	apiReservations.DELETE("/:reservationId", reservations.DeleteReservationHandler(reservationRepo))

	apiPayments := api.Group("/Payment")
	apiPayments.GET("", payments.ListPaymentsHandler(paymentRepo))
	apiPayments.POST("", payments.CreatePaymentHandler(paymentRepo))
	apiPayments.PUT("", payments.UpdatePaymentHandler(paymentRepo))
	apiPayments.GET("/reservation/:reservationId", payments.ReservationPaymentsHandler(paymentRepo))
	apiPayments.GET("/:paymentId", payments.GetPaymentHandler(paymentRepo))
	apiPayments.DELETE("/:paymentId", payments.DeletePaymentHandler(paymentRepo))

	apiReviews := api.Group("/Review")
	apiReviews.GET("", reviews.ListReviewsHandler(reviewRepo))
	apiReviews.POST("", reviews.CreateReviewHandler(reviewRepo))
	apiReviews.PUT("", reviews.UpdateReviewHandler(reviewRepo))
	apiReviews.GET("/car/:carId", reviews.CarReviewsHandler(reviewRepo))
	apiReviews.GET("/:reviewId", reviews.GetReviewHandler(reviewRepo))
	apiReviews.DELETE("/:reviewId", reviews.DeleteReviewHandler(reviewRepo))

	apiReports := api.Group("/AdminReport")
	apiReports.GET("", reports.ListReportsHandler(reportRepo))
	apiReports.POST("", reports.CreateReportHandler(reportRepo))
	apiReports.POST("/generate", reports.GenerateReportHandler(reportRepo, reservationRepo))
	apiReports.GET("/:reportId", reports.GetReportHandler(reportRepo))
	apiReports.PUT("/:reportId", reports.UpdateReportHandler(reportRepo))
	apiReports.DELETE("/:reportId", reports.DeleteReportHandler(reportRepo))

	apiResets := api.Group("/PasswordReset")
	apiResets.GET("", resets.ListResetsHandler(resetRepo))
	apiResets.GET("/:resetId", resets.GetResetHandler(resetRepo))
	apiResets.DELETE("/:resetId", resets.DeleteResetHandler(resetRepo))
}
