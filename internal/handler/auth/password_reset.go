// File: internal/handler/auth/password_reset.go
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/cache"
	"road-ready/internal/handler"
	"road-ready/internal/mailer"
	"road-ready/internal/model"

	"github.com/labstack/echo/v4"
)

const throttleKeyPrefix = "pwreset:"

// ResetOptions 密碼重設的時效設定
type ResetOptions struct {
	TokenTTL time.Duration
	Throttle time.Duration
}

// ForgotPasswordHandler 產生重設 token 並寄信
// @Summary     Forgot password
// @Description 同一 Email 在節流時間內只能申請一次；token 8 小時內有效
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.ForgotPasswordRequest true "Email"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} apperror.Response
// @Failure     404  {object} apperror.Response
// @Failure     429  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Router      /Auth/forgot-password [post]
func ForgotPasswordHandler(users UserStore, resets ResetStore, cch cache.Cache, m mailer.Mailer, opts ResetOptions) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ForgotPasswordRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		ctx := c.Request().Context()
		email := strings.ToLower(req.Email)

		first, err := cch.SetNX(ctx, throttleKeyPrefix+email, 1, opts.Throttle).Result()
		if err != nil {
			// Redis 不可用時不擋請求
			c.Logger().Warnf("password reset throttle unavailable: %v", err)
		} else if !first {
			return handler.Respond(c, apperror.RateLimited("A reset email was sent recently. Please try again later."))
		}

		user, err := users.GetByEmail(ctx, email)
		if err != nil {
			return handler.Respond(c, err)
		}

		reset := &model.PasswordReset{
			UserID:         user.ID,
			ResetToken:     newResetToken(),
			ExpirationDate: timeNow().UTC().Add(opts.TokenTTL),
		}
		if err := resets.Add(ctx, reset); err != nil {
			return handler.Respond(c, err)
		}

		msg := mailer.Message{
			To:      user.Email,
			ToName:  strings.TrimSpace(user.FirstName + " " + user.LastName),
			Subject: "Password Reset Request",
			PlainText: fmt.Sprintf("Your password reset token is: %s\nIt expires at %s.",
				reset.ResetToken, reset.ExpirationDate.Format(time.RFC1123)),
		}
		if err := m.Send(ctx, msg); err != nil {
			return handler.Respond(c, apperror.Internal(err, "Failed to send the password reset email."))
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Password reset link has been sent to your email."})
	}
}

// ResetPasswordHandler 以重設 token 設定新密碼
// @Summary     Reset password
// @Description token 不存在、已使用或已過期回傳 400；新密碼與確認密碼需一致
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.ResetPasswordRequest true "重設資料"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} apperror.Response
// @Failure     500  {object} apperror.Response
// @Router      /Auth/reset-password [post]
func ResetPasswordHandler(users UserStore, resets ResetStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResetPasswordRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		if req.NewPassword != req.ConfirmPassword {
			return handler.Respond(c, apperror.Validation("Passwords do not match."))
		}
		ctx := c.Request().Context()

		reset, err := resets.GetByToken(ctx, req.ResetToken)
		if err != nil {
			if apperror.IsNotFound(err) {
				return handler.Respond(c, apperror.Validation("Invalid or expired reset token."))
			}
			return handler.Respond(c, err)
		}
		if reset.IsUsed || reset.Expired(timeNow()) {
			return handler.Respond(c, apperror.Validation("Invalid or expired reset token."))
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return handler.Respond(c, apperror.Internal(err, "Failed to hash password."))
		}
		// 兩次寫入沒有包在同一個交易內
		if err := users.UpdatePassword(ctx, reset.UserID, hash); err != nil {
			return handler.Respond(c, err)
		}
		if err := resets.MarkUsed(ctx, reset.ID); err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Password has been reset successfully."})
	}
}
