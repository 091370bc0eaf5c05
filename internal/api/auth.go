// File: internal/api/auth.go
package api

import "time"

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100" example:"Alice"`
	LastName    string `json:"lastName" validate:"required,max=100" example:"Wong"`
	Email       string `json:"email" validate:"required,email,max=200" example:"alice@example.com"`
	Password    string `json:"password" validate:"required,min=6,max=100" example:"Secret123!"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=20" example:"0912345678"`
	Role        string `json:"role" validate:"required,oneof=User Host" example:"User"`
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOi..."`
	ExpiresAt time.Time `json:"expiresAt" example:"2025-05-09T15:04:05Z"`
}

// swagger:model api.ForgotPasswordRequest
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
}

// swagger:model api.ResetPasswordRequest
type ResetPasswordRequest struct {
	ResetToken      string `json:"resetToken" validate:"required" example:"5f0c7c1e-8d0f-4a5e-9a57-0b0e3b6e2f41"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=100" example:"NewSecret123!"`
	ConfirmPassword string `json:"confirmPassword" validate:"required" example:"NewSecret123!"`
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Password has been reset successfully."`
}
