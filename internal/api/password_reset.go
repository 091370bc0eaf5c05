// File: internal/api/password_reset.go
package api

import (
	"time"

	"road-ready/internal/model"
)

// swagger:model api.PasswordResetDTO
type PasswordResetDTO struct {
	ResetID        int       `json:"resetId" example:"1"`
	UserID         int       `json:"userId" example:"1"`
	ResetToken     string    `json:"resetToken" example:"5f0c7c1e-8d0f-4a5e-9a57-0b0e3b6e2f41"`
	ExpirationDate time.Time `json:"expirationDate" example:"2025-05-09T23:04:05Z"`
	IsUsed         bool      `json:"isUsed" example:"false"`
}

func ToPasswordResetDTO(p model.PasswordReset) PasswordResetDTO {
	return PasswordResetDTO{
		ResetID:        p.ID,
		UserID:         p.UserID,
		ResetToken:     p.ResetToken,
		ExpirationDate: p.ExpirationDate,
		IsUsed:         p.IsUsed,
	}
}

func ToPasswordResetDTOs(ps []model.PasswordReset) []PasswordResetDTO {
	out := make([]PasswordResetDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToPasswordResetDTO(p))
	}
	return out
}

func PasswordResetDTOToModel(d PasswordResetDTO) model.PasswordReset {
	return model.PasswordReset{
		ID:             d.ResetID,
		UserID:         d.UserID,
		ResetToken:     d.ResetToken,
		ExpirationDate: d.ExpirationDate,
		IsUsed:         d.IsUsed,
	}
}
