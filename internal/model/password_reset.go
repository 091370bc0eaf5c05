// File: internal/model/password_reset.go
package model

import "time"

type PasswordReset struct {
	ID             int       `db:"id" json:"id"`
	UserID         int       `db:"user_id" json:"user_id"`
	ResetToken     string    `db:"reset_token" json:"-"`
	ExpirationDate time.Time `db:"expiration_date" json:"expiration_date"`
	IsUsed         bool      `db:"is_used" json:"is_used"`
}

// Expired 回報重設 token 在 now 時是否已過期
func (p *PasswordReset) Expired(now time.Time) bool {
	return !now.Before(p.ExpirationDate)
}
