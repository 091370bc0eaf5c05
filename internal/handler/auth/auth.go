// File: internal/handler/auth/auth.go
package auth

import (
	"context"
	"time"

	"road-ready/internal/model"
	"road-ready/internal/service"

	"github.com/google/uuid"
)

// UserStore 為 auth 用到的 UserRepository 方法
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Add(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, id int, password string) error
}

// ResetStore 為 auth 用到的 PasswordResetRepository 方法
type ResetStore interface {
	Add(ctx context.Context, p *model.PasswordReset) error
	GetByToken(ctx context.Context, token string) (*model.PasswordReset, error)
	MarkUsed(ctx context.Context, id int) error
}

type TokenIssuer interface {
	Issue(userID int, role model.Role) (string, time.Time, error)
}

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	newResetToken    = uuid.NewString
	timeNow          = time.Now
)
