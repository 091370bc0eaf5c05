package repository

import (
	"context"
	"fmt"

	"road-ready/internal/apperror"
	"road-ready/internal/database"
	"road-ready/internal/model"
)

const passwordResetColumns = `id, user_id, reset_token, expiration_date, is_used`

type PasswordResetRepository struct {
	db database.DB
}

func NewPasswordResetRepository(db database.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func scanPasswordReset(row scanner) (model.PasswordReset, error) {
	var p model.PasswordReset
	err := row.Scan(&p.ID, &p.UserID, &p.ResetToken, &p.ExpirationDate, &p.IsUsed)
	return p, err
}

func (r *PasswordResetRepository) GetAll(ctx context.Context) ([]model.PasswordReset, error) {
	out, err := list(ctx, r.db, "GetAllPasswordResets", scanPasswordReset,
		`SELECT `+passwordResetColumns+` FROM password_resets ORDER BY id`)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the password resets.")
	}
	return out, nil
}

func (r *PasswordResetRepository) GetByID(ctx context.Context, id int) (*model.PasswordReset, error) {
	p, err := scanPasswordReset(r.db.QueryRow(ctx,
		`SELECT `+passwordResetColumns+` FROM password_resets WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Password reset with ID %d not found.", id)
		}
		return nil, apperror.Internal(fmt.Errorf("GetPasswordResetByID: %w", err), "An error occurred while retrieving the password reset.")
	}
	return &p, nil
}

func (r *PasswordResetRepository) GetByToken(ctx context.Context, token string) (*model.PasswordReset, error) {
	p, err := scanPasswordReset(r.db.QueryRow(ctx,
		`SELECT `+passwordResetColumns+` FROM password_resets WHERE reset_token = $1`, token))
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Password reset token not found.")
		}
		return nil, apperror.Internal(fmt.Errorf("GetPasswordResetByToken: %w", err), "An error occurred while retrieving the password reset.")
	}
	return &p, nil
}

func (r *PasswordResetRepository) Add(ctx context.Context, p *model.PasswordReset) error {
	if p == nil || p.UserID == 0 || p.ResetToken == "" {
		return apperror.Validation("Password reset details cannot be null.")
	}
	dup, err := exists(ctx, r.db, "AddPasswordReset",
		`SELECT EXISTS(SELECT 1 FROM password_resets WHERE reset_token = $1)`, p.ResetToken)
	if err != nil {
		return apperror.Internal(err, "An error occurred while adding the password reset.")
	}
	if dup {
		return apperror.Duplicate("A password reset with the same token already exists.")
	}
	if err := r.db.QueryRow(ctx,
		`INSERT INTO password_resets (user_id, reset_token, expiration_date, is_used)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.UserID,
		p.ResetToken,
		p.ExpirationDate,
		p.IsUsed,
	).Scan(&p.ID); err != nil {
		return apperror.Internal(fmt.Errorf("AddPasswordReset: %w", err), "An error occurred while adding the password reset.")
	}
	return nil
}

func (r *PasswordResetRepository) Update(ctx context.Context, p *model.PasswordReset) error {
	if p == nil {
		return apperror.Validation("Updated password reset details cannot be null.")
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE password_resets SET user_id = $1, reset_token = $2, expiration_date = $3, is_used = $4
		 WHERE id = $5`,
		p.UserID,
		p.ResetToken,
		p.ExpirationDate,
		p.IsUsed,
		p.ID,
	)
	if err != nil {
		return apperror.Internal(fmt.Errorf("UpdatePasswordReset: %w", err), "An error occurred while updating the password reset.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Password reset with ID %d not found.", p.ID)
	}
	return nil
}

// MarkUsed 將重設 token 標記為已使用
func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `UPDATE password_resets SET is_used = TRUE WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("MarkPasswordResetUsed: %w", err), "An error occurred while updating the password reset.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Password reset with ID %d not found.", id)
	}
	return nil
}

func (r *PasswordResetRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM password_resets WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("DeletePasswordReset: %w", err), "An error occurred while deleting the password reset.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Password reset with ID %d not found.", id)
	}
	return nil
}
