package repository

import (
	"context"
	"fmt"

	"road-ready/internal/apperror"
	"road-ready/internal/database"
	"road-ready/internal/model"
)

const userColumns = `id, first_name, last_name, email, password, phone_number, role`

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row scanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.PhoneNumber, &u.Role)
	return u, err
}

func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	users, err := list(ctx, r.db, "GetAllUsers", scanUser,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the users.")
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("User with ID %d not found.", id)
		}
		return nil, apperror.Internal(fmt.Errorf("GetUserByID: %w", err), "An error occurred while retrieving the user.")
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("User with email %s not found.", email)
		}
		return nil, apperror.Internal(fmt.Errorf("GetUserByEmail: %w", err), "An error occurred while retrieving the user.")
	}
	return &u, nil
}

// Add 新增使用者並回填 ID；email 重複回傳 DuplicateResource
func (r *UserRepository) Add(ctx context.Context, u *model.User) error {
	if u == nil || u.Email == "" {
		return apperror.Validation("User details cannot be null.")
	}
	dup, err := exists(ctx, r.db, "AddUser",
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, u.Email)
	if err != nil {
		return apperror.Internal(err, "An error occurred while adding the user.")
	}
	if dup {
		return apperror.Duplicate("A user with email %s already exists.", u.Email)
	}
	if err := r.db.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, password, phone_number, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		u.PhoneNumber,
		u.Role,
	).Scan(&u.ID); err != nil {
		return apperror.Internal(fmt.Errorf("AddUser: %w", err), "An error occurred while adding the user.")
	}
	return nil
}

// Update 覆寫使用者資料（不含密碼，密碼走 UpdatePassword）
func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	if u == nil {
		return apperror.Validation("Updated user details cannot be null.")
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, email = $3, phone_number = $4, role = $5
		 WHERE id = $6`,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PhoneNumber,
		u.Role,
		u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Duplicate("A user with email %s already exists.", u.Email)
		}
		return apperror.Internal(fmt.Errorf("UpdateUser: %w", err), "An error occurred while updating the user.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User with ID %d not found.", u.ID)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, password string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password = $1 WHERE id = $2`, password, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("UpdateUserPassword: %w", err), "An error occurred while updating the password.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User with ID %d not found.", id)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("DeleteUser: %w", err), "An error occurred while deleting the user.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User with ID %d not found.", id)
	}
	return nil
}
