// Package repository 提供各資料表的 CRUD 存取，錯誤一律以 *apperror.Error 回傳
package repository

import (
	"context"
	"errors"
	"fmt"

	"road-ready/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// scanner 為 pgx.Row 與 pgx.Rows 共有的 Scan
type scanner interface {
	Scan(dest ...any) error
}

// list 執行查詢並以 scan 收集每一列
func list[T any](ctx context.Context, db database.DB, op string, scan func(scanner) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// exists 執行 SELECT EXISTS(...) 查詢
func exists(ctx context.Context, db database.DB, op string, sql string, args ...any) (bool, error) {
	var ok bool
	if err := db.QueryRow(ctx, sql, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation 判斷是否為 PostgreSQL unique_violation (23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
