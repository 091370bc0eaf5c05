package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDBUnexpectedCalls(t *testing.T) {
	db := &FakeDB{}
	ctx := context.Background()

	_, err := db.Exec(ctx, "DELETE FROM cars")
	require.ErrorIs(t, err, ErrUnexpectedCall)
	require.ErrorContains(t, err, "DELETE FROM cars")
	_, err = db.Query(ctx, "SELECT 1")
	require.ErrorIs(t, err, ErrUnexpectedCall)
	var id int
	require.ErrorIs(t, db.QueryRow(ctx, "SELECT id").Scan(&id), ErrUnexpectedCall)
	require.ErrorIs(t, db.Ping(ctx), ErrUnexpectedCall)

	db.Close()
	require.True(t, db.Closed)
}

func TestFakeDBForwardsArgs(t *testing.T) {
	var gotSQL string
	var gotArgs []any
	db := &FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			gotSQL, gotArgs = sql, args
			return Tag("UPDATE", 1), nil
		},
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &FakeRows{Data: [][]any{{1}}}, nil
		},
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return FakeRow{Values: []any{42}}
		},
		PingFn: func(context.Context) error { return errors.New("down") },
	}
	ctx := context.Background()

	tag, err := db.Exec(ctx, "UPDATE cars SET make=$1", "Toyota")
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected())
	require.Equal(t, "UPDATE cars SET make=$1", gotSQL)
	require.Equal(t, []any{"Toyota"}, gotArgs)

	rows, err := db.Query(ctx, "SELECT id FROM cars")
	require.NoError(t, err)
	require.True(t, rows.Next())

	var id int
	require.NoError(t, db.QueryRow(ctx, "SELECT id").Scan(&id))
	require.Equal(t, 42, id)
	require.EqualError(t, db.Ping(ctx), "down")
}

func TestFakeRowScan(t *testing.T) {
	type role string
	var (
		id    int
		name  string
		r     role
		price float64
		at    time.Time
		ok    bool
	)
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	row := FakeRow{Values: []any{7, "bob", "Admin", 12.5, now, nil}}
	require.NoError(t, row.Scan(&id, &name, &r, &price, &at, &ok))
	require.Equal(t, 7, id)
	require.Equal(t, "bob", name)
	require.Equal(t, role("Admin"), r)
	require.Equal(t, 12.5, price)
	require.Equal(t, now, at)
	require.False(t, ok)

	require.Error(t, FakeRow{Values: []any{1}}.Scan(&id, &name))
	require.Error(t, FakeRow{Values: []any{1}}.Scan(id))
	require.Error(t, FakeRow{Values: []any{now}}.Scan(&id))
	require.ErrorIs(t, FakeRow{Err: pgx.ErrNoRows}.Scan(&id), pgx.ErrNoRows)
}

func TestFakeRows(t *testing.T) {
	rows := &FakeRows{Data: [][]any{{1}, {2}}}
	var got []int
	for rows.Next() {
		var v int
		require.NoError(t, rows.Scan(&v))
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2}, got)
	require.NoError(t, rows.Err())
	rows.Close()
	require.True(t, rows.Closed())
	require.False(t, rows.Next())

	bad := &FakeRows{Data: [][]any{{1}}, ScanErr: errors.New("scan")}
	require.True(t, bad.Next())
	var v int
	require.Error(t, bad.Scan(&v))

	empty := &FakeRows{}
	require.Error(t, empty.Scan(&v))
	_, err := empty.Values()
	require.Error(t, err)
}

func TestTag(t *testing.T) {
	require.Equal(t, int64(1), Tag("UPDATE", 1).RowsAffected())
	require.Equal(t, int64(0), Tag("DELETE", 0).RowsAffected())
}
