package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var _ Cache = (*redis.Client)(nil)

func restore() {
	newClient = func(o *redis.Options) Cache { return redis.NewClient(o) }
}

func TestNewRedisClient(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		var opts *redis.Options
		var hasDeadline bool
		stub := &FakeCache{PingFn: func(ctx context.Context) *redis.StatusCmd {
			_, hasDeadline = ctx.Deadline()
			return redis.NewStatusResult("PONG", nil)
		}}
		newClient = func(o *redis.Options) Cache {
			opts = o
			return stub
		}

		c, err := NewRedisClient(context.Background(), "127.0.0.1:6379", "secret", 1)
		require.NoError(t, err)
		require.Same(t, stub, c)
		require.Equal(t, "127.0.0.1:6379", opts.Addr)
		require.Equal(t, "secret", opts.Password)
		require.Equal(t, 1, opts.DB)
		require.True(t, hasDeadline)
	})

	t.Run("ping fails", func(t *testing.T) {
		t.Cleanup(restore)
		closed := false
		newClient = func(*redis.Options) Cache {
			return &FakeCache{
				PingFn:  func(context.Context) *redis.StatusCmd { return redis.NewStatusResult("", errors.New("refused")) },
				CloseFn: func() error { closed = true; return nil },
			}
		}

		c, err := NewRedisClient(context.Background(), "redis:6379", "", 0)
		require.ErrorContains(t, err, "redis:6379: refused")
		require.Nil(t, c)
		require.True(t, closed)
	})
}
