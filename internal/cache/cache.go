package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 為服務用到的 Redis 指令子集，*redis.Client 直接實作
// 目前只存放忘記密碼的節流鍵與健康檢查，不快取資料表內容
type Cache interface {
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// FakeCache 測試用；未設定 SetNXFn 時以記憶體 map 模擬 SETNX
// 寫入的值與 TTL 記錄在 Values/TTLs，不會真的過期
type FakeCache struct {
	SetNXFn func(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd
	PingFn  func(ctx context.Context) *redis.StatusCmd
	CloseFn func() error

	mu     sync.Mutex
	Values map[string]string
	TTLs   map[string]time.Duration
}

func (f *FakeCache) SetNX(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
	if f.SetNXFn != nil {
		return f.SetNXFn(ctx, key, value, ttl)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.Values[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	if f.Values == nil {
		f.Values = map[string]string{}
		f.TTLs = map[string]time.Duration{}
	}
	f.Values[key] = fmt.Sprint(value)
	f.TTLs[key] = ttl
	return redis.NewBoolResult(true, nil)
}

// Ping 未設定 PingFn 時回傳 PONG
func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return redis.NewStatusResult("PONG", nil)
}

func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
