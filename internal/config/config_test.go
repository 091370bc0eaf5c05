package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/roadready")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("JWT_SECRET", secret)
}

func TestLoadDefaults(t *testing.T) {
	loadDotEnv = func() error { return nil }
	t.Cleanup(func() { loadDotEnv = func() error { return godotenv.Load() } })
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, time.Hour, cfg.JWTTTL)
	require.Equal(t, 8*time.Hour, cfg.ResetTokenTTL)
	require.Equal(t, time.Minute, cfg.ResetThrottle)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, "road-ready", cfg.JWTIssuer)
}

func TestLoadOverrides(t *testing.T) {
	loadDotEnv = func() error { return nil }
	t.Cleanup(func() { loadDotEnv = func() error { return godotenv.Load() } })
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 30*time.Minute, cfg.JWTTTL)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadCollectsErrors(t *testing.T) {
	loadDotEnv = func() error { return nil }
	t.Cleanup(func() { loadDotEnv = func() error { return godotenv.Load() } })
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("JWT_SECRET", "short")
	t.Setenv("REDIS_DB", "x")
	t.Setenv("JWT_TTL", "-1h")

	cfg, err := Load()
	require.Error(t, err)
	require.Nil(t, cfg)
	msg := err.Error()
	require.Contains(t, msg, "DATABASE_URL")
	require.Contains(t, msg, "REDIS_ADDR")
	require.Contains(t, msg, "REDIS_DB")
	require.Contains(t, msg, "JWT_TTL")
	require.Contains(t, msg, "at least 32 bytes")
}

func TestLoadDotEnvErrors(t *testing.T) {
	t.Cleanup(func() { loadDotEnv = func() error { return godotenv.Load() } })
	setRequired(t)

	loadDotEnv = func() error { return &fs.PathError{Op: "open", Path: ".env", Err: fs.ErrNotExist} }
	_, err := Load()
	require.NoError(t, err)

	loadDotEnv = func() error { return errors.New("unexpected character") }
	cfg, err := Load()
	require.Nil(t, cfg)
	require.ErrorContains(t, err, ".env: unexpected character")
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	setRequired(t)
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// 沒有 .env
	_, err = Load()
	require.NoError(t, err)

	// 引號未結束的 .env
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MAIL_FROM=\"broken\n"), 0o600))
	_, err = Load()
	require.ErrorContains(t, err, ".env")
}
