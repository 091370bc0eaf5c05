// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 服務所需的全部設定，全部來自環境變數（可由 .env 載入）
type Config struct {
	Port         string
	DatabaseURL  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTTTL      time.Duration

	ResetTokenTTL time.Duration
	ResetThrottle time.Duration

	SendGridAPIKey string
	MailFrom       string
	MailFromName   string
}

var loadDotEnv = func() error { return godotenv.Load() }

// Load reads .env when present, then the process environment. Every missing
// or malformed variable is reported in a single error.
func Load() (*Config, error) {
	var errs []string
	// .env 不存在時忽略，格式錯誤則回報
	if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		errs = append(errs, fmt.Sprintf(".env: %v", err))
	}

	cfg := &Config{
		Port:         optional("PORT", "8080"),
		DatabaseURL:  required("DATABASE_URL", &errs),
		ReadTimeout:  optionalDuration("READ_TIMEOUT", 15*time.Second, &errs),
		WriteTimeout: optionalDuration("WRITE_TIMEOUT", 15*time.Second, &errs),
		CORSOrigins:  splitList(optional("CORS_ORIGINS", "http://localhost:3000")),

		RedisAddr:     required("REDIS_ADDR", &errs),
		RedisPassword: optional("REDIS_PASSWORD", ""),
		RedisDB:       optionalInt("REDIS_DB", 0, &errs),

		JWTSecret:   required("JWT_SECRET", &errs),
		JWTIssuer:   optional("JWT_ISSUER", "road-ready"),
		JWTAudience: optional("JWT_AUDIENCE", "road-ready-client"),
		JWTTTL:      optionalDuration("JWT_TTL", time.Hour, &errs),

		ResetTokenTTL: optionalDuration("RESET_TOKEN_TTL", 8*time.Hour, &errs),
		ResetThrottle: optionalDuration("RESET_THROTTLE", time.Minute, &errs),

		SendGridAPIKey: optional("SENDGRID_API_KEY", ""),
		MailFrom:       optional("MAIL_FROM", "no-reply@roadready.local"),
		MailFromName:   optional("MAIL_FROM_NAME", "RoadReady"),
	}

	if cfg.JWTSecret != "" && len(cfg.JWTSecret) < 32 {
		errs = append(errs, "JWT_SECRET must be at least 32 bytes")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}
	return cfg, nil
}

func required(key string, errs *[]string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		*errs = append(*errs, fmt.Sprintf("環境變數 %s 未設定", key))
		return ""
	}
	return v
}

func optional(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func optionalInt(key string, def int, errs *[]string) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("無效的 %s: %v", key, err))
		return def
	}
	return n
}

func optionalDuration(key string, def time.Duration, errs *[]string) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		*errs = append(*errs, fmt.Sprintf("無效的 %s: %q", key, v))
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
