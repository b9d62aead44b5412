// 환경변수 기반 설정 로딩
//
// .env 파일이 있으면 먼저 읽고, 실제 환경변수가 우선합니다.
//
// 환경변수:
//   - PORT (default: 8080)
//   - BACKEND_URL: 의료 어시스턴트 백엔드 URL (default: http://localhost:8000)
//   - BACKEND_TIMEOUT (default: 120s)
//   - LOG_LEVEL, LOG_FILE, LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS, APP_ENV
//   - SESSION_SECRET, SESSION_TTL (default: 2h), SESSION_COOKIE_SECURE
//   - CORS_ALLOWED_ORIGINS (default: *)

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultBackendURL = "http://localhost:8000"

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Log     LogConfig
	Session SessionConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Production bool
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieSecure bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Addr returns the listen address for gin.
func (c Config) Addr() string {
	return ":" + c.Server.Port
}

func Load() Config {
	// .env는 선택 사항
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:    getenv("PORT", "8080"),
			GinMode: os.Getenv("GIN_MODE"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getenv("BACKEND_URL", getenv("REACT_APP_API_URL", defaultBackendURL)), "/"),
			Timeout: getDuration("BACKEND_TIMEOUT", 120*time.Second),
		},
		Log: LogConfig{
			Level:      getenv("LOG_LEVEL", "info"),
			File:       os.Getenv("LOG_FILE"),
			MaxSizeMB:  getInt("LOG_MAX_SIZE_MB", 10),
			MaxBackups: getInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getInt("LOG_MAX_AGE_DAYS", 30),
			Production: strings.EqualFold(getenv("APP_ENV", "development"), "production"),
		},
		Session: SessionConfig{
			Secret:       os.Getenv("SESSION_SECRET"),
			TTL:          getDuration("SESSION_TTL", 2*time.Hour),
			CookieSecure: getBool("SESSION_COOKIE_SECURE", false),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
