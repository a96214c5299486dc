package app

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/inkwelldev/inkwell/pkg/cryptox"
	"github.com/inkwelldev/inkwell/pkg/jwtx"
)

type Config struct {
	JWTSecret string // Required: HS256 signing secret for both token kinds
	Issuer    string // Optional: issuer claim for tokens (default: inkwell)

	AccessTokenTTL  time.Duration // Optional: access token lifetime (default: 15m)
	RefreshTokenTTL time.Duration // Optional: refresh token lifetime (default: 168h)
	BcryptCost      int           // Optional: bcrypt cost factor (default: 12)

	DatabaseFile string   // Optional: path to SQLite database file (default: ./blog.db)
	CORSOrigins  []string // Optional: comma-separated allowed origins (default: *)
	RateLimiting bool     // Optional: per-endpoint rate limiting (default: on)

	// Optional first-run admin seed; applied only when all three are set
	// and the user table is empty. Registration never mints admins.
	AdminUsername string
	AdminEmail    string
	AdminPassword string

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// ErrMissingSecret is returned when no signing secret is configured; the
// service refuses to fall back to a baked-in default.
var ErrMissingSecret = errors.New("app: BLOG_JWT_SECRET must be set")

// LoadConfig reads configuration from the environment, after loading a .env
// file when one is present. Only the signing secret is mandatory.
func LoadConfig() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		JWTSecret:           os.Getenv("BLOG_JWT_SECRET"),
		Issuer:              getEnvOrDefault("BLOG_ISSUER", "inkwell"),
		AccessTokenTTL:      getEnvDurationOrDefault("BLOG_ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL:     getEnvDurationOrDefault("BLOG_REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),
		BcryptCost:          getEnvIntOrDefault("BLOG_BCRYPT_COST", cryptox.DefaultCost),
		DatabaseFile:        getEnvOrDefault("BLOG_DATABASE_FILE", "blog.db"),
		CORSOrigins:         splitOrigins(getEnvOrDefault("BLOG_CORS_ORIGINS", "*")),
		RateLimiting:        getEnvBoolOrDefault("BLOG_RATE_LIMITING", true),
		AdminUsername:       os.Getenv("BLOG_ADMIN_USERNAME"),
		AdminEmail:          os.Getenv("BLOG_ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("BLOG_ADMIN_PASSWORD"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingSecret
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Duration syntax first ("15m", "1h30m"), then bare seconds ("900").
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
