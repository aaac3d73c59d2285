package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is read once from the environment at startup.
type Config struct {
	Env      string
	Port     string
	LogLevel string

	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	JWT JWTConfig

	// Password reset links point here; the token is appended as ?token=.
	ResetPasswordURL string

	// Redis backs the response cache and the notification broker. Both fall
	// back to in-process implementations when RedisAddr is empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Rate limit for public intake endpoints, per client IP.
	RateLimitRPS   float64
	RateLimitBurst int

	// Zero leaves pageSize unbounded.
	MaxPageSize int

	CORSAllowedOrigin string
	ShutdownTimeout   time.Duration
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnvString("APP_ENV", EnvDevelopment),
		Port:     getEnvString("PORT", "8080"),
		LogLevel: getEnvString("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnvString("DB_HOST", "localhost"),
		DBPort:      getEnvString("DB_PORT", "5432"),
		DBUser:      getEnvString("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnvString("DB_NAME", "travel_gateway"),
		DBSSLMode:   getEnvString("DB_SSLMODE", "disable"),

		ResetPasswordURL: getEnvString("RESET_PASSWORD_URL", "http://localhost:3000/reset-password"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 1),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),

		MaxPageSize: getEnvInt("MAX_PAGE_SIZE", 0),

		CORSAllowedOrigin: getEnvString("CORS_ALLOWED_ORIGIN", "*"),
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	jwtCfg, err := loadJWT(cfg.Env)
	if err != nil {
		return nil, err
	}
	cfg.JWT = jwtCfg

	if cfg.MaxPageSize < 0 {
		return nil, fmt.Errorf("MAX_PAGE_SIZE must not be negative, got %d", cfg.MaxPageSize)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// DSN returns the postgres connection string. DATABASE_URL wins over the
// individual DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
