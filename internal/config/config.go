package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App        AppConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	Cloudinary CloudinaryConfig
	Uploads    UploadsConfig
	CORS       CORSConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
//
// Login and signup tokens intentionally carry different lifetimes; the
// asymmetry matches the deployed frontend's expectations and is left as-is.
type AuthConfig struct {
	JWTSecret             string
	LoginTokenTTLMinutes  int
	SignupTokenTTLMinutes int
	BcryptCost            int
}

// CloudinaryConfig holds credentials for the remote media host.
type CloudinaryConfig struct {
	CloudName      string
	APIKey         string
	APISecret      string
	TimeoutSeconds int
}

// UploadsConfig controls local staging of incoming files.
type UploadsConfig struct {
	Dir              string
	MaxFileSizeMB    int
	SweepIntervalMin int
}

// CORSConfig lists origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	maxConns := int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10))
	minConns := int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2))
	runMigrations := getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true)
	connMaxIdle := int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30))
	connMaxLife := int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300))

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "clinic-backend"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "5000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       maxConns,
			MinConns:       minConns,
			RunMigrations:  runMigrations,
			ConnMaxIdleSec: connMaxIdle,
			ConnMaxLifeSec: connMaxLife,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("JWT_SECRET", "dev-secret"),
			LoginTokenTTLMinutes:  getEnvAsInt("AUTH_LOGIN_TOKEN_TTL_MINUTES", 120),
			SignupTokenTTLMinutes: getEnvAsInt("AUTH_SIGNUP_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 10),
		},
		Cloudinary: CloudinaryConfig{
			CloudName:      os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:         os.Getenv("CLOUDINARY_API_KEY"),
			APISecret:      os.Getenv("CLOUDINARY_API_SECRET"),
			TimeoutSeconds: getEnvAsInt("CLOUDINARY_TIMEOUT_SECONDS", 15),
		},
		Uploads: UploadsConfig{
			Dir:              getEnv("UPLOADS_DIR", "uploads"),
			MaxFileSizeMB:    getEnvAsInt("UPLOADS_MAX_FILE_SIZE_MB", 5),
			SweepIntervalMin: getEnvAsInt("ORPHAN_SWEEP_INTERVAL_MINUTES", 10),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the per-call deadline for media host requests.
func (c CloudinaryConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoginTokenTTL returns the lifetime of tokens issued at login.
func (a AuthConfig) LoginTokenTTL() time.Duration {
	return time.Duration(a.LoginTokenTTLMinutes) * time.Minute
}

// SignupTokenTTL returns the lifetime of tokens issued at signup.
func (a AuthConfig) SignupTokenTTL() time.Duration {
	return time.Duration(a.SignupTokenTTLMinutes) * time.Minute
}

// SweepInterval returns how often the orphan reconciler runs.
func (u UploadsConfig) SweepInterval() time.Duration {
	if u.SweepIntervalMin <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(u.SweepIntervalMin) * time.Minute
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
