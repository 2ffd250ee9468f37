package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/random"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig contains HTTP listener settings
type ServerConfig struct {
	Port            int           `yaml:"port" env:"PORT" env-default:"8080"`
	BodyLimit       string        `yaml:"body_limit" env:"BODY_LIMIT" env-default:"10M"`
	CORSOrigins     []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"*"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	MaxConns int32  `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"10"`
}

// AuthConfig contains token and password hashing settings
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	JWTExpiresIn    time.Duration `yaml:"jwt_expires_in" env:"JWT_EXPIRES_IN" env-default:"1h"`
	SaltRounds      int           `yaml:"salt_rounds" env:"SALT_ROUNDS" env-default:"10"`
	RateLimit       int           `yaml:"rate_limit" env:"AUTH_RATE_LIMIT" env-default:"20"`
	RateLimitWindow time.Duration `yaml:"rate_limit_window" env:"AUTH_RATE_WINDOW" env-default:"1m"`
}

// RedisConfig is optional; an empty address selects the in-memory rate limiter
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// StorageConfig holds MinIO settings; uploads are disabled without an endpoint
type StorageConfig struct {
	Endpoint  string        `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKey string        `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string        `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	UseSSL    bool          `yaml:"use_ssl" env:"MINIO_USE_SSL" env-default:"false"`
	Bucket    string        `yaml:"bucket" env:"MINIO_BUCKET" env-default:"product-images"`
	URLExpiry time.Duration `yaml:"url_expiry" env:"MINIO_URL_EXPIRY" env-default:"24h"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Load reads configuration from the optional YAML file at path, then the
// environment. A .env file in the working directory is applied first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges cleanenv cannot express
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Auth.SaltRounds < 4 || c.Auth.SaltRounds > 31 {
		return fmt.Errorf("SALT_ROUNDS must be between 4 and 31, got %d", c.Auth.SaltRounds)
	}
	if c.Auth.JWTExpiresIn <= 0 {
		return errors.New("JWT_EXPIRES_IN must be positive")
	}
	if c.Auth.RateLimit < 0 {
		return errors.New("AUTH_RATE_LIMIT cannot be negative")
	}
	if c.Storage.Endpoint != "" && (c.Storage.AccessKey == "" || c.Storage.SecretKey == "") {
		return errors.New("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when MINIO_ENDPOINT is set")
	}
	return nil
}

// EnsureJWTSecret fills in a random signing secret when none is configured and
// reports whether it did so.
func (a *AuthConfig) EnsureJWTSecret() bool {
	if a.JWTSecret != "" {
		return false
	}
	a.JWTSecret = random.String(32)
	return true
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}
