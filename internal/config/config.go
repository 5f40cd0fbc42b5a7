package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is the public deployment of the card API.
const DefaultAPIBaseURL = "https://monkfish-app-z9uza.ondigitalocean.app/bcard2"

const (
	defaultAddr       = ":8080"
	defaultAPITimeout = 10 * time.Second
	defaultCacheTTL   = 30 * time.Second
	minSecretLength   = 16
)

// Provider exposes configuration through getters so handlers and tests can
// depend on an interface instead of the concrete struct.
type Provider interface {
	GetAddr() string
	GetAppEnv() string
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	GetSessionSecret() string
	GetCacheBackend() string
	GetCacheTTL() time.Duration
	GetRedisURL() string
	IsProduction() bool
}

// Config holds all configuration for the application.
type Config struct {
	Addr          string
	AppEnv        string
	APIBaseURL    string
	APITimeout    time.Duration
	SessionSecret string
	CacheBackend  string
	CacheTTL      time.Duration
	RedisURL      string
}

// New loads configuration from an optional .env file and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env files.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("APP_ADDR", defaultAddr),
		AppEnv:        getEnv("APP_ENV", "development"),
		APIBaseURL:    strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CacheBackend:  getEnv("CACHE_BACKEND", "memory"),
		RedisURL:      os.Getenv("REDIS_URL"),
	}

	var err error
	if cfg.APITimeout, err = getDuration("API_TIMEOUT", defaultAPITimeout); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", defaultCacheTTL); err != nil {
		return nil, err
	}

	if len(cfg.SessionSecret) < minSecretLength {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d characters", minSecretLength)
	}
	switch cfg.CacheBackend {
	case "memory":
	case "redis":
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required when CACHE_BACKEND is redis")
		}
	default:
		return nil, fmt.Errorf("unknown CACHE_BACKEND: %s", cfg.CacheBackend)
	}

	return cfg, nil
}

func (c *Config) GetAddr() string              { return c.Addr }
func (c *Config) GetAppEnv() string            { return c.AppEnv }
func (c *Config) GetAPIBaseURL() string        { return c.APIBaseURL }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetCacheBackend() string      { return c.CacheBackend }
func (c *Config) GetCacheTTL() time.Duration   { return c.CacheTTL }
func (c *Config) GetRedisURL() string          { return c.RedisURL }
func (c *Config) IsProduction() bool           { return c.AppEnv == "production" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration (e.g. 10s): %w", key, err)
	}
	return d, nil
}
