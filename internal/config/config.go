package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	APIBasePath  string
	CORSOrigins  []string

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	// MigrationsDir, when set, is applied with golang-migrate at startup
	MigrationsDir string

	// Redis configuration
	RedisEnabled  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CounterTTL    time.Duration

	// RabbitMQ configuration; an empty URL disables event publishing
	RabbitMQURL      string
	RabbitMQExchange string
	PublisherWorkers int

	// Sharing configuration
	ShareBaseURL string

	// Logging configuration
	LogLevel string
}

// defaults lists every key with its default value. Keys map one-to-one to
// environment variables.
var defaults = map[string]any{
	"SERVER_PORT":            "8080",
	"HTTP_READ_TIMEOUT":      10 * time.Second,
	"HTTP_WRITE_TIMEOUT":     30 * time.Second,
	"HTTP_IDLE_TIMEOUT":      120 * time.Second,
	"API_BASE_PATH":          "",
	"CORS_ALLOWED_ORIGINS":   "*",
	"DB_HOST":                "localhost",
	"DB_PORT":                5432,
	"DB_USER":                "postgres",
	"DB_PASSWORD":            "postgres",
	"DB_NAME":                "blog",
	"DB_SSL_MODE":            "disable",
	"DB_MAX_CONNS":           25,
	"DB_MIN_CONNS":           5,
	"DB_MAX_CONN_LIFETIME":   time.Hour,
	"DB_MAX_CONN_IDLE_TIME":  30 * time.Minute,
	"DB_HEALTH_CHECK_PERIOD": time.Minute,
	"MIGRATIONS_DIR":         "",
	"REDIS_ENABLED":          true,
	"REDIS_ADDR":             "localhost:6379",
	"REDIS_PASSWORD":         "",
	"REDIS_DB":               0,
	"COUNTER_CACHE_TTL":      15 * time.Minute,
	"RABBITMQ_URL":           "",
	"RABBITMQ_EXCHANGE":      "blog.engagement",
	"PUBLISHER_WORKERS":      2,
	"SHARE_BASE_URL":         "",
	"LOG_LEVEL":              "info",
}

// Load loads configuration from environment variables and, when CONFIG_FILE
// points to a YAML file, from that file. Environment variables win.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		ServerPort:          v.GetString("SERVER_PORT"),
		ReadTimeout:         v.GetDuration("HTTP_READ_TIMEOUT"),
		WriteTimeout:        v.GetDuration("HTTP_WRITE_TIMEOUT"),
		IdleTimeout:         v.GetDuration("HTTP_IDLE_TIMEOUT"),
		APIBasePath:         normalizeBasePath(v.GetString("API_BASE_PATH")),
		CORSOrigins:         splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DBHost:              v.GetString("DB_HOST"),
		DBPort:              v.GetInt("DB_PORT"),
		DBUser:              v.GetString("DB_USER"),
		DBPassword:          v.GetString("DB_PASSWORD"),
		DBName:              v.GetString("DB_NAME"),
		DBSSLMode:           v.GetString("DB_SSL_MODE"),
		DBMaxConns:          v.GetInt32("DB_MAX_CONNS"),
		DBMinConns:          v.GetInt32("DB_MIN_CONNS"),
		DBMaxConnLifetime:   v.GetDuration("DB_MAX_CONN_LIFETIME"),
		DBMaxConnIdleTime:   v.GetDuration("DB_MAX_CONN_IDLE_TIME"),
		DBHealthCheckPeriod: v.GetDuration("DB_HEALTH_CHECK_PERIOD"),
		MigrationsDir:       v.GetString("MIGRATIONS_DIR"),
		RedisEnabled:        v.GetBool("REDIS_ENABLED"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		RedisPassword:       v.GetString("REDIS_PASSWORD"),
		RedisDB:             v.GetInt("REDIS_DB"),
		CounterTTL:          v.GetDuration("COUNTER_CACHE_TTL"),
		RabbitMQURL:         v.GetString("RABBITMQ_URL"),
		RabbitMQExchange:    v.GetString("RABBITMQ_EXCHANGE"),
		PublisherWorkers:    v.GetInt("PUBLISHER_WORKERS"),
		ShareBaseURL:        strings.TrimRight(v.GetString("SHARE_BASE_URL"), "/"),
		LogLevel:            v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	if c.RedisEnabled && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when REDIS_ENABLED is true")
	}
	if c.RabbitMQURL != "" && c.RabbitMQExchange == "" {
		return fmt.Errorf("RABBITMQ_EXCHANGE is required when RABBITMQ_URL is set")
	}
	if c.PublisherWorkers < 1 {
		return fmt.Errorf("PUBLISHER_WORKERS must be at least 1")
	}
	return nil
}

// normalizeBasePath turns "api/v1/" into "/api/v1" and "/" into "".
func normalizeBasePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return ""
	}
	return "/" + path
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
