// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	pkgconfig "gonotes/pkg/config"
	"gonotes/pkg/logger"
)

// ServiceName - имя сервиса в логах.
const ServiceName = "notes"

// EnvConfigFile задает путь к .env-файлу.
const EnvConfigFile = "NOTES_CONFIG_FILE"

// DefaultConfigFile - путь к .env-файлу по умолчанию.
const DefaultConfigFile = "deploy/.env"

// Константы ошибок и сообщений для конфигурации.
const (
	LogConfigLoaded     = "notes service configuration"
	ErrFailedLoadConfig = "failed to load configuration"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	Redis      RedisConfig      `yaml:"redis"`
	Logging    LoggingConfig    `yaml:"logging"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

// MigrationsConfig указывает каталог со схемой таблицы notes.
type MigrationsConfig struct {
	Dir string `yaml:"dir" env:"NOTES_MIGRATIONS_DIR" env-default:"migrations/notes"`
}

// Load загружает конфигурацию из .env-файла и переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	path := os.Getenv(EnvConfigFile)
	if path == "" {
		path = DefaultConfigFile
	}

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.String("migrations_dir", cfg.Migrations.Dir))

	return cfg, nil
}
