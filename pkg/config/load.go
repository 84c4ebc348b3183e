// Package config предоставляет загрузку конфигурации из .env-файла и переменных окружения.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgConfigFileNotFound      = "configuration file not found, using environment only"
	msgConfigurationLoaded     = "configuration loaded successfully"
	msgFailedLoadConfiguration = "failed to load configuration"

	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
)

// Load заполняет структуру T из файла envPath (если он существует)
// и переменных окружения. Переменные окружения имеют приоритет.
func Load[T any](ctx context.Context, serviceName, envPath string) (*T, error) {
	log := logger.Log(ctx)

	log.Info(ctx, msgLoadingConfiguration,
		zap.String(attrService, serviceName),
		zap.String(attrPath, envPath))

	var cfg T
	var err error

	if envPath != "" && fileExists(envPath) {
		err = cleanenv.ReadConfig(envPath, &cfg)
	} else {
		log.Debug(ctx, msgConfigFileNotFound, zap.String(attrPath, envPath))
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		log.Error(ctx, msgFailedLoadConfiguration,
			zap.String(attrService, serviceName),
			zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded, zap.String(attrService, serviceName))

	return &cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
