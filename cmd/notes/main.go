// Package main реализует точку входа службы заметок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/cache"
	httpServer "gonotes/internal/notes/adapters/http"
	"gonotes/internal/notes/adapters/postgres"
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/config"
	"gonotes/internal/notes/db"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/db/redis"
	"gonotes/pkg/logger"
	"gonotes/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "note service started"
	LogServiceShutdownDone = "note service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing Redis connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitCache           = "initializing cache"
	LogCacheDisabled       = "notes cache disabled"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres, cfg.Migrations.Dir)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		var noteRepo repositories.NoteRepository = postgres.NewRepositoryFactory(database.Pool()).NoteRepository()

		hooks := []shutdown.Hook{
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
		}

		if cfg.Redis.Enabled {
			log.Info(ctx, LogInitCache)
			redisClient, err := redis.NewClient(ctx, cfg.Redis.ClientConfig())
			if err != nil {
				log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
				database.Close(ctx)
				exitCode = 1
				return
			}
			redisCache := cache.NewRedisCache(redisClient)
			noteRepo = cache.NewCachedNoteRepository(noteRepo, redisCache, cfg.Redis.TTL)
			hooks = append(hooks, func(ctx context.Context) error {
				log.Info(ctx, LogClosingCache)
				return redisCache.Close()
			})
		} else {
			log.Info(ctx, LogCacheDisabled)
		}

		log.Info(ctx, LogInitUseCases)
		noteUseCase := app.NewNoteUseCase(noteRepo)

		log.Info(ctx, LogInitHTTPServer)
		server := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})
		httpServer.SetupRouter(server, log, noteUseCase, database)

		serveCtx, stopServe := context.WithCancel(ctx)
		defer stopServe()

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
				exitCode = 1
				stopServe()
			}
		}()

		hooks = append(hooks, func(ctx context.Context) error {
			log.Info(ctx, LogStoppingHTTP)
			return server.ShutdownWithContext(ctx)
		})

		shutdown.Wait(serveCtx, cfg.Shutdown.GetTimeout(), hooks...)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
