// Package health содержит HTTP-обработчик проверки состояния сервиса.
package health

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// Статусы ответа.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"

	DefaultPingTimeout = 2 * time.Second
)

// Handler отвечает на проверки состояния.
type Handler struct {
	checker repositories.HealthChecker
	timeout time.Duration
}

// NewHandler создает обработчик проверки состояния.
func NewHandler(checker repositories.HealthChecker) *Handler {
	return &Handler{checker: checker, timeout: DefaultPingTimeout}
}

// Check проверяет доступность хранилища.
func (h *Handler) Check(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	pingCtx, cancel := context.WithTimeout(requestCtx, h.timeout)
	defer cancel()

	if err := h.checker.Ping(pingCtx); err != nil {
		logger.Log(requestCtx).Warn(requestCtx, "health check failed", zap.Error(err))
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": StatusUnavailable})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": StatusOK})
}
