// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"gonotes/pkg/logger"
)

// Ключи и заголовки контекста запроса.
const (
	LocalsRequestContext = "requestContext"
	HeaderRequestID      = "X-Request-ID"
)

// NewRequestContextMiddleware создает контекст запроса с request_id и логгером.
func NewRequestContextMiddleware(log *logger.Logger) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		requestCtx := logger.NewRequestIDContext(ctx.Context(), requestID)
		if log != nil {
			requestCtx = logger.NewContext(requestCtx, log)
		}

		ctx.Locals(LocalsRequestContext, requestCtx)
		ctx.Set(HeaderRequestID, requestID)

		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса, созданный NewRequestContextMiddleware.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(LocalsRequestContext).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
