package middleware

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// Recover turns a panicking handler into a 500 response and logs the stack.
func Recover(api huma.API, logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.Error("panic while serving request",
				zap.Any("panic", rec),
				zap.String("method", ctx.Method()),
				zap.String("path", ctx.URL().Path),
				zap.Stack("stack"),
			)

			if err := huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error"); err != nil {
				logger.Error("failed to write error response", zap.Error(err))
			}
		}()

		next(ctx)
	}
}
