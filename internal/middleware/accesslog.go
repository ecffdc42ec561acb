package middleware

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/url-shortener/internal/handlers"
	"github.com/serroba/url-shortener/internal/metrics"
	"go.uber.org/zap"
)

// AccessLog logs one line per request and records its duration.
func AccessLog(logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		elapsed := time.Since(start)
		status := ctx.Status()

		route := ctx.URL().Path
		if op := ctx.Operation(); op != nil {
			route = op.Path
		}

		metrics.ObserveRequest(ctx.Method(), route, strconv.Itoa(status), elapsed.Seconds())

		logger.Info("request",
			zap.String("request_id", handlers.RequestMetaFromContext(ctx.Context()).RequestID),
			zap.String("method", ctx.Method()),
			zap.String("route", route),
			zap.String("path", ctx.URL().Path),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		)
	}
}
