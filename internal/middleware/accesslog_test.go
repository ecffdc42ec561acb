package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/serroba/url-shortener/internal/metrics"
	"github.com/serroba/url-shortener/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type itemInput struct {
	ID string `path:"id"`
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	router := chi.NewMux()
	api := humachi.New(router, testConfig())
	api.UseMiddleware(middleware.RequestMeta(api), middleware.AccessLog(zap.New(core)))

	huma.Get(api, "/items/{id}", func(_ context.Context, in *itemInput) (*testOutput, error) {
		if in.ID == "missing" {
			return nil, huma.Error404NotFound("no such item")
		}

		return &testOutput{Body: in.ID}, nil
	})

	t.Run("logs the route template and status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)

		fields := entries[0].ContextMap()
		assert.Equal(t, "/items/{id}", fields["route"])
		assert.Equal(t, "/items/42", fields["path"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Equal(t, "req-42", fields["request_id"])
	})

	t.Run("observes request duration per status", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/missing", nil))

		require.Equal(t, http.StatusNotFound, w.Code)

		assert.Positive(t, testutil.CollectAndCount(metrics.HTTPRequestDuration, "http_request_duration_seconds"))
	})
}
