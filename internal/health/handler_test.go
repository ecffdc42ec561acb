package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/serroba/url-shortener/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockChecker struct {
	err error
}

func (m *mockChecker) Ping(_ context.Context) error {
	return m.err
}

func TestHandler_Root(t *testing.T) {
	handler := health.NewHandler(nil)

	resp, err := handler.Root(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "healthy", resp.Body.Status)
	assert.Equal(t, "URL Shortener API", resp.Body.Service)
}

func TestHandler_Check(t *testing.T) {
	t.Run("returns ok without dependencies", func(t *testing.T) {
		handler := health.NewHandler(nil)

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, "URL Shortener API is running", resp.Body.Message)
		assert.Nil(t, resp.Body.Dependencies)
	})

	t.Run("returns ok when redis is healthy", func(t *testing.T) {
		handler := health.NewHandler(map[string]health.Checker{"redis": &mockChecker{}})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, "healthy", resp.Body.Dependencies["redis"])
	})

	t.Run("returns degraded when redis is unhealthy", func(t *testing.T) {
		handler := health.NewHandler(map[string]health.Checker{
			"redis": &mockChecker{err: errors.New("connection refused")},
		})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Body.Status)
		assert.Equal(t, "unhealthy", resp.Body.Dependencies["redis"])
	})
}

// testConfig is huma's default config without the $schema link in bodies.
func testConfig() huma.Config {
	config := huma.DefaultConfig("Test", "1.0.0")
	config.CreateHooks = nil

	return config
}

func TestRegisterRoutes(t *testing.T) {
	router := chi.NewMux()
	api := humachi.New(router, testConfig())
	health.RegisterRoutes(api, health.NewHandler(nil))

	bodies := map[string]string{
		"/":           `{"status":"healthy","service":"URL Shortener API"}`,
		"/api/health": `{"status":"ok","message":"URL Shortener API is running"}`,
	}

	for path, body := range bodies {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, body, w.Body.String(), path)
	}
}

func TestRedisChecker(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", addr, err)
	}

	t.Run("Ping returns nil when redis is available", func(t *testing.T) {
		checker := health.NewRedisChecker(client)

		err := checker.Ping(context.Background())

		assert.NoError(t, err)
	})
}
