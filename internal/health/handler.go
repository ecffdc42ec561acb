package health

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/redis/go-redis/v9"
)

const (
	serviceName = "URL Shortener API"
	pingTimeout = 2 * time.Second
)

// Checker defines the interface for checking a dependency's health.
type Checker interface {
	Ping(ctx context.Context) error
}

// RedisChecker adapts redis.UniversalClient to the Checker interface.
type RedisChecker struct {
	client redis.UniversalClient
}

// NewRedisChecker creates a new Redis health checker.
func NewRedisChecker(client redis.UniversalClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Handler serves liveness endpoints. It never touches the URL store.
type Handler struct {
	checkers map[string]Checker
}

// NewHandler creates a health handler reporting on the given dependencies.
func NewHandler(checkers map[string]Checker) *Handler {
	return &Handler{checkers: checkers}
}

// RootResponse is the response for the service root.
type RootResponse struct {
	Body struct {
		Status  string `example:"healthy"           json:"status"`
		Service string `example:"URL Shortener API" json:"service"`
	}
}

// Response is the response for the health check endpoint.
type Response struct {
	Body struct {
		Status       string            `example:"ok"                          json:"status"`
		Message      string            `example:"URL Shortener API is running" json:"message"`
		Dependencies map[string]string `json:"dependencies,omitempty"`
	}
}

func (h *Handler) Root(_ context.Context, _ *struct{}) (*RootResponse, error) {
	resp := &RootResponse{}
	resp.Body.Status = "healthy"
	resp.Body.Service = serviceName

	return resp, nil
}

// Check reports "ok" when every dependency answers and "degraded" otherwise.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"
	resp.Body.Message = serviceName + " is running"

	if len(h.checkers) == 0 {
		return resp, nil
	}

	resp.Body.Dependencies = make(map[string]string, len(h.checkers))

	for name, checker := range h.checkers {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := checker.Ping(pingCtx)

		cancel()

		if err != nil {
			resp.Body.Dependencies[name] = "unhealthy"
			resp.Body.Status = "degraded"

			continue
		}

		resp.Body.Dependencies[name] = "healthy"
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Register(api, huma.Operation{
		OperationID: "root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service status",
		Tags:        []string{"Health"},
	}, h.Root)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Check)
}
