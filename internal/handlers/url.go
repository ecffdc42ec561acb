package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/url-shortener/internal/analytics"
	"github.com/serroba/url-shortener/internal/metrics"
	"github.com/serroba/url-shortener/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler handles URL shortening operations.
type URLHandler struct {
	service    *shortener.Service
	baseURL    string
	mode       shortener.AllocationMode
	publishers analytics.Publishers
	logger     *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(
	service *shortener.Service,
	baseURL string,
	mode shortener.AllocationMode,
	publishers analytics.Publishers,
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		service:    service,
		baseURL:    baseURL,
		mode:       mode,
		publishers: publishers,
		logger:     logger,
	}
}

type requestMetaKey struct{}

// RequestMeta holds HTTP request metadata for analytics and logging.
type RequestMeta struct {
	RequestID string
	ClientIP  string
	UserAgent string
	Referrer  string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

func (h *URLHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	meta := RequestMetaFromContext(ctx)

	code, err := h.service.Shorten(ctx, req.Body.URL)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidURL):
			return nil, huma.Error400BadRequest("invalid url: must be an http or https url with a host")
		case errors.Is(err, shortener.ErrAllocationFailed):
			h.logger.Warn("short code allocation exhausted",
				zap.String("request_id", meta.RequestID),
				zap.Int("attempts", shortener.MaxAllocationAttempts),
			)

			return nil, huma.Error500InternalServerError("could not generate unique short code")
		default:
			h.logger.Error("failed to shorten url",
				zap.String("request_id", meta.RequestID),
				zap.Error(err),
			)

			return nil, huma.Error500InternalServerError("internal server error")
		}
	}

	metrics.RecordShortened()

	event := &analytics.URLShortenedEvent{
		Code:           string(code),
		URL:            strings.TrimSpace(req.Body.URL),
		AllocationMode: string(h.mode),
		CreatedAt:      time.Now(),
		ClientIP:       meta.ClientIP,
		UserAgent:      meta.UserAgent,
		RequestID:      meta.RequestID,
	}

	if err = h.publishers.Shortened(ctx, event); err != nil {
		h.logger.Error("failed to publish analytics event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	shortURL := fmt.Sprintf("%s/%s", h.baseURL, code)

	resp := &ShortenResponse{}
	resp.Location = shortURL
	resp.Body.ShortCode = string(code)
	resp.Body.ShortURL = shortURL

	return resp, nil
}

func (h *URLHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	meta := RequestMetaFromContext(ctx)

	target, err := h.service.Resolve(ctx, shortener.Code(req.Code))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short code not found")
		}

		h.logger.Error("failed to resolve short code",
			zap.String("code", req.Code),
			zap.String("request_id", meta.RequestID),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("internal server error")
	}

	metrics.RecordRedirect()

	event := &analytics.URLClickedEvent{
		Code:      req.Code,
		ClickedAt: time.Now(),
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
		RequestID: meta.RequestID,
	}

	if err = h.publishers.Clicked(ctx, event); err != nil {
		h.logger.Error("failed to publish click event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	// 302 rather than 301 so browsers do not cache the hop and skip the click count.
	return &RedirectResponse{
		Status:   http.StatusFound,
		Location: target,
	}, nil
}

func (h *URLHandler) Stats(ctx context.Context, req *StatsRequest) (*StatsResponse, error) {
	stats, err := h.service.Stats(ctx, shortener.Code(req.Code))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short code not found")
		}

		h.logger.Error("failed to load stats",
			zap.String("code", req.Code),
			zap.String("request_id", RequestMetaFromContext(ctx).RequestID),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("internal server error")
	}

	resp := &StatsResponse{}
	resp.Body.URL = stats.URL
	resp.Body.Clicks = stats.Clicks
	resp.Body.CreatedAt = stats.CreatedAt

	return resp, nil
}
