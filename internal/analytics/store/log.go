package store

import (
	"context"

	"github.com/serroba/url-shortener/internal/analytics"
	"go.uber.org/zap"
)

// Log is an analytics.Store that writes every event to a structured log.
type Log struct {
	logger *zap.Logger
}

// NewLog creates a new logging analytics store.
func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) SaveURLShortened(_ context.Context, event *analytics.URLShortenedEvent) error {
	l.logger.Info("url shortened",
		zap.String("code", event.Code),
		zap.String("url", event.URL),
		zap.String("allocationMode", event.AllocationMode),
		zap.Time("createdAt", event.CreatedAt),
		zap.String("requestId", event.RequestID),
	)

	return nil
}

func (l *Log) SaveURLClicked(_ context.Context, event *analytics.URLClickedEvent) error {
	l.logger.Info("url clicked",
		zap.String("code", event.Code),
		zap.Time("clickedAt", event.ClickedAt),
		zap.String("referrer", event.Referrer),
		zap.String("requestId", event.RequestID),
	)

	return nil
}

var _ analytics.Store = (*Log)(nil)
