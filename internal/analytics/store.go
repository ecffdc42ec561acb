package analytics

import "context"

// Store defines the interface for persisting analytics events.
type Store interface {
	SaveURLShortened(ctx context.Context, event *URLShortenedEvent) error
	SaveURLClicked(ctx context.Context, event *URLClickedEvent) error
}
