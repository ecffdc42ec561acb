package analytics

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/url-shortener/internal/messaging"
)

// Publishers bundles the typed publish functions used by the HTTP handlers.
type Publishers struct {
	Shortened messaging.Publish[URLShortenedEvent]
	Clicked   messaging.Publish[URLClickedEvent]
}

// NewPublishers creates publish functions for both analytics topics.
func NewPublishers(publisher message.Publisher) Publishers {
	return Publishers{
		Shortened: messaging.NewPublishFunc[URLShortenedEvent](publisher, TopicURLShortened),
		Clicked:   messaging.NewPublishFunc[URLClickedEvent](publisher, TopicURLClicked),
	}
}

// NopPublishers returns publishers that drop every event.
func NopPublishers() Publishers {
	return Publishers{
		Shortened: func(context.Context, *URLShortenedEvent) error { return nil },
		Clicked:   func(context.Context, *URLClickedEvent) error { return nil },
	}
}
