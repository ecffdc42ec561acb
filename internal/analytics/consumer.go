package analytics

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/url-shortener/internal/messaging"
	"go.uber.org/zap"
)

// HandleShortened returns a consumer handler that persists shortened events.
func HandleShortened(store Store) messaging.Handler[URLShortenedEvent] {
	return func(ctx context.Context, event *URLShortenedEvent) error {
		return store.SaveURLShortened(ctx, event)
	}
}

// HandleClicked returns a consumer handler that persists click events.
func HandleClicked(store Store) messaging.Handler[URLClickedEvent] {
	return func(ctx context.Context, event *URLClickedEvent) error {
		return store.SaveURLClicked(ctx, event)
	}
}

// NewConsumerGroup wires consumers for both analytics topics onto one subscriber.
func NewConsumerGroup(subscriber message.Subscriber, store Store, logger *zap.Logger) *messaging.ConsumerGroup {
	group := messaging.NewConsumerGroup(subscriber, logger)
	group.Add(messaging.NewConsumer(subscriber, TopicURLShortened, HandleShortened(store), logger))
	group.Add(messaging.NewConsumer(subscriber, TopicURLClicked, HandleClicked(store), logger))

	return group
}
