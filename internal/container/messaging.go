package container

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/samber/do"
	"github.com/serroba/url-shortener/internal/analytics"
	analyticsstore "github.com/serroba/url-shortener/internal/analytics/store"
	"github.com/serroba/url-shortener/internal/messaging"
	"go.uber.org/zap"
)

// AnalyticsConsumerGroup is the Redis Streams consumer group of the analytics consumers.
const AnalyticsConsumerGroup = "analytics"

const inProcessBuffer = 256

func watermillLogger(i *do.Injector) watermill.LoggerAdapter {
	return messaging.NewZapLoggerAdapter(do.MustInvoke[*zap.Logger](i))
}

// InProcessPackage provides the in-process pub/sub used when Redis is not configured.
func InProcessPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*gochannel.GoChannel, error) {
		return gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: inProcessBuffer,
		}, watermillLogger(i)), nil
	})
}

// PublisherGroupPackage provides the event publisher and the analytics publish functions.
func PublisherGroupPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.RedisAddr == "" {
			return messaging.NewPublisherGroup(do.MustInvoke[*gochannel.GoChannel](i)), nil
		}

		client := do.MustInvoke[*RedisClient](i)

		publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: client.Client,
		}, watermillLogger(i))
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(i, func(i *do.Injector) (analytics.Publishers, error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return analytics.NewPublishers(group.Publisher()), nil
	})
}

// ConsumerGroupPackage provides the analytics consumers and their sink.
func ConsumerGroupPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (analytics.Store, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.DatabaseURL == "" {
			return analyticsstore.NewLog(do.MustInvoke[*zap.Logger](i)), nil
		}

		sink, err := do.Invoke[*analyticsstore.Postgres](i)
		if err != nil {
			return nil, err
		}

		return sink, nil
	})

	do.Provide(i, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		sink := do.MustInvoke[analytics.Store](i)

		var subscriber message.Subscriber

		if opts.RedisAddr == "" {
			subscriber = do.MustInvoke[*gochannel.GoChannel](i)
		} else {
			client := do.MustInvoke[*RedisClient](i)

			redisSubscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        client.Client,
				ConsumerGroup: AnalyticsConsumerGroup,
			}, watermillLogger(i))
			if err != nil {
				return nil, err
			}

			subscriber = redisSubscriber
		}

		return analytics.NewConsumerGroup(subscriber, sink, logger), nil
	})
}
