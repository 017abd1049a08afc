package pubsub

import (
	"context"
	"log/slog"

	"lodging/config"
	"lodging/internal/domain/constants"
	"lodging/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishReservationEvent(_ context.Context, event *service.ReservationEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("type", event.Type),
		slog.String("reservation_id", event.ReservationID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(context.Background(), params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	case constants.PubSubProviderRabbitMQ:
		if cfg.RabbitMQURL == "" {
			return nil, errors.New("rabbitmq url is required for rabbitmq provider")
		}
		queue := cfg.RabbitMQQueue
		if queue == "" {
			queue = constants.DefaultReservationQueue
		}
		logger.Info("Using RabbitMQ publisher", slog.String("queue", queue))

		return NewRabbitMQPublisher(cfg.RabbitMQURL, queue, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// eventAttributes are attached to every message for filtering and tracing.
func eventAttributes(event *service.ReservationEvent) map[string]string {
	attributes := map[string]string{
		"type":           event.Type,
		"reservation_id": event.ReservationID,
		"lodging_id":     event.LodgingID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
