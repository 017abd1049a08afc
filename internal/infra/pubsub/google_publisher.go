package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"lodging/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher. The topic must already exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishReservationEvent publishes an event and waits for the server ack.
func (p *googlePubSubPublisher) PublishReservationEvent(ctx context.Context, event *service.ReservationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("type", event.Type),
		slog.String("reservation_id", event.ReservationID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
