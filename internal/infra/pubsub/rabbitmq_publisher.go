package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"lodging/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher implements EventPublisher over a durable RabbitMQ queue.
type rabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger

	// amqp channels are not safe for concurrent publishing.
	mu sync.Mutex
}

// NewRabbitMQPublisher dials the broker and declares the queue.
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "failed to declare queue %s", queue)
	}

	return &rabbitMQPublisher{
		conn:    conn,
		channel: ch,
		queue:   queue,
		logger:  logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishReservationEvent(ctx context.Context, event *service.ReservationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Type:         event.Type,
		Headers:      toTable(eventAttributes(event)),
		Body:         data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish to rabbitmq")
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("queue", p.queue),
		slog.String("type", event.Type),
		slog.String("reservation_id", event.ReservationID),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}

func toTable(attributes map[string]string) amqp.Table {
	table := make(amqp.Table, len(attributes))
	for key, value := range attributes {
		table[key] = value
	}

	return table
}
