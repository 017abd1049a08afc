package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "lodging/internal/delivery/context"
	"lodging/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/reservation-events"

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage mirrors the body Google Pub/Sub sends to push subscribers.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// PublishReservationEvent posts the event wrapped in a push message.
func (p *localHTTPPublisher) PublishReservationEvent(ctx context.Context, event *service.ReservationEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("type", event.Type),
		slog.String("reservation_id", event.ReservationID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
