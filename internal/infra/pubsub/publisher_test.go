package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lodging/config"
	"lodging/internal/domain/constants"
	"lodging/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.ReservationEvent {
	return &service.ReservationEvent{
		RequestID:     "req-1",
		Type:          service.EventReservationCreated,
		ReservationID: "r-1",
		CustomerID:    "c-1",
		LodgingID:     "l-1",
		StartDate:     time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 5, 3, 11, 0, 0, 0, time.UTC),
		OccurredAt:    time.Now().UTC(),
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := sampleEvent()

	require.NoError(t, publisher.PublishReservationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, service.EventReservationCreated, received.Message.Attributes["type"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.ReservationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.ReservationID, decoded.ReservationID)
	assert.True(t, event.StartDate.Equal(decoded.StartDate))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishReservationEvent(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()

	p, err := newPublisher(ctx, nil, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, p)
	assert.NoError(t, p.PublishReservationEvent(ctx, sampleEvent()))
	assert.NoError(t, p.Close())

	p, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1"}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, p)

	testCases := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{"google without project", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}},
		{"google without topic", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{"rabbitmq without url", &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ}},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newPublisher(ctx, tc.cfg, discardLogger())
			assert.Error(t, err)
		})
	}
}

func TestEventAttributes(t *testing.T) {
	event := sampleEvent()

	attrs := eventAttributes(event)
	assert.Equal(t, "req-1", attrs["request_id"])
	assert.Equal(t, "l-1", attrs["lodging_id"])

	event.RequestID = ""
	assert.NotContains(t, eventAttributes(event), "request_id")

	table := toTable(attrs)
	assert.Equal(t, "r-1", table["reservation_id"])
}
