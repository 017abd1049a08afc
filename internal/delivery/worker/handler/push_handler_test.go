package handler

import (
	"bytes"
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
	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/service"
	mockusecase "lodging/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeDeliveryLog struct {
	seen map[string]bool
	err  error
}

func (f *fakeDeliveryLog) SetNX(_ context.Context, key string, _ any, _ time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if f.seen[key] {
		return redis.NewBoolResult(false, nil)
	}
	f.seen[key] = true

	return redis.NewBoolResult(true, nil)
}

func (f *fakeDeliveryLog) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, key := range keys {
		if f.seen[key] {
			delete(f.seen, key)
			n++
		}
	}

	return redis.NewIntResult(n, nil)
}

type pushFixture struct {
	handler      *PushHandler
	reservations *mockusecase.MockReservationUsecase
	customers    *mockusecase.MockCustomerUsecase
	lodgings     *mockusecase.MockLodgingUsecase
}

func newPushFixture(t *testing.T) *pushFixture {
	t.Helper()

	f := &pushFixture{
		reservations: mockusecase.NewMockReservationUsecase(t),
		customers:    mockusecase.NewMockCustomerUsecase(t),
		lodgings:     mockusecase.NewMockLodgingUsecase(t),
	}
	f.handler = NewPushHandler(PushHandlerParams{
		Config:         &config.Config{},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReservationSvc: f.reservations,
		CustomerSvc:    f.customers,
		LodgingSvc:     f.lodgings,
	})

	return f
}

func pushBody(t *testing.T, messageID string, event service.ReservationEvent) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.MessageID = messageID
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = map[string]string{"request_id": "req-from-attrs"}
	msg.Subscription = "local-subscription"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func (f *pushFixture) push(t *testing.T, body []byte) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, f.handler.HandlePush(e.NewContext(req, rec)))

	return rec.Code
}

func createdEvent(reservationID uuid.UUID) service.ReservationEvent {
	return service.ReservationEvent{
		Type:          service.EventReservationCreated,
		ReservationID: reservationID.String(),
	}
}

func TestHandlePush_ConfirmsCreatedReservation(t *testing.T) {
	f := newPushFixture(t)

	start := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)
	reservation := &entity.Reservation{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		LodgingID:  uuid.New(),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 3),
	}

	f.reservations.EXPECT().FindByID(mock.Anything, reservation.ID).Return(reservation, nil)
	f.customers.EXPECT().FindByID(mock.Anything, reservation.CustomerID).
		Return(&entity.Customer{ID: reservation.CustomerID, Username: "alice"}, nil)
	f.lodgings.EXPECT().FindByID(mock.Anything, reservation.LodgingID).
		Return(&entity.Lodging{ID: reservation.LodgingID, Name: "Sea View", Price: 80}, nil)

	assert.Equal(t, http.StatusOK, f.push(t, pushBody(t, "m-1", createdEvent(reservation.ID))))
}

func TestHandlePush_StoreFailureIsRetried(t *testing.T) {
	f := newPushFixture(t)
	id := uuid.New()

	f.reservations.EXPECT().FindByID(mock.Anything, id).Return(nil, errors.New("connection reset"))

	assert.Equal(t, http.StatusServiceUnavailable, f.push(t, pushBody(t, "m-2", createdEvent(id))))
}

func TestHandlePush_CancelledBeforeDeliveryIsAcknowledged(t *testing.T) {
	f := newPushFixture(t)
	id := uuid.New()

	f.reservations.EXPECT().FindByID(mock.Anything, id).
		Return(nil, errors.Wrap(domainerrors.ErrReservationNotFound, "find reservation"))

	assert.Equal(t, http.StatusOK, f.push(t, pushBody(t, "m-3", createdEvent(id))))
}

func TestHandlePush_CancelledEventNeedsNoLookup(t *testing.T) {
	f := newPushFixture(t)

	event := service.ReservationEvent{
		Type:          service.EventReservationCancelled,
		ReservationID: uuid.NewString(),
		LodgingID:     uuid.NewString(),
	}

	assert.Equal(t, http.StatusOK, f.push(t, pushBody(t, "m-4", event)))
}

func TestHandlePush_UnknownEventIsDropped(t *testing.T) {
	f := newPushFixture(t)

	event := service.ReservationEvent{Type: "reservation.renamed", ReservationID: uuid.NewString()}

	assert.Equal(t, http.StatusOK, f.push(t, pushBody(t, "m-5", event)))
}

func TestHandlePush_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"not json", []byte("{")},
		{"data not base64", []byte(`{"message":{"data":"%%%","messageId":"x"}}`)},
		{"data not an event", []byte(`{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPushFixture(t)
			assert.Equal(t, http.StatusBadRequest, f.push(t, tt.body))
		})
	}
}

func TestHandlePush_DuplicateDeliverySkipped(t *testing.T) {
	f := newPushFixture(t)
	f.handler.deliveries = &fakeDeliveryLog{seen: map[string]bool{}}

	id := uuid.New()
	// Only the first delivery reaches the usecase.
	f.reservations.EXPECT().FindByID(mock.Anything, id).
		Return(nil, domainerrors.ErrReservationNotFound).Once()

	body := pushBody(t, "m-6", createdEvent(id))
	assert.Equal(t, http.StatusOK, f.push(t, body))
	assert.Equal(t, http.StatusOK, f.push(t, body))
}

func TestHandlePush_RetriedDeliveryIsProcessedAgain(t *testing.T) {
	f := newPushFixture(t)
	log := &fakeDeliveryLog{seen: map[string]bool{}}
	f.handler.deliveries = log

	start := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)
	reservation := &entity.Reservation{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		LodgingID:  uuid.New(),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 2),
	}

	f.reservations.EXPECT().FindByID(mock.Anything, reservation.ID).Return(nil, errors.New("db down")).Once()
	f.reservations.EXPECT().FindByID(mock.Anything, reservation.ID).Return(reservation, nil).Once()
	f.customers.EXPECT().FindByID(mock.Anything, reservation.CustomerID).
		Return(&entity.Customer{ID: reservation.CustomerID, Username: "alice"}, nil).Once()
	f.lodgings.EXPECT().FindByID(mock.Anything, reservation.LodgingID).
		Return(&entity.Lodging{ID: reservation.LodgingID, Name: "Sea View", Price: 80}, nil).Once()

	body := pushBody(t, "m-retry", createdEvent(reservation.ID))
	assert.Equal(t, http.StatusServiceUnavailable, f.push(t, body))
	assert.Empty(t, log.seen)

	assert.Equal(t, http.StatusOK, f.push(t, body))
	assert.Contains(t, log.seen, "lodging:worker:delivered:m-retry")

	// Once processed, further copies are duplicates.
	assert.Equal(t, http.StatusOK, f.push(t, body))
}

func TestHandlePush_DeliveryLogOutageFailsOpen(t *testing.T) {
	f := newPushFixture(t)
	f.handler.deliveries = &fakeDeliveryLog{seen: map[string]bool{}, err: errors.New("redis down")}

	id := uuid.New()
	f.reservations.EXPECT().FindByID(mock.Anything, id).Return(nil, domainerrors.ErrReservationNotFound)

	assert.Equal(t, http.StatusOK, f.push(t, pushBody(t, "m-7", createdEvent(id))))
}

func TestHandlePush_RejectsUnauthenticatedPushWhenVerifying(t *testing.T) {
	f := newPushFixture(t)
	f.handler.verifyPushAuth = true

	assert.Equal(t, http.StatusUnauthorized, f.push(t, pushBody(t, "m-8", createdEvent(uuid.New()))))
}

func TestExtractRequestID(t *testing.T) {
	h := newPushFixture(t).handler

	var msg PubSubMessage
	event := service.ReservationEvent{RequestID: "req-from-event"}
	assert.Equal(t, "req-from-event", h.extractRequestID(context.Background(), &msg, &event))

	msg.Message.Attributes = map[string]string{"request_id": "req-from-attrs"}
	assert.Equal(t, "req-from-attrs", h.extractRequestID(context.Background(), &msg, &event))

	generated := h.extractRequestID(context.Background(), &PubSubMessage{}, &service.ReservationEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestNewPushHandler_VerifiesOnlyGooglePushes(t *testing.T) {
	cfg := &config.Config{
		Worker: &config.WorkerConfig{VerifyPushAuth: true},
		PubSub: &config.PubSubConfig{Provider: "rabbitmq"},
	}
	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.False(t, h.verifyPushAuth)

	cfg.PubSub.Provider = "google"
	h = NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.True(t, h.verifyPushAuth)
}
