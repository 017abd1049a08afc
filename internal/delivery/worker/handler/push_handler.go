// Package handler contains the Pub/Sub push handlers of the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lodging/config"
	deliverycontext "lodging/internal/delivery/context"
	"lodging/internal/domain/constants"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/service"
	"lodging/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// dedupeTTL bounds how long a delivered message id is remembered.
const dedupeTTL = 24 * time.Hour

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// deliveryLog remembers processed message ids. Pub/Sub delivers at least once.
type deliveryLog interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// PushHandler consumes reservation events and records booking confirmations.
type PushHandler struct {
	verifyPushAuth bool
	keyPrefix      string
	logger         *slog.Logger
	reservationSvc usecase.ReservationUsecase
	customerSvc    usecase.CustomerUsecase
	lodgingSvc     usecase.LodgingUsecase
	deliveries     deliveryLog
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	ReservationSvc usecase.ReservationUsecase
	CustomerSvc    usecase.CustomerUsecase
	LodgingSvc     usecase.LodgingUsecase
	Redis          *redis.Client `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.Worker != nil && params.Config.Worker.VerifyPushAuth &&
		params.Config.PubSub != nil && params.Config.PubSub.Provider == constants.PubSubProviderGoogle

	h := &PushHandler{
		verifyPushAuth: verifyPushAuth,
		keyPrefix:      "lodging",
		logger:         params.Logger,
		reservationSvc: params.ReservationSvc,
		customerSvc:    params.CustomerSvc,
		lodgingSvc:     params.LodgingSvc,
	}
	if params.Config.Redis != nil && params.Config.Redis.Prefix != "" {
		h.keyPrefix = params.Config.Redis.Prefix
	}
	if params.Redis != nil {
		h.deliveries = params.Redis
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks the broker to redeliver; any other status acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ReservationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse reservation event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	first, err := h.firstDelivery(ctx, pushMsg.Message.MessageID)
	if err != nil {
		reqLogger.Warn("[Worker] Delivery log unavailable, processing anyway", slog.Any("error", err))
	}
	if !first {
		reqLogger.Info("[Worker] Duplicate delivery skipped", slog.String("message_id", pushMsg.Message.MessageID))

		return c.NoContent(http.StatusOK)
	}

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process reservation event",
			slog.String("type", event.Type),
			slog.String("reservation_id", event.ReservationID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			// The redelivery must not be mistaken for a duplicate.
			if releaseErr := h.releaseDelivery(ctx, pushMsg.Message.MessageID); releaseErr != nil {
				reqLogger.Warn("[Worker] Failed to release delivery record", slog.Any("error", releaseErr))
			}

			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound request.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ReservationEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// firstDelivery reports whether messageID has not been seen. It fails open.
func (h *PushHandler) firstDelivery(ctx context.Context, messageID string) (bool, error) {
	if h.deliveries == nil || messageID == "" {
		return true, nil
	}

	first, err := h.deliveries.SetNX(ctx, h.deliveryKey(messageID), 1, dedupeTTL).Result()
	if err != nil {
		return true, errors.WithStack(err)
	}

	return first, nil
}

// releaseDelivery forgets messageID so the next delivery is processed.
func (h *PushHandler) releaseDelivery(ctx context.Context, messageID string) error {
	if h.deliveries == nil || messageID == "" {
		return nil
	}

	return errors.WithStack(h.deliveries.Del(ctx, h.deliveryKey(messageID)).Err())
}

func (h *PushHandler) deliveryKey(messageID string) string {
	return h.keyPrefix + ":worker:delivered:" + messageID
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.ReservationEvent) error {
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	switch event.Type {
	case service.EventReservationCreated:
		return h.confirmReservation(ctx, event)
	case service.EventReservationCancelled:
		log.Info("[Worker] Reservation cancelled",
			slog.String("reservation_id", event.ReservationID),
			slog.String("lodging_id", event.LodgingID),
		)

		return nil
	default:
		return errors.Errorf("unknown event type %q", event.Type)
	}
}

// confirmReservation resolves the booking and logs the confirmation summary.
// A reservation cancelled before the event arrived is acknowledged silently.
func (h *PushHandler) confirmReservation(ctx context.Context, event *service.ReservationEvent) error {
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	reservationID, err := uuid.Parse(event.ReservationID)
	if err != nil {
		return errors.WithStack(err)
	}

	reservation, err := h.reservationSvc.FindByID(ctx, reservationID)
	if errors.Is(err, domainerrors.ErrReservationNotFound) {
		log.Info("[Worker] Reservation no longer exists", slog.String("reservation_id", event.ReservationID))

		return nil
	}
	if err != nil {
		return newRetryableError(err)
	}

	customer, err := h.customerSvc.FindByID(ctx, reservation.CustomerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCustomerNotFound) {
			return err
		}

		return newRetryableError(err)
	}

	lodging, err := h.lodgingSvc.FindByID(ctx, reservation.LodgingID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrLodgingNotFound) {
			return err
		}

		return newRetryableError(err)
	}

	log.Info("[Worker] Reservation confirmed",
		slog.String("reservation_id", reservation.ID.String()),
		slog.String("customer", customer.Username),
		slog.String("lodging", lodging.Name),
		slog.Int("nights", reservation.Nights()),
		slog.Float64("total_price", lodging.Price*float64(reservation.Nights())),
	)

	return nil
}

// verifyPubSubToken verifies the Google-signed OIDC token of a push request.
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
