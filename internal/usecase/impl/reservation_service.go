package impl

import (
	"context"
	"log/slog"
	"time"

	"lodging/config"
	deliverycontext "lodging/internal/delivery/context"
	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/repository"
	"lodging/internal/domain/service"
	"lodging/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reservationService struct {
	txManager       repository.TransactionManager
	customerRepo    repository.CustomerRepository
	lodgingRepo     repository.LodgingRepository
	reservationRepo repository.ReservationRepository
	publisher       service.EventPublisher
	preventOverlap  bool
	now             func() time.Time
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	CustomerRepo    repository.CustomerRepository
	LodgingRepo     repository.LodgingRepository
	ReservationRepo repository.ReservationRepository
	Publisher       service.EventPublisher
	Config          *config.Config
	Logger          *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	preventOverlap := false
	if params.Config != nil && params.Config.Reservation != nil {
		preventOverlap = params.Config.Reservation.PreventOverlap
	}

	return &reservationService{
		txManager:       params.TxManager,
		customerRepo:    params.CustomerRepo,
		lodgingRepo:     params.LodgingRepo,
		reservationRepo: params.ReservationRepo,
		publisher:       params.Publisher,
		preventOverlap:  preventOverlap,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create books a lodging. The customer is resolved first, then the lodging,
// then the dates are parsed; the stay window itself is checked by entity.NewReservation.
func (srv *reservationService) Create(ctx context.Context, input *usecase.CreateReservationInput) (*entity.Reservation, error) {
	customerID, err := srv.resolveCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	lodging, err := srv.resolveLodging(ctx, input.LodgingID)
	if err != nil {
		return nil, err
	}

	start, err := entity.ParseDateTime(input.StartDate)
	if err != nil {
		return nil, domainerrors.ErrInvalidDateFormat.WithDetails("startDate: " + err.Error())
	}
	end, err := entity.ParseDateTime(input.EndDate)
	if err != nil {
		return nil, domainerrors.ErrInvalidDateFormat.WithDetails("endDate: " + err.Error())
	}

	reservation, err := entity.NewReservation(customerID, lodging.ID, start, end)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservationRepo := repoFactory.NewReservationRepository()

		if srv.preventOverlap {
			overlapping, err := reservationRepo.ExistsOverlapping(ctx, lodging.ID, start, end)
			if err != nil {
				return errors.Wrap(err, "failed to check overlapping reservations")
			}
			if overlapping {
				return errors.Wrap(domainerrors.ErrReservationConflict, "lodging already reserved")
			}
		}

		if err := reservationRepo.Create(ctx, reservation); err != nil {
			return errors.Wrap(err, "failed to create reservation")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Reservation failed", slog.Any("lodgingID", lodging.ID), slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Reservation created",
		slog.Any("reservationID", reservation.ID),
		slog.Any("lodgingID", lodging.ID),
		slog.Int("nights", reservation.Nights()),
	)
	srv.publish(ctx, service.EventReservationCreated, reservation)

	return reservation, nil
}

func (srv *reservationService) resolveCustomer(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrCustomerNotFound.WithDetails("no customer with id " + raw)
	}

	exists, err := srv.customerRepo.ExistsByID(ctx, id)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to check customer")
	}
	if !exists {
		return uuid.Nil, domainerrors.ErrCustomerNotFound.WithDetails("no customer with id " + raw)
	}

	return id, nil
}

func (srv *reservationService) resolveLodging(ctx context.Context, raw string) (*entity.Lodging, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrLodgingNotFound.WithDetails("no lodging with id " + raw)
	}

	lodging, err := srv.lodgingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLodgingError(err, "failed to find lodging")
	}

	return lodging, nil
}

func (srv *reservationService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	reservation, err := srv.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapReservationError(err, "failed to find reservation")
	}

	return reservation, nil
}

func (srv *reservationService) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	reservations, err := srv.reservationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	return reservations, nil
}

// FindByCustomer lists the reservations of an existing customer.
func (srv *reservationService) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Reservation, error) {
	exists, err := srv.customerRepo.ExistsByID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check customer")
	}
	if !exists {
		return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
	}

	reservations, err := srv.reservationRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer reservations")
	}

	return reservations, nil
}

// Cancel deletes a reservation and announces the cancellation.
func (srv *reservationService) Cancel(ctx context.Context, id uuid.UUID) error {
	reservation, err := srv.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return mapReservationError(err, "failed to find reservation")
	}

	if err := srv.reservationRepo.Delete(ctx, id); err != nil {
		return mapReservationError(err, "failed to cancel reservation")
	}

	srv.log(ctx).Info("Reservation cancelled", slog.Any("reservationID", id))
	srv.publish(ctx, service.EventReservationCancelled, reservation)

	return nil
}

// publish announces a reservation change. Failures are logged and never
// surface to the caller because the reservation is already persisted.
func (srv *reservationService) publish(ctx context.Context, eventType string, reservation *entity.Reservation) {
	event := &service.ReservationEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		ReservationID: reservation.ID.String(),
		CustomerID:    reservation.CustomerID.String(),
		LodgingID:     reservation.LodgingID.String(),
		StartDate:     reservation.StartDate,
		EndDate:       reservation.EndDate,
		OccurredAt:    srv.now().UTC(),
	}

	if err := srv.publisher.PublishReservationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish reservation event",
			slog.String("type", eventType),
			slog.Any("reservationID", reservation.ID),
			slog.Any("error", err),
		)
	}
}

func mapReservationError(err error, msg string) error {
	if errors.Is(err, repository.ErrReservationNotFound) {
		return errors.Wrap(domainerrors.ErrReservationNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
