package impl

import (
	"context"
	"testing"
	"time"

	"lodging/config"
	deliverycontext "lodging/internal/delivery/context"
	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/repository"
	"lodging/internal/domain/service"
	mockRepo "lodging/internal/mocks/repository"
	mockSvc "lodging/internal/mocks/service"
	"lodging/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reservationServiceFixtures struct {
	service         usecase.ReservationUsecase
	txManager       *mockRepo.MockTransactionManager
	customerRepo    *mockRepo.MockCustomerRepository
	lodgingRepo     *mockRepo.MockLodgingRepository
	reservationRepo *mockRepo.MockReservationRepository
	publisher       *mockSvc.MockEventPublisher
}

func createTestReservationService(t *testing.T, preventOverlap bool) reservationServiceFixtures {
	fx := reservationServiceFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		customerRepo:    mockRepo.NewMockCustomerRepository(t),
		lodgingRepo:     mockRepo.NewMockLodgingRepository(t),
		reservationRepo: mockRepo.NewMockReservationRepository(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewReservationService(ReservationServiceParams{
		TxManager:       fx.txManager,
		CustomerRepo:    fx.customerRepo,
		LodgingRepo:     fx.lodgingRepo,
		ReservationRepo: fx.reservationRepo,
		Publisher:       fx.publisher,
		Config:          &config.Config{Reservation: &config.ReservationConfig{PreventOverlap: preventOverlap}},
		Logger:          discardLogger(),
	})

	return fx
}

func bookingInput(customerID, lodgingID uuid.UUID) *usecase.CreateReservationInput {
	return &usecase.CreateReservationInput{
		CustomerID: customerID.String(),
		LodgingID:  lodgingID.String(),
		StartDate:  "2026-05-01T14:00:00",
		EndDate:    "2026-05-03T11:00:00",
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	fx := createTestReservationService(t, false)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	customerID := uuid.New()
	lodging := existingHotel()
	expectTransaction(t, fx.txManager, nil, fx.reservationRepo)

	fx.customerRepo.EXPECT().ExistsByID(ctx, customerID).Return(true, nil)
	fx.lodgingRepo.EXPECT().FindByID(ctx, lodging.ID).Return(lodging, nil)
	fx.reservationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Reservation")).Return(nil)
	fx.publisher.EXPECT().
		PublishReservationEvent(ctx, mock.MatchedBy(func(e *service.ReservationEvent) bool {
			return e.Type == service.EventReservationCreated && e.RequestID == "req-42" && e.LodgingID == lodging.ID.String()
		})).
		Return(nil)

	reservation, err := fx.service.Create(ctx, bookingInput(customerID, lodging.ID))

	require.NoError(t, err)
	assert.Equal(t, customerID, reservation.CustomerID)
	assert.Equal(t, lodging.ID, reservation.LodgingID)
	assert.Equal(t, time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC), reservation.StartDate)
	assert.Equal(t, 1, reservation.Nights())
	fx.reservationRepo.AssertNotCalled(t, "ExistsOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationService_Create_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestReservationService(t, false)
	ctx := context.Background()
	customerID := uuid.New()
	lodging := existingHotel()
	expectTransaction(t, fx.txManager, nil, fx.reservationRepo)

	fx.customerRepo.EXPECT().ExistsByID(ctx, customerID).Return(true, nil)
	fx.lodgingRepo.EXPECT().FindByID(ctx, lodging.ID).Return(lodging, nil)
	fx.reservationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishReservationEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	reservation, err := fx.service.Create(ctx, bookingInput(customerID, lodging.ID))

	require.NoError(t, err)
	assert.NotNil(t, reservation)
}

func TestReservationService_Create_UnknownCustomerBeforeDates(t *testing.T) {
	fx := createTestReservationService(t, false)

	_, err := fx.service.Create(context.Background(), &usecase.CreateReservationInput{
		CustomerID: "missing",
		LodgingID:  uuid.NewString(),
		StartDate:  "not a date",
		EndDate:    "also not a date",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
	fx.lodgingRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestReservationService_Create_CustomerAbsent(t *testing.T) {
	fx := createTestReservationService(t, false)
	ctx := context.Background()
	customerID := uuid.New()

	fx.customerRepo.EXPECT().ExistsByID(ctx, customerID).Return(false, nil)

	_, err := fx.service.Create(ctx, bookingInput(customerID, uuid.New()))

	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestReservationService_Create_LodgingAbsent(t *testing.T) {
	fx := createTestReservationService(t, false)
	ctx := context.Background()
	customerID := uuid.New()
	lodgingID := uuid.New()

	fx.customerRepo.EXPECT().ExistsByID(ctx, customerID).Return(true, nil)
	fx.lodgingRepo.EXPECT().FindByID(ctx, lodgingID).Return(nil, repository.ErrLodgingNotFound)

	input := bookingInput(customerID, lodgingID)
	input.StartDate = "garbage"

	_, err := fx.service.Create(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrLodgingNotFound))
}

func TestReservationService_Create_InvalidDates(t *testing.T) {
	testCases := []struct {
		name       string
		start, end string
		want       error
	}{
		{"unparsable start", "01/05/2026", "2026-05-03T11:00:00", domainerrors.ErrInvalidDateFormat},
		{"unparsable end", "2026-05-01T14:00:00", "soon", domainerrors.ErrInvalidDateFormat},
		{"start equals end", "2026-05-01T14:00:00", "2026-05-01T14:00:00", domainerrors.ErrInvalidStayWindow},
		{"start after end", "2026-05-04T14:00:00Z", "2026-05-01T11:00:00Z", domainerrors.ErrInvalidStayWindow},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestReservationService(t, false)
			ctx := context.Background()
			customerID := uuid.New()
			lodging := existingHotel()

			fx.customerRepo.EXPECT().ExistsByID(ctx, customerID).Return(true, nil)
			fx.lodgingRepo.EXPECT().FindByID(ctx, lodging.ID).Return(lodging, nil)

			_, err := fx.service.Create(ctx, &usecase.CreateReservationInput{
				CustomerID: customerID.String(),
				LodgingID:  lodging.ID.String(),
				StartDate:  tc.start,
				EndDate:    tc.end,
			})

			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestReservationService_Create_Overlap(t *testing.T) {
	fx := createTestReservationService(t, true)
	ctx := context.Background()
	customerID := uuid.New()
	lodging := existingHotel()
	expectTransaction(t, fx.txManager, nil, fx.reservationRepo)

	fx.customerRepo.EXPECT().ExistsByID(ctx, customerID).Return(true, nil)
	fx.lodgingRepo.EXPECT().FindByID(ctx, lodging.ID).Return(lodging, nil)
	fx.reservationRepo.EXPECT().
		ExistsOverlapping(ctx, lodging.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(true, nil)

	_, err := fx.service.Create(ctx, bookingInput(customerID, lodging.ID))

	assert.True(t, errors.Is(err, domainerrors.ErrReservationConflict))
	fx.reservationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishReservationEvent", mock.Anything, mock.Anything)
}

func TestReservationService_Cancel(t *testing.T) {
	fx := createTestReservationService(t, false)
	ctx := context.Background()
	reservation, err := entity.NewReservation(uuid.New(), uuid.New(),
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(reservation, nil).Once()
	fx.reservationRepo.EXPECT().Delete(ctx, reservation.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishReservationEvent(ctx, mock.MatchedBy(func(e *service.ReservationEvent) bool {
			return e.Type == service.EventReservationCancelled
		})).
		Return(nil)
	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(nil, repository.ErrReservationNotFound).Once()

	require.NoError(t, fx.service.Cancel(ctx, reservation.ID))

	err = fx.service.Cancel(ctx, reservation.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrReservationNotFound))
}

func TestReservationService_FindByCustomer(t *testing.T) {
	fx := createTestReservationService(t, false)
	ctx := context.Background()
	known, unknown := uuid.New(), uuid.New()

	fx.customerRepo.EXPECT().ExistsByID(ctx, known).Return(true, nil)
	fx.customerRepo.EXPECT().ExistsByID(ctx, unknown).Return(false, nil)
	fx.reservationRepo.EXPECT().FindByCustomerID(ctx, known).Return([]*entity.Reservation{{ID: uuid.New()}}, nil)

	reservations, err := fx.service.FindByCustomer(ctx, known)
	require.NoError(t, err)
	assert.Len(t, reservations, 1)

	_, err = fx.service.FindByCustomer(ctx, unknown)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}
