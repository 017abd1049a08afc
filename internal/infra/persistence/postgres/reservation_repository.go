package postgres

import (
	"context"
	"time"

	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/repository"
	"lodging/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reservationRepository implements the domain.ReservationRepository interface using GORM.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (repo *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel
	if err := repo.db.WithContext(ctx).First(&reservationM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by id")
	}

	return toReservationDomain(&reservationM), nil
}

func (repo *reservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	return repo.find(repo.db.WithContext(ctx), "failed to list reservations")
}

func (repo *reservationRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Reservation, error) {
	query := repo.db.WithContext(ctx).Where("customer_id = ?", customerID)

	return repo.find(query, "failed to find reservations by customer")
}

// ExistsOverlapping treats stays as half-open, so back-to-back bookings do not collide.
func (repo *reservationRepository) ExistsOverlapping(ctx context.Context, lodgingID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("lodging_id = ? AND start_date < ? AND end_date > ?", lodgingID, end, start).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check overlapping reservations")
	}

	return count > 0, nil
}

func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Omit("Customer", "Lodging").Create(reservationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("reservation references a missing customer or lodging")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidStayWindow.WrapMessage("rejected by table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	reservation.ID = reservationM.ID
	reservation.CreatedAt = reservationM.CreatedAt
	reservation.UpdatedAt = reservationM.UpdatedAt

	return nil
}

func (repo *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReservationModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete reservation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

func (repo *reservationRepository) find(query *gorm.DB, msg string) ([]*entity.Reservation, error) {
	var reservationMs []*model.ReservationModel
	if err := query.Order("start_date ASC").Order("id ASC").Find(&reservationMs).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	reservations := make([]*entity.Reservation, 0, len(reservationMs))
	for _, reservationM := range reservationMs {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations, nil
}

// --- Mapper Functions ---

func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	return &entity.Reservation{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		LodgingID:  data.LodgingID,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
		Timestamps: entity.Timestamps{
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	if data == nil {
		return nil
	}

	return &model.ReservationModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		LodgingID:  data.LodgingID,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
