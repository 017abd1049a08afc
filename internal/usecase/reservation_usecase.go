package usecase

import (
	"context"

	"lodging/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReservationInput carries the raw booking request. Ids and dates stay
// strings so resolution order can be enforced before any parsing.
type CreateReservationInput struct {
	CustomerID string `json:"customerId"`
	LodgingID  string `json:"lodgingId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// ReservationUsecase defines the interface for reservation operations.
type ReservationUsecase interface {
	Create(ctx context.Context, input *CreateReservationInput) (*entity.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindAll(ctx context.Context) ([]*entity.Reservation, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}
