package repository

import (
	"context"
	"errors"
	"time"

	"lodging/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReservationNotFound is returned when a reservation lookup matches no row.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepository defines the persistence operations for reservations.
type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindAll(ctx context.Context) ([]*entity.Reservation, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Reservation, error)

	// ExistsOverlapping reports whether the lodging holds a reservation
	// intersecting [start, end).
	ExistsOverlapping(ctx context.Context, lodgingID uuid.UUID, start, end time.Time) (bool, error)

	Create(ctx context.Context, reservation *entity.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}
