package entity

import (
	"time"

	domainerrors "lodging/internal/domain/errors"

	"github.com/google/uuid"
)

// Reservation links one customer to one lodging for the stay [StartDate, EndDate).
// It can only be built through NewReservation.
type Reservation struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	LodgingID  uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Timestamps
}

// NewReservation builds a reservation, rejecting stays where start is not before end.
func NewReservation(customerID, lodgingID uuid.UUID, start, end time.Time) (*Reservation, error) {
	if !start.Before(end) {
		return nil, domainerrors.ErrInvalidStayWindow
	}

	return &Reservation{
		ID:         uuid.New(),
		CustomerID: customerID,
		LodgingID:  lodgingID,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

// Nights returns the number of whole nights covered by the stay.
func (r *Reservation) Nights() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// Overlaps reports whether the stay intersects [start, end).
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && start.Before(r.EndDate)
}
