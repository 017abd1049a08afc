package usecase

import (
	"context"
	"time"

	"lodging/internal/domain/entity"

	"github.com/google/uuid"
)

// MaxSearchLimit caps the page size of a lodging search.
const MaxSearchLimit = 100

// CreateLodgingInput defines the data required to register a lodging.
// Range checks live in the entity invariants.
type CreateLodgingInput struct {
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Country        string    `json:"country"`
	Price          float64   `json:"price"`
	StarRating     int       `json:"starRating"`
	CustomerRating float64   `json:"customerRating"`
	Category       string    `json:"category"`
	AvailableFrom  time.Time `json:"availableFrom"`
	AvailableTo    time.Time `json:"availableTo"`
	MaxOccupancy   int       `json:"maxOccupancy"`
	CheckInTime    string    `json:"checkInTime"`
	CheckOutTime   string    `json:"checkOutTime"`
}

// UpdateLodgingInput carries a partial update. Nil fields are left untouched.
type UpdateLodgingInput struct {
	Name           *string    `json:"name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Address        *string    `json:"address,omitempty"`
	City           *string    `json:"city,omitempty"`
	Country        *string    `json:"country,omitempty"`
	Price          *float64   `json:"price,omitempty"`
	StarRating     *int       `json:"starRating,omitempty"`
	CustomerRating *float64   `json:"customerRating,omitempty"`
	Category       *string    `json:"category,omitempty"`
	AvailableFrom  *time.Time `json:"availableFrom,omitempty"`
	AvailableTo    *time.Time `json:"availableTo,omitempty"`
	MaxOccupancy   *int       `json:"maxOccupancy,omitempty"`
	CheckInTime    *string    `json:"checkInTime,omitempty"`
	CheckOutTime   *string    `json:"checkOutTime,omitempty"`
}

// SearchLodgingsInput holds the optional search filters.
type SearchLodgingsInput struct {
	City         string     `query:"city"`
	Country      string     `query:"country"`
	Category     string     `query:"category"`
	MinStars     int        `query:"minStars" validate:"omitempty,min=1,max=5"`
	MaxPrice     float64    `query:"maxPrice" validate:"omitempty,gt=0"`
	AvailableOn  *time.Time `query:"-"`
	MinOccupancy int        `query:"minOccupancy" validate:"omitempty,min=1"`
	SortBy       string     `query:"sort" validate:"omitempty,oneof=price rating stars name"`
	Order        string     `query:"order" validate:"omitempty,oneof=asc desc"`
	Limit        int        `query:"limit" validate:"omitempty,min=1"`
	Offset       int        `query:"offset" validate:"omitempty,min=0"`
}

// LodgingUsecase defines the interface for lodging catalogue operations.
type LodgingUsecase interface {
	Create(ctx context.Context, input *CreateLodgingInput) (*entity.Lodging, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateLodgingInput) (*entity.Lodging, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lodging, error)
	Search(ctx context.Context, input *SearchLodgingsInput) ([]*entity.Lodging, error)
}
