package repository

import (
	"context"
	"errors"
	"time"

	"lodging/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLodgingNotFound is returned when a lodging lookup matches no row.
var ErrLodgingNotFound = errors.New("lodging not found")

// LodgingSort names the column a search is ordered by.
type LodgingSort string

const (
	LodgingSortPrice  LodgingSort = "price"
	LodgingSortRating LodgingSort = "rating"
	LodgingSortStars  LodgingSort = "stars"
	LodgingSortName   LodgingSort = "name"
)

// IsValid checks if the sort key is supported.
func (s LodgingSort) IsValid() bool {
	switch s {
	case LodgingSortPrice, LodgingSortRating, LodgingSortStars, LodgingSortName:
		return true
	default:
		return false
	}
}

// LodgingFilter narrows a lodging search. Zero values are ignored.
type LodgingFilter struct {
	City         string
	Country      string
	Category     entity.Category
	MinStars     int
	MaxPrice     float64
	AvailableOn  *time.Time
	MinOccupancy int
	SortBy       LodgingSort
	Descending   bool
	Limit        int
	Offset       int
}

// LodgingRepository defines the persistence operations for lodgings.
type LodgingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lodging, error)
	FindAll(ctx context.Context) ([]*entity.Lodging, error)
	Search(ctx context.Context, filter LodgingFilter) ([]*entity.Lodging, error)
	Create(ctx context.Context, lodging *entity.Lodging) error
	Update(ctx context.Context, lodging *entity.Lodging) error
	Delete(ctx context.Context, id uuid.UUID) error
}
