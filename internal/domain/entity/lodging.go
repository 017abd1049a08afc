package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	domainerrors "lodging/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	MinStarRating     = 1
	MaxStarRating     = 5
	MinCustomerRating = 1
	MaxCustomerRating = 10

	clockLayout = "15:04"
)

// Lodging is a bookable accommodation. It can be booked inside the
// validity window [AvailableFrom, AvailableTo).
type Lodging struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Address        string
	City           string
	Country        string
	Price          float64 // Price per night.
	StarRating     int     // 1 to 5.
	CustomerRating float64 // 1 to 10.
	Category       Category
	AvailableFrom  time.Time
	AvailableTo    time.Time
	MaxOccupancy   int
	CheckInTime    string // HH:MM
	CheckOutTime   string // HH:MM
	Timestamps
}

// LodgingParams carries the fields needed to build a Lodging.
type LodgingParams struct {
	Name           string
	Description    string
	Address        string
	City           string
	Country        string
	Price          float64
	StarRating     int
	CustomerRating float64
	Category       Category
	AvailableFrom  time.Time
	AvailableTo    time.Time
	MaxOccupancy   int
	CheckInTime    string
	CheckOutTime   string
}

// NewLodging builds a Lodging after checking every invariant.
func NewLodging(p LodgingParams) (*Lodging, error) {
	l := &Lodging{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(p.Name),
		Description:    strings.TrimSpace(p.Description),
		Address:        strings.TrimSpace(p.Address),
		City:           strings.TrimSpace(p.City),
		Country:        strings.TrimSpace(p.Country),
		Price:          p.Price,
		StarRating:     p.StarRating,
		CustomerRating: p.CustomerRating,
		Category:       p.Category,
		AvailableFrom:  p.AvailableFrom,
		AvailableTo:    p.AvailableTo,
		MaxOccupancy:   p.MaxOccupancy,
		CheckInTime:    p.CheckInTime,
		CheckOutTime:   p.CheckOutTime,
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate checks the lodging invariants. It is run on construction and
// again after every partial update.
func (l *Lodging) Validate() error {
	var violations []string

	for field, value := range map[string]string{
		"name":    l.Name,
		"address": l.Address,
		"city":    l.City,
		"country": l.Country,
	} {
		if strings.TrimSpace(value) == "" {
			violations = append(violations, field+": required")
		}
	}
	if l.Price <= 0 {
		violations = append(violations, "price: must be greater than 0")
	}
	if l.StarRating < MinStarRating || l.StarRating > MaxStarRating {
		violations = append(violations, fmt.Sprintf("starRating: must be between %d and %d", MinStarRating, MaxStarRating))
	}
	if l.CustomerRating < MinCustomerRating || l.CustomerRating > MaxCustomerRating {
		violations = append(violations, fmt.Sprintf("customerRating: must be between %d and %d", MinCustomerRating, MaxCustomerRating))
	}
	if !l.Category.IsValid() {
		violations = append(violations, "category: must be one of HOTEL, HOSTEL, DEPARTMENT, BED_AND_BREAKFAST")
	}
	if !l.AvailableFrom.Before(l.AvailableTo) {
		violations = append(violations, "availableFrom: must be before availableTo")
	}
	if l.MaxOccupancy < 1 {
		violations = append(violations, "maxOccupancy: must be at least 1")
	}
	if !isClock(l.CheckInTime) {
		violations = append(violations, "checkInTime: must be HH:MM")
	}
	if !isClock(l.CheckOutTime) {
		violations = append(violations, "checkOutTime: must be HH:MM")
	}

	if len(violations) == 0 {
		return nil
	}
	sort.Strings(violations)

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
}

// IsAvailableOn reports whether t falls inside the validity window.
func (l *Lodging) IsAvailableOn(t time.Time) bool {
	return !t.Before(l.AvailableFrom) && t.Before(l.AvailableTo)
}

func isClock(s string) bool {
	_, err := time.Parse(clockLayout, s)

	return err == nil
}
