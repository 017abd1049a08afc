package entity

import (
	"testing"
	"time"

	domainerrors "lodging/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLodgingParams() LodgingParams {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	return LodgingParams{
		Name:           "Hotel Sol",
		Address:        "Calle Mayor 1",
		City:           "Madrid",
		Country:        "Spain",
		Price:          120,
		StarRating:     4,
		CustomerRating: 8.5,
		Category:       CategoryHotel,
		AvailableFrom:  from,
		AvailableTo:    from.AddDate(1, 0, 0),
		MaxOccupancy:   2,
		CheckInTime:    "14:00",
		CheckOutTime:   "11:00",
	}
}

func TestNewLodging_Valid(t *testing.T) {
	l, err := NewLodging(validLodgingParams())

	require.NoError(t, err)
	assert.NotEqual(t, "", l.ID.String())
	assert.Equal(t, "Hotel Sol", l.Name)
}

func TestNewLodging_Invariants(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(p *LodgingParams)
		contains string
	}{
		{"blank name", func(p *LodgingParams) { p.Name = "  " }, "name: required"},
		{"zero price", func(p *LodgingParams) { p.Price = 0 }, "price"},
		{"stars too high", func(p *LodgingParams) { p.StarRating = 6 }, "starRating"},
		{"stars too low", func(p *LodgingParams) { p.StarRating = 0 }, "starRating"},
		{"rating too high", func(p *LodgingParams) { p.CustomerRating = 10.5 }, "customerRating"},
		{"unknown category", func(p *LodgingParams) { p.Category = "CASTLE" }, "category"},
		{"empty window", func(p *LodgingParams) { p.AvailableTo = p.AvailableFrom }, "availableFrom"},
		{"no occupancy", func(p *LodgingParams) { p.MaxOccupancy = 0 }, "maxOccupancy"},
		{"bad check-in", func(p *LodgingParams) { p.CheckInTime = "2pm" }, "checkInTime"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validLodgingParams()
			tc.mutate(&p)

			l, err := NewLodging(p)

			assert.Nil(t, l)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestLodging_IsAvailableOn(t *testing.T) {
	l, err := NewLodging(validLodgingParams())
	require.NoError(t, err)

	assert.True(t, l.IsAvailableOn(l.AvailableFrom))
	assert.True(t, l.IsAvailableOn(l.AvailableFrom.AddDate(0, 6, 0)))
	assert.False(t, l.IsAvailableOn(l.AvailableTo))
	assert.False(t, l.IsAvailableOn(l.AvailableFrom.Add(-time.Second)))
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("bed-and-breakfast")
	assert.True(t, ok)
	assert.Equal(t, CategoryBedAndBreakfast, c)

	c, ok = ParseCategory(" hostel ")
	assert.True(t, ok)
	assert.Equal(t, CategoryHostel, c)

	_, ok = ParseCategory("motel")
	assert.False(t, ok)

	assert.Len(t, Categories(), 4)
}
