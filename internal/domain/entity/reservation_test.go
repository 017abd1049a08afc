package entity

import (
	"testing"
	"time"

	domainerrors "lodging/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation_RejectsNonIncreasingWindow(t *testing.T) {
	start := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)

	for _, end := range []time.Time{start, start.Add(-time.Hour)} {
		r, err := NewReservation(uuid.New(), uuid.New(), start, end)

		assert.Nil(t, r)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStayWindow))
	}
}

func TestNewReservation_Valid(t *testing.T) {
	customerID, lodgingID := uuid.New(), uuid.New()
	start := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	r, err := NewReservation(customerID, lodgingID, start, end)

	require.NoError(t, err)
	assert.Equal(t, customerID, r.CustomerID)
	assert.Equal(t, lodgingID, r.LodgingID)
	assert.Equal(t, 3, r.Nights())
}

func TestReservation_Overlaps(t *testing.T) {
	start := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	r, err := NewReservation(uuid.New(), uuid.New(), start, start.AddDate(0, 0, 5))
	require.NoError(t, err)

	assert.True(t, r.Overlaps(start.AddDate(0, 0, 2), start.AddDate(0, 0, 8)))
	assert.True(t, r.Overlaps(start.AddDate(0, 0, -2), start.AddDate(0, 0, 1)))
	// Back-to-back stays share only the boundary.
	assert.False(t, r.Overlaps(start.AddDate(0, 0, 5), start.AddDate(0, 0, 7)))
	assert.False(t, r.Overlaps(start.AddDate(0, 0, -3), start))
}
