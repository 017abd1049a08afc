package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"offset", "2026-05-01T14:00:00+02:00", time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"zulu", "2026-05-01T14:00:00Z", time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)},
		{"local seconds", "2026-05-01T14:00:30", time.Date(2026, 5, 1, 14, 0, 30, 0, time.UTC)},
		{"local fraction", "2026-05-01T14:00:30.5", time.Date(2026, 5, 1, 14, 0, 30, 500000000, time.UTC)},
		{"local minutes", "2026-05-01T14:00", time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDateTime(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2026-05-01", "01/05/2026 14:00", "2026-13-01T10:00"} {
		_, err := ParseDateTime(input)
		assert.Error(t, err, input)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-07-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("2026-07-01T00:00")
	assert.Error(t, err)
}
