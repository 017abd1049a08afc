package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCustomer_Age(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	c := &Customer{DateOfBirth: time.Date(1990, 6, 16, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 35, c.Age(now))

	c.DateOfBirth = time.Date(1990, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 36, c.Age(now))

	assert.Equal(t, 0, (&Customer{}).Age(now))
}

func TestComputeCustomerStatistics(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	horizon := 90 * 24 * time.Hour

	customers := []*Customer{
		{
			Country:        "Spain",
			DateOfBirth:    time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC),
			PassportNumber: ptr("X1"),
			PassportExpiry: ptr(now.AddDate(0, 1, 0)),
		},
		{
			Country:        "Spain",
			DateOfBirth:    time.Date(1986, 1, 1, 0, 0, 0, 0, time.UTC),
			PassportNumber: ptr("X2"),
			PassportExpiry: ptr(now.AddDate(2, 0, 0)),
		},
		{
			Country:        "Chile",
			DateOfBirth:    time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			PassportNumber: ptr("X3"),
			PassportExpiry: ptr(now.AddDate(0, -1, 0)),
		},
		{
			Country:     "Chile",
			DateOfBirth: time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			// No birth date or country on file.
		},
	}

	stats := ComputeCustomerStatistics(customers, now, horizon)

	assert.Equal(t, 5, stats.TotalCustomers)
	assert.Equal(t, map[string]int{"Spain": 2, "Chile": 2}, stats.CustomersByCountry)
	assert.InDelta(t, (30.0+40.0+26.0+20.0)/4, stats.AverageAge, 0.001)
	assert.Equal(t, 1, stats.PassportsExpiringSoon)
	assert.Equal(t, 2, stats.CustomersWithoutPassport)
}

func TestComputeCustomerStatistics_Empty(t *testing.T) {
	stats := ComputeCustomerStatistics(nil, time.Now(), time.Hour)

	assert.Equal(t, 0, stats.TotalCustomers)
	assert.Zero(t, stats.AverageAge)
	assert.NotNil(t, stats.CustomersByCountry)
}
