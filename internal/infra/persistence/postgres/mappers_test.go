package postgres

import (
	"testing"
	"time"

	"lodging/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCustomerMapping(t *testing.T) {
	passport := "P123"
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	customer := &entity.Customer{
		ID:             uuid.New(),
		Username:       "ana",
		Email:          "Ana@Example.COM",
		PasswordHash:   "$2a$digest",
		FirstName:      "Ana",
		LastName:       "Lopez",
		DateOfBirth:    time.Date(1990, 3, 4, 0, 0, 0, 0, time.UTC),
		PassportNumber: &passport,
		PassportExpiry: &expiry,
		Country:        "Spain",
	}

	m := fromCustomerDomain(customer)
	assert.Equal(t, "ana@example.com", m.Email)
	assert.Equal(t, "CUSTOMER", m.Role, "unset role defaults to customer")

	back := toCustomerDomain(m)
	assert.Equal(t, customer.ID, back.ID)
	assert.Equal(t, entity.RoleCustomer, back.Role)
	assert.Equal(t, &passport, back.PassportNumber)
	assert.Nil(t, back.Phone)

	assert.Nil(t, toCustomerDomain(nil))
	assert.Nil(t, fromCustomerDomain(nil))
}

func TestLodgingAndReservationMapping(t *testing.T) {
	lodging := &entity.Lodging{
		ID:       uuid.New(),
		Name:     "Hostel Uno",
		Category: entity.CategoryHostel,
		Price:    30,
	}
	lm := fromLodgingDomain(lodging)
	assert.Equal(t, "HOSTEL", lm.Category)
	assert.Equal(t, entity.CategoryHostel, toLodgingDomain(lm).Category)

	reservation := &entity.Reservation{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		LodgingID:  lodging.ID,
		StartDate:  time.Date(2026, 7, 1, 14, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 7, 3, 11, 0, 0, 0, time.UTC),
	}
	rm := fromReservationDomain(reservation)
	assert.Nil(t, rm.Customer)
	assert.Equal(t, reservation.StartDate, toReservationDomain(rm).StartDate)
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(errFromString(`ERROR: duplicate key value violates unique constraint "idx_customers_username" (SQLSTATE 23505)`)))
	assert.True(t, isForeignKeyConstraintViolation(errFromString("violates foreign key constraint (SQLSTATE 23503)")))
	assert.True(t, isCheckConstraintViolation(errFromString("violates check constraint (SQLSTATE 23514)")))
	assert.True(t, isNotNullConstraintViolation(errFromString("null value in column violates not-null constraint")))
	assert.False(t, isUniqueConstraintViolation(errFromString("connection refused")))
}

type stringError string

func (e stringError) Error() string { return string(e) }

func errFromString(s string) error { return stringError(s) }
