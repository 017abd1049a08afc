package validation

import (
	"testing"
	"time"

	domainerrors "lodging/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string     `json:"name" validate:"required,nonblank"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Birth    time.Time  `json:"dateOfBirth" validate:"required,notfuture"`
	Expiry   *time.Time `json:"passportExpiry,omitempty" validate:"omitempty,notpast"`
	Phone    *string    `json:"phone,omitempty" validate:"omitempty,e164"`
	Nickname *string    `json:"nickname,omitempty" validate:"omitempty,nonblank"`
}

func validSample() sample {
	return sample{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cretpass",
		Birth:    time.Now().AddDate(-30, 0, 0),
	}
}

func TestStruct_Valid(t *testing.T) {
	s := validSample()
	expiry := time.Now().AddDate(1, 0, 0)
	phone := "+34600111222"
	s.Expiry = &expiry
	s.Phone = &phone

	assert.NoError(t, Struct(&s))
}

func TestStruct_ReportsFieldsByJSONName(t *testing.T) {
	s := validSample()
	s.Email = "not-an-email"
	s.Password = "short"
	s.Birth = time.Now().AddDate(0, 0, 1)

	err := Struct(&s)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "dateOfBirth: must not be in the future")
	assert.Contains(t, err.Error(), "email: must be a valid email")
	assert.Contains(t, err.Error(), "password: must be at least 8")
}

func TestStruct_OptionalPointers(t *testing.T) {
	s := validSample()
	expired := time.Now().AddDate(0, -1, 0)
	phone := "555-1234"
	blank := "   "
	s.Expiry = &expired
	s.Phone = &phone
	s.Nickname = &blank

	err := Struct(&s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "passportExpiry: must not be in the past")
	assert.Contains(t, err.Error(), "phone: must be an E.164 phone number")
	assert.Contains(t, err.Error(), "nickname: required")
}

func TestStruct_BlankRequiredString(t *testing.T) {
	s := validSample()
	s.Name = "  "

	err := Struct(&s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name: required")
}
