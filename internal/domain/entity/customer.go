package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is an account able to log in and book lodgings.
// PasswordHash always holds a salted digest, never the plaintext.
type Customer struct {
	ID             uuid.UUID  // The Global Unique Identifier (GUID) for the customer.
	Username       string     // Unique, case-sensitive login name. Immutable after registration.
	Email          string     // Unique contact email, stored lower-cased.
	PasswordHash   string     // Salted one-way digest of the password.
	FirstName      string     // Given name.
	LastName       string     // Family name.
	DateOfBirth    time.Time  // Source of the derived age. Zero when unknown.
	PassportNumber *string    // Optional passport number.
	PassportExpiry *time.Time // Optional passport expiry date.
	Phone          *string    // Optional phone number in E.164 form.
	Country        string     // Country of residence, may be empty.
	Role           Role       // Access level, RoleCustomer unless promoted.
	Timestamps
}

// Age returns the customer's age in whole years at the given instant.
func (c *Customer) Age(now time.Time) int {
	if c.DateOfBirth.IsZero() {
		return 0
	}

	years := now.Year() - c.DateOfBirth.Year()
	if now.Month() < c.DateOfBirth.Month() ||
		(now.Month() == c.DateOfBirth.Month() && now.Day() < c.DateOfBirth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}

	return years
}

// HasPassport reports whether passport details are on file.
func (c *Customer) HasPassport() bool {
	return c.PassportNumber != nil && *c.PassportNumber != ""
}

// PassportExpiresBefore reports whether the passport on file expires before t.
func (c *Customer) PassportExpiresBefore(t time.Time) bool {
	return c.PassportExpiry != nil && c.PassportExpiry.Before(t)
}
