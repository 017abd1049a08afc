// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"lodging/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when a customer lookup matches no row.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the persistence operations for customers.
type CustomerRepository interface {
	// FindByID retrieves a single customer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByUsername retrieves a customer by its case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*entity.Customer, error)

	// FindByEmail retrieves a customer by email, ignoring case.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// ExistsByUsername reports whether the username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether the email is taken, ignoring case.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByID reports whether a customer with the id exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// FindAll returns every customer ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// FindByCountry returns the customers whose country matches, ignoring case.
	FindByCountry(ctx context.Context, country string) ([]*entity.Customer, error)

	// FindByPassportExpiryBefore returns customers whose passport expires strictly before t.
	FindByPassportExpiryBefore(ctx context.Context, t time.Time) ([]*entity.Customer, error)

	// Create persists a new customer.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update overwrites the stored customer with the same ID.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes the customer with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
