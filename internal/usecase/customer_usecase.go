// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"lodging/internal/domain/entity"
	"lodging/internal/domain/service"

	"github.com/google/uuid"
)

// TokenType is the scheme returned alongside issued tokens.
const TokenType = "Bearer"

// --- Input DTOs ---

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateCustomerInput defines the data required to register a customer.
type CreateCustomerInput struct {
	Username       string     `json:"username" validate:"required,nonblank,min=3,max=50"`
	Email          string     `json:"email" validate:"required,email,max=255"`
	Password       string     `json:"password" validate:"required,min=8,max=72"`
	FirstName      string     `json:"firstName" validate:"required,nonblank,max=100"`
	LastName       string     `json:"lastName" validate:"required,nonblank,max=100"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty" validate:"omitempty,notfuture"`
	PassportNumber *string    `json:"passportNumber,omitempty" validate:"omitempty,nonblank,max=50"`
	PassportExpiry *time.Time `json:"passportExpiry,omitempty" validate:"omitempty,notpast"`
	Phone          *string    `json:"phone,omitempty" validate:"omitempty,e164"`
	Country        string     `json:"country,omitempty" validate:"max=100"`
}

// UpdateCustomerInput carries a partial update. Nil fields are left untouched.
type UpdateCustomerInput struct {
	Email          *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password       *string    `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	FirstName      *string    `json:"firstName,omitempty" validate:"omitempty,nonblank,max=100"`
	LastName       *string    `json:"lastName,omitempty" validate:"omitempty,nonblank,max=100"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty" validate:"omitempty,notfuture"`
	PassportNumber *string    `json:"passportNumber,omitempty" validate:"omitempty,nonblank,max=50"`
	PassportExpiry *time.Time `json:"passportExpiry,omitempty" validate:"omitempty,notpast"`
	Phone          *string    `json:"phone,omitempty" validate:"omitempty,e164"`
	Country        *string    `json:"country,omitempty" validate:"omitempty,nonblank,max=100"`
}

// IsEmpty reports whether the update changes nothing.
func (in *UpdateCustomerInput) IsEmpty() bool {
	return in.Email == nil && in.Password == nil && in.FirstName == nil && in.LastName == nil &&
		in.DateOfBirth == nil && in.PassportNumber == nil && in.PassportExpiry == nil &&
		in.Phone == nil && in.Country == nil
}

// --- Output DTOs ---

// LoginOutput returns the issued token and the authenticated customer.
type LoginOutput struct {
	Token    *service.IssuedToken
	Customer *entity.Customer
}

// CustomerListOutput wraps a filtered read. HasResults lets the boundary
// answer with an empty-but-successful response.
type CustomerListOutput struct {
	Customers  []*entity.Customer
	HasResults bool
}

// CustomerUsecase defines the interface for customer-related business operations.
type CustomerUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Create(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
	FindByCountry(ctx context.Context, country string) (*CustomerListOutput, error)
	FindByPassportExpiryBefore(ctx context.Context, before time.Time) (*CustomerListOutput, error)
	GetStatistics(ctx context.Context) (*entity.CustomerStatistics, error)

	// Promote grants the admin role to an existing customer.
	Promote(ctx context.Context, username string) (*entity.Customer, error)
}
