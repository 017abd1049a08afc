package postgres

import (
	"context"
	"strings"
	"time"

	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/repository"
	"lodging/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindByID retrieves a single customer by its unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return repo.first(ctx, "failed to find customer by id", "id = ?", id)
}

// FindByUsername retrieves a customer by exact username.
func (repo *customerRepository) FindByUsername(ctx context.Context, username string) (*entity.Customer, error) {
	return repo.first(ctx, "failed to find customer by username", "username = ?", username)
}

// FindByEmail retrieves a customer by email ignoring case.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return repo.first(ctx, "failed to find customer by email", "LOWER(email) = ?", strings.ToLower(email))
}

func (repo *customerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return repo.exists(ctx, "username = ?", username)
}

func (repo *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "LOWER(email) = ?", strings.ToLower(email))
}

func (repo *customerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return repo.exists(ctx, "id = ?", id)
}

// FindAll returns every customer in registration order.
func (repo *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	return repo.find(repo.db.WithContext(ctx), "failed to list customers")
}

// FindByCountry returns customers whose country matches ignoring case.
func (repo *customerRepository) FindByCountry(ctx context.Context, country string) ([]*entity.Customer, error) {
	query := repo.db.WithContext(ctx).Where("LOWER(country) = ?", strings.ToLower(strings.TrimSpace(country)))

	return repo.find(query, "failed to find customers by country")
}

// FindByPassportExpiryBefore returns customers holding a passport that expires before t.
func (repo *customerRepository) FindByPassportExpiryBefore(ctx context.Context, t time.Time) ([]*entity.Customer, error) {
	query := repo.db.WithContext(ctx).Where("passport_expiry IS NOT NULL AND passport_expiry < ?", t)

	return repo.find(query, "failed to find customers by passport expiry")
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateUser.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// Update overwrites every mutable column of the stored customer.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{ID: customer.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(customerM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateUser.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// Delete removes the customer; its reservations go with it through the cascade.
func (repo *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CustomerModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func (repo *customerRepository) first(ctx context.Context, msg string, query string, args ...any) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toCustomerDomain(&customerM), nil
}

func (repo *customerRepository) find(query *gorm.DB, msg string) ([]*entity.Customer, error) {
	var customerMs []*model.CustomerModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&customerMs).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	customers := make([]*entity.Customer, 0, len(customerMs))
	for _, customerM := range customerMs {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

func (repo *customerRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).Where(query, args...).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check customer existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	customer := &entity.Customer{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		PassportNumber: data.PassportNumber,
		PassportExpiry: data.PassportExpiry,
		Phone:          data.Phone,
		Country:        data.Country,
		Role:           entity.Role(data.Role),
		Timestamps: entity.Timestamps{
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
	}
	if data.DateOfBirth != nil {
		customer.DateOfBirth = *data.DateOfBirth
	}

	return customer
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel for persistence.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if !role.IsValid() {
		role = entity.RoleCustomer
	}

	var dateOfBirth *time.Time
	if !data.DateOfBirth.IsZero() {
		dob := data.DateOfBirth
		dateOfBirth = &dob
	}

	return &model.CustomerModel{
		ID:             data.ID,
		Username:       data.Username,
		Email:          strings.ToLower(data.Email),
		PasswordHash:   data.PasswordHash,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		DateOfBirth:    dateOfBirth,
		PassportNumber: data.PassportNumber,
		PassportExpiry: data.PassportExpiry,
		Phone:          data.Phone,
		Country:        data.Country,
		Role:           role.String(),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
