// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"lodging/config"
	deliverycontext "lodging/internal/delivery/context"
	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/repository"
	"lodging/internal/domain/service"
	"lodging/internal/usecase"
	"lodging/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPassportExpiryHorizon = 90 * 24 * time.Hour

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager     repository.TransactionManager
	customerRepo  repository.CustomerRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	expiryHorizon time.Duration
	now           func() time.Time
	logger        *slog.Logger

	// dummyDigest is checked for unknown usernames so both login failures cost a hash comparison.
	dummyDigest     string
	dummyDigestOnce sync.Once
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	horizon := defaultPassportExpiryHorizon
	if params.Config != nil && params.Config.Customer != nil && params.Config.Customer.PassportExpiryHorizon > 0 {
		horizon = params.Config.Customer.PassportExpiryHorizon
	}

	return &customerService{
		txManager:     params.TxManager,
		customerRepo:  params.CustomerRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		expiryHorizon: horizon,
		now:           time.Now,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loginDummyDigest hashes a random secret once with the configured hasher.
func (srv *customerService) loginDummyDigest(ctx context.Context) string {
	srv.dummyDigestOnce.Do(func() {
		digest, err := srv.hasher.Hash(uuid.NewString())
		if err != nil {
			srv.log(ctx).Warn("Failed to prepare dummy login digest", slog.Any("error", err))

			return
		}
		srv.dummyDigest = digest
	})

	return srv.dummyDigest
}

// Login verifies the credentials and issues a bearer token whose subject is
// the username. Unknown usernames and wrong passwords fail identically.
func (srv *customerService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	customer, err := srv.customerRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			srv.hasher.Check(input.Password, srv.loginDummyDigest(ctx))
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	if !srv.hasher.Check(input.Password, customer.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(customer.Username, map[string]any{
		service.ClaimScope:      customer.Role.Scope(),
		service.ClaimCustomerID: customer.ID.String(),
	}, srv.tokenService.DefaultTTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("customerID", customer.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Info("Customer logged in", slog.Any("customerID", customer.ID))

	return &usecase.LoginOutput{Token: token, Customer: customer}, nil
}

// Create registers a new customer with the CUSTOMER role.
func (srv *customerService) Create(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	var created *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		if err := srv.ensureUsernameFree(ctx, customerRepo, input.Username); err != nil {
			return err
		}
		if err := srv.ensureEmailFree(ctx, customerRepo, email); err != nil {
			return err
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		customer := &entity.Customer{
			ID:             uuid.New(),
			Username:       input.Username,
			Email:          email,
			PasswordHash:   hash,
			FirstName:      strings.TrimSpace(input.FirstName),
			LastName:       strings.TrimSpace(input.LastName),
			PassportNumber: input.PassportNumber,
			PassportExpiry: input.PassportExpiry,
			Phone:          input.Phone,
			Country:        strings.TrimSpace(input.Country),
			Role:           entity.RoleCustomer,
		}
		if input.DateOfBirth != nil {
			customer.DateOfBirth = *input.DateOfBirth
		}

		if err := customerRepo.Create(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to create customer")
		}
		created = customer

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Customer registered", slog.Any("customerID", created.ID))

	return created, nil
}

// Update applies a partial update. Only the fields present are validated and changed.
func (srv *customerService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateCustomerInput) (*entity.Customer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var updated *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		customer, err := customerRepo.FindByID(ctx, id)
		if err != nil {
			return mapCustomerError(err, "failed to find customer")
		}
		if input.IsEmpty() {
			updated = customer

			return nil
		}

		if err := srv.applyCustomerUpdate(ctx, customerRepo, customer, input); err != nil {
			return err
		}

		if err := customerRepo.Update(ctx, customer); err != nil {
			return mapCustomerError(err, "failed to update customer")
		}
		updated = customer

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Customer updated", slog.Any("customerID", id))

	return updated, nil
}

func (srv *customerService) applyCustomerUpdate(
	ctx context.Context,
	customerRepo repository.CustomerRepository,
	customer *entity.Customer,
	input *usecase.UpdateCustomerInput,
) error {
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email != customer.Email {
			if err := srv.ensureEmailFree(ctx, customerRepo, email); err != nil {
				return err
			}
			customer.Email = email
		}
	}
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		customer.PasswordHash = hash
	}
	if input.FirstName != nil {
		customer.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		customer.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.DateOfBirth != nil {
		customer.DateOfBirth = *input.DateOfBirth
	}
	if input.PassportNumber != nil {
		customer.PassportNumber = input.PassportNumber
	}
	if input.PassportExpiry != nil {
		customer.PassportExpiry = input.PassportExpiry
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Country != nil {
		customer.Country = strings.TrimSpace(*input.Country)
	}

	return nil
}

// Delete removes a customer. A second delete of the same id reports not found.
func (srv *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		exists, err := customerRepo.ExistsByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to check customer")
		}
		if !exists {
			return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
		}

		if err := customerRepo.Delete(ctx, id); err != nil {
			return mapCustomerError(err, "failed to delete customer")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Customer deleted", slog.Any("customerID", id))

	return nil
}

func (srv *customerService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCustomerError(err, "failed to find customer")
	}

	return customer, nil
}

func (srv *customerService) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// FindByCountry lists customers living in country, ignoring case.
func (srv *customerService) FindByCountry(ctx context.Context, country string) (*usecase.CustomerListOutput, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("country: required")
	}

	customers, err := srv.customerRepo.FindByCountry(ctx, country)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customers by country")
	}

	return listOutput(customers), nil
}

// FindByPassportExpiryBefore lists customers whose passport expires strictly before the given instant.
func (srv *customerService) FindByPassportExpiryBefore(ctx context.Context, before time.Time) (*usecase.CustomerListOutput, error) {
	if before.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("before: required")
	}

	customers, err := srv.customerRepo.FindByPassportExpiryBefore(ctx, before)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customers by passport expiry")
	}

	return listOutput(customers), nil
}

// GetStatistics aggregates the whole customer base. Nothing is stored.
func (srv *customerService) GetStatistics(ctx context.Context) (*entity.CustomerStatistics, error) {
	customers, err := srv.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load customers for statistics")
	}

	return entity.ComputeCustomerStatistics(customers, srv.now(), srv.expiryHorizon), nil
}

// Promote grants the admin role to an existing customer.
func (srv *customerService) Promote(ctx context.Context, username string) (*entity.Customer, error) {
	var promoted *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		customer, err := customerRepo.FindByUsername(ctx, username)
		if err != nil {
			return mapCustomerError(err, "failed to find customer")
		}
		if customer.Role == entity.RoleAdmin {
			promoted = customer

			return nil
		}

		customer.Role = entity.RoleAdmin
		if err := customerRepo.Update(ctx, customer); err != nil {
			return mapCustomerError(err, "failed to promote customer")
		}
		promoted = customer

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Customer promoted", slog.Any("customerID", promoted.ID))

	return promoted, nil
}

func (srv *customerService) ensureUsernameFree(ctx context.Context, customerRepo repository.CustomerRepository, username string) error {
	taken, err := customerRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if taken {
		return errors.Wrap(domainerrors.ErrDuplicateUser, "username already registered")
	}

	return nil
}

func (srv *customerService) ensureEmailFree(ctx context.Context, customerRepo repository.CustomerRepository, email string) error {
	taken, err := customerRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	if taken {
		return errors.Wrap(domainerrors.ErrDuplicateUser, "email already registered")
	}

	return nil
}

func mapCustomerError(err error, msg string) error {
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return errors.Wrap(domainerrors.ErrCustomerNotFound, msg)
	}

	return errors.Wrap(err, msg)
}

func listOutput(customers []*entity.Customer) *usecase.CustomerListOutput {
	return &usecase.CustomerListOutput{
		Customers:  customers,
		HasResults: len(customers) > 0,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
