package handler

import (
	"net/http"
	"time"

	"lodging/internal/delivery/http/middleware"
	"lodging/internal/delivery/http/response"
	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc  usecase.CustomerUsecase
	now func() time.Time
}

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	Usecase usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		uc:  params.Usecase,
		now: time.Now,
	}
}

type countryQuery struct {
	Country string `query:"country" validate:"required,nonblank"`
}

type passportQuery struct {
	Before string `query:"before" validate:"required"`
}

// Register handles the public customer registration request.
func (h *CustomerHandler) Register(c echo.Context) error {
	var input usecase.CreateCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	customer, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toCustomerResponse(customer, h.now()), "Customer registered successfully")
}

// List returns every customer.
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponses(customers, h.now()), "")
}

// Statistics returns the aggregate customer view.
func (h *CustomerHandler) Statistics(c echo.Context) error {
	stats, err := h.uc.GetStatistics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// SearchByCountry answers 204 when nobody lives in the country.
func (h *CustomerHandler) SearchByCountry(c echo.Context) error {
	var query countryQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.FindByCountry(c.Request().Context(), query.Country)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.list(c, out)
}

// PassportExpiring lists customers whose passport expires before the given date.
func (h *CustomerHandler) PassportExpiring(c echo.Context) error {
	var query passportQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	before, err := entity.ParseDate(query.Before)
	if err != nil {
		return domainerrors.ErrInvalidDateFormat.WithDetails("before: " + err.Error())
	}

	out, err := h.uc.FindByPassportExpiryBefore(c.Request().Context(), before)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.list(c, out)
}

func (h *CustomerHandler) list(c echo.Context, out *usecase.CustomerListOutput) error {
	if !out.HasResults {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, toCustomerResponses(out.Customers, h.now()), "")
}

// Get returns one customer to its owner or an admin.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrCustomerNotFound)
	if err != nil {
		return err
	}
	if err := middleware.RequireSelfOrAdmin(c, id); err != nil {
		return err
	}

	customer, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponse(customer, h.now()), "")
}

// Update applies a partial profile update.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrCustomerNotFound)
	if err != nil {
		return err
	}
	if err := middleware.RequireSelfOrAdmin(c, id); err != nil {
		return err
	}

	var input usecase.UpdateCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	customer, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponse(customer, h.now()), "Customer updated successfully")
}

// Delete removes a customer and answers 204.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrCustomerNotFound)
	if err != nil {
		return err
	}
	if err := middleware.RequireSelfOrAdmin(c, id); err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
