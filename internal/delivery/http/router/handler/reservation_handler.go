package handler

import (
	"net/http"

	"lodging/internal/delivery/http/middleware"
	"lodging/internal/delivery/http/response"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReservationHandler serves bookings.
type ReservationHandler struct {
	uc usecase.ReservationUsecase
}

// ReservationHandlerParams holds dependencies for ReservationHandler, injected by Fx.
type ReservationHandlerParams struct {
	fx.In

	Usecase usecase.ReservationUsecase
}

// NewReservationHandler is the constructor for ReservationHandler.
func NewReservationHandler(params ReservationHandlerParams) *ReservationHandler {
	return &ReservationHandler{uc: params.Usecase}
}

// Create books a lodging. Customers book for themselves; an omitted
// customerId defaults to the caller. Admins may book for anyone.
// Ownership is checked before existence, so a non-admin naming another
// customer id gets 403 even when that customer does not exist.
func (h *ReservationHandler) Create(c echo.Context) error {
	var input usecase.CreateReservationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	callerID, ok := middleware.CustomerIDFrom(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	if input.CustomerID == "" {
		input.CustomerID = callerID.String()
	}
	if !middleware.IsAdmin(c) && input.CustomerID != callerID.String() {
		return domainerrors.ErrForbidden.WithDetails("customers can only book for themselves")
	}

	reservation, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toReservationResponse(reservation), "Reservation created successfully")
}

// List returns every reservation.
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReservationResponses(reservations), "")
}

// ListByCustomer returns the reservations of the customer in the path.
func (h *ReservationHandler) ListByCustomer(c echo.Context) error {
	customerID, err := pathID(c, domainerrors.ErrCustomerNotFound)
	if err != nil {
		return err
	}
	if err := middleware.RequireSelfOrAdmin(c, customerID); err != nil {
		return err
	}

	reservations, err := h.uc.FindByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReservationResponses(reservations), "")
}

func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrReservationNotFound)
	if err != nil {
		return err
	}

	reservation, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := middleware.RequireSelfOrAdmin(c, reservation.CustomerID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toReservationResponse(reservation), "")
}

// Cancel deletes a reservation owned by the caller.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrReservationNotFound)
	if err != nil {
		return err
	}

	reservation, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := middleware.RequireSelfOrAdmin(c, reservation.CustomerID); err != nil {
		return err
	}

	if err := h.uc.Cancel(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
