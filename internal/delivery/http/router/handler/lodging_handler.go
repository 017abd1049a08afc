package handler

import (
	"net/http"

	"lodging/internal/delivery/http/response"
	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LodgingHandler serves the lodging catalogue.
type LodgingHandler struct {
	uc usecase.LodgingUsecase
}

// LodgingHandlerParams holds dependencies for LodgingHandler, injected by Fx.
type LodgingHandlerParams struct {
	fx.In

	Usecase usecase.LodgingUsecase
}

// NewLodgingHandler is the constructor for LodgingHandler.
func NewLodgingHandler(params LodgingHandlerParams) *LodgingHandler {
	return &LodgingHandler{uc: params.Usecase}
}

// Search lists lodgings. availableOn takes a YYYY-MM-DD date.
func (h *LodgingHandler) Search(c echo.Context) error {
	var input usecase.SearchLodgingsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if raw := c.QueryParam("availableOn"); raw != "" {
		on, err := entity.ParseDate(raw)
		if err != nil {
			return domainerrors.ErrInvalidDateFormat.WithDetails("availableOn: " + err.Error())
		}
		input.AvailableOn = &on
	}

	lodgings, err := h.uc.Search(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*LodgingResponse, 0, len(lodgings))
	for _, l := range lodgings {
		out = append(out, toLodgingResponse(l))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *LodgingHandler) Get(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrLodgingNotFound)
	if err != nil {
		return err
	}

	lodging, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLodgingResponse(lodging), "")
}

func (h *LodgingHandler) Create(c echo.Context) error {
	var input usecase.CreateLodgingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lodging input")
	}

	lodging, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toLodgingResponse(lodging), "Lodging created successfully")
}

func (h *LodgingHandler) Update(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrLodgingNotFound)
	if err != nil {
		return err
	}

	var input usecase.UpdateLodgingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lodging input")
	}

	lodging, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLodgingResponse(lodging), "Lodging updated successfully")
}

func (h *LodgingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrLodgingNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
