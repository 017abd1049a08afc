package handler

import (
	"net/http"

	"lodging/internal/delivery/http/response"
	"lodging/internal/domain/service"
	"lodging/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandler serves login and the public signing keys.
type AuthHandler struct {
	uc       usecase.CustomerUsecase
	tokenSvc service.TokenService
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Usecase      usecase.CustomerUsecase
	TokenService service.TokenService
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:       params.Usecase,
		tokenSvc: params.TokenService,
	}
}

// Login handles the customer login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AuthToken: output.Token.Token,
		Type:      usecase.TokenType,
		ExpiresIn: output.Token.ExpiresIn(),
		Customer: LoginCustomerRef{
			ID:        output.Customer.ID,
			Username:  output.Customer.Username,
			FirstName: output.Customer.FirstName,
			LastName:  output.Customer.LastName,
		},
	}, "Login successful")
}

// JWKS publishes the verification keys as a standard JSON Web Key Set.
func (h *AuthHandler) JWKS(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")

	return c.JSON(http.StatusOK, h.tokenSvc.PublicKeySet())
}
