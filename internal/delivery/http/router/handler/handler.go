// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"lodging/internal/delivery/http/response"
	domainerrors "lodging/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// pathID parses the :id path parameter. Malformed ids cannot match any
// record, so they are reported with the resource's not-found error.
func pathID(c echo.Context, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, notFound.WithDetails("no record with id " + c.Param("id"))
	}

	return id, nil
}
