// Package response defines the JSON envelope returned by every HTTP endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CUSTOMER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Created 201 response
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// NoContent 204 response, used for deletes and empty filtered reads
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}
