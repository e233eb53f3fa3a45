// Package response writes the JSON envelope every API route answers with.
package response

import (
	"net/http"

	"medrep/internal/domain/query"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	StatusCode int    `json:"statusCode"`
	// Code is the machine-readable error code; set on failures only.
	Code string `json:"code,omitempty"`
}

// JSON writes an envelope. Success is derived from the status code.
func JSON(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Envelope{
		Success:    statusCode < http.StatusBadRequest,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
	})
}

// Error writes a failure envelope with its business code.
func Error(c echo.Context, statusCode int, code, message string, data any) error {
	return c.JSON(statusCode, Envelope{
		Success:    false,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
		Code:       code,
	})
}

func Success(c echo.Context, data any, message string) error {
	return JSON(c, http.StatusOK, message, data)
}

func Created(c echo.Context, data any, message string) error {
	return JSON(c, http.StatusCreated, message, data)
}

// List writes a page of results. An empty page renders items as [].
func List[T any](c echo.Context, page *query.Page[T], message string) error {
	out := *page
	if out.Items == nil {
		out.Items = []T{}
	}

	return Success(c, out, message)
}

// BadRequest answers 400; data carries field errors when present.
func BadRequest(c echo.Context, message string, data any) error {
	return JSON(c, http.StatusBadRequest, message, data)
}

func Unauthorized(c echo.Context, message string) error {
	return JSON(c, http.StatusUnauthorized, message, nil)
}

func Forbidden(c echo.Context, message string) error {
	return JSON(c, http.StatusForbidden, message, nil)
}

func NotFound(c echo.Context, message string) error {
	return JSON(c, http.StatusNotFound, message, nil)
}

func InternalServerError(c echo.Context, message string) error {
	return JSON(c, http.StatusInternalServerError, message, nil)
}
