package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"recruitdesk/internal/adapter"
	"recruitdesk/pkg/models"
	"recruitdesk/pkg/utils"
)

// requestID returns the request ID set by the validation middleware
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

// readBody drains the request body for the parse-and-validate boundary
func readBody(c echo.Context) ([]byte, error) {
	return io.ReadAll(c.Request().Body)
}

// errorJSON writes a uniform error response
func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID(c),
		Timestamp: time.Now(),
	})
}

// respondError maps an adapter/validation error onto the HTTP error taxonomy
func respondError(c echo.Context, err error) error {
	var fieldErr *models.FieldError
	var customErr *utils.CustomError
	var validationErrs validator.ValidationErrors

	switch {
	case adapter.IsNotFound(err):
		return errorJSON(c, http.StatusNotFound, "not_found", "Record not found")

	case errors.As(err, &fieldErr):
		return errorJSON(c, http.StatusBadRequest, "validation_failed", fieldErr.Error())

	case errors.As(err, &validationErrs):
		return errorJSON(c, http.StatusBadRequest, "validation_failed", validationErrs.Error())

	case errors.As(err, &customErr):
		return errorJSON(c, customErr.Code, "request_failed", customErr.Error())

	case errors.Is(err, adapter.ErrNoBackend), adapter.IsTransport(err):
		return errorJSON(c, http.StatusBadGateway, "storage_unavailable", err.Error())

	default:
		return errorJSON(c, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
