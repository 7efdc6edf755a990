package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewTimeoutError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusRequestTimeout,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

func NewNotFoundError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusNotFound,
		Message: "Record not found",
		Detail:  detail,
	}
}

func NewUnauthorizedError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
		Detail:  detail,
	}
}

// NewStorageError returns an error for a failed persistence operation
func NewStorageError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "Storage operation failed",
		Detail:  detail,
	}
}
