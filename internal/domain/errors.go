package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for business rule violations.
const (
	CodeNotFound          = 1
	CodeAlreadyExists     = 2
	CodeValidation        = 3
	CodeInternal          = 4
	CodeInvalidPagination = 5
)

// AppError is a business rule violation reported back to the caller. It never
// represents a fatal condition: the operation that produced it left all state
// untouched.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined business errors.
//
// Match categories with the Is* helpers rather than errors.Is: the helpers
// compare codes, so freshly built errors from NewAppError match as well.
var (
	ErrNotFound          = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrDuplicateKey      = &AppError{Code: CodeAlreadyExists, Message: "duplicate key"}
	ErrValidation        = &AppError{Code: CodeValidation, Message: "validation error"}
	ErrInternal          = &AppError{Code: CodeInternal, Message: "internal error"}
	ErrInvalidPagination = &AppError{Code: CodeInvalidPagination, Message: "invalid pagination"}
)

// NewAppError creates a new AppError with the given code, message, and wrapped error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsDuplicateKey reports whether err is or wraps an AppError with CodeAlreadyExists.
func IsDuplicateKey(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsInternal reports whether err is or wraps an AppError with CodeInternal.
func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

// IsInvalidPagination reports whether err is or wraps an AppError with CodeInvalidPagination.
func IsInvalidPagination(err error) bool {
	return hasCode(err, CodeInvalidPagination)
}

func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatusCode maps an error to an HTTP status code.
// Errors that are not an *AppError map to http.StatusInternalServerError.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeNotFound:
			return http.StatusNotFound
		case CodeAlreadyExists:
			return http.StatusConflict
		case CodeValidation, CodeInvalidPagination:
			return http.StatusBadRequest
		case CodeInternal:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// RequiredError reports a missing mandatory field.
func RequiredError(field string) *AppError {
	return NewAppError(CodeValidation, field+" is required", nil)
}

// InvalidValueError reports a field holding a value outside its allowed set.
func InvalidValueError(field, value string) *AppError {
	return NewAppError(CodeValidation, fmt.Sprintf("invalid %s %q", field, value), nil)
}
