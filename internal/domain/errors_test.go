package domain

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with wrapped error",
			err:  &AppError{Code: CodeNotFound, Message: "gate not found", Err: errors.New("no such id")},
			want: "gate not found: no such id",
		},
		{
			name: "without wrapped error",
			err:  &AppError{Code: CodeNotFound, Message: "gate not found"},
			want: "gate not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("inner error")
	appErr := &AppError{Code: CodeInternal, Message: "something failed", Err: inner}

	if !errors.Is(appErr, inner) {
		t.Error("Unwrap() should allow errors.Is to find wrapped error")
	}

	appErr2 := &AppError{Code: CodeInternal, Message: "no wrap"}
	if appErr2.Unwrap() != nil {
		t.Error("Unwrap() should return nil when Err is nil")
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checkFn func(error) bool
		code    int
	}{
		{"ErrNotFound", ErrNotFound, IsNotFound, CodeNotFound},
		{"ErrDuplicateKey", ErrDuplicateKey, IsDuplicateKey, CodeAlreadyExists},
		{"ErrValidation", ErrValidation, IsValidation, CodeValidation},
		{"ErrInternal", ErrInternal, IsInternal, CodeInternal},
		{"ErrInvalidPagination", ErrInvalidPagination, IsInvalidPagination, CodeInvalidPagination},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var appErr *AppError
			if !errors.As(tt.err, &appErr) {
				t.Fatal("should be *AppError")
			}
			if appErr.Code != tt.code {
				t.Errorf("Code = %d; want %d", appErr.Code, tt.code)
			}
			if !tt.checkFn(tt.err) {
				t.Errorf("check function should return true for %s", tt.name)
			}
		})
	}
}

func TestIsCheckers_WithWrappedErrors(t *testing.T) {
	wrapped := NewAppError(CodeAlreadyExists, "gate code G1 already exists", ErrDuplicateKey)
	if !IsDuplicateKey(wrapped) {
		t.Error("IsDuplicateKey should detect wrapped ErrDuplicateKey")
	}
	if IsNotFound(wrapped) {
		t.Error("IsNotFound should return false for a duplicate key error")
	}
}

func TestIsCheckers_NonAppError(t *testing.T) {
	plainErr := errors.New("some error")
	checks := map[string]func(error) bool{
		"IsNotFound":          IsNotFound,
		"IsDuplicateKey":      IsDuplicateKey,
		"IsValidation":        IsValidation,
		"IsInternal":          IsInternal,
		"IsInvalidPagination": IsInvalidPagination,
	}
	for name, fn := range checks {
		if fn(plainErr) {
			t.Errorf("%s should return false for non-AppError", name)
		}
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"duplicate key", ErrDuplicateKey, http.StatusConflict},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"invalid pagination", ErrInvalidPagination, http.StatusBadRequest},
		{"internal", ErrInternal, http.StatusInternalServerError},
		{"custom not found", NewAppError(CodeNotFound, "custom", nil), http.StatusNotFound},
		{"unknown code", NewAppError(999, "unknown", nil), http.StatusInternalServerError},
		{"non-AppError", errors.New("plain"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusCode(tt.err); got != tt.want {
				t.Errorf("HTTPStatusCode() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	err := RequiredError("code")
	if !IsValidation(err) || err.Message != "code is required" {
		t.Errorf("RequiredError = %v", err)
	}
	err = InvalidValueError("status", "broken")
	if !IsValidation(err) || err.Message != `invalid status "broken"` {
		t.Errorf("InvalidValueError = %v", err)
	}
}
