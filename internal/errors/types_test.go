package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"Duplicate", ErrorTypeDuplicate, "duplicate"},
		{"NotTracking", ErrorTypeNotTracking, "not_tracking"},
		{"Database", ErrorTypeDatabase, "database"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "invalid input",
			},
			expected: "validation: invalid input",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrorTypeDatabase,
				Message: "query failed",
				Cause:   errors.New("disk full"),
			},
			expected: "database: query failed (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appError.Error(); got != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &AppError{Type: ErrorTypeDatabase, Message: "wrapped", Cause: cause}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should unwrap to the cause")
	}
}

func TestAppError_Is(t *testing.T) {
	a := NewNotFoundError("project", "1")
	b := NewNotFoundError("project", "2")
	c := NewDuplicateNameError("project", "x")

	if !errors.Is(a, b) {
		t.Errorf("errors with the same type and code should match")
	}
	if errors.Is(a, c) {
		t.Errorf("errors with different types should not match")
	}
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation, Message: "bad name"}
	err.WithContext("field", "name")

	value, ok := err.GetContext("field")
	if !ok || value != "name" {
		t.Errorf("WithContext should store the value")
	}

	if _, ok := err.GetContext("missing"); ok {
		t.Errorf("GetContext should report missing keys")
	}
}
