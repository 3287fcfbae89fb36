package errors

import (
	"errors"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("name is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("project", "123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "project not found: 123" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "project not found: 123")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "project" {
		t.Errorf("NewNotFoundError should set resource context")
	}

	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "123" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewDuplicateNameError(t *testing.T) {
	err := NewDuplicateNameError("project", "Website Redesign")

	if err.Type != ErrorTypeDuplicate {
		t.Errorf("NewDuplicateNameError type = %v, want %v", err.Type, ErrorTypeDuplicate)
	}
	if err.Message != "project already exists: Website Redesign" {
		t.Errorf("NewDuplicateNameError message = %v", err.Message)
	}
	if err.Code != "DUPLICATE_NAME" {
		t.Errorf("NewDuplicateNameError code = %v, want DUPLICATE_NAME", err.Code)
	}

	name, ok := err.GetContext("name")
	if !ok || name != "Website Redesign" {
		t.Errorf("NewDuplicateNameError should set name context")
	}
}

func TestNewNotTrackingError(t *testing.T) {
	err := NewNotTrackingError()

	if err.Type != ErrorTypeNotTracking {
		t.Errorf("NewNotTrackingError type = %v, want %v", err.Type, ErrorTypeNotTracking)
	}
	if err.Code != "NOT_TRACKING" {
		t.Errorf("NewNotTrackingError code = %v, want NOT_TRACKING", err.Code)
	}
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("create project", cause)

	if err.Type != ErrorTypeDatabase {
		t.Errorf("NewDatabaseError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Message != "database operation failed: create project" {
		t.Errorf("NewDatabaseError message = %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("NewDatabaseError cause = %v, want %v", err.Cause, cause)
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "create project" {
		t.Errorf("NewDatabaseError should set operation context")
	}
}

func TestIsErrorType(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType ErrorType
		expected  bool
	}{
		{"matching type", NewNotFoundError("project", "x"), ErrorTypeNotFound, true},
		{"non-matching type", NewNotFoundError("project", "x"), ErrorTypeDuplicate, false},
		{"wrapped app error", WrapError(NewNotTrackingError(), ErrorTypeNotTracking, "stop failed"), ErrorTypeNotTracking, true},
		{"plain error", errors.New("plain"), ErrorTypeDatabase, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsErrorType(tt.err, tt.errorType); got != tt.expected {
				t.Errorf("IsErrorType() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "not found passes through",
			err:      NewNotFoundError("project", "alpha"),
			expected: "project not found: alpha",
		},
		{
			name:     "duplicate passes through",
			err:      NewDuplicateNameError("project", "alpha"),
			expected: "project already exists: alpha",
		},
		{
			name:     "database error is masked",
			err:      NewDatabaseError("query sessions", errors.New("locked")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "plain error passes through",
			err:      errors.New("something else"),
			expected: "something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	if ShouldLogError(NewNotTrackingError()) {
		t.Errorf("user errors should not be logged")
	}
	if !ShouldLogError(NewDatabaseError("open", errors.New("boom"))) {
		t.Errorf("database errors should be logged")
	}
	if !ShouldLogError(errors.New("unknown")) {
		t.Errorf("unknown errors should be logged")
	}
}
