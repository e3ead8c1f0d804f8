package testutil

import (
	"errors"
	"testing"

	apperrors "tally/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertPartialFailure checks that err is a *PartialFailure whose underlying
// cause carries the expected error code.
func AssertPartialFailure(t *testing.T, err error, expectedFailedStep, expectedCode string) *apperrors.PartialFailure {
	t.Helper()

	if err == nil {
		t.Fatalf("expected PartialFailure, got nil")
	}

	var partial *apperrors.PartialFailure
	if !errors.As(err, &partial) {
		t.Fatalf("expected *PartialFailure, got %T: %v", err, err)
	}

	if partial.Failed != expectedFailedStep {
		t.Errorf("expected failed step %q, got %q", expectedFailedStep, partial.Failed)
	}
	if expectedCode != "" {
		AssertAppError(t, partial.Err, expectedCode)
	}
	return partial
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
