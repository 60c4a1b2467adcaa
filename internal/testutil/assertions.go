package testutil

import (
	"errors"
	"testing"

	apperrors "rentorbuy/internal/errors"
	"rentorbuy/internal/simulation"
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

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertFieldRejected checks that err is an INVALID_INPUT AppError whose
// details name field.
func AssertFieldRejected(t *testing.T, err error, field string) {
	t.Helper()

	AssertAppError(t, err, apperrors.ErrInvalidInput.Code)

	var appErr *apperrors.AppError
	errors.As(err, &appErr)
	fields, ok := appErr.Details.([]simulation.FieldError)
	if !ok {
		t.Fatalf("expected []simulation.FieldError details, got %T", appErr.Details)
	}
	for _, f := range fields {
		if f.Field == field {
			return
		}
	}
	t.Errorf("expected %q among rejected fields, got %+v", field, fields)
}
