// Package assert includes some helper methods used for testing
package assert

import (
	"errors"
	"testing"
)

// Errors checks the validity of the expected error and returns false if the assertion failed
// or there is nothing left to check because an error was expected.
func Errors(t *testing.T, expectError bool, err error, fields Fields) bool {
	t.Helper()

	if expectError && err == nil {
		t.Errorf("Expected an error, but received 'nil' (%s)", fields.String())
	}

	if !expectError && err != nil {
		t.Errorf("No error was expected, but received '%v' (%s)", err, fields.String())
	}

	return !expectError
}

// ErrorIs checks that err wraps the expected error. A nil expected error means no error was expected.
// It returns false if the assertion failed or the caller should stop because an error was expected.
func ErrorIs(t *testing.T, expected error, err error, fields Fields) bool {
	t.Helper()

	if expected == nil {
		return Errors(t, false, err, fields)
	}

	if !errors.Is(err, expected) {
		t.Errorf("Expected '%v' error, but received '%v' (%s)", expected, err, fields.String())
	}
	return false
}
