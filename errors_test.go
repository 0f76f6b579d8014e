package trafficlight

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrors_ErrorCode(t *testing.T) {
	testCases := []ErrorCode{
		ErrCodeNone,
		ErrCodeInvalidPhase,
		ErrCodeInvalidDuration,
		ErrCodeSelfTransition,
		ErrCodeBrokenCycle,
		ErrCodeOutputFailed,
		ErrCodeInvalidConfiguration,
	}

	for i, code := range testCases {
		if int(code) != i {
			t.Errorf("Expected error code %d to have value %d", i, int(code))
		}
	}
}

func TestConfigurationError_Creation(t *testing.T) {
	err := NewConfigurationError(ErrCodeInvalidDuration, "phase Red", "duration must be greater than zero")

	if err.Code != ErrCodeInvalidDuration {
		t.Errorf("Expected error code %v, got %v", ErrCodeInvalidDuration, err.Code)
	}

	if !strings.Contains(err.Error(), "phase Red") {
		t.Error("Expected error string to contain component")
	}

	if !IsConfigurationError(err) {
		t.Error("Expected IsConfigurationError to be true")
	}

	wrapped := fmt.Errorf("startup: %w", err)
	if GetErrorCode(wrapped) != ErrCodeInvalidDuration {
		t.Error("Expected code to survive wrapping")
	}
}

func TestOutputError_Unwrap(t *testing.T) {
	original := errors.New("short circuit")
	err := NewOutputError(Green, original)

	if !errors.Is(err, original) {
		t.Error("Expected OutputError to unwrap to original error")
	}

	if !strings.Contains(err.Error(), "Green") || !strings.Contains(err.Error(), "short circuit") {
		t.Errorf("Unexpected error string: %s", err.Error())
	}

	if GetErrorCode(err) != ErrCodeOutputFailed {
		t.Error("Expected ErrCodeOutputFailed")
	}

	bare := NewOutputError(Red, nil)
	if bare.Error() != "output 'Red' failed" {
		t.Errorf("Unexpected error string: %s", bare.Error())
	}
}

func TestGetErrorCode_Unknown(t *testing.T) {
	if GetErrorCode(errors.New("other")) != ErrCodeNone {
		t.Error("Expected ErrCodeNone for unknown errors")
	}
	if IsOutputError(errors.New("other")) || IsConfigurationError(nil) {
		t.Error("Expected type checks to be false")
	}
}
