package trafficlight

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error conditions of the controller and its driver
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Phase value or name is not one of Red, Yellow, Green
	ErrCodeInvalidPhase
	// Phase duration is zero or outside the allowed bounds
	ErrCodeInvalidDuration
	// Phase names itself as successor
	ErrCodeSelfTransition
	// Successor relation is not a single cycle over all phases
	ErrCodeBrokenCycle
	// Output collaborator failed to assert a line
	ErrCodeOutputFailed
	// Any other configuration problem
	ErrCodeInvalidConfiguration
)

// ConfigurationError represents a defect in the phase table or its inputs.
// These are only ever returned at construction time.
type ConfigurationError struct {
	Code      ErrorCode
	Component string
	Issue     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Issue)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(code ErrorCode, component, issue string) *ConfigurationError {
	return &ConfigurationError{
		Code:      code,
		Component: component,
		Issue:     issue,
	}
}

// OutputError wraps a failure of the output collaborator for one line
type OutputError struct {
	Line        Phase
	OriginalErr error
}

func (e *OutputError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("output '%s' failed: %v", e.Line, e.OriginalErr)
	}
	return fmt.Sprintf("output '%s' failed", e.Line)
}

func (e *OutputError) Unwrap() error {
	return e.OriginalErr
}

// NewOutputError creates a new output error
func NewOutputError(line Phase, err error) *OutputError {
	return &OutputError{
		Line:        line,
		OriginalErr: err,
	}
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsOutputError checks if an error is an OutputError
func IsOutputError(err error) bool {
	var oe *OutputError
	return errors.As(err, &oe)
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce.Code
	}
	if IsOutputError(err) {
		return ErrCodeOutputFailed
	}
	return ErrCodeNone
}
