package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Contract violations (caller bugs, propagated uncaught)
	ErrInvalidCastLength = errors.New("cast must contain exactly 6 lines")
	ErrInvalidLineValue  = errors.New("line value outside 6..9")
	ErrInvalidWeights    = errors.New("weight vector contains a negative component")
	ErrInvalidCount      = errors.New("changing-line count outside 0..6")
	ErrUnknownMethod     = errors.New("unknown casting method")

	// Configuration errors
	ErrInvalidPolicy     = errors.New("invalid policy table")
	ErrInvalidDefinition = errors.New("invalid threshold definition")
)

// Error constructors with context
func NewLineValueError(position int, value int) error {
	return fmt.Errorf("%w: position %d has value %d", ErrInvalidLineValue, position, value)
}

func NewCastLengthError(got int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidCastLength, got)
}

func NewPolicyError(profile string, reason string) error {
	return fmt.Errorf("%w: profile %q: %s", ErrInvalidPolicy, profile, reason)
}

// Error checking helpers
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrInvalidCastLength) ||
		errors.Is(err, ErrInvalidLineValue) ||
		errors.Is(err, ErrInvalidWeights) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrUnknownMethod)
}
