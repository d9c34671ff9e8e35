package stats

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidInput means the caller passed something that is not a
	// usable table or report where one was required.
	ErrInvalidInput = errors.New("invalid input")

	// ErrColumnNotFound means one or more requested columns are absent
	// from the table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrInsufficientData means fewer numeric columns (or values) were
	// available than the operation requires.
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// Error constructors with context

func NewInvalidInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

// NewColumnNotFoundError reports every missing column, comma-joined in
// request order.
func NewColumnNotFoundError(names []string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, strings.Join(names, ", "))
}

func NewInsufficientDataError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInsufficientData, reason)
}

// Error checking helpers

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsColumnNotFound(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}

func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
