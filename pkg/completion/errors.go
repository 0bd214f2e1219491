package completion

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure classes. Everything the engine
// returns matches one of these via errors.Is.
var (
	// ErrConfig marks malformed configuration: an invalid rule pattern, an
	// out-of-range multiplier or threshold, an unknown algorithm, or a
	// malformed account in the alternates map. Raised eagerly at engine
	// construction, before any transaction is processed.
	ErrConfig = errors.New("invalid completion config")

	// ErrInvalidInput marks a bad per-call input: a target that is already
	// complete, a target with no amount-carrying leg, or a historical entry
	// presented as complete but malformed.
	ErrInvalidInput = errors.New("invalid completion input")
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

func inputErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
