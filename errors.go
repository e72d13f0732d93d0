package papyr

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure returned by a handle or a bundled adapter
// wraps exactly one of these sentinels alongside the underlying cause, so
// callers can branch with errors.Is and still unwrap the original error.
// "No payload yet" is not an error; adapters report it as found=false.
var (
	// ErrIO marks backend read/write failures other than "not found".
	ErrIO = errors.New("papyr: io failure")

	// ErrSerialization marks payloads that could not be decoded into the
	// value, or values that could not be encoded.
	ErrSerialization = errors.New("papyr: serialization failure")

	// ErrAdapter marks failures defined by custom backends.
	ErrAdapter = errors.New("papyr: adapter failure")
)

// IOError wraps cause as an ErrIO with operation context.
func IOError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, cause)
}

// SerializationError wraps cause as an ErrSerialization with operation context.
func SerializationError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrSerialization, op, cause)
}

// AdapterError builds an ErrAdapter with a free-form message.
func AdapterError(msg string) error {
	return fmt.Errorf("%w: %s", ErrAdapter, msg)
}
