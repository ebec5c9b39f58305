package ringsig

import (
	"errors"
	"fmt"
)

var (
	// ErrRandomness indicates the randomness source is exhausted or
	// unavailable.
	ErrRandomness = errors.New("ringsig: randomness source failure")

	// ErrSecretNotInRing indicates the signing key does not correspond to
	// any public key in the ring.
	ErrSecretNotInRing = errors.New("ringsig: secret key does not match any ring entry")

	// ErrInvalidPoint indicates a decoded field is the identity element or
	// lies outside the prime-order subgroup.
	ErrInvalidPoint = errors.New("ringsig: invalid point")

	// ErrMalformedSignature indicates a signature with a wrong field count
	// or field length.
	ErrMalformedSignature = errors.New("ringsig: malformed signature")

	// ErrFormat indicates a corrupt textual container: wrong type tag,
	// broken base64, or an impossible payload length.
	ErrFormat = errors.New("ringsig: invalid encoding format")

	// ErrEmptyRing indicates an operation was given a ring with no members.
	ErrEmptyRing = errors.New("ringsig: empty ring")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ringsig.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error
func errorf(op string, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
