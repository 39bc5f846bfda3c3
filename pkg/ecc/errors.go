package ecc

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/ecdsa"
	"github.com/smallyu/go-ecc/internal/crypto/ecies"
	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/internal/crypto/keys"
)

// Errors returned by the library. Match them with errors.Is.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrInvalidOption  = errors.New("invalid option")

	ErrUninvertible          = field.ErrUninvertible
	ErrInvalidCurve          = curves.ErrInvalidCurve
	ErrPointNotOnCurve       = curves.ErrPointNotOnCurve
	ErrScalarOutOfRange      = keys.ErrScalarOutOfRange
	ErrInvalidSignature      = ecdsa.ErrInvalidSignature
	ErrDegenerateSignature   = ecdsa.ErrDegenerateSignature
	ErrSharedPointAtInfinity = ecies.ErrSharedPointAtInfinity
)

// ParseError reports a text field that could not be read as an integer.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s %q: %v", e.Field, e.Input, e.Err)
	}
	return fmt.Sprintf("parse %s %q", e.Field, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError wraps ErrMalformedInput with the offending field.
func newParseError(field, input, reason string) *ParseError {
	return &ParseError{
		Field: field,
		Input: input,
		Err:   fmt.Errorf("%w: %s", ErrMalformedInput, reason),
	}
}
