package period

import (
	"errors"
	"fmt"
)

// Period construction and parsing errors.
var (
	// ErrInvalidArgument indicates a quarter, half or fiscal start ordinal outside its range,
	// or a span that ends before it starts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange indicates a month or year outside the accepted numeric bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnexpectedToken indicates input that does not match the period grammar.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// ParseError describes why an input string could not be parsed as a Period.
// Err wraps one of ErrUnexpectedToken, ErrOutOfRange or ErrInvalidArgument.
type ParseError struct {
	Input  string
	Offset int    // byte offset of the offending token
	Token  string // offending token text, empty at end of input
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse period %q: at end of input: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse period %q: at offset %d near %q: %v", e.Input, e.Offset, e.Token, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
