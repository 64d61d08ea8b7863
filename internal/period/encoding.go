package period

import (
	"errors"
	"fmt"
)

var errMarshalZero = errors.New("cannot marshal zero Period")

// MarshalText implements encoding.TextMarshaler using the canonical string.
func (p Period) MarshalText() ([]byte, error) {
	if p.IsZero() {
		return nil, errMarshalZero
	}
	return []byte(p.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Input is parsed with the
// default configuration.
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshal period: %w", err)
	}
	*p = parsed
	return nil
}
