package config

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned, wrapped, whenever an assumption cannot be
// converted to a number.
var ErrInvalidInput = errors.New("config: invalid numeric input")

// FieldError reports which assumption failed to parse.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
