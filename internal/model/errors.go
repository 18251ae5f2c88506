package model

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every *ParseError via errors.Is.
var ErrParse = errors.New("parse error")

// ParseError reports a raw field that could not be converted.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("parse %s %q", e.Field, e.Value)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is makes errors.Is(err, ErrParse) true for any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
