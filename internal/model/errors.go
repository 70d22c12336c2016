package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDomain is returned when grid bounds or the sample count are malformed.
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrInvalidParameter is returned when a behavioral parameter is outside its accepted range.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// DomainError describes a rejected income grid.
type DomainError struct {
	Lower  float64
	Upper  float64
	Count  int
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid domain [%g, %g] x %d: %s", e.Lower, e.Upper, e.Count, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrInvalidDomain }

// ParameterError names the offending parameter and its value.
// Raw carries the value instead of Value when it is not numeric.
type ParameterError struct {
	Param  string
	Value  float64
	Raw    string
	Reason string
}

func (e *ParameterError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("invalid parameter %s=%q: %s", e.Param, e.Raw, e.Reason)
	}
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Param, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }
