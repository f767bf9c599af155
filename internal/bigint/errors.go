package bigint

import "errors"

var (
	// ErrInvalidFormat indicates text that is not a valid integer literal.
	ErrInvalidFormat = errors.New("invalid integer format")
	// ErrInvalidBase indicates a base outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("invalid base")
	// ErrDivByZero indicates an attempt to divide by zero.
	ErrDivByZero = errors.New("division by zero")
)
