package qbuilder

import (
	"errors"

	"github.com/maxshaw/qbuilder/qb"
)

var (
	ErrInvalidLimit          = errors.New("limit must be a non-negative number")
	ErrInvalidOrderDirection = qb.ErrInvalidDirection
)

// ValidationError reports a configuration call the builder rejected. The
// builder state is left as it was before the call.
type ValidationError struct {
	Field, Msg string
	Underlying error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Underlying
}
