package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("valores inválidos")
	ErrNotFound      = errors.New("cliente no encontrado")
	ErrInvalidOption = errors.New("opción no válida")
)

// ValidationError reports a rejected numeric input. No state is touched
// when it is returned.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%v): %s", ErrValidation, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError reports an id with no registered client.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cliente con ID %d no encontrado", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidOptionError reports an unknown menu option or sort direction.
type InvalidOptionError struct {
	Option string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidOption, e.Option)
}

func (e *InvalidOptionError) Unwrap() error { return ErrInvalidOption }
