package survey

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a Survey is built without rows
	ErrInvalidInput = errors.New("survey table cannot be empty")

	// ErrUnknownColumn is matched by every *UnknownColumnError
	ErrUnknownColumn = errors.New("unknown column")

	// ErrMalformedColumn is matched by every *MalformedColumnError
	ErrMalformedColumn = errors.New("malformed column value")

	// ErrZeroDenominator is returned when percentages are requested but no row qualifies
	ErrZeroDenominator = errors.New("cannot normalize by zero qualifying rows")
)

// UnknownColumnError reports a column name that the table does not have.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownColumn, e.Column)
}

func (e *UnknownColumnError) Is(target error) bool {
	return target == ErrUnknownColumn
}

// MalformedColumnError reports a value of the wrong type, such as a number in
// a multi-valued column or text in the salary column.
type MalformedColumnError struct {
	Column string
	Row    int
	Value  interface{}
	Want   string
}

func (e *MalformedColumnError) Error() string {
	return fmt.Sprintf("%s: column %q row %d: want %s, got %T (%v)", ErrMalformedColumn, e.Column, e.Row, e.Want, e.Value, e.Value)
}

func (e *MalformedColumnError) Is(target error) bool {
	return target == ErrMalformedColumn
}
