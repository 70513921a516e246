package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownActionKind is returned when a start record carries a type code outside the known set.
var ErrUnknownActionKind = errors.New("unknown action kind")

// ErrUnknownParent is returned when a start record references a parent that was never started.
var ErrUnknownParent = errors.New("unknown parent step")

// ErrUnknownStep is returned when a result record references a step that was never started.
var ErrUnknownStep = errors.New("unknown step")

// ErrDuplicateStep is returned when a start record reuses an id that already exists.
var ErrDuplicateStep = errors.New("duplicate step id")

// ErrFieldCount is returned when a progress result does not carry exactly four numbers.
var ErrFieldCount = errors.New("unexpected progress field count")

// ErrFinalized is returned when a record is applied to a tree whose stream has ended.
var ErrFinalized = errors.New("tree is finalized")

// StructuralError reports a record that breaks the parent-before-child
// ordering of the stream. It is fatal unless the builder runs leniently.
type StructuralError struct {
	Op  string // "start" or "result"
	ID  StepID
	Ref StepID // the id that failed the lookup
	Err error
}

func (e *StructuralError) Error() string {
	if e.Ref != e.ID {
		return fmt.Sprintf("%s step %d: %v %d", e.Op, e.ID, e.Err, e.Ref)
	}
	return fmt.Sprintf("%s step %d: %v", e.Op, e.ID, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// IsStructural reports whether err is (or wraps) a StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}
