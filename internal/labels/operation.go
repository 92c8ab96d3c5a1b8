package labels

import (
	"errors"
	"fmt"
)

// Operation represents a label reconciliation operation.
type Operation string

const (
	// OperationAdd appends labels to the object's existing label set.
	OperationAdd Operation = "add"
	// OperationRemove detaches the named labels from the object.
	OperationRemove Operation = "remove"
	// OperationSet replaces the object's label set with exactly the given labels.
	OperationSet Operation = "set"
	// OperationClear empties the object's label set.
	OperationClear Operation = "clear"
)

var (
	// ErrInvalidOperation is returned for operation strings outside the
	// supported set. No API call is made.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrMissingLabels is returned when add or remove is requested with an
	// empty label set. No API call is made.
	ErrMissingLabels = errors.New("labels are required")
)

// ParseOperation maps an operation string to an Operation.
func ParseOperation(s string) (Operation, error) {
	switch Operation(s) {
	case OperationAdd, OperationRemove, OperationSet, OperationClear:
		return Operation(s), nil
	default:
		return "", fmt.Errorf("%w: %q (supported operations are: add, remove, set, clear)", ErrInvalidOperation, s)
	}
}

// String returns the operation name.
func (o Operation) String() string {
	return string(o)
}

// RequiresLabels reports whether the operation is meaningless without a
// label list. For set and clear, emptiness is itself the instruction.
func (o Operation) RequiresLabels() bool {
	return o == OperationAdd || o == OperationRemove
}
