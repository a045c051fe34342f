package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation matches every snapshot validation failure.
var ErrValidation = errors.New("invalid snapshot")

var (
	// ErrDuplicateKey is returned when two nodes share a key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrDanglingPredecessor is returned when a predecessor key resolves to no node.
	ErrDanglingPredecessor = errors.New("predecessor not found")

	// ErrSelfPredecessor is returned when a node names itself as its predecessor.
	ErrSelfPredecessor = errors.New("node is its own predecessor")

	// ErrCycle is returned when predecessor references form a loop.
	ErrCycle = errors.New("predecessor cycle")

	// ErrOutOfRange is returned when progress or threshold fall outside [0, 1].
	ErrOutOfRange = errors.New("value out of range [0, 1]")

	// ErrEmptyKey is returned when a node has no key.
	ErrEmptyKey = errors.New("empty key")
)

// ErrUnknownView is returned when navigation targets a view that does not exist.
var ErrUnknownView = errors.New("unknown view")

// ValidationError represents a single malformed node.
type ValidationError struct {
	Key    string // Node key
	Field  string // Offending field
	Kind   error  // One of the sentinel errors above
	Value  any    // The value that failed validation
	Detail string // Optional extra context
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("node %q: %s: %v", e.Key, e.Field, e.Kind)
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %v)", e.Value)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is (or wraps) an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
