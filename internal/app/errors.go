package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrNoScript indicates no configuration script was given.
	ErrNoScript = errors.New("no configuration script")

	// ErrUnknownFormat indicates an unsupported render format.
	ErrUnknownFormat = errors.New("unknown output format")
)

// OperationError represents an error that occurred during a specific step.
type OperationError struct {
	Op     string // Step name (e.g., "load remap file", "write layout")
	Target string // Target of the step (e.g., file path, preset name)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
