package script

import (
	"errors"
	"fmt"
)

// Script errors.
var (
	// ErrScript is wrapped by every error returned from running a script.
	ErrScript = errors.New("script failed")

	// ErrStateClosed is returned when running code on a closed state.
	ErrStateClosed = errors.New("lua state is closed")
)

// Error describes a failed script run.
type Error struct {
	// Script is the chunk name, usually the file path.
	Script string

	// Lua is the error reported by the interpreter, with position information.
	Lua error

	// Cause is the Go error behind a failed kb call, if any.
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrScript, e.Script, e.Lua)
}

// Unwrap exposes ErrScript and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := []error{ErrScript, e.Lua}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}
