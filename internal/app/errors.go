// Package app runs the interactive editor: it reads tcell key events,
// moves the cursor, edits the Document and redraws through the renderer.
//
// Everything happens on the goroutine that calls Run. Other goroutines talk
// to the application only by posting tcell events to its screen; see
// PostRegistry.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrScreenClosed indicates the screen stopped delivering events.
	ErrScreenClosed = errors.New("screen closed")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "save", "open")
	Target string // Target of the operation (e.g., file path)
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
