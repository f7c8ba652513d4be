package dialog

import "fmt"

// PreconditionError reports a required argument missing or invalid
// before any surface was constructed.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("dialog: %s: %s", e.Op, e.Reason)
}

func precondition(op, format string, args ...any) error {
	return &PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
