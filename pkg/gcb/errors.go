package gcb

import (
	"errors"
	"fmt"
)

var (
	ErrNilHandler             = errors.New("no command handler given")
	ErrCantChangeDrawingState = errors.New("cannot change drawing state")
)

// LineError is a handler error together with the line it happened on.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
