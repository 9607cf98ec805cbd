package motion

import "errors"

// ErrFinished is returned when the Interpreter is used after Finish.
var ErrFinished = errors.New("interpreter already finished")
