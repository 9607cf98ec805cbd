package diag

import "errors"

// Fatal error kinds. Everything the processor fails with wraps one of these.
var (
	ErrNoMemory     = errors.New("failed to allocate memory")
	ErrFileNotFound = errors.New("input file not found")
	ErrFileOpen     = errors.New("failed to open file for reading")
	ErrFileRead     = errors.New("failed to read data from file")
	ErrFileCreate   = errors.New("failed to create file for writing")
	ErrFileWrite    = errors.New("failed to write data to file")
	ErrPNG          = errors.New("failed to encode PNG image")
	// ErrAborted is returned when a Sink decided to stop on a warning.
	ErrAborted = errors.New("aborted")
)

var errorMessages = []struct {
	err error
	msg Message
}{
	{ErrNoMemory, MsgNoMemory},
	{ErrFileNotFound, MsgFileNotFound},
	{ErrFileOpen, MsgFileOpen},
	{ErrFileRead, MsgFileRead},
	{ErrFileCreate, MsgFileCreate},
	{ErrFileWrite, MsgFileWrite},
	{ErrPNG, MsgPNG},
}

// MessageFor returns the catalog message of a fatal error.
func MessageFor(err error) (Message, bool) {
	for _, em := range errorMessages {
		if errors.Is(err, em.err) {
			return em.msg, true
		}
	}

	return 0, false
}
