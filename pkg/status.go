package sm2lbpp

//go:generate stringer -type=Status -linecomment -output=status_string.go

// Status tells what ProcessFile did to a file that was processed successfully.
type Status int

const (
	// StatusRewritten means the preview was added.
	StatusRewritten Status = iota // rewritten
	// StatusAlreadyProcessed means the file already has a preview and was left alone.
	StatusAlreadyProcessed // already processed
	// StatusEmpty means the file is empty and was left alone.
	StatusEmpty // empty
)
