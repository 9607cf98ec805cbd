// Package diag holds the diagnostic message catalog and the sink messages are reported to.
package diag

import "fmt"

// Message identifies one diagnostic of the catalog.
type Message int

const (
	MsgNoMemory Message = iota + 1
	MsgFileNotFound
	MsgFileOpen
	MsgFileRead
	MsgFileCreate
	MsgFileWrite
	MsgPNG
	// MsgNoTotalLines is a warning: the file_total_lines value was not found.
	MsgNoTotalLines
	// MsgNoTotalLinesLine is a warning: the file_total_lines line never ended.
	MsgNoTotalLinesLine
)

var catalog = map[Message]string{
	MsgNoMemory:         "Failed to allocate memory.",
	MsgFileNotFound:     "Input file not found.",
	MsgFileOpen:         "Failed to open file for reading.",
	MsgFileRead:         "Failed to read data from file.",
	MsgFileCreate:       "Failed to create file for writing.",
	MsgFileWrite:        "Failed to write data to file.",
	MsgPNG:              "Failed to encode PNG image.",
	MsgNoTotalLines:     "'file_total_lines' was not found.",
	MsgNoTotalLinesLine: "Line with 'file_total_lines' is unterminated.",
}

// IsWarning reports whether processing may continue after m.
func (m Message) IsWarning() bool {
	return m == MsgNoTotalLines || m == MsgNoTotalLinesLine
}

// Text returns the catalog text of m.
func (m Message) Text() string {
	if text, ok := catalog[m]; ok {
		return text
	}

	return fmt.Sprintf("Message(%d)", int(m))
}

func (m Message) String() string {
	if m.IsWarning() {
		return "Warning: " + m.Text()
	}

	return "Error: " + m.Text()
}

// Format renders a report the way the command line prints it.
// A line of 0 means the message is not about a specific line.
func Format(msg Message, file string, line int) string {
	if line > 0 {
		return fmt.Sprintf("%s:%d: %s", file, line, msg)
	}

	return fmt.Sprintf("%s: %s", file, msg)
}
