package diag

import "github.com/kpango/glg"

// Decision is what a Sink wants to happen after a warning.
type Decision int

const (
	Continue Decision = iota
	Abort
)

// Sink receives diagnostics. The returned Decision only matters for warnings;
// processing always stops after an error.
type Sink interface {
	Report(msg Message, file string, line int) Decision
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(msg Message, file string, line int) Decision

func (f SinkFunc) Report(msg Message, file string, line int) Decision {
	return f(msg, file, line)
}

// LogSink logs diagnostics with glg and continues on every warning.
type LogSink struct{}

var _ Sink = LogSink{}

func (LogSink) Report(msg Message, file string, line int) Decision {
	if msg.IsWarning() {
		glg.Warn(Format(msg, file, line))
		return Continue
	}

	glg.Error(Format(msg, file, line))

	return Abort
}

// Recorder keeps every report and answers warnings with a fixed Decision.
type Recorder struct {
	OnWarning Decision
	Reports   []Report
}

// Report is one recorded diagnostic.
type Report struct {
	Msg  Message
	File string
	Line int
}

func (r *Recorder) Report(msg Message, file string, line int) Decision {
	r.Reports = append(r.Reports, Report{msg, file, line})
	if msg.IsWarning() {
		return r.OnWarning
	}

	return Abort
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []Message {
	result := make([]Message, len(r.Reports))
	for i, rep := range r.Reports {
		result[i] = rep.Msg
	}

	return result
}
