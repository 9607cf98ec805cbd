package diag

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		msg  Message
		line int
		want string
	}{
		{MsgFileOpen, 0, "job.nc: Error: Failed to open file for reading."},
		{MsgNoTotalLinesLine, 12, "job.nc:12: Warning: Line with 'file_total_lines' is unterminated."},
	}

	for _, test := range tests {
		if got := Format(test.msg, "job.nc", test.line); got != test.want {
			t.Errorf("Format(%d) = %q, want %q", test.msg, got, test.want)
		}
	}
}

func TestMessageFor(t *testing.T) {
	for _, em := range errorMessages {
		wrapped := fmt.Errorf("writing job.nc: %w", em.err)
		msg, ok := MessageFor(wrapped)
		if !ok || msg != em.msg {
			t.Errorf("MessageFor(%v) = %v, %v; want %v", wrapped, msg, ok, em.msg)
		}

		if msg.IsWarning() {
			t.Errorf("%v maps to a warning", em.err)
		}
	}

	if _, ok := MessageFor(ErrAborted); ok {
		t.Errorf("ErrAborted has a catalog message")
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{OnWarning: Abort}
	if d := r.Report(MsgNoTotalLines, "a", 0); d != Abort {
		t.Errorf("warning decision = %v", d)
	}

	if d := r.Report(MsgPNG, "a", 0); d != Abort {
		t.Errorf("error decision = %v", d)
	}

	if msgs := r.Messages(); len(msgs) != 2 || msgs[1] != MsgPNG {
		t.Errorf("Messages() = %v", msgs)
	}
}
