// Package gcb reads and writes the small G-code dialect a laser job preview needs.
package gcb

import (
	"fmt"
	"strings"
)

type (
	// RelativePos is a position relative to the current position.
	RelativePos float32
	// AbsolutePos describes a position on the work area, starting from 0,0.
	AbsolutePos float32
)

// DefaultHeader is written above the commands, the way a laser design tool does.
var DefaultHeader = []string{
	";Header Start",
	Meta("header_type", "laser"),
	Meta("machine", "Snapmaker 2.0"),
}

const (
	// DefaultPower is the S value (0..255) used to turn the laser on.
	DefaultPower = 255
	headerEnd    = ";Header End"
)

// GCodeBuilder allows to build laser G-code. It implements several drawing methods.
// All positions given to its API are AbsolutePos; in relative mode the builder
// converts them to offsets itself.
type GCodeBuilder struct {
	commands   []Command
	header     []string
	power      float32
	isDrawing  bool
	relative   bool
	currentP   BetterPoint[AbsolutePos]
	totalLines bool
}

// NewGCodeBuilder creates new GCodeBuilder with default values.
func NewGCodeBuilder() *GCodeBuilder {
	return &GCodeBuilder{
		header:     DefaultHeader,
		power:      DefaultPower,
		totalLines: true,
	}
}

// SetPower sets the S value used by Down.
func (b *GCodeBuilder) SetPower(s float32) *GCodeBuilder {
	b.power = s
	return b
}

// NoTotalLines drops the file_total_lines line from the header.
func (b *GCodeBuilder) NoTotalLines() *GCodeBuilder {
	b.totalLines = false
	return b
}

// Absolute switches to absolute positioning.
func (b *GCodeBuilder) Absolute() *GCodeBuilder {
	b.relative = false
	b.PushCommand(Command{Code: G90})

	return b
}

// Relative switches to relative positioning.
func (b *GCodeBuilder) Relative() *GCodeBuilder {
	b.relative = true
	b.PushCommand(Command{Code: G91})

	return b
}

// Down turns the laser on with the configured power.
func (b *GCodeBuilder) Down() error {
	if b.isDrawing {
		return fmt.Errorf("%w: laser is already on", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{Code: M3, S: Some(b.power)})
	b.isDrawing = true

	return nil
}

// Up turns the laser off.
func (b *GCodeBuilder) Up() error {
	if !b.isDrawing {
		return fmt.Errorf("%w: laser is already off", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{Code: M5})
	b.isDrawing = false

	return nil
}

// Move travels to p with G0.
// NOTE: Move does NOT call Up/Down. It just moves.
func (b *GCodeBuilder) Move(p BetterPoint[AbsolutePos]) *GCodeBuilder {
	return b.goTo(G0, p)
}

// LineTo moves to p with G1.
func (b *GCodeBuilder) LineTo(p BetterPoint[AbsolutePos]) *GCodeBuilder {
	return b.goTo(G1, p)
}

func (b *GCodeBuilder) goTo(code GCode, p BetterPoint[AbsolutePos]) *GCodeBuilder {
	target := p
	if b.relative {
		target = Redefine[AbsolutePos](b.absToRel(p))
	}

	b.PushCommand(Command{
		Code: code,
		X:    Some(float32(target.X)),
		Y:    Some(float32(target.Y)),
	})

	b.currentP = p

	return b
}

// Comment writes comment to GCode.
func (b *GCodeBuilder) Comment(comment string) *GCodeBuilder {
	b.PushCommand(Command{
		LineComment: comment,
	})

	return b
}

func (b *GCodeBuilder) Commentf(format string, args ...interface{}) *GCodeBuilder {
	return b.Comment(fmt.Sprintf(format, args...))
}

// PushCommand appends raw commands.
func (b *GCodeBuilder) PushCommand(cmds ...Command) *GCodeBuilder {
	b.commands = append(b.commands, cmds...)
	return b
}

// Commands returns the commands pushed so far.
func (b *GCodeBuilder) Commands() []Command {
	return b.commands
}

// Current returns current position.
func (b *GCodeBuilder) Current() BetterPoint[AbsolutePos] {
	return b.currentP
}

// Lines returns the G-code lines (without terminators).
func (b *GCodeBuilder) Lines() []string {
	lines := make([]string, 0, len(b.header)+len(b.commands)+2)
	lines = append(lines, b.header...)
	if b.totalLines {
		lines = append(lines, "")
	}

	lines = append(lines, headerEnd)
	for _, cmd := range b.commands {
		lines = append(lines, cmd.String(true))
	}

	if b.totalLines {
		// the key line counts itself; the value is what the controller expects
		lines[len(b.header)] = Meta(KeyTotalLines, len(lines))
	}

	return lines
}

// String returns built GCode. Every line is terminated.
func (b *GCodeBuilder) String() string {
	return strings.Join(b.Lines(), "\n") + "\n"
}

func (b *GCodeBuilder) absToRel(p BetterPoint[AbsolutePos]) BetterPoint[RelativePos] {
	return Redefine[RelativePos](p.Add(b.currentP.Mul(-1)))
}
