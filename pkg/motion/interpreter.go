// Package motion follows laser state and position through a G-code program
// and records every powered run as a path.
package motion

import (
	"github.com/kpango/glg"

	"github.com/gucio321/sm2lbpp/pkg/gcb"
	"github.com/gucio321/sm2lbpp/pkg/geometry"
)

// Mode is the positioning mode.
type Mode byte

const (
	Absolute Mode = iota
	Relative
)

func (m Mode) String() string {
	if m == Relative {
		return "relative"
	}

	return "absolute"
}

// Interpreter implements gcb.Handler.
type Interpreter struct {
	builder *geometry.Builder

	mode    Mode
	power   float32
	laserOn bool
	x, y    gcb.Param

	// prevOn tells whether the previous move was powered.
	prevOn   bool
	runPower float32
	drawn    geometry.Bounds
	finished bool
}

var _ gcb.Handler = &Interpreter{}

// New creates an Interpreter. maxPoints limits the point store (0 = unlimited).
func New(maxPoints int, style geometry.Style) *Interpreter {
	return &Interpreter{
		builder: geometry.NewBuilder(maxPoints, style),
		drawn:   geometry.EmptyBounds(),
	}
}

// Command applies one command line.
func (i *Interpreter) Command(cmd *gcb.Command) error {
	if i.finished {
		return ErrFinished
	}

	switch cmd.Code {
	case gcb.GCodeAbsolute:
		i.mode = Absolute
	case gcb.GCodeRelative:
		i.mode = Relative
	case gcb.GCodeLaserOn:
		if p, ok := cmd.P.Get(); ok {
			i.power = p
		} else if s, ok := cmd.S.Get(); ok {
			i.power = s * 100 / 255
		}

		i.laserOn = true
	case gcb.GCodeLaserOff:
		i.power = 0
		i.laserOn = false
	case gcb.GCodeRapid, gcb.GCodeMove:
		return i.move(cmd.X, cmd.Y)
	}

	return nil
}

func (i *Interpreter) powered() bool {
	return i.laserOn && i.power > 0
}

func (i *Interpreter) move(dx, dy gcb.Param) error {
	// 1.0: a powered move after an unpowered one opens a run at the current position
	if i.powered() && !i.prevOn {
		anchor := i.resolved()
		i.drawn.Include(anchor)

		if err := i.builder.Append(anchor); err != nil {
			return err
		}

		i.runPower = i.power
		i.prevOn = true
	}

	// 1.1: new position
	i.x = i.axis(i.x, dx)
	i.y = i.axis(i.y, dy)

	// 1.2: powered line or end of a run
	switch {
	case i.powered():
		p := i.resolved()
		i.drawn.Include(p)
		i.prevOn = true

		return i.builder.AppendLineAsCurve(p)
	case i.prevOn:
		if !i.builder.FinalizePath(i.runPower) {
			glg.Debugf("single point run dropped")
		}

		i.prevOn = false
	}

	return nil
}

// resolved returns the position for drawing. Axes never set are at the origin.
func (i *Interpreter) resolved() geometry.Point {
	return geometry.Pt(i.x.Or(0), i.y.Or(0))
}

func (i *Interpreter) axis(current, param gcb.Param) gcb.Param {
	v, ok := param.Get()
	if !ok {
		return current
	}

	if i.mode == Absolute {
		return gcb.Some(v)
	}

	return current.Shift(v)
}

// Finish closes the open run and returns the shape together with the
// bounds of everything drawn. The Interpreter accepts no commands afterwards.
func (i *Interpreter) Finish() (*geometry.Shape, geometry.Bounds, error) {
	if i.finished {
		return nil, geometry.Bounds{}, ErrFinished
	}

	i.finished = true
	power := i.runPower
	shape := i.builder.Finish(power)

	glg.Debugf("%d paths, drawn area %+v", len(shape.Paths), i.drawn)

	return shape, i.drawn, nil
}

// Mode returns the positioning mode.
func (i *Interpreter) Mode() Mode {
	return i.mode
}

// Power returns the laser power in percent.
func (i *Interpreter) Power() float32 {
	return i.power
}

// LaserOn reports whether the laser was switched on.
func (i *Interpreter) LaserOn() bool {
	return i.laserOn
}

// Position returns the current position. Unknown axes are unset.
func (i *Interpreter) Position() (x, y gcb.Param) {
	return i.x, i.y
}

// Drawn returns the bounds of all powered positions so far.
func (i *Interpreter) Drawn() geometry.Bounds {
	return i.drawn
}
