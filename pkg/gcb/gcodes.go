package gcb

import "strconv"

// GCode represents a command letter together with its number (e.g. G1, M3).
type GCode uint32

// Code builds a GCode from its letter and number.
func Code(letter byte, number uint) GCode {
	return GCode(uint32(letter)<<16 | uint32(number&0xffff))
}

// list of gcodes. See https://marlinfw.org/docs/gcode/G000-G001.html
// We point out only codes the preview cares about.
const (
	// G0 is a rapid linear move
	G0  GCode = 'G'<<16 | 0
	// G1 is a linear move (handled exactly like G0)
	G1  GCode = 'G'<<16 | 1
	// G90 sets absolute positioning
	G90 GCode = 'G'<<16 | 90
	// G91 sets relative positioning
	G91 GCode = 'G'<<16 | 91
	// M3 turns the laser on (P in percent or S in 0..255)
	M3  GCode = 'M'<<16 | 3
	// M5 turns the laser off
	M5  GCode = 'M'<<16 | 5

	GCodeRapid    = G0
	GCodeMove     = G1
	GCodeAbsolute = G90
	GCodeRelative = G91
	GCodeLaserOn  = M3
	GCodeLaserOff = M5
)

const noCode GCode = 0

// Letter returns the command letter ('G' or 'M').
func (c GCode) Letter() byte {
	return byte(c >> 16)
}

// Number returns the command number.
func (c GCode) Number() uint {
	return uint(c & 0xffff)
}

// IsMove reports whether c is one of the linear move commands.
func (c GCode) IsMove() bool {
	return c == G0 || c == G1
}

func (c GCode) String() string {
	if c == noCode {
		return ""
	}

	return string(c.Letter()) + strconv.FormatUint(uint64(c.Number()), 10)
}
