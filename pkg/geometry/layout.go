package geometry

import "image"

// Frame maps shape coordinates onto a canvas.
type Frame struct {
	// Canvas is the pixel size of the output.
	Canvas image.Point
	// Origin is the shape position that lands on the logical frame's 0,0.
	Origin Point
	// Size is the logical frame size: the shape plus a border on each side.
	Size Point
	// Scale converts logical units to pixels (same for both axes).
	Scale float32
	// Offset centers the scaled frame on the canvas, in pixels.
	Offset Point
}

// Apply maps p to canvas pixels.
func (f Frame) Apply(p Point) Point {
	return p.Sub(f.Origin).Mul(f.Scale).Add(f.Offset)
}

// Normalize moves the shape so that the lower bound of the drawn
// area sits at border, updates all bounds and fits the result into canvas.
// It returns false (and leaves the shape alone) if there is nothing to draw.
func Normalize(s *Shape, drawn Bounds, border Point, canvas image.Point) (Frame, bool) {
	frame := Frame{Canvas: canvas}
	if len(s.Paths) == 0 {
		return frame, false
	}

	// 1.0: re-base to the border
	if !drawn.Empty() {
		s.Translate(border.Sub(drawn.Min))
	}

	// 1.1: update bounds
	s.UpdateBounds()

	// 1.2: logical frame
	size := s.Bounds.Size().Add(border.Mul(2))
	if size.X <= 0 {
		size.X = 1
	}

	if size.Y <= 0 {
		size.Y = 1
	}

	frame.Origin = s.Bounds.Min.Sub(border)
	frame.Size = size

	// 1.3: uniform scale, centered
	cw, ch := float32(canvas.X), float32(canvas.Y)
	frame.Scale = min(cw/size.X, ch/size.Y)
	frame.Offset = Point{
		X: (cw - size.X*frame.Scale) / 2,
		Y: (ch - size.Y*frame.Scale) / 2,
	}

	return frame, true
}
