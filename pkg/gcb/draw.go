package gcb

import (
	"fmt"
)

func (b *GCodeBuilder) startDrawing(p BetterPoint[AbsolutePos]) error {
	b.Move(p)
	return b.Down()
}

func (b *GCodeBuilder) stopDrawing() error {
	return b.Up()
}

// DrawLine draws a line from p0 to p1.
func (b *GCodeBuilder) DrawLine(p0, p1 BetterPoint[AbsolutePos]) error {
	// 1.1: go to start position and start drawing
	if err := b.startDrawing(p0); err != nil {
		return fmt.Errorf("cant start drawing line: %w", err)
	}

	// 1.2: go to p1
	b.LineTo(p1)

	// 1.3: stop drawing
	if err := b.stopDrawing(); err != nil {
		return fmt.Errorf("cant stop drawing line: %w", err)
	}

	return nil
}

// DrawLines draws a path of lines through all points.
func (b *GCodeBuilder) DrawLines(path ...BetterPoint[AbsolutePos]) error {
	if len(path) == 0 {
		return nil
	}

	if err := b.startDrawing(path[0]); err != nil {
		return fmt.Errorf("cant start drawing lines: %w", err)
	}

	for _, p := range path[1:] {
		b.LineTo(p)
	}

	if err := b.stopDrawing(); err != nil {
		return fmt.Errorf("cant stop drawing lines: %w", err)
	}

	return nil
}

// DrawRect draws rectangle with corners p0 and p1.
func (b *GCodeBuilder) DrawRect(p0, p1 BetterPoint[AbsolutePos]) error {
	return b.DrawLines(
		p0,
		BetterPt(p1.X, p0.Y),
		p1,
		BetterPt(p0.X, p1.Y),
		p0,
	)
}
