package geometry

import "errors"

// ErrNoStartPoint is returned when a line is added to a run without a start point.
var ErrNoStartPoint = errors.New("line has no start point")

// Builder collects points into paths.
type Builder struct {
	store *Store
	paths []Path
	style Style
}

// NewBuilder creates a Builder whose store holds at most maxPoints (0 = unlimited).
func NewBuilder(maxPoints int, style Style) *Builder {
	return &Builder{
		store: NewStore(maxPoints),
		style: style,
	}
}

// Append records one point (usually the start of a run).
func (b *Builder) Append(p Point) error {
	return b.store.Append(p)
}

// AppendLineAsCurve adds a straight segment from the previous point of the
// open run to p, written as a cubic (three points).
func (b *Builder) AppendLineAsCurve(p Point) error {
	if b.store.Open() == 0 {
		return ErrNoStartPoint
	}

	if err := b.store.grow(3); err != nil {
		return err
	}

	prev, _ := b.store.Last()
	c1, c2 := LineControls(prev, p)
	b.store.pts = append(b.store.pts, c1, c2, p)

	return nil
}

// Open returns the number of points in the open run.
func (b *Builder) Open() int {
	return b.store.Open()
}

// FinalizePath cuts the open run into a path. Runs of one point or less
// are dropped. It reports whether a path was kept.
func (b *Builder) FinalizePath(power float32) bool {
	span := b.store.Cut()
	if span.Len <= 1 {
		return false
	}

	b.paths = append(b.paths, Path{Span: span, Power: power})

	return true
}

// Paths returns the number of finalized paths.
func (b *Builder) Paths() int {
	return len(b.paths)
}

// Finish finalizes the open run and returns the shape.
// The builder must not be used afterwards.
func (b *Builder) Finish(power float32) *Shape {
	b.FinalizePath(power)

	s := &Shape{
		Paths:  b.paths,
		Style:  b.style,
		points: b.store.Points(),
	}
	s.UpdateBounds()

	return s
}
