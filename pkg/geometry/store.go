package geometry

import (
	"fmt"

	"github.com/gucio321/sm2lbpp/pkg/diag"
)

const (
	pointSize = 8 // two float32
	// InitialPoints is the capacity of a new store.
	InitialPoints = 0x10000 / pointSize
	// MaxGrowPoints limits how much a single growth step adds.
	MaxGrowPoints = 0x8000000 / pointSize
)

// Store is a growable sequence of points with a cursor for the run
// that has not been cut into a path yet. Invariant: start <= len(pts).
type Store struct {
	pts   []Point
	start int
	// limit is the maximal number of points (0 means no limit).
	limit int
}

// NewStore creates a store refusing to hold more than limit points (0 = unlimited).
func NewStore(limit int) *Store {
	return &Store{limit: limit}
}

// Len returns the number of points written.
func (s *Store) Len() int {
	return len(s.pts)
}

// Start returns the index where the open run begins.
func (s *Store) Start() int {
	return s.start
}

// Open returns the number of points in the open run.
func (s *Store) Open() int {
	return len(s.pts) - s.start
}

// Last returns the most recent point.
func (s *Store) Last() (Point, bool) {
	if len(s.pts) == 0 {
		return Point{}, false
	}

	return s.pts[len(s.pts)-1], true
}

// Points returns the backing points. The slice is only stable until the next Append.
func (s *Store) Points() []Point {
	return s.pts
}

// Append records p, growing the store if needed.
func (s *Store) Append(p Point) error {
	if err := s.grow(1); err != nil {
		return err
	}

	s.pts = append(s.pts, p)

	return nil
}

// grow makes room for n more points: doubling first, then in fixed steps.
func (s *Store) grow(n int) error {
	need := len(s.pts) + n
	if s.limit > 0 && need > s.limit {
		return fmt.Errorf("%w: more than %d points", diag.ErrNoMemory, s.limit)
	}

	if need <= cap(s.pts) {
		return nil
	}

	newCap := cap(s.pts)
	if newCap == 0 {
		newCap = InitialPoints
	}

	for newCap < need {
		if newCap <= MaxGrowPoints {
			newCap *= 2
		} else {
			newCap += MaxGrowPoints
		}
	}

	if s.limit > 0 {
		newCap = min(newCap, s.limit)
	}

	pts := make([]Point, len(s.pts), newCap)
	copy(pts, s.pts)
	s.pts = pts

	return nil
}

// Cut closes the open run and returns its span. The cursor always moves to the end.
func (s *Store) Cut() Span {
	span := Span{Start: s.start, Len: len(s.pts) - s.start}
	s.start = len(s.pts)

	return span
}
