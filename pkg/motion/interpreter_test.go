package motion

import (
	"errors"
	"testing"

	"github.com/gucio321/sm2lbpp/pkg/diag"
	"github.com/gucio321/sm2lbpp/pkg/gcb"
	"github.com/gucio321/sm2lbpp/pkg/geometry"
)

func run(t *testing.T, src string) (*Interpreter, *geometry.Shape, geometry.Bounds) {
	t.Helper()

	i := New(0, geometry.Style{})
	if _, err := gcb.Scan([]byte(src), i); err != nil {
		t.Fatalf("scan: %v", err)
	}

	shape, drawn, err := i.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	return i, shape, drawn
}

func ends(s *geometry.Shape, p geometry.Path) []geometry.Point {
	pts := s.Points(p)
	var result []geometry.Point
	for j := 0; j < len(pts); j += 3 {
		result = append(result, pts[j])
	}

	return result
}

func equalPoints(a, b []geometry.Point) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestExample(t *testing.T) {
	i, shape, drawn := run(t, "G90\nM3 S255\nG1 X10 Y0\nG1 X10 Y10\nM5\n;file_total_lines: 5\n")

	if i.Mode() != Absolute || i.LaserOn() || i.Power() != 0 {
		t.Errorf("final state: mode %v, laser %v, power %v", i.Mode(), i.LaserOn(), i.Power())
	}

	if len(shape.Paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(shape.Paths))
	}

	path := shape.Paths[0]
	if path.Power != 100 {
		t.Errorf("path power = %v, want 100", path.Power)
	}

	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(10, 10)}
	if got := ends(shape, path); !equalPoints(got, want) {
		t.Errorf("path = %v, want %v", got, want)
	}

	if drawn.Min != geometry.Pt(0, 0) || drawn.Max != geometry.Pt(10, 10) {
		t.Errorf("drawn = %+v", drawn)
	}
}

func TestPower(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want float32
		on   bool
	}{
		{"percent", "M3 P40\n", 40, true},
		{"byte", "M3 S51\n", 20, true},
		{"percent wins", "M3 P40 S255\n", 40, true},
		{"unchanged", "M3 P40\nM3\n", 40, true},
		{"off", "M3 P40\nM5\n", 0, false},
		{"off keeps nothing", "M3 P40\nM5\nM3\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, _, _ := run(t, tt.src)
			if i.Power() != tt.want || i.LaserOn() != tt.on {
				t.Errorf("power %v, on %v; want %v, %v", i.Power(), i.LaserOn(), tt.want, tt.on)
			}
		})
	}
}

func TestRelative(t *testing.T) {
	pt := gcb.BetterPt[gcb.AbsolutePos]
	b := gcb.NewGCodeBuilder().NoTotalLines()
	b.Move(pt(1, 1))
	b.Relative()
	if err := b.Down(); err != nil {
		t.Fatal(err)
	}

	b.LineTo(pt(3, 1))
	b.LineTo(pt(3, 4))
	if err := b.Up(); err != nil {
		t.Fatal(err)
	}

	b.Move(pt(0, 0))

	i, shape, drawn := run(t, b.String())

	if i.Mode() != Relative {
		t.Errorf("mode = %v", i.Mode())
	}

	if x, y := i.Position(); x != gcb.Some[float32](0) || y != gcb.Some[float32](0) {
		t.Errorf("position = %v, %v", x, y)
	}

	if len(shape.Paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(shape.Paths))
	}

	want := []geometry.Point{geometry.Pt(1, 1), geometry.Pt(3, 1), geometry.Pt(3, 4)}
	if got := ends(shape, shape.Paths[0]); !equalPoints(got, want) {
		t.Errorf("path = %v, want %v", got, want)
	}

	if p := shape.Paths[0].Power; p != 100 {
		t.Errorf("path power = %v", p)
	}

	if drawn.Min != geometry.Pt(1, 1) || drawn.Max != geometry.Pt(3, 4) {
		t.Errorf("drawn = %+v", drawn)
	}
}

func TestUnsetStaysUnset(t *testing.T) {
	i, _, _ := run(t, "G91\nG0 X5\n")
	if x, y := i.Position(); x.IsSet() || y.IsSet() {
		t.Fatalf("position = %v, %v; want unset", x, y)
	}

	i, _, _ = run(t, "G91\nG0 X5\nG90\nG0 X2\nG91\nG0 X1.5\n")
	x, y := i.Position()
	if v, ok := x.Get(); !ok || v != 3.5 {
		t.Errorf("x = %v, want 3.5", x)
	}

	if y.IsSet() {
		t.Errorf("y = %v, want unset", y)
	}
}

func TestUnpowered(t *testing.T) {
	_, shape, drawn := run(t, "G0 X5 Y5\nG1 X10 Y10\nM3 S0\nG1 X20 Y20\nM5\n")
	if len(shape.Paths) != 0 {
		t.Errorf("got %d paths, want none", len(shape.Paths))
	}

	if !drawn.Empty() {
		t.Errorf("drawn = %+v, want empty", drawn)
	}
}

func TestRuns(t *testing.T) {
	src := "G0 X1 Y1\nM3 P10\nG1 X2 Y1\nG0 X5 Y5\n" + // laser still on: same run
		"M5\nG0 X6 Y6\n" +
		"M3 P80\nG1 X7 Y6\nM5\nG0 X0 Y0\n"

	_, shape, _ := run(t, src)
	if len(shape.Paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(shape.Paths))
	}

	first := []geometry.Point{geometry.Pt(1, 1), geometry.Pt(2, 1), geometry.Pt(5, 5)}
	if got := ends(shape, shape.Paths[0]); !equalPoints(got, first) {
		t.Errorf("first = %v, want %v", got, first)
	}

	second := []geometry.Point{geometry.Pt(6, 6), geometry.Pt(7, 6)}
	if got := ends(shape, shape.Paths[1]); !equalPoints(got, second) {
		t.Errorf("second = %v, want %v", got, second)
	}

	if shape.Paths[0].Power != 10 || shape.Paths[1].Power != 80 {
		t.Errorf("powers = %v, %v", shape.Paths[0].Power, shape.Paths[1].Power)
	}
}

func TestIgnoresUnknown(t *testing.T) {
	i, shape, _ := run(t, "G28\nM106 S255\nT1\nG1 X3 Y4\n")
	if len(shape.Paths) != 0 || i.LaserOn() {
		t.Errorf("unknown commands changed state")
	}

	if x, _ := i.Position(); x != gcb.Some[float32](3) {
		t.Errorf("x = %v", x)
	}
}

func TestPointLimit(t *testing.T) {
	i := New(4, geometry.Style{})
	_, err := gcb.Scan([]byte("M3 P100\nG1 X1 Y1\nG1 X2 Y2\n"), i)
	if err == nil {
		t.Fatal("expected an error")
	}

	if !errors.Is(err, diag.ErrNoMemory) {
		t.Errorf("err = %v", err)
	}
}

func TestFinishTwice(t *testing.T) {
	i := New(0, geometry.Style{})
	if _, _, err := i.Finish(); err != nil {
		t.Fatal(err)
	}

	if _, _, err := i.Finish(); !errors.Is(err, ErrFinished) {
		t.Errorf("err = %v", err)
	}

	if err := i.Command(&gcb.Command{Code: gcb.G1}); !errors.Is(err, ErrFinished) {
		t.Errorf("err = %v", err)
	}
}
