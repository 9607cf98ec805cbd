package gcb

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestBuilderDrawRect(t *testing.T) {
	b := NewGCodeBuilder().SetPower(128)
	b.Absolute()
	if err := b.DrawRect(BetterPt[AbsolutePos](1, 2), BetterPt[AbsolutePos](3, 4)); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"G90",
		"G0 X1 Y2",
		"M3 S128",
		"G1 X3 Y2",
		"G1 X3 Y4",
		"G1 X1 Y4",
		"G1 X1 Y2",
		"M5",
	}

	var got []string
	for _, cmd := range b.Commands() {
		got = append(got, cmd.String(true))
	}

	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("got\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestBuilderRelative(t *testing.T) {
	b := NewGCodeBuilder()
	b.Relative()
	b.Move(BetterPt[AbsolutePos](5, 5))
	b.LineTo(BetterPt[AbsolutePos](7, 4))

	cmds := b.Commands()
	if got := cmds[2].String(false); got != "G1 X2 Y-1" {
		t.Errorf("relative line = %q", got)
	}

	if b.Current() != BetterPt[AbsolutePos](7, 4) {
		t.Errorf("Current() = %v", b.Current())
	}
}

func TestBuilderTotalLines(t *testing.T) {
	b := NewGCodeBuilder()
	b.Absolute().Comment("job")
	if err := b.DrawLine(BetterPt[AbsolutePos](0, 0), BetterPt[AbsolutePos](1, 1)); err != nil {
		t.Fatal(err)
	}

	data := []byte(b.String())
	res, err := Scan(data, new(recorder))
	if err != nil {
		t.Fatal(err)
	}

	v, ok := res.TotalLinesValue(data)
	if !ok {
		t.Fatalf("no %s in\n%s", KeyTotalLines, data)
	}

	if lines := len(b.Lines()); v != uint(lines) {
		t.Errorf("%s = %d, want %d", KeyTotalLines, v, lines)
	}

	if !strings.Contains(string(data), Meta(KeyTotalLines, strconv.Itoa(int(v)))+"\n") {
		t.Errorf("metadata line missing")
	}

	if strings.Contains(NewGCodeBuilder().NoTotalLines().String(), KeyTotalLines) {
		t.Errorf("NoTotalLines still writes the key")
	}
}

func TestBuilderDrawingState(t *testing.T) {
	b := NewGCodeBuilder()
	if err := b.Up(); !errors.Is(err, ErrCantChangeDrawingState) {
		t.Errorf("Up while off: err = %v", err)
	}

	if err := b.Down(); err != nil {
		t.Fatal(err)
	}

	if err := b.DrawLine(BetterPt[AbsolutePos](0, 0), BetterPt[AbsolutePos](1, 0)); !errors.Is(err, ErrCantChangeDrawingState) {
		t.Errorf("DrawLine while on: err = %v", err)
	}
}
