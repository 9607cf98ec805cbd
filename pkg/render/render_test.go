package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/rustyoz/svg"

	"github.com/gucio321/sm2lbpp/pkg/geometry"
	"github.com/gucio321/sm2lbpp/pkg/profile"
)

func exampleShape(t *testing.T) (*geometry.Shape, geometry.Frame) {
	t.Helper()

	b := geometry.NewBuilder(0, geometry.Style{Stroke: color.Black, StrokeWidth: 0.3})
	drawn := geometry.EmptyBounds()
	for i, p := range []geometry.Point{geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(10, 10)} {
		drawn.Include(p)

		var err error
		if i == 0 {
			err = b.Append(p)
		} else {
			err = b.AppendLineAsCurve(p)
		}

		if err != nil {
			t.Fatal(err)
		}
	}

	shape := b.Finish(100)
	frame, ok := geometry.Normalize(shape, drawn, geometry.Pt(1, 1), image.Pt(300, 150))
	if !ok {
		t.Fatal("nothing to draw")
	}

	return shape, frame
}

func newRenderer(t *testing.T, name string) *Renderer {
	t.Helper()

	p, err := profile.Get(name)
	if err != nil {
		t.Fatal(err)
	}

	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}

	return r
}

func TestBlend(t *testing.T) {
	tests := []struct {
		bg, fg uint8
		a      int
		want   uint8
	}{
		{255, 0, 0, 255},
		{255, 0, 255, 0},
		{255, 0, 128, 127},
		{0, 255, 128, 128},
		{100, 200, 51, 120},
		{10, 10, 77, 10},
	}

	for _, tt := range tests {
		if got := blend(tt.bg, tt.fg, tt.a); got != tt.want {
			t.Errorf("blend(%d, %d, %d) = %d, want %d", tt.bg, tt.fg, tt.a, got, tt.want)
		}
	}
}

func TestComposite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})

	Composite(img, color.RGBA{200, 100, 50, 255})

	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{200, 100, 50, 255}) {
		t.Errorf("transparent pixel = %v", got)
	}

	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("opaque pixel = %v", got)
	}
}

func TestFlipRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		img.SetNRGBA(0, y, color.NRGBA{uint8(y), 0, 0, 255})
	}

	FlipRows(img)

	for y := 0; y < 3; y++ {
		if got := img.NRGBAAt(0, y).R; got != uint8(2-y) {
			t.Errorf("row %d holds %d", y, got)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	r := newRenderer(t, profile.Default)
	shape := geometry.NewBuilder(0, geometry.Style{}).Finish(0)

	img, err := r.Render(shape, geometry.Frame{})
	if err != nil {
		t.Fatal(err)
	}

	if img.Bounds() != image.Rect(0, 0, 300, 150) {
		t.Fatalf("bounds = %v", img.Bounds())
	}

	white := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < 150; y++ {
		for x := 0; x < 300; x++ {
			if got := img.NRGBAAt(x, y); got != white {
				t.Fatalf("pixel %d,%d = %v", x, y, got)
			}
		}
	}
}

func checkExample(t *testing.T, img *image.NRGBA) {
	t.Helper()

	dark := 0
	for y := 0; y < 150; y++ {
		for x := 0; x < 300; x++ {
			c := img.NRGBAAt(x, y)
			if c.A != 255 {
				t.Fatalf("pixel %d,%d is not opaque: %v", x, y, c)
			}

			if c.R < 64 {
				dark++
			}
		}
	}

	if dark == 0 {
		t.Fatal("nothing was drawn")
	}

	// the first segment runs along y = 12.5 before the flip
	if c := img.NRGBAAt(150, 150-1-12); c.R > 64 {
		t.Errorf("stroke pixel = %v", c)
	}

	if c := img.NRGBAAt(0, 0); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("corner pixel = %v", c)
	}

	// centered: nothing left of the frame
	if c := img.NRGBAAt(70, 150-1-12); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("pixel left of the frame = %v", c)
	}
}

func TestRenderStroker(t *testing.T) {
	shape, frame := exampleShape(t)
	img, err := newRenderer(t, profile.Default).Render(shape, frame)
	if err != nil {
		t.Fatal(err)
	}

	checkExample(t, img)
}

func TestRenderSVG(t *testing.T) {
	shape, frame := exampleShape(t)
	img, err := newRenderer(t, "snapmaker2-svg").Render(shape, frame)
	if err != nil {
		t.Fatal(err)
	}

	checkExample(t, img)
}

func TestStrokerColor(t *testing.T) {
	shape, frame := exampleShape(t)
	r := newRenderer(t, profile.Default).SetRasterizer(&Stroker{
		Color: func(geometry.Path) color.Color { return color.RGBA{255, 0, 0, 255} },
	})

	img, err := r.Render(shape, frame)
	if err != nil {
		t.Fatal(err)
	}

	if c := img.NRGBAAt(150, 150-1-12); c.R < 240 || c.G > 64 || c.B > 64 {
		t.Errorf("stroke pixel = %v, want red", c)
	}
}

func TestWriteSVG(t *testing.T) {
	shape, frame := exampleShape(t)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, shape, frame); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), `stroke-width="3.750"`) {
		t.Errorf("unexpected stroke width in %s", buf.String())
	}

	doc, err := svg.ParseSvg(buf.String(), "", 1)
	if err != nil {
		t.Fatal(err)
	}

	instructions, errs := doc.ParseDrawingInstructions()

	var moves, curves []*svg.DrawingInstruction
reading:
	for {
		select {
		case cmd := <-instructions:
			if cmd == nil {
				break reading
			}

			switch cmd.Kind {
			case svg.MoveInstruction:
				moves = append(moves, cmd)
			case svg.CurveInstruction:
				curves = append(curves, cmd)
			}
		case err := <-errs:
			if err != nil {
				t.Fatal(err)
			}
		}
	}

	if len(moves) != 1 || len(curves) != 2 {
		t.Fatalf("got %d moves and %d curves", len(moves), len(curves))
	}

	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-3 }
	if m := moves[0].M; !near(m[0], 87.5) || !near(m[1], 12.5) {
		t.Errorf("move to %v", m)
	}

	if end := curves[1].CurvePoints.T; !near(end[0], 212.5) || !near(end[1], 137.5) {
		t.Errorf("last curve ends at %v", end)
	}
}

func TestEncodePNG(t *testing.T) {
	shape, frame := exampleShape(t)
	img, err := newRenderer(t, profile.Default).Render(shape, frame)
	if err != nil {
		t.Fatal(err)
	}

	data, err := EncodePNG(img)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v", decoded.Bounds())
	}

	r, g, b, a := decoded.At(0, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("corner = %v", decoded.At(0, 0))
	}
}
