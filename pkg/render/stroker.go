package render

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gucio321/sm2lbpp/pkg/geometry"
)

const miterLimit = 4

// Stroker strokes every path with round caps and joins using rasterx.
type Stroker struct {
	// Color picks a color per path. Nil uses the shape's stroke color.
	Color func(p geometry.Path) color.Color
}

var _ Rasterizer = &Stroker{}

func (s *Stroker) Rasterize(dst *image.NRGBA, shape *geometry.Shape, frame geometry.Frame) error {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	scanner.SetWinding(true)
	dasher := rasterx.NewDasher(w, h, scanner)

	width := fixed.Int26_6(shape.Style.StrokeWidth * frame.Scale * 64)
	dasher.SetStroke(width, miterLimit*64, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)

	stroke := shape.Style.Stroke
	if stroke == nil {
		stroke = color.Black
	}

	dasher.SetColor(stroke)

	toFixed := func(p geometry.Point) fixed.Point26_6 {
		q := frame.Apply(p)
		return rasterx.ToFixedP(float64(q.X), float64(q.Y))
	}

	for _, path := range shape.Paths {
		pts := shape.Points(path)
		if len(pts) == 0 {
			continue
		}

		dasher.Start(toFixed(pts[0]))
		for _, c := range shape.Cubics(path) {
			dasher.CubeBezier(toFixed(c.C1), toFixed(c.C2), toFixed(c.C3))
		}

		dasher.Stop(false)

		// per path colors need one fill per path
		if s.Color != nil {
			dasher.SetColor(s.Color(path))
			dasher.Draw()
			dasher.Clear()
		}
	}

	if s.Color == nil {
		dasher.Draw()
	}

	return nil
}
