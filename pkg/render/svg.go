package render

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gucio321/sm2lbpp/pkg/geometry"
)

// WriteSVG writes shape as an SVG document in canvas pixels.
func WriteSVG(w io.Writer, shape *geometry.Shape, frame geometry.Frame) error {
	bw := bufio.NewWriter(w)

	stroke := shape.Style.Stroke
	if stroke == nil {
		stroke = color.Black
	}

	c := color.RGBAModel.Convert(stroke).(color.RGBA)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		frame.Canvas.X, frame.Canvas.Y, frame.Canvas.X, frame.Canvas.Y)
	fmt.Fprintf(bw, `<g fill="none" stroke="#%02x%02x%02x" stroke-width="%.3f" stroke-linecap="round" stroke-linejoin="round">`+"\n",
		c.R, c.G, c.B, shape.Style.StrokeWidth*frame.Scale)

	for _, path := range shape.Paths {
		pts := shape.Points(path)
		if len(pts) == 0 {
			continue
		}

		p := frame.Apply(pts[0])
		fmt.Fprintf(bw, `<path d="M%.3f %.3f`, p.X, p.Y)

		for _, cubic := range shape.Cubics(path) {
			c1, c2, c3 := frame.Apply(cubic.C1), frame.Apply(cubic.C2), frame.Apply(cubic.C3)
			fmt.Fprintf(bw, " C%.3f %.3f %.3f %.3f %.3f %.3f", c1.X, c1.Y, c2.X, c2.Y, c3.X, c3.Y)
		}

		fmt.Fprintf(bw, "\"/>\n")
	}

	fmt.Fprintf(bw, "</g>\n</svg>\n")

	return bw.Flush()
}

// SVGRasterizer renders the shape's SVG document with oksvg.
type SVGRasterizer struct{}

var _ Rasterizer = &SVGRasterizer{}

func (*SVGRasterizer) Rasterize(dst *image.NRGBA, shape *geometry.Shape, frame geometry.Frame) error {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, shape, frame); err != nil {
		return err
	}

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSVG, err)
	}

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return nil
}
