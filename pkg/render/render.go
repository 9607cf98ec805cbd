// Package render turns a laid out shape into the preview image.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/kpango/glg"

	"github.com/gucio321/sm2lbpp/pkg/geometry"
	"github.com/gucio321/sm2lbpp/pkg/profile"
)

// Rasterizer draws the strokes of a shape onto a transparent image.
type Rasterizer interface {
	Rasterize(dst *image.NRGBA, shape *geometry.Shape, frame geometry.Frame) error
}

// Renderer produces opaque previews of a fixed size.
type Renderer struct {
	canvas     image.Point
	background color.RGBA
	rasterizer Rasterizer
}

// New creates a Renderer for p.
func New(p *profile.Profile) (*Renderer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	bg, err := p.BackgroundColor()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		canvas:     p.Canvas(),
		background: bg,
	}

	switch p.Rasterizer {
	case profile.RasterizerSVG:
		r.rasterizer = &SVGRasterizer{}
	default:
		r.rasterizer = &Stroker{}
	}

	return r, nil
}

// SetRasterizer replaces the rasterizer chosen by the profile.
func (r *Renderer) SetRasterizer(rasterizer Rasterizer) *Renderer {
	r.rasterizer = rasterizer
	return r
}

// Canvas returns the output size.
func (r *Renderer) Canvas() image.Point {
	return r.canvas
}

// Render draws shape through frame. A shape without paths gives a plain background.
// The returned image is opaque with the first row at the top of the machine bed.
func (r *Renderer) Render(shape *geometry.Shape, frame geometry.Frame) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rectangle{Max: r.canvas})

	if shape == nil || len(shape.Paths) == 0 {
		glg.Debugf("nothing to draw")
		draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

		return img, nil
	}

	if err := r.rasterizer.Rasterize(img, shape, frame); err != nil {
		return nil, err
	}

	Composite(img, r.background)
	FlipRows(img)

	return img, nil
}
