// Package profile holds the output settings of a preview.
package profile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/gucio321/sm2lbpp/pkg/geometry"
)

//go:embed profiles.json
var profiles []byte

// Default is the profile used when none is requested.
const Default = "snapmaker2"

// Rasterizer names.
const (
	RasterizerStroker = "stroker"
	RasterizerSVG     = "svg"
)

// Profile describes the preview a machine expects.
type Profile struct {
	Name        string
	Description string

	// Width and Height are the canvas size in pixels.
	Width, Height int
	// StrokeWidth is in millimeters.
	StrokeWidth float32
	// BorderX and BorderY are kept free around the drawing (millimeters).
	BorderX, BorderY float32

	// Background and Stroke are names from golang.org/x/image/colornames.
	Background string
	Stroke     string

	Rasterizer string
	// MaxPoints limits the point store (0 means no limit).
	MaxPoints int
}

func decodeProfiles() ([]Profile, error) {
	var result []Profile
	if err := json.Unmarshal(profiles, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Get returns the profile called name.
func Get(name string) (*Profile, error) {
	all, err := decodeProfiles()
	if err != nil {
		return nil, err
	}

	for _, p := range all {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names lists all embedded profiles.
func Names() ([]string, error) {
	all, err := decodeProfiles()
	if err != nil {
		return nil, err
	}

	result := make([]string, len(all))
	for i, p := range all {
		result[i] = p.Name
	}

	return result, nil
}

// Validate checks sizes, colors and the rasterizer name.
func (p *Profile) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, p.Width, p.Height)
	}

	if p.StrokeWidth <= 0 || p.BorderX < 0 || p.BorderY < 0 {
		return fmt.Errorf("%w: stroke %v, border %v,%v", ErrInvalid, p.StrokeWidth, p.BorderX, p.BorderY)
	}

	if p.MaxPoints < 0 {
		return fmt.Errorf("%w: max points %d", ErrInvalid, p.MaxPoints)
	}

	if _, err := p.BackgroundColor(); err != nil {
		return err
	}

	if _, err := p.StrokeColor(); err != nil {
		return err
	}

	switch p.Rasterizer {
	case RasterizerStroker, RasterizerSVG:
	default:
		return fmt.Errorf("%w: rasterizer %q", ErrInvalid, p.Rasterizer)
	}

	return nil
}

// Canvas returns the canvas size.
func (p *Profile) Canvas() image.Point {
	return image.Pt(p.Width, p.Height)
}

// Border returns the border as a point.
func (p *Profile) Border() geometry.Point {
	return geometry.Pt(p.BorderX, p.BorderY)
}

func (p *Profile) BackgroundColor() (color.RGBA, error) {
	return lookupColor(p.Background)
}

func (p *Profile) StrokeColor() (color.RGBA, error) {
	return lookupColor(p.Stroke)
}

// Style returns the stroke style for shapes.
func (p *Profile) Style() (geometry.Style, error) {
	stroke, err := p.StrokeColor()
	if err != nil {
		return geometry.Style{}, err
	}

	return geometry.Style{
		Stroke:      stroke,
		StrokeWidth: p.StrokeWidth,
	}, nil
}

func lookupColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}

	return c, nil
}
