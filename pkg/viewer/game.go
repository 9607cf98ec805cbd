// Package viewer shows a G-code preview in a window.
package viewer

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var _ ebiten.Game = &Viewer{}

const zoomStep = 0.1

// Viewer displays a still preview image; the mouse wheel zooms towards the cursor.
type Viewer struct {
	scale   float64
	title   string
	current *ebiten.Image
}

func NewViewer(title string, preview image.Image) *Viewer {
	return &Viewer{
		scale:   1,
		title:   title,
		current: ebiten.NewImageFromImage(preview),
	}
}

// Size returns the size of the preview.
func (v *Viewer) Size() image.Point {
	return v.current.Bounds().Size()
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * zoomStep
	if v.scale < 1 {
		v.scale = 1
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	size := v.Size()
	mouseX, mouseY := ebiten.CursorPosition()
	mouseX = min(max(mouseX, 0), size.X)
	mouseY = min(max(mouseY, 0), size.Y)

	// part of the preview that stays under the cursor when zooming
	shift := v.scale - 1
	x0, y0 := int(shift*float64(mouseX)/v.scale), int(shift*float64(mouseY)/v.scale)
	renderable := v.current.SubImage(image.Rect(x0, y0, x0+size.X, y0+size.Y)).(*ebiten.Image)

	if renderable.Bounds().Dx() == 0 || renderable.Bounds().Dy() == 0 {
		renderable = v.current
	}

	geom := ebiten.GeoM{}
	geom.Translate(-float64(x0), -float64(y0))
	geom.Scale(v.scale, v.scale)
	screen.DrawImage(renderable, &ebiten.DrawImageOptions{
		GeoM: geom,
	})

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (zoom %.1fx)", v.title, v.scale))
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return v.Size().X, v.Size().Y
}
