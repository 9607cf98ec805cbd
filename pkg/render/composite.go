package render

import (
	"image"
	"image/color"
)

// Composite blends every pixel of img over the opaque bg:
// out = bg + (fg - bg) * alpha / 255. The result is opaque.
func Composite(img *image.NRGBA, bg color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(row); i += 4 {
			a := int(row[i+3])
			row[i+0] = blend(bg.R, row[i+0], a)
			row[i+1] = blend(bg.G, row[i+1], a)
			row[i+2] = blend(bg.B, row[i+2], a)
			row[i+3] = 0xff
		}
	}
}

func blend(bg, fg uint8, a int) uint8 {
	d := (int(fg) - int(bg)) * a
	if d >= 0 {
		d = (d + 127) / 255
	} else {
		d = -((-d + 127) / 255)
	}

	return uint8(min(max(int(bg)+d, 0), 255))
}

// FlipRows reverses the row order of img in place.
func FlipRows(img *image.NRGBA) {
	b := img.Bounds()
	width := b.Dx() * 4
	tmp := make([]byte, width)

	for top, bottom := b.Min.Y, b.Max.Y-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := img.Pix[img.PixOffset(b.Min.X, top):][:width]
		u := img.Pix[img.PixOffset(b.Min.X, bottom):][:width]
		copy(tmp, t)
		copy(t, u)
		copy(u, tmp)
	}
}
