package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/gucio321/sm2lbpp/pkg/diag"
)

// EncodePNG encodes img as a PNG file.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", diag.ErrPNG, err)
	}

	return buf.Bytes(), nil
}
