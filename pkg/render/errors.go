package render

import "errors"

// ErrSVG is returned when the generated SVG document cannot be read back.
var ErrSVG = errors.New("cannot read generated svg")
