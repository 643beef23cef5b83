package julia

import (
	"image"
	"io"
)

// Encoder writes a finished color image to its final artifact form.
type Encoder interface {
	Encode(w io.Writer, img *image.RGBA) error
}
