package julia

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// ChannelFunc maps an escape result and the iteration cap to one color
// channel. Implementations must be pure.
type ChannelFunc func(escape, iterations int) uint8

// Policy is one function per channel. Swapping a palette means swapping
// functions; the three channels are independent.
type Policy struct {
	R, G, B ChannelFunc
}

// Grayscale scales brightness with escape speed. Contained points are white,
// immediate escapes black.
var Grayscale = Policy{R: grayChannel, G: grayChannel, B: grayChannel}

func grayChannel(escape, iterations int) uint8 {
	if escape < 0 {
		return 255
	}
	if iterations <= 0 {
		return 0
	}
	v := escape * 255 / iterations
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Classic is the fixed palette of the first version of this program: green
// everywhere, blue added only where the orbit escaped.
var Classic = Policy{
	R: func(int, int) uint8 { return 0 },
	G: func(int, int) uint8 { return 255 },
	B: func(escape, _ int) uint8 {
		if escape < 0 {
			return 0
		}
		return 255
	},
}

// Spectrum cycles the hue with escape speed. Contained points stay black.
var Spectrum = Policy{
	R: spectrumChannel(0),
	G: spectrumChannel(1),
	B: spectrumChannel(2),
}

func spectrumChannel(channel int) ChannelFunc {
	return func(escape, iterations int) uint8 {
		if escape < 0 || iterations <= 0 {
			return 0
		}
		c := hsv(float64(escape)/float64(iterations), 1, 1)
		switch channel {
		case 0:
			return c.R
		case 1:
			return c.G
		default:
			return c.B
		}
	}
}

// PolicyByName resolves the palettes exposed on the command line.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "grayscale":
		return Grayscale, nil
	case "classic":
		return Classic, nil
	case "spectrum":
		return Spectrum, nil
	default:
		return Policy{}, fmt.Errorf("unknown palette %q", name)
	}
}

// Colorize applies a policy to every cell of the grid, producing the output
// image. Row 0 of the grid becomes the top row of the image.
func Colorize(grid Grid, policy Policy, iterations int) (*image.RGBA, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, errors.New("grid must have at least one row and column")
	}
	if policy.R == nil || policy.G == nil || policy.B == nil {
		return nil, errors.New("policy must define all three channels")
	}
	width := len(grid[0])
	img := image.NewRGBA(image.Rect(0, 0, width, len(grid)))
	for y, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("ragged grid: row %d has %d cells, want %d", y, len(row), width)
		}
		for x, escape := range row {
			img.SetRGBA(x, y, color.RGBA{
				R: policy.R(escape, iterations),
				G: policy.G(escape, iterations),
				B: policy.B(escape, iterations),
				A: 255,
			})
		}
	}
	return img, nil
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
