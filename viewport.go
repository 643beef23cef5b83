package julia

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Viewport is the rectangular region of the complex plane mapped onto the
// output image.
type Viewport struct {
	MinX, MaxX *apd.Decimal
	MinY, MaxY *apd.Decimal
}

// NewViewport builds a viewport, rejecting empty or inverted rectangles.
func NewViewport(minX, maxX, minY, maxY *apd.Decimal) (Viewport, error) {
	vp := Viewport{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	if err := vp.validate(); err != nil {
		return Viewport{}, err
	}
	return vp, nil
}

// ParseViewport reads the four bounds from decimal literals.
func (c *Context) ParseViewport(minX, maxX, minY, maxY string) (Viewport, error) {
	bounds := make([]*apd.Decimal, 4)
	for i, s := range []string{minX, maxX, minY, maxY} {
		d, err := c.Parse(s)
		if err != nil {
			return Viewport{}, fmt.Errorf("viewport: %w", err)
		}
		bounds[i] = d
	}
	return NewViewport(bounds[0], bounds[1], bounds[2], bounds[3])
}

func (vp Viewport) validate() error {
	if vp.MinX == nil || vp.MaxX == nil || vp.MinY == nil || vp.MaxY == nil {
		return errors.New("viewport is not set")
	}
	if vp.MinX.Cmp(vp.MaxX) >= 0 {
		return fmt.Errorf("viewport x bounds: %s must be less than %s", vp.MinX, vp.MaxX)
	}
	if vp.MinY.Cmp(vp.MaxY) >= 0 {
		return fmt.Errorf("viewport y bounds: %s must be less than %s", vp.MinY, vp.MaxY)
	}
	return nil
}

// MapPixel converts an image pixel coordinate into the plane point it
// samples. Row 0 maps to MaxY: the top of the image is the greatest
// imaginary value. All arithmetic runs in the decimal context, so mapping
// precision matches classification precision even at viewports far narrower
// than float64 can resolve.
func (c *Context) MapPixel(x, y, width, height int, vp Viewport) (Complex, error) {
	re, err := c.mapAxis(x, width, vp.MinX, vp.MaxX, false)
	if err != nil {
		return Complex{}, err
	}
	im, err := c.mapAxis(y, height, vp.MinY, vp.MaxY, true)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: re, Im: im}, nil
}

// mapAxis computes min + (i/n)·(max−min), or min + (1−i/n)·(max−min) when
// flipped.
func (c *Context) mapAxis(i, n int, min, max *apd.Decimal, flip bool) (*apd.Decimal, error) {
	var ratio apd.Decimal
	if _, err := c.apd.Quo(&ratio, apd.New(int64(i), 0), apd.New(int64(n), 0)); err != nil {
		return nil, fmt.Errorf("map pixel: %w", err)
	}
	if flip {
		if _, err := c.apd.Sub(&ratio, apd.New(1, 0), &ratio); err != nil {
			return nil, fmt.Errorf("map pixel: %w", err)
		}
	}
	var span, offset apd.Decimal
	if _, err := c.apd.Sub(&span, max, min); err != nil {
		return nil, fmt.Errorf("map pixel: %w", err)
	}
	if _, err := c.apd.Mul(&offset, &ratio, &span); err != nil {
		return nil, fmt.Errorf("map pixel: %w", err)
	}
	out := new(apd.Decimal)
	if _, err := c.apd.Add(out, &offset, min); err != nil {
		return nil, fmt.Errorf("map pixel: %w", err)
	}
	return out, nil
}
