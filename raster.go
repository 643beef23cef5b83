package julia

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Grid holds one escape result per pixel, row-major with row 0 at the top of
// the image. A cell is an iteration count in [0, cap] or Contained.
type Grid [][]int

// RenderSpec carries the per-image configuration shared by every parameter
// in a batch.
type RenderSpec struct {
	Width, Height int
	Viewport      Viewport
	Iterations    int
	Boundary      *apd.Decimal

	// Progress, when set, is called after each finished row with the number
	// of rows done so far. It must not block for long; the raster waits on it.
	Progress func(done, total int)
}

func (s RenderSpec) validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Iterations < 0 {
		return errors.New("iteration cap must not be negative")
	}
	if s.Boundary == nil || s.Boundary.Sign() <= 0 {
		return errors.New("escape boundary must be positive")
	}
	return s.Viewport.validate()
}

// Rasterize classifies every pixel of the image against the Julia set with
// parameter param. Invalid configuration is rejected before any pixel is
// computed. The result is a pure function of the inputs.
func (c *Context) Rasterize(spec RenderSpec, param Complex) (Grid, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	grid := make(Grid, spec.Height)
	for y := 0; y < spec.Height; y++ {
		row := make([]int, spec.Width)
		for x := 0; x < spec.Width; x++ {
			point, err := c.MapPixel(x, y, spec.Width, spec.Height, spec.Viewport)
			if err != nil {
				return nil, err
			}
			escape, err := c.Classify(point, param, spec.Iterations, spec.Boundary)
			if err != nil {
				return nil, fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			row[x] = escape
		}
		grid[y] = row
		if spec.Progress != nil {
			spec.Progress(y+1, spec.Height)
		}
	}
	return grid, nil
}

// RasterizeBatch renders one grid per parameter, preserving order. The first
// failure aborts the batch; grids already computed are discarded.
func (c *Context) RasterizeBatch(spec RenderSpec, params []Complex) ([]Grid, error) {
	grids := make([]Grid, 0, len(params))
	for i, p := range params {
		g, err := c.Rasterize(spec, p)
		if err != nil {
			return nil, fmt.Errorf("parameter %d %s: %w", i, p, err)
		}
		grids = append(grids, g)
	}
	return grids, nil
}

// SequenceFilename names the index-th artifact of a batch:
// <prefix><five-digit index><ext>.
func SequenceFilename(prefix, ext string, index int) string {
	return fmt.Sprintf("%s%05d%s", prefix, index, ext)
}
