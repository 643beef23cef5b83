package julia

import (
	"errors"
	"math"
)

// Classic parameters c for z ↦ z² + c, each drawing a well-known Julia set.
// Convert with Context.FromComplex before rendering to pick up the configured
// precision.
var (
	// Douady Rabbit – three-lobed body with rabbit-ear bulbs
	DouadyRabbit = complex(-0.123, 0.745)

	// San Marco – basilica silhouette along the real axis
	SanMarco = complex(-0.75, 0)

	// Siegel Disk – smooth invariant disk around an irrational rotation
	SiegelDisk = complex(-0.390541, -0.586788)

	// Dendrite – infinitely branching tree with empty interior
	Dendrite = complex(0, 1)

	// Feather Spiral – feathery double spiral, this program's original sample
	FeatherSpiral = complex(-0.8, 0.156)
)

// CircleParameters returns count parameters evenly spaced on a circle of the
// given radius centered at the origin, in counterclockwise order starting at
// (radius, 0). A negative radius reflects the circle. Placement is not
// precision-critical, so the trigonometry runs in float64 before conversion
// into the decimal representation.
func (c *Context) CircleParameters(radius float64, count int) ([]Complex, error) {
	if count < 1 {
		return nil, errors.New("parameter count must be positive")
	}
	params := make([]Complex, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		p, err := c.FromFloat(radius*math.Cos(angle), radius*math.Sin(angle))
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}
