package julia

import (
	"errors"

	"github.com/cockroachdb/apd/v3"
)

// Contained marks a point whose orbit never left the escape boundary within
// the iteration cap; it is presumed to belong to the set.
const Contained = -1

// Classify runs the escape-time test for z ↦ z² + c starting at point.
// It returns the number of iterations needed for the orbit to exceed the
// boundary, in [0, iterations], or Contained if the cap is reached first.
// A start point already outside the boundary is classified 0 without
// iterating.
func (c *Context) Classify(point, param Complex, iterations int, boundary *apd.Decimal) (int, error) {
	if iterations < 0 {
		return 0, errors.New("iteration cap must not be negative")
	}
	if boundary == nil || boundary.Sign() <= 0 {
		return 0, errors.New("escape boundary must be positive")
	}

	m, err := c.Abs(point)
	if err != nil {
		return 0, err
	}
	if m.Cmp(boundary) > 0 {
		return 0, nil
	}

	z := point
	for i := 0; i < iterations; i++ {
		sq, err := c.Mul(z, z)
		if err != nil {
			return 0, err
		}
		z, err = c.Add(sq, param)
		if err != nil {
			return 0, err
		}
		m, err = c.Abs(z)
		if err != nil {
			return 0, err
		}
		if m.Cmp(boundary) > 0 {
			return i + 1, nil
		}
	}
	return Contained, nil
}
