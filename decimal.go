package julia

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Complex is a point on the complex plane. Both parts are arbitrary-precision
// decimals owned by the value; operations allocate new results and never
// mutate their operands.
type Complex struct {
	Re, Im *apd.Decimal
}

func (z Complex) String() string {
	return fmt.Sprintf("(%s, %s)", z.Re, z.Im)
}

// Context fixes the number of significant digits shared by every arithmetic
// operation. Configure it once, before any rasterization starts, and do not
// change it while a computation is in flight.
type Context struct {
	apd *apd.Context
}

// NewContext returns a numeric context with the given number of significant
// digits.
func NewContext(digits uint32) (*Context, error) {
	if digits == 0 {
		return nil, errors.New("precision must be at least one significant digit")
	}
	return &Context{apd: apd.BaseContext.WithPrecision(digits)}, nil
}

// Precision reports the configured number of significant digits.
func (c *Context) Precision() uint32 {
	return c.apd.Precision
}

// Parse reads a decimal literal, rounded to the context precision. Values
// never pass through float64, so literals longer than 15-17 digits survive
// intact.
func (c *Context) Parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", s, err)
	}
	if _, err := c.apd.Round(d, d); err != nil {
		return nil, fmt.Errorf("round %q: %w", s, err)
	}
	return d, nil
}

// ParseComplex reads a complex point from two decimal literals.
func (c *Context) ParseComplex(re, im string) (Complex, error) {
	r, err := c.Parse(re)
	if err != nil {
		return Complex{}, err
	}
	i, err := c.Parse(im)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: r, Im: i}, nil
}

// FromFloat converts machine floats into the decimal representation. It is
// the only place float64 values enter the arithmetic; everything downstream
// stays decimal.
func (c *Context) FromFloat(re, im float64) (Complex, error) {
	r := new(apd.Decimal)
	if _, err := r.SetFloat64(re); err != nil {
		return Complex{}, fmt.Errorf("convert %v: %w", re, err)
	}
	i := new(apd.Decimal)
	if _, err := i.SetFloat64(im); err != nil {
		return Complex{}, fmt.Errorf("convert %v: %w", im, err)
	}
	return Complex{Re: r, Im: i}, nil
}

// FromComplex converts a machine-precision complex into the decimal
// representation.
func (c *Context) FromComplex(z complex128) (Complex, error) {
	return c.FromFloat(real(z), imag(z))
}

// Add returns the componentwise sum a + b.
func (c *Context) Add(a, b Complex) (Complex, error) {
	re := new(apd.Decimal)
	if _, err := c.apd.Add(re, a.Re, b.Re); err != nil {
		return Complex{}, fmt.Errorf("add real: %w", err)
	}
	im := new(apd.Decimal)
	if _, err := c.apd.Add(im, a.Im, b.Im); err != nil {
		return Complex{}, fmt.Errorf("add imaginary: %w", err)
	}
	return Complex{Re: re, Im: im}, nil
}

// Mul returns the complex product
// (a.Re·b.Re − a.Im·b.Im, a.Re·b.Im + a.Im·b.Re).
func (c *Context) Mul(a, b Complex) (Complex, error) {
	var rere, imim, reim, imre apd.Decimal
	if _, err := c.apd.Mul(&rere, a.Re, b.Re); err != nil {
		return Complex{}, fmt.Errorf("multiply: %w", err)
	}
	if _, err := c.apd.Mul(&imim, a.Im, b.Im); err != nil {
		return Complex{}, fmt.Errorf("multiply: %w", err)
	}
	if _, err := c.apd.Mul(&reim, a.Re, b.Im); err != nil {
		return Complex{}, fmt.Errorf("multiply: %w", err)
	}
	if _, err := c.apd.Mul(&imre, a.Im, b.Re); err != nil {
		return Complex{}, fmt.Errorf("multiply: %w", err)
	}
	re := new(apd.Decimal)
	if _, err := c.apd.Sub(re, &rere, &imim); err != nil {
		return Complex{}, fmt.Errorf("multiply: %w", err)
	}
	im := new(apd.Decimal)
	if _, err := c.apd.Add(im, &reim, &imre); err != nil {
		return Complex{}, fmt.Errorf("multiply: %w", err)
	}
	return Complex{Re: re, Im: im}, nil
}

// Abs returns sqrt(re² + im²) at the context precision. The result is never
// negative.
func (c *Context) Abs(z Complex) (*apd.Decimal, error) {
	var rr, ii, sum apd.Decimal
	if _, err := c.apd.Mul(&rr, z.Re, z.Re); err != nil {
		return nil, fmt.Errorf("magnitude: %w", err)
	}
	if _, err := c.apd.Mul(&ii, z.Im, z.Im); err != nil {
		return nil, fmt.Errorf("magnitude: %w", err)
	}
	if _, err := c.apd.Add(&sum, &rr, &ii); err != nil {
		return nil, fmt.Errorf("magnitude: %w", err)
	}
	out := new(apd.Decimal)
	if _, err := c.apd.Sqrt(out, &sum); err != nil {
		return nil, fmt.Errorf("magnitude: %w", err)
	}
	return out, nil
}
