package julia

import (
	"strings"
	"testing"
)

func newTestContext(t *testing.T, digits uint32) *Context {
	t.Helper()
	ctx, err := NewContext(digits)
	if err != nil {
		t.Fatalf("NewContext(%d): %v", digits, err)
	}
	return ctx
}

func mustComplex(t *testing.T, ctx *Context, re, im string) Complex {
	t.Helper()
	z, err := ctx.ParseComplex(re, im)
	if err != nil {
		t.Fatalf("ParseComplex(%s, %s): %v", re, im, err)
	}
	return z
}

func TestNewContextRejectsZeroDigits(t *testing.T) {
	if _, err := NewContext(0); err == nil {
		t.Fatal("expected error for zero digits")
	}
}

func TestAdd(t *testing.T) {
	ctx := newTestContext(t, 28)
	a := mustComplex(t, ctx, "1.5", "-2")
	b := mustComplex(t, ctx, "0.25", "3")

	sum, err := ctx.Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	want := mustComplex(t, ctx, "1.75", "1")
	if sum.Re.Cmp(want.Re) != 0 || sum.Im.Cmp(want.Im) != 0 {
		t.Errorf("Add = %s, want %s", sum, want)
	}
}

func TestMul(t *testing.T) {
	ctx := newTestContext(t, 28)
	tests := []struct {
		a, b, want [2]string
	}{
		{[2]string{"1", "2"}, [2]string{"3", "4"}, [2]string{"-5", "10"}},
		{[2]string{"0", "1"}, [2]string{"0", "1"}, [2]string{"-1", "0"}},
		{[2]string{"-0.5", "0.5"}, [2]string{"2", "0"}, [2]string{"-1", "1"}},
	}
	for _, tc := range tests {
		a := mustComplex(t, ctx, tc.a[0], tc.a[1])
		b := mustComplex(t, ctx, tc.b[0], tc.b[1])
		got, err := ctx.Mul(a, b)
		if err != nil {
			t.Fatalf("Mul(%s, %s): %v", a, b, err)
		}
		want := mustComplex(t, ctx, tc.want[0], tc.want[1])
		if got.Re.Cmp(want.Re) != 0 || got.Im.Cmp(want.Im) != 0 {
			t.Errorf("Mul(%s, %s) = %s, want %s", a, b, got, want)
		}
	}
}

func TestAbs(t *testing.T) {
	ctx := newTestContext(t, 28)
	tests := []struct {
		re, im, want string
	}{
		{"3", "4", "5"},
		{"-3", "4", "5"},
		{"0", "0", "0"},
		{"0", "-2", "2"},
	}
	for _, tc := range tests {
		z := mustComplex(t, ctx, tc.re, tc.im)
		got, err := ctx.Abs(z)
		if err != nil {
			t.Fatalf("Abs(%s): %v", z, err)
		}
		want, err := ctx.Parse(tc.want)
		if err != nil {
			t.Fatal(err)
		}
		if got.Cmp(want) != 0 {
			t.Errorf("Abs(%s) = %s, want %s", z, got, want)
		}
		if got.Negative {
			t.Errorf("Abs(%s) is negative", z)
		}
	}
}

// A sum that float64 would collapse must survive at 40 digits.
func TestPrecisionPreserved(t *testing.T) {
	ctx := newTestContext(t, 40)
	a := mustComplex(t, ctx, "1", "0")
	b := mustComplex(t, ctx, "1e-30", "0")

	sum, err := ctx.Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	want, err := ctx.Parse("1." + strings.Repeat("0", 29) + "1")
	if err != nil {
		t.Fatal(err)
	}
	if sum.Re.Cmp(want) != 0 {
		t.Errorf("1 + 1e-30 = %s, want %s", sum.Re, want)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	ctx := newTestContext(t, 28)
	if _, err := ctx.Parse("not-a-number"); err == nil {
		t.Fatal("expected parse error")
	}
}
