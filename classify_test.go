package julia

import "testing"

func TestClassifyOutsideBoundaryIsZero(t *testing.T) {
	ctx := newTestContext(t, 28)
	boundary, _ := ctx.Parse("2")
	c := mustComplex(t, ctx, "0", "0")

	for _, pt := range [][2]string{{"3", "4"}, {"-2.5", "0"}, {"0", "2.001"}} {
		p := mustComplex(t, ctx, pt[0], pt[1])
		got, err := ctx.Classify(p, c, 50, boundary)
		if err != nil {
			t.Fatalf("Classify(%s): %v", p, err)
		}
		if got != 0 {
			t.Errorf("Classify(%s) = %d, want 0", p, got)
		}
	}
}

func TestClassifyKnownOrbits(t *testing.T) {
	ctx := newTestContext(t, 28)
	boundary, _ := ctx.Parse("2")
	origin := mustComplex(t, ctx, "0", "0")

	tests := []struct {
		name   string
		re, im string
		want   int
	}{
		// the origin is a fixed point of z²+0
		{"origin", "0", "0", Contained},
		// |z| < 1 contracts toward the origin
		{"interior", "0.5", "0", Contained},
		// 1.5² = 2.25 > 2 on the first iteration
		{"escapes first", "1.5", "0", 1},
		// already outside
		{"outside", "2.5", "0", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustComplex(t, ctx, tc.re, tc.im)
			got, err := ctx.Classify(p, origin, 50, boundary)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tc.want {
				t.Errorf("Classify(%s) = %d, want %d", p, got, tc.want)
			}
		})
	}
}

func TestClassifyResultRange(t *testing.T) {
	ctx := newTestContext(t, 28)
	boundary, _ := ctx.Parse("2")
	c := mustComplex(t, ctx, "-0.8", "0.156")
	const cap = 20

	for _, pt := range [][2]string{
		{"0", "0"}, {"1", "1"}, {"-1.9", "0.3"}, {"0.1", "-1.2"}, {"3", "3"},
	} {
		p := mustComplex(t, ctx, pt[0], pt[1])
		got, err := ctx.Classify(p, c, cap, boundary)
		if err != nil {
			t.Fatalf("Classify(%s): %v", p, err)
		}
		if got != Contained && (got < 0 || got > cap) {
			t.Errorf("Classify(%s) = %d, outside [0, %d] and not Contained", p, got, cap)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	ctx := newTestContext(t, 28)
	boundary, _ := ctx.Parse("2")
	c := mustComplex(t, ctx, "-0.123", "0.745")
	p := mustComplex(t, ctx, "0.3", "-0.4")

	first, err := ctx.Classify(p, c, 100, boundary)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := ctx.Classify(p, c, 100, boundary)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("run %d: Classify = %d, first run was %d", i, again, first)
		}
	}
}

func TestClassifyZeroCap(t *testing.T) {
	ctx := newTestContext(t, 28)
	boundary, _ := ctx.Parse("2")
	c := mustComplex(t, ctx, "0", "0")

	inside := mustComplex(t, ctx, "0.1", "0.1")
	got, err := ctx.Classify(inside, c, 0, boundary)
	if err != nil {
		t.Fatal(err)
	}
	if got != Contained {
		t.Errorf("cap 0, inside point = %d, want Contained", got)
	}

	outside := mustComplex(t, ctx, "5", "0")
	got, err = ctx.Classify(outside, c, 0, boundary)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("cap 0, outside point = %d, want 0", got)
	}
}

func TestClassifyRejectsBadConfig(t *testing.T) {
	ctx := newTestContext(t, 28)
	c := mustComplex(t, ctx, "0", "0")
	p := mustComplex(t, ctx, "0.1", "0.1")

	for _, b := range []string{"0", "-1"} {
		boundary, _ := ctx.Parse(b)
		if _, err := ctx.Classify(p, c, 10, boundary); err == nil {
			t.Errorf("boundary %s: expected error", b)
		}
	}
	if _, err := ctx.Classify(p, c, 10, nil); err == nil {
		t.Error("nil boundary: expected error")
	}

	boundary, _ := ctx.Parse("2")
	if _, err := ctx.Classify(p, c, -1, boundary); err == nil {
		t.Error("negative cap: expected error")
	}
}
