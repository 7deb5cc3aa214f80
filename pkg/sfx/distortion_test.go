package sfx

import (
	"math"
	"testing"
)

func TestDistortIdentity(t *testing.T) {
	for i := -100; i <= 100; i++ {
		x := float64(i) / 100.0
		if got := Distort(x, 0, 0); got != x {
			t.Errorf("Distort(%f, 0, 0) = %f, want identity", x, got)
		}
	}
}

func TestDistortBounded(t *testing.T) {
	params := []struct{ crunch, drive float64 }{
		{0, 0},
		{0.5, 0},
		{0, 0.5},
		{1, 1},
		{10, 10},
		{1000, 1000},
	}

	for _, p := range params {
		for i := -100; i <= 100; i++ {
			x := float64(i) / 100.0
			y := Distort(x, p.crunch, p.drive)
			if y < -1.0 || y > 1.0 {
				t.Errorf("Distort(%f, %f, %f) = %f out of range",
					x, p.crunch, p.drive, y)
			}
		}
	}
}

func TestDistortSymmetryAndSaturation(t *testing.T) {
	// The shaper is odd: f(-x) == -f(x).
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100.0
		pos := Distort(x, 2, 1)
		neg := Distort(-x, 2, 1)
		if math.Abs(pos+neg) > 1e-12 {
			t.Errorf("asymmetric at %f: %f vs %f", x, pos, neg)
		}
	}

	// More crunch pushes a mid-level signal closer to the rails.
	soft := Distort(0.5, 1, 0)
	hard := Distort(0.5, 20, 0)
	if hard <= soft {
		t.Errorf("crunch 20 (%f) not harder than crunch 1 (%f)", hard, soft)
	}
}

func TestSoftLimit(t *testing.T) {
	// Passes moderate levels through untouched.
	for _, x := range []float64{-0.9, -0.5, 0, 0.5, 0.9} {
		if got := softLimit(x); got != x {
			t.Errorf("softLimit(%f) = %f, want passthrough", x, got)
		}
	}
	// Stays inside [-1,1] for any sum.
	for _, x := range []float64{1.5, 3, 10, 100, -1.5, -3, -10, -100} {
		got := softLimit(x)
		if got < -1.0 || got > 1.0 {
			t.Errorf("softLimit(%f) = %f out of range", x, got)
		}
	}
}
