package transform

import (
	"math"
	"math/rand"
	"testing"
)

func TestClosedRoundTrip(t *testing.T) {
	var c Closed
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 2, 3, 4, 8, 15, 16} {
		x := make([]float64, n)
		for i := range x {
			x[i] = rng.NormFloat64()
		}

		modes := c.ToModes(x)
		out := c.FromModes(modes)

		for i := range x {
			if math.Abs(out[i]-x[i]) > 1e-9*math.Max(1, math.Abs(x[i])) {
				t.Errorf("n=%d i=%d: round trip %.12f != %.12f", n, i, out[i], x[i])
			}
		}
	}
}

func TestClosedCentroidIsMean(t *testing.T) {
	var c Closed
	x := []float64{1, 2, 3, 4}
	modes := c.ToModes(x)

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	got := real(modes[0]) / math.Sqrt(float64(len(x)))
	if math.Abs(got-mean) > 1e-9 {
		t.Errorf("expected centroid mode to scale to mean %.6f, got %.6f", mean, got)
	}
}
