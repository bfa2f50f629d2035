package contraction

import (
	"math"
	"testing"
)

func TestPositionsToReducedConstant(t *testing.T) {
	for _, p := range []int{4, 8} {
		full := make([]float64, p)
		for i := range full {
			full[i] = 3.5
		}
		for _, pPrime := range []int{1, 2} {
			reduced := PositionsToReduced(full, pPrime)
			for i, v := range reduced {
				if math.Abs(v-3.5) > 1e-9 {
					t.Errorf("p=%d p'=%d i=%d: expected 3.5, got %.9f", p, pPrime, i, v)
				}
			}
		}
	}
}

func TestForcesToFullSumsToConstant(t *testing.T) {
	p := 8
	pPrime := 2
	reducedForces := []float64{1.5, 1.5}
	full := make([]float64, p)

	ForcesToFull(reducedForces, full)

	sum := 0.0
	for _, v := range full {
		sum += v
	}
	if math.Abs(sum-1.5*float64(pPrime)) > 1e-9 {
		t.Errorf("expected forces to sum to %.6f, got %.6f", 1.5*float64(pPrime), sum)
	}
	for i, v := range full {
		if math.Abs(v-1.5) > 1e-9 {
			t.Errorf("i=%d: expected constant extension 1.5, got %.9f", i, v)
		}
	}
}

func TestForcesToFullAccumulates(t *testing.T) {
	full := []float64{1, 1, 1, 1}
	ForcesToFull([]float64{2, 2, 2, 2}, full)
	for i, v := range full {
		if math.Abs(v-3) > 1e-9 {
			t.Errorf("i=%d: expected accumulation to 3, got %.9f", i, v)
		}
	}
}

func TestNoOpWhenCopiesEqualFull(t *testing.T) {
	full := []float64{1, 2, 3, 4}
	reduced := PositionsToReduced(full, 4)
	for i := range full {
		if reduced[i] != full[i] {
			t.Errorf("i=%d: expected identity copy, got %.9f != %.9f", i, reduced[i], full[i])
		}
	}
}
