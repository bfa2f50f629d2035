// Package thermostat implements the local path-integral Langevin equation
// (PILE-L): white-noise friction on the centroid mode, critical damping on
// every internal mode. It threads an explicit *rand.Rand handle rather than
// touching the package-level global generator — the same pattern the
// teacher's internal/experiment package uses
// (rand.New(rand.NewSource(cfg.Seed))) — so a seed fixed at Initialize
// reproduces a trajectory bit for bit.
package thermostat

import (
	"math"
	"math/rand"

	"github.com/san-kum/rpmdcore/internal/rpmd"
	"github.com/san-kum/rpmdcore/internal/transform"
)

// PILE applies the thermostat to one Cartesian component of one particle at
// a time; it holds no per-particle state, only the shared RNG stream whose
// draw order the caller (the stepper) is responsible for keeping
// deterministic: particle, then component, then mode.
type PILE struct {
	rng    *rand.Rand
	closed transform.Closed
	open   transform.Open
}

// New builds a thermostat drawing from rng. Seed rng once, at Initialize,
// to get bit-for-bit reproducible trajectories.
func New(rng *rand.Rand) *PILE {
	return &PILE{rng: rng}
}

// ApplyClosed advances one component's P velocities by halfDt under PILE-L
// in the closed-ring mode basis. omegaN is the ring frequency scale
// (rpmd.RingFrequencyScale(numCopies, temperature)).
func (p *PILE) ApplyClosed(v []float64, mass, temperature, friction, halfDt, omegaN float64) []float64 {
	n := len(v)
	buf := make([]complex128, n)
	for i, x := range v {
		buf[i] = complex(x, 0)
	}
	modes := p.closed.ToModesComplex(buf)

	nkT := float64(n) * rpmd.BoltzmannConstant * temperature

	c1_0 := math.Exp(-halfDt * friction)
	c2_0 := math.Sqrt(1 - c1_0*c1_0)
	c3_0 := c2_0 * math.Sqrt(nkT/mass)
	modes[0] = complex(real(modes[0])*c1_0+c3_0*p.rng.NormFloat64(), 0)

	for k := 1; k <= n/2; k++ {
		isNyquist := n%2 == 0 && k == n/2
		wk := omegaN * math.Sin(float64(k)*math.Pi/float64(n))
		c1 := math.Exp(-2 * wk * halfDt)
		c2 := math.Sqrt((1 - c1*c1) / 2)
		if isNyquist {
			c2 *= math.Sqrt2
		}
		c3 := c2 * math.Sqrt(nkT/mass)

		rand1 := c3 * p.rng.NormFloat64()
		rand2 := 0.0
		if !isNyquist {
			rand2 = c3 * p.rng.NormFloat64()
		}

		modes[k] = modes[k]*complex(c1, 0) + complex(rand1, rand2)
		if k < n-k {
			modes[n-k] = modes[n-k]*complex(c1, 0) + complex(rand1, -rand2)
		}
	}

	out := p.closed.FromModesComplex(modes)
	result := make([]float64, n)
	for i, x := range out {
		result[i] = real(x)
	}
	return result
}

// ApplyOpen advances one component's P velocities by halfDt under PILE-L in
// the open-chain (DCT) mode basis. omegaN is
// rpmd.RingFrequencyScale(numCopies-1, temperature).
func (p *PILE) ApplyOpen(v []float64, mass, temperature, friction, halfDt, omegaN float64) []float64 {
	n := len(v)
	modes := p.open.ToModes(v)

	nkT := float64(n) * rpmd.BoltzmannConstant * temperature

	c1_0 := math.Exp(-halfDt * friction)
	c2_0 := math.Sqrt(1 - c1_0*c1_0)
	c3_0 := c2_0 * math.Sqrt(nkT/mass)
	modes[0] = modes[0]*c1_0 + c3_0*p.rng.NormFloat64()

	for k := 1; k < n; k++ {
		wk := omegaN * math.Sin(float64(k)*math.Pi/(2*float64(n)))
		c1 := math.Exp(-2 * wk * halfDt)
		c2 := math.Sqrt(1 - c1*c1)
		c3 := c2 * math.Sqrt(nkT/mass)
		modes[k] = modes[k]*c1 + c3*p.rng.NormFloat64()
	}

	return p.open.FromModes(modes)
}
