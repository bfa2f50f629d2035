package metrics

import "github.com/san-kum/rpmdcore/internal/rpmd"

// EnergyDrift tracks the maximum relative deviation of an observed
// energy value from its first observation, grounded on the teacher's
// EnergyDrift metric.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (d *EnergyDrift) Name() string { return d.name }

func (d *EnergyDrift) Observe(energy float64) {
	if d.samples == 0 {
		d.initialEnergy = energy
	}
	d.samples++
	if d.initialEnergy != 0 {
		drift := abs(energy-d.initialEnergy) / abs(d.initialEnergy)
		if drift > d.maxDrift {
			d.maxDrift = drift
		}
	}
}

func (d *EnergyDrift) Value() float64 { return d.maxDrift }

func (d *EnergyDrift) Reset() {
	d.initialEnergy = 0
	d.maxDrift = 0
	d.samples = 0
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Stability reports the fraction of observed bead snapshots whose
// positions stayed under threshold in every Cartesian component,
// grounded on the teacher's Stability metric but over rpmd.Vec3 rows
// instead of a flat dynamo.State.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{name: "stability", threshold: threshold}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) Observe(row []rpmd.Vec3) {
	s.samples++
	for _, v := range row {
		if !v.IsFinite() || abs(v.X) > s.threshold || abs(v.Y) > s.threshold || abs(v.Z) > s.threshold {
			s.violations++
			return
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
