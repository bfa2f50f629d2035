package rpmd

// Physical constants in the module's unit system: nm, ps, amu, kJ/mol, K.
const (
	// BoltzmannConstant is k_B in kJ/mol/K.
	BoltzmannConstant = 0.0083144621

	// AvogadroNumber is N_A in mol^-1.
	AvogadroNumber = 6.02214076e23
)

// ReducedPlanck is hbar expressed in kJ*ps/mol, derived the same way the
// reference kernel derives it: Planck's constant over 2*pi in J*s, scaled
// to per-mole by Avogadro's number, then from J to kJ and from s to ps.
var ReducedPlanck = 1.054571628e-34 * AvogadroNumber / (1000 * 1e-12)

// RingFrequencyScale returns omega_n, the characteristic frequency used to
// build every non-centroid mode frequency. numCopies is P for a closed ring
// or P-1 for an open chain (the caller picks which before calling this).
func RingFrequencyScale(effectiveCopies int, temperature float64) float64 {
	return 2.0 * float64(effectiveCopies) * BoltzmannConstant * temperature / ReducedPlanck
}
