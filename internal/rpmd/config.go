package rpmd

// IntegratorConfig holds the integrator inputs spec.md §6 lists:
// everything the stepper needs at Initialize time plus everything it
// re-reads on every Execute.
type IntegratorConfig struct {
	// Dt is the step size in ps.
	Dt float64
	// Temperature is T in K.
	Temperature float64
	// Friction is gamma, the centroid friction in 1/ps.
	Friction float64
	// NumCopies is P, the number of beads.
	NumCopies int
	// Path selects the closed-ring or open-chain topology.
	Path PathKind
	// ThermostatEnabled gates both PILE-L applications in a step.
	ThermostatEnabled bool
	// Seed seeds the stepper's RNG once, at Initialize.
	Seed int64
	// IntegrationForceGroups is the active force-group mask.
	IntegrationForceGroups uint32
	// Contractions maps a force group to the bead count it should be
	// evaluated on instead of the full P.
	Contractions map[int]int
}
