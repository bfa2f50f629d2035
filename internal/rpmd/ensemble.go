package rpmd

// Ensemble owns the replica's position, velocity, and force arrays for the
// lifetime of a stepper. All three arrays always share the same P×N shape;
// the stepper is the only thing that mutates them between steps.
type Ensemble struct {
	NumCopies    int
	NumParticles int
	Positions    BeadArray
	Velocities   BeadArray
	Forces       BeadArray
}

// NewEnsemble allocates a zeroed P×N ensemble.
func NewEnsemble(numCopies, numParticles int) *Ensemble {
	return &Ensemble{
		NumCopies:    numCopies,
		NumParticles: numParticles,
		Positions:    NewBeadArray(numCopies, numParticles),
		Velocities:   NewBeadArray(numCopies, numParticles),
		Forces:       NewBeadArray(numCopies, numParticles),
	}
}

// SetPositions bulk-writes one bead's positions.
func (e *Ensemble) SetPositions(beadIndex int, pos []Vec3) error {
	if len(pos) != e.NumParticles {
		return ErrDimensionMismatch
	}
	copy(e.Positions[beadIndex], pos)
	return nil
}

// SetVelocities bulk-writes one bead's velocities.
func (e *Ensemble) SetVelocities(beadIndex int, vel []Vec3) error {
	if len(vel) != e.NumParticles {
		return ErrDimensionMismatch
	}
	copy(e.Velocities[beadIndex], vel)
	return nil
}

// PhysicsState is the narrow read/write surface the ensemble stages into
// and reads back from the external physics context when copying one bead
// out for observation (as opposed to force evaluation, which goes through
// forcedriver.PhysicsContext).
type PhysicsState interface {
	SetPositions(pos []Vec3)
	SetVelocities(vel []Vec3)
}

// CopyToContext stages one bead's positions and velocities into ctx for
// observation (e.g. before computing kinetic energy).
func (e *Ensemble) CopyToContext(beadIndex int, ctx PhysicsState) {
	ctx.SetPositions(e.Positions[beadIndex])
	ctx.SetVelocities(e.Velocities[beadIndex])
}

// ComputeKineticEnergy computes 1/2 * sum_j m_j |v_j|^2 over the given
// velocities (e.g. those currently staged into a context). Zero-mass
// (virtual) particles are skipped.
func ComputeKineticEnergy(sys System, velocities []Vec3) float64 {
	energy := 0.0
	for j, v := range velocities {
		mass := sys.ParticleMass(j)
		if mass <= 0 {
			continue
		}
		energy += mass * v.Dot(v)
	}
	return 0.5 * energy
}
