// Package forcedriver stages each bead's state into the external physics
// engine and gathers forces, mirroring the reference kernel's
// extractPositions/extractVelocities/extractForces accessors and its
// computeForcesClosedPath/computeForcesOpenPath shape. The physics engine
// itself — and everything it does to compute a force — is the one
// collaborator spec.md deliberately keeps outside the core; this package
// is the narrow interface onto it.
package forcedriver

import "github.com/san-kum/rpmdcore/internal/rpmd"

// PhysicsContext is the entire surface the core asks of the external
// physics engine. A production binding wraps a real MD engine's context; a
// test or demo binding can be a plain in-process struct (see
// internal/harmonicbead).
type PhysicsContext interface {
	// SetPositions/SetVelocities/GetPositions/GetVelocities/GetForces give
	// the driver read/write access to this bead's N-particle arrays.
	SetPositions(pos []rpmd.Vec3)
	SetVelocities(vel []rpmd.Vec3)
	GetPositions() []rpmd.Vec3
	GetVelocities() []rpmd.Vec3
	GetForces() []rpmd.Vec3

	// ComputeVirtualSites reconstructs virtual-site positions from the
	// particles that define them.
	ComputeVirtualSites()

	// GetPeriodicBoxVectors reports the current periodic box.
	GetPeriodicBoxVectors() (a, b, c rpmd.Vec3)

	// UpdateContextState lets the engine apply any side effects it owns
	// between force evaluations (e.g. Monte Carlo moves). It must not
	// change the periodic box; the driver asserts this.
	UpdateContextState()

	// CalcForcesAndEnergy evaluates forces (and, optionally, energy) for
	// the force groups named by groupMask.
	CalcForcesAndEnergy(computeForces, computeEnergy bool, groupMask uint32)

	GetTime() float64
	SetTime(t float64)
	GetStepCount() int
	SetStepCount(n int)
}
