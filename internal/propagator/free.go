// Package propagator implements the exact, symplectic free-polymer time
// evolution of a single Cartesian mode under the quadratic ring/chain
// Hamiltonian — grounded on the teacher's integrator structs
// (internal/integrators/rk4.go, verlet.go): a small stateless struct with
// Step-shaped methods (StepCentroid, StepMode).
package propagator

import "math"

// Free advances the normal-mode positions and velocities of one particle's
// one Cartesian component through one timestep. It holds no per-particle
// state, so a single Free value is reused across every particle and
// component in a step.
type Free struct{}

// StepCentroid advances the k=0 mode: a free particle, q0 += v0*dt.
func (Free) StepCentroid(q0, v0, dt float64) (newQ0 float64) {
	return q0 + v0*dt
}

// StepMode advances one non-centroid mode k with frequency omega through
// dt. The new velocity is computed from the old velocity and position, the
// new position from the old velocity (not the new one), then both are
// committed — the order spec.md calls out explicitly to keep the rotation
// exact and symplectic.
func (Free) StepMode(q, v, omega, dt float64) (newQ, newV float64) {
	c := math.Cos(omega * dt)
	s := math.Sin(omega * dt)
	vPrime := v*c - q*omega*s
	newQ = v*(s/omega) + q*c
	newV = vPrime
	return newQ, newV
}

// ClosedModeFrequency returns omega_k for mode k of a closed (ring) path of
// P beads with ring-frequency scale omegaN.
func ClosedModeFrequency(k, numCopies int, omegaN float64) float64 {
	return omegaN * math.Sin(float64(k)*math.Pi/float64(numCopies))
}

// OpenModeFrequency returns omega_k for mode k of an open (chain) path of P
// beads with ring-frequency scale omegaN.
func OpenModeFrequency(k, numCopies int, omegaN float64) float64 {
	return omegaN * math.Sin(float64(k)*math.Pi/(2*float64(numCopies)))
}
