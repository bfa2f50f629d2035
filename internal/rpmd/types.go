// Package rpmd holds the data model shared by the ring-polymer integrator
// packages: the bead ensemble, its physical constants, and the force-group
// bookkeeping produced at initialization.
package rpmd

import "math"

// Vec3 is a single Cartesian 3-vector: a position, velocity, or force on one
// particle in one bead.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(f float64) Vec3 { return Vec3{v.X * f, v.Y * f, v.Z * f} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// BeadRow is the N-particle state for one bead.
type BeadRow []Vec3

func (r BeadRow) Clone() BeadRow {
	c := make(BeadRow, len(r))
	copy(c, r)
	return c
}

// BeadArray is a P-bead, N-particle array: positions, velocities, or forces.
type BeadArray []BeadRow

// NewBeadArray allocates a P×N array of zero vectors.
func NewBeadArray(numCopies, numParticles int) BeadArray {
	a := make(BeadArray, numCopies)
	for k := range a {
		a[k] = make(BeadRow, numParticles)
	}
	return a
}

// System describes the physical system's particle masses. Zero mass marks a
// virtual site: it is never thermostatted, velocity-kicked, or drifted by
// the integrator.
type System interface {
	NumParticles() int
	ParticleMass(particle int) float64
}

// PathKind selects the ring (closed) or chain (open, LePIGS/PIGS) topology.
type PathKind int

const (
	ClosedPath PathKind = iota
	OpenPath
)

func (k PathKind) String() string {
	if k == OpenPath {
		return "open"
	}
	return "closed"
}
