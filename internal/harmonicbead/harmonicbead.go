// Package harmonicbead is an in-process physics-engine test double: an
// Einstein-crystal system of N independent particles, each held in a
// harmonic well by a spring of constant k anchored at the origin,
// F = -k*x. It exists to drive internal/stepper without a real MD
// engine, the same role the teacher's internal/physics package plays for
// dynamo.System — grounded on physics/masschain.go's spring-force shape
// and physics/pendulum.go's State/Derive pattern, adapted here to the
// rpmd.System and forcedriver.PhysicsContext interfaces instead of
// dynamo's ODE-state vector.
package harmonicbead

import "github.com/san-kum/rpmdcore/internal/rpmd"

// System describes N particles of uniform mass for rpmd.System.
type System struct {
	NumParticlesValue int
	Mass              float64
}

func (s *System) NumParticles() int { return s.NumParticlesValue }

func (s *System) ParticleMass(int) float64 { return s.Mass }

// Context is one bead's physics-engine state: positions, velocities, and
// forces for the system's N particles, plus the bookkeeping every
// forcedriver.PhysicsContext implementation must carry. SpringConst is
// the well's force constant k; zero disables the force (a free
// particle), matching the F≡0 scenarios in spec.md §8.
type Context struct {
	SpringConst float64

	positions  []rpmd.Vec3
	velocities []rpmd.Vec3
	forces     []rpmd.Vec3

	time      float64
	stepCount int
}

// NewContext allocates a context for n particles.
func NewContext(n int, springConst float64) *Context {
	return &Context{
		SpringConst: springConst,
		positions:   make([]rpmd.Vec3, n),
		velocities:  make([]rpmd.Vec3, n),
		forces:      make([]rpmd.Vec3, n),
	}
}

func (c *Context) SetPositions(pos []rpmd.Vec3)  { copy(c.positions, pos) }
func (c *Context) SetVelocities(vel []rpmd.Vec3) { copy(c.velocities, vel) }
func (c *Context) GetPositions() []rpmd.Vec3     { return c.positions }
func (c *Context) GetVelocities() []rpmd.Vec3    { return c.velocities }
func (c *Context) GetForces() []rpmd.Vec3        { return c.forces }

// ComputeVirtualSites is a no-op: this system defines no virtual sites.
func (c *Context) ComputeVirtualSites() {}

// GetPeriodicBoxVectors returns a fixed, non-periodic box; this context
// never changes it, so the stepper's barostat invariant always holds
// unless this method is overridden (as BarostatContext does).
func (c *Context) GetPeriodicBoxVectors() (a, b, cVec rpmd.Vec3) {
	return rpmd.Vec3{}, rpmd.Vec3{}, rpmd.Vec3{}
}

// UpdateContextState is a no-op by default.
func (c *Context) UpdateContextState() {}

// CalcForcesAndEnergy fills forces with F = -k*x for every particle. The
// harmonic well is force group 0; groupMask is consulted so the
// contraction tests can exercise a context with multiple force groups.
func (c *Context) CalcForcesAndEnergy(computeForces, computeEnergy bool, groupMask uint32) {
	if !computeForces {
		return
	}
	if groupMask&1 == 0 {
		for i := range c.forces {
			c.forces[i] = rpmd.Vec3{}
		}
		return
	}
	for i, p := range c.positions {
		c.forces[i] = p.Scale(-c.SpringConst)
	}
}

func (c *Context) GetTime() float64      { return c.time }
func (c *Context) SetTime(t float64)     { c.time = t }
func (c *Context) GetStepCount() int     { return c.stepCount }
func (c *Context) SetStepCount(n int)    { c.stepCount = n }

// BarostatContext wraps a Context and reports a box that changes on
// every call after the first, for exercising the barostat-regression
// scenario in spec.md §8.
type BarostatContext struct {
	*Context
	calls int
}

func NewBarostatContext(n int, springConst float64) *BarostatContext {
	return &BarostatContext{Context: NewContext(n, springConst)}
}

func (b *BarostatContext) GetPeriodicBoxVectors() (a, bVec, cVec rpmd.Vec3) {
	b.calls++
	return rpmd.Vec3{X: float64(b.calls)}, rpmd.Vec3{}, rpmd.Vec3{}
}
