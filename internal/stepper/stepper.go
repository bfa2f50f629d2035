// Package stepper composes the normal-mode transform, free-polymer
// propagator, PILE-L thermostat, and replica force driver into the
// top-level symplectic step, in its two flavors (closed ring, open
// chain). Per spec.md §9's design note, the two flavors are modeled as a
// tagged variant over a small strategy table rather than an interface
// hierarchy per mode — the same shape the teacher favors for its small
// struct-with-scratch integrators.
package stepper

import (
	"math/rand"

	"github.com/san-kum/rpmdcore/internal/forcedriver"
	"github.com/san-kum/rpmdcore/internal/propagator"
	"github.com/san-kum/rpmdcore/internal/rpmd"
	"github.com/san-kum/rpmdcore/internal/thermostat"
	"github.com/san-kum/rpmdcore/internal/transform"
)

// modeStrategy supplies everything that differs between the closed and
// open flavors of a step: the mode-frequency formula, the effective
// number of copies feeding the ring-frequency scale, and the force
// evaluation entry point.
type modeStrategy struct {
	modeFrequency   func(k, numCopies int, omegaN float64) float64
	effectiveCopies func(numCopies int) int
	applyThermostat func(p *thermostat.PILE, v []float64, mass, temperature, friction, halfDt, omegaN float64) []float64
	evaluate        func(d *forcedriver.Driver, ctx forcedriver.PhysicsContext, ens *rpmd.Ensemble) error
}

var closedStrategy = modeStrategy{
	modeFrequency:   propagator.ClosedModeFrequency,
	effectiveCopies: func(numCopies int) int { return numCopies },
	applyThermostat: (*thermostat.PILE).ApplyClosed,
	evaluate:        (*forcedriver.Driver).EvaluateClosed,
}

var openStrategy = modeStrategy{
	modeFrequency:   propagator.OpenModeFrequency,
	effectiveCopies: func(numCopies int) int { return numCopies - 1 },
	applyThermostat: (*thermostat.PILE).ApplyOpen,
	evaluate:        (*forcedriver.Driver).EvaluateOpen,
}

// Stepper is the top-level RPMD/PIGS orchestrator. One Stepper owns one
// Ensemble and is reused for the life of a simulation.
type Stepper struct {
	system   rpmd.System
	config   rpmd.IntegratorConfig
	strategy modeStrategy

	ensemble   *rpmd.Ensemble
	schedule   *rpmd.ContractionSchedule
	driver     *forcedriver.Driver
	thermostat *thermostat.PILE
	free       propagator.Free
	closed     transform.Closed
	open       transform.Open

	rng *rand.Rand

	stepCount int
	time      float64
}

// Initialize sizes the ensemble to P×N, builds the contraction schedule,
// and seeds the RNG. It returns an error if the configuration's
// contraction map is invalid, or if the open path is requested with a
// non-empty contraction schedule.
func Initialize(system rpmd.System, config rpmd.IntegratorConfig) (*Stepper, error) {
	schedule, err := rpmd.BuildContractionSchedule(config.NumCopies, config.Contractions, config.IntegrationForceGroups)
	if err != nil {
		return nil, err
	}

	strategy := closedStrategy
	if config.Path == rpmd.OpenPath {
		strategy = openStrategy
	}

	rng := rand.New(rand.NewSource(config.Seed))

	s := &Stepper{
		system:     system,
		config:     config,
		strategy:   strategy,
		ensemble:   rpmd.NewEnsemble(config.NumCopies, system.NumParticles()),
		schedule:   schedule,
		driver:     forcedriver.New(schedule, system.NumParticles()),
		thermostat: thermostat.New(rng),
		rng:        rng,
	}
	return s, nil
}

// SetPositions bulk-writes bead k's positions.
func (s *Stepper) SetPositions(beadIndex int, pos []rpmd.Vec3) error {
	return s.ensemble.SetPositions(beadIndex, pos)
}

// SetVelocities bulk-writes bead k's velocities.
func (s *Stepper) SetVelocities(beadIndex int, vel []rpmd.Vec3) error {
	return s.ensemble.SetVelocities(beadIndex, vel)
}

// CopyToContext stages bead k's positions and velocities into ctx for
// observation.
func (s *Stepper) CopyToContext(beadIndex int, ctx rpmd.PhysicsState) {
	s.ensemble.CopyToContext(beadIndex, ctx)
}

// ComputeKineticEnergy reads the velocities currently staged into ctx and
// returns 1/2 sum m|v|^2, skipping zero-mass particles.
func (s *Stepper) ComputeKineticEnergy(ctx forcedriver.PhysicsContext) float64 {
	return rpmd.ComputeKineticEnergy(s.system, ctx.GetVelocities())
}

// Execute advances the ensemble by one Δt, dispatching on the path kind
// fixed at Initialize. forcesAreValid means the ensemble's Forces array
// is already current for the current Positions, so the leading force
// evaluation can be skipped.
func (s *Stepper) Execute(ctx forcedriver.PhysicsContext, forcesAreValid bool) error {
	if s.config.Path == rpmd.OpenPath && !s.schedule.IsEmpty() {
		return s.fail(rpmd.ErrOpenPathContraction)
	}

	if !forcesAreValid {
		if err := s.strategy.evaluate(s.driver, ctx, s.ensemble); err != nil {
			return s.fail(err)
		}
	}

	halfDt := s.config.Dt / 2
	omegaN := rpmd.RingFrequencyScale(s.strategy.effectiveCopies(s.config.NumCopies), s.config.Temperature)

	if s.config.ThermostatEnabled {
		s.applyThermostat(halfDt, omegaN)
	}

	s.kick(halfDt)
	s.drift(s.config.Dt, omegaN)

	if err := s.strategy.evaluate(s.driver, ctx, s.ensemble); err != nil {
		return s.fail(err)
	}

	s.kick(halfDt)

	if s.config.ThermostatEnabled {
		s.applyThermostat(halfDt, omegaN)
	}

	s.time += s.config.Dt
	s.stepCount++
	ctx.SetTime(s.time)
	ctx.SetStepCount(s.stepCount)
	return nil
}

func (s *Stepper) fail(err error) error {
	return &rpmd.StepError{Step: s.stepCount, Time: s.time, Err: err}
}

// applyThermostat runs one PILE-L half-kick over every particle and
// Cartesian component, in particle-then-component order — the RNG draw
// order spec.md §5 requires for reproducibility.
func (s *Stepper) applyThermostat(halfDt, omegaN float64) {
	n := s.config.NumCopies
	for particle := 0; particle < s.ensemble.NumParticles; particle++ {
		mass := s.system.ParticleMass(particle)
		if mass <= 0 {
			continue
		}
		for component := 0; component < 3; component++ {
			v := extractComponent(s.ensemble.Velocities, particle, component, n)
			updated := s.strategy.applyThermostat(s.thermostat, v, mass, s.config.Temperature, s.config.Friction, halfDt, omegaN)
			scatterComponent(s.ensemble.Velocities, particle, component, updated)
		}
	}
}

// kick applies the velocity half-kick v += F*halfDt/m to every bead and
// non-virtual particle.
func (s *Stepper) kick(halfDt float64) {
	for k := 0; k < s.ensemble.NumCopies; k++ {
		for j := 0; j < s.ensemble.NumParticles; j++ {
			mass := s.system.ParticleMass(j)
			if mass <= 0 {
				continue
			}
			s.ensemble.Velocities[k][j] = s.ensemble.Velocities[k][j].Add(s.ensemble.Forces[k][j].Scale(halfDt / mass))
		}
	}
}

// drift advances every particle's every Cartesian component through the
// free-polymer rotation for one Δt, in the mode basis selected by the
// active strategy.
//
// The open-chain DCT modes are real throughout, so StepMode applies
// directly. The closed-ring FFT modes are complex; since the rotation's
// coefficients (c, s, omega) are real scalars, applying StepMode to the
// real and imaginary parts independently is exactly the complex rotation
// — it needs no separate complex-aware propagator.
func (s *Stepper) drift(dt, omegaN float64) {
	n := s.config.NumCopies
	for particle := 0; particle < s.ensemble.NumParticles; particle++ {
		mass := s.system.ParticleMass(particle)
		if mass <= 0 {
			continue
		}
		for component := 0; component < 3; component++ {
			q := extractComponent(s.ensemble.Positions, particle, component, n)
			v := extractComponent(s.ensemble.Velocities, particle, component, n)

			if s.config.Path == rpmd.OpenPath {
				s.driftOpen(q, v, n, dt, omegaN)
			} else {
				s.driftClosed(q, v, n, dt, omegaN)
			}

			scatterComponent(s.ensemble.Positions, particle, component, q)
			scatterComponent(s.ensemble.Velocities, particle, component, v)
		}
	}
}

func (s *Stepper) driftOpen(q, v []float64, n int, dt, omegaN float64) {
	qModes := s.open.ToModes(q)
	vModes := s.open.ToModes(v)

	qModes[0] = s.free.StepCentroid(qModes[0], vModes[0], dt)
	for k := 1; k < n; k++ {
		omega := s.strategy.modeFrequency(k, n, omegaN)
		qModes[k], vModes[k] = s.free.StepMode(qModes[k], vModes[k], omega, dt)
	}

	copy(q, s.open.FromModes(qModes))
	copy(v, s.open.FromModes(vModes))
}

func (s *Stepper) driftClosed(q, v []float64, n int, dt, omegaN float64) {
	qModes := s.closed.ToModes(q)
	vModes := s.closed.ToModes(v)

	qModes[0] = complex(s.free.StepCentroid(real(qModes[0]), real(vModes[0]), dt), imag(qModes[0]))

	for k := 1; k < n; k++ {
		omega := s.strategy.modeFrequency(k, n, omegaN)
		newQRe, newVRe := s.free.StepMode(real(qModes[k]), real(vModes[k]), omega, dt)
		newQIm, newVIm := s.free.StepMode(imag(qModes[k]), imag(vModes[k]), omega, dt)
		qModes[k] = complex(newQRe, newQIm)
		vModes[k] = complex(newVRe, newVIm)
	}

	copy(q, s.closed.FromModes(qModes))
	copy(v, s.closed.FromModes(vModes))
}

func extractComponent(arr rpmd.BeadArray, particle, component, n int) []float64 {
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = componentOf(arr[k][particle], component)
	}
	return out
}

func scatterComponent(arr rpmd.BeadArray, particle, component int, values []float64) {
	for k, val := range values {
		setComponent(&arr[k][particle], component, val)
	}
}

func componentOf(v rpmd.Vec3, component int) float64 {
	switch component {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *rpmd.Vec3, component int, value float64) {
	switch component {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
}
