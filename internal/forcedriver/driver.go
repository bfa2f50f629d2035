package forcedriver

import (
	"github.com/san-kum/rpmdcore/internal/contraction"
	"github.com/san-kum/rpmdcore/internal/rpmd"
)

// Driver evaluates forces for every bead of an ensemble, including the
// contracted-force-group extrapolation the closed path supports. One
// Driver is built at Initialize and reused for the life of the stepper;
// its contracted-position/force workspaces are sized once, to the largest
// P' in the schedule.
type Driver struct {
	schedule            *rpmd.ContractionSchedule
	contractedPositions rpmd.BeadArray
	contractedForces    rpmd.BeadArray
}

// New builds a driver for the given contraction schedule, sizing the
// contracted workspaces to schedule.MaxContractedCopies x numParticles.
func New(schedule *rpmd.ContractionSchedule, numParticles int) *Driver {
	return &Driver{
		schedule:            schedule,
		contractedPositions: rpmd.NewBeadArray(schedule.MaxContractedCopies, numParticles),
		contractedForces:    rpmd.NewBeadArray(schedule.MaxContractedCopies, numParticles),
	}
}

// EvaluateClosed runs the full-P pass (staging every bead, checking the box
// invariant, evaluating groupsNotContracted) and then, for every P' in the
// schedule, contracts positions, evaluates that group's forces on P'
// beads, and extrapolates them back into ens.Forces.
func (d *Driver) EvaluateClosed(ctx PhysicsContext, ens *rpmd.Ensemble) error {
	if err := d.evaluateFullPass(ctx, ens, d.schedule.GroupsNotContracted); err != nil {
		return err
	}

	for copies, mask := range d.schedule.GroupsByCopies {
		d.contractPositions(ens, copies)
		for i := 0; i < copies; i++ {
			ctx.SetPositions(d.contractedPositions[i])
			ctx.ComputeVirtualSites()
			ctx.CalcForcesAndEnergy(true, false, mask)
			copy(d.contractedForces[i], ctx.GetForces())
		}
		d.extrapolateForces(ens, copies)
	}
	return nil
}

// EvaluateOpen runs the full-P pass, halves the endpoint forces (the
// symmetric trapezoidal path-integral discretization gives the two chain
// endpoints half the potential of an internal bead), and then refuses if
// the schedule contracts anything — LePIGS contraction is not implemented.
func (d *Driver) EvaluateOpen(ctx PhysicsContext, ens *rpmd.Ensemble) error {
	if err := d.evaluateFullPass(ctx, ens, d.schedule.GroupsNotContracted); err != nil {
		return err
	}

	last := ens.NumCopies - 1
	for j := range ens.Forces[0] {
		ens.Forces[0][j] = ens.Forces[0][j].Scale(0.5)
		ens.Forces[last][j] = ens.Forces[last][j].Scale(0.5)
	}

	if !d.schedule.IsEmpty() {
		return rpmd.ErrOpenPathContraction
	}
	return nil
}

func (d *Driver) evaluateFullPass(ctx PhysicsContext, ens *rpmd.Ensemble, groupMask uint32) error {
	for k := 0; k < ens.NumCopies; k++ {
		ctx.SetPositions(ens.Positions[k])
		ctx.SetVelocities(ens.Velocities[k])
		ctx.ComputeVirtualSites()

		a0, b0, c0 := ctx.GetPeriodicBoxVectors()
		ctx.UpdateContextState()
		a1, b1, c1 := ctx.GetPeriodicBoxVectors()
		if a0 != a1 || b0 != b1 || c0 != c1 {
			return rpmd.ErrBarostatChanged
		}

		copy(ens.Positions[k], ctx.GetPositions())
		copy(ens.Velocities[k], ctx.GetVelocities())

		ctx.CalcForcesAndEnergy(true, false, groupMask)
		copy(ens.Forces[k], ctx.GetForces())
	}
	return nil
}

func (d *Driver) contractPositions(ens *rpmd.Ensemble, copies int) {
	for particle := 0; particle < ens.NumParticles; particle++ {
		for component := 0; component < 3; component++ {
			series := seriesOf(ens.Positions, particle, component)
			reduced := contraction.PositionsToReduced(series, copies)
			for k := 0; k < copies; k++ {
				setComponent(&d.contractedPositions[k][particle], component, reduced[k])
			}
		}
	}
}

func (d *Driver) extrapolateForces(ens *rpmd.Ensemble, copies int) {
	for particle := 0; particle < ens.NumParticles; particle++ {
		for component := 0; component < 3; component++ {
			reducedForces := seriesOf(d.contractedForces[:copies], particle, component)
			fullForces := seriesOf(ens.Forces, particle, component)
			contraction.ForcesToFull(reducedForces, fullForces)
			for k := 0; k < ens.NumCopies; k++ {
				setComponent(&ens.Forces[k][particle], component, fullForces[k])
			}
		}
	}
}

func seriesOf(arr rpmd.BeadArray, particle, component int) []float64 {
	out := make([]float64, len(arr))
	for k, row := range arr {
		out[k] = componentOf(row[particle], component)
	}
	return out
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
