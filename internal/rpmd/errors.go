package rpmd

import (
	"errors"
	"fmt"
)

// Domain errors for the RPMD/PIGS integrator core.
var (
	// ErrInvalidForceGroup indicates a contraction entry named a force
	// group outside [0,31].
	ErrInvalidForceGroup = errors.New("rpmd: force group must be between 0 and 31")

	// ErrInvalidContractionCopies indicates a contraction entry named a
	// bead count outside [0, numCopies].
	ErrInvalidContractionCopies = errors.New("rpmd: number of copies for contraction cannot be greater than the total number of copies being simulated")

	// ErrBarostatChanged indicates the periodic box vectors changed during
	// a force evaluation; standard barostats are incompatible with RPMD.
	ErrBarostatChanged = errors.New("rpmd: standard barostats cannot be used; use the RPMD-aware barostat")

	// ErrOpenPathContraction indicates a non-empty contraction schedule
	// was used with the open (LePIGS/PIGS) path.
	ErrOpenPathContraction = errors.New("rpmd: contractions not implemented for open path")

	// ErrDimensionMismatch indicates a bulk position/velocity write whose
	// length does not match the number of particles.
	ErrDimensionMismatch = errors.New("rpmd: dimension mismatch between supplied vector and particle count")
)

// StepError wraps a domain error with the step and simulation time at which
// it occurred. The ensemble's state after a StepError is undefined; the
// caller must restart from a checkpoint.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("rpmd: step %d (t=%.6f ps): %v", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
