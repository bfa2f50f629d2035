package propagator

import (
	"math"
	"testing"
)

func TestStepCentroidLinearDrift(t *testing.T) {
	var f Free
	q, v, dt := 0.0, 1.0, 0.001
	for i := 0; i < 1000; i++ {
		q = f.StepCentroid(q, v, dt)
	}
	if math.Abs(q-1.0) > 1e-9 {
		t.Errorf("expected q=1.0 after 1000 steps of dt=0.001 at v=1, got %.12f", q)
	}
}

func TestStepModeEnergyConservation(t *testing.T) {
	var f Free
	mass := 1.0
	omega := 2.0
	q, v := 1.0, 0.0
	dt := 1e-4

	initialEnergy := 0.5*mass*v*v + 0.5*mass*omega*omega*q*q

	for i := 0; i < 10000; i++ {
		q, v = f.StepMode(q, v, omega, dt)
	}

	finalEnergy := 0.5*mass*v*v + 0.5*mass*omega*omega*q*q
	relError := math.Abs(finalEnergy-initialEnergy) / initialEnergy
	if relError > 1e-10 {
		t.Errorf("energy drift too large: %.3e", relError)
	}
}

func TestStepModeOscillationPeriod(t *testing.T) {
	var f Free
	omega := math.Pi // period 2
	q, v := 1.0, 0.0
	dt := 0.001
	steps := int(2 * math.Pi / omega / dt)

	for i := 0; i < steps; i++ {
		q, v = f.StepMode(q, v, omega, dt)
	}

	if math.Abs(q-1.0) > 1e-3 {
		t.Errorf("expected q to return to 1.0 after one period, got %.6f", q)
	}
}

func TestClosedModeFrequencyHalfRing(t *testing.T) {
	omegaN := 10.0
	// P=2, mode 1: omega_n * sin(pi/2) = omega_n.
	got := ClosedModeFrequency(1, 2, omegaN)
	if math.Abs(got-omegaN) > 1e-12 {
		t.Errorf("expected omega_1 = omega_n = %.6f, got %.6f", omegaN, got)
	}
}
