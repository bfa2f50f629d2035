package stepper_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rpmdcore/internal/harmonicbead"
	"github.com/san-kum/rpmdcore/internal/rpmd"
	"github.com/san-kum/rpmdcore/internal/stepper"
)

// Scenario 3 (spec.md §8): P=4, thermostat on, T=300K, gamma=1/ps, F=0,
// m=18 amu: after 1e6 steps of dt=0.0005ps, the centroid velocity's
// time-averaged <v^2> should sit near k_B*T/m within 2%.
var _ = Describe("PILE-L thermostat equilibration", func() {
	It("drives the centroid to the target temperature", func() {
		const (
			mass        = 18.0
			temperature = 300.0
			friction    = 1.0
			dt          = 0.0005
			steps       = 1_000_000
			numCopies   = 4
		)

		sys := &harmonicbead.System{NumParticlesValue: 1, Mass: mass}
		ctx := harmonicbead.NewContext(1, 0.0)

		s, err := stepper.Initialize(sys, rpmd.IntegratorConfig{
			Dt:                     dt,
			NumCopies:              numCopies,
			Path:                   rpmd.ClosedPath,
			Temperature:            temperature,
			Friction:               friction,
			ThermostatEnabled:      true,
			Seed:                   1,
			IntegrationForceGroups: 1,
		})
		Expect(err).NotTo(HaveOccurred())

		var sumVSquared float64
		for i := 0; i < steps; i++ {
			Expect(s.Execute(ctx, false)).To(Succeed())
			centroid := 0.0
			for k := 0; k < numCopies; k++ {
				s.CopyToContext(k, ctx)
				centroid += ctx.GetVelocities()[0].X
			}
			centroid /= numCopies
			sumVSquared += centroid * centroid
		}

		meanVSquared := sumVSquared / float64(steps)
		target := rpmd.BoltzmannConstant * temperature / mass

		Expect(meanVSquared).To(BeNumerically("~", target, 0.02*target))
	})
})

// Bit-for-bit reproducibility (spec.md §8): two steppers built from the
// same seed, stepped through the same stochastic trajectory, must agree
// exactly — the RNG draw order is a fixed contract, not an incidental
// detail of map iteration or goroutine scheduling.
var _ = Describe("seeded trajectory reproducibility", func() {
	It("produces identical trajectories from an identical seed", func() {
		run := func(seed int64) []rpmd.Vec3 {
			sys := &harmonicbead.System{NumParticlesValue: 1, Mass: 18.0}
			ctx := harmonicbead.NewContext(1, 0.0)
			s, err := stepper.Initialize(sys, rpmd.IntegratorConfig{
				Dt:                     0.0005,
				NumCopies:              4,
				Path:                   rpmd.ClosedPath,
				Temperature:            300.0,
				Friction:               1.0,
				ThermostatEnabled:      true,
				Seed:                   seed,
				IntegrationForceGroups: 1,
			})
			Expect(err).NotTo(HaveOccurred())

			trace := make([]rpmd.Vec3, 0, 1000)
			for i := 0; i < 1000; i++ {
				Expect(s.Execute(ctx, false)).To(Succeed())
				s.CopyToContext(0, ctx)
				trace = append(trace, ctx.GetVelocities()[0])
			}
			return trace
		}

		traceA := run(42)
		traceB := run(42)

		Expect(traceA).To(HaveLen(len(traceB)))
		for i := range traceA {
			Expect(traceA[i].X).To(Equal(traceB[i].X))
			Expect(traceA[i].Y).To(Equal(traceB[i].Y))
			Expect(traceA[i].Z).To(Equal(traceB[i].Z))
		}

		traceC := run(43)
		differs := false
		for i := range traceA {
			if math.Abs(traceA[i].X-traceC[i].X) > 1e-15 {
				differs = true
				break
			}
		}
		Expect(differs).To(BeTrue(), "a different seed should diverge from the reference trace")
	})
})
