package transform

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Closed is the normal-mode transform for the ring topology: a complex DFT
// over P beads, mode 0 is the centroid, and for real input mode k and mode
// P-k are complex conjugates.
//
// go-dsp/fft.FFT/IFFT is unnormalized-forward / 1/n-normalized-inverse, the
// same arbitrary-length (Bluestein) transform the teacher's audio pipeline
// and the reference pack's GPE simulator use for non-power-of-two lengths.
// ToModes and FromModes apply the symmetric 1/sqrt(P) scaling convention
// from the spec (equal weight on both directions) on top of that library
// pair; the sqrt(P) factor on FromModes compensates go-dsp's internal 1/n
// so that FromModes(ToModes(x)) is the identity to round-off.
type Closed struct{}

// ToModes transforms a length-P array of real Cartesian values into the
// complex mode basis.
func (Closed) ToModes(x []float64) []complex128 {
	n := len(x)
	scaled := make([]complex128, n)
	inv := 1.0 / math.Sqrt(float64(n))
	for i, v := range x {
		scaled[i] = complex(v*inv, 0)
	}
	return fft.FFT(scaled)
}

// FromModes transforms a length-P complex mode-basis array back to real
// Cartesian values. The Hermitian symmetry required for a real result must
// already hold in modes (callers that mutate modes, e.g. the thermostat,
// are responsible for preserving it).
func (Closed) FromModes(modes []complex128) []float64 {
	n := len(modes)
	raw := fft.IFFT(modes)
	scale := math.Sqrt(float64(n))
	out := make([]float64, n)
	for i, v := range raw {
		out[i] = real(v) * scale
	}
	return out
}

// ToModesComplex is the same transform as ToModes but for an already
// complex input buffer, used by the thermostat, which keeps the modes
// complex through its update.
func (Closed) ToModesComplex(x []complex128) []complex128 {
	n := len(x)
	scaled := make([]complex128, n)
	inv := complex(1.0/math.Sqrt(float64(n)), 0)
	for i, v := range x {
		scaled[i] = v * inv
	}
	return fft.FFT(scaled)
}

// FromModesComplex is the complex-result counterpart of FromModes.
func (Closed) FromModesComplex(modes []complex128) []complex128 {
	n := len(modes)
	raw := fft.IFFT(modes)
	scale := complex(math.Sqrt(float64(n)), 0)
	out := make([]complex128, n)
	for i, v := range raw {
		out[i] = v * scale
	}
	return out
}
