// Package contraction implements ring-polymer contraction: evaluating a
// slowly-varying force group on P' < P beads and extrapolating it back to
// all P beads, via frequency-domain truncation (positions) and zero-padding
// (forces). It is only defined for the closed (ring) topology; the open
// chain has no contraction support (spec: "PIGS not yet implemented for
// contractions" in the reference kernel).
package contraction

import "github.com/mjibson/go-dsp/fft"

// retainedStart is the boundary the reference kernel uses between the "low"
// and "high" halves of a P'-length spectrum when it is embedded in (or
// extracted from) a P-length one: floor((p1+1)/2). spec.md phrases this as
// ceil((p1+1)/2); the two formulas agree for odd p1 and differ by one for
// even p1 — the reference kernel's integer-truncating division is
// authoritative here, since it is the ground truth this component ports.
func retainedStart(pPrime int) int {
	return (pPrime + 1) / 2
}

// PositionsToReduced maps a P-bead real position series to its P'-bead
// contraction: forward FFT, keep the low retainedStart(P') = floor((P'+1)/2)
// and high P'-that modes, inverse FFT of length P', scale by 1/P.
func PositionsToReduced(full []float64, pPrime int) []float64 {
	p := len(full)
	if pPrime == p {
		out := make([]float64, p)
		copy(out, full)
		return out
	}

	buf := make([]complex128, p)
	for i, x := range full {
		buf[i] = complex(x, 0)
	}
	spectrum := fft.FFT(buf)

	start := retainedStart(pPrime)
	end := p - pPrime + start

	retained := make([]complex128, pPrime)
	copy(retained, spectrum[:start])
	copy(retained[start:], spectrum[end:])

	reduced := fft.IFFT(retained)
	// go-dsp's IFFT already divides by pPrime; the reference kernel's
	// inverse is unnormalized and divides only by p afterward, so we
	// multiply back by pPrime before applying the spec's 1/p.
	scale := float64(pPrime) / float64(p)

	out := make([]float64, pPrime)
	for i, v := range reduced {
		out[i] = real(v) * scale
	}
	return out
}

// ForcesToFull maps a P'-bead force series back to a P-bead one by
// zero-padding in the frequency domain, and adds (not assigns) the result
// into full — the caller passes the accumulator array it wants forces added
// to.
func ForcesToFull(reducedForces []float64, full []float64) {
	p := len(full)
	pPrime := len(reducedForces)
	if pPrime == p {
		for i, f := range reducedForces {
			full[i] += f
		}
		return
	}

	small := make([]complex128, pPrime)
	for i, f := range reducedForces {
		small[i] = complex(f, 0)
	}
	spectrum := fft.FFT(small)

	start := retainedStart(pPrime)
	end := p - pPrime + start

	padded := make([]complex128, p)
	copy(padded[:start], spectrum[:start])
	copy(padded[end:], spectrum[start:pPrime])
	// padded[start:end] stays zero.

	expanded := fft.IFFT(padded)
	// Same unnormalized-inverse compensation as PositionsToReduced, but the
	// spec scales forces by 1/P' instead of 1/P.
	scale := float64(p) / float64(pPrime)

	for i, v := range expanded {
		full[i] += real(v) * scale
	}
}
