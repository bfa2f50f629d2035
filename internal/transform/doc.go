// Package transform provides the two normal-mode transforms the stepper
// needs: a complex FFT for the closed ring polymer and an orthonormal
// discrete cosine transform for the open chain (LePIGS/PIGS). Both expose
// ToModes/FromModes; Closed works in complex modes and Open in real ones,
// and the stepper picks one by path kind (see internal/stepper).
package transform
