package wavelet

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/spectrum"
)

// Surface is the complex coefficient surface of a transform, indexed by
// (scale index, time index). It is immutable once returned by [Transform].
type Surface struct {
	grid   *ScaleGrid
	dt     float64
	n      int
	coeffs [][]complex128
}

// Grid returns the scale grid the surface was computed on.
func (s *Surface) Grid() *ScaleGrid { return s.grid }

// Scales returns the number of rows (scales).
func (s *Surface) Scales() int { return len(s.coeffs) }

// Len returns the number of columns (time samples).
func (s *Surface) Len() int { return s.n }

// Dt returns the sampling interval of the transformed series.
func (s *Surface) Dt() float64 { return s.dt }

// At returns the coefficient at scale index i and time index t.
func (s *Surface) At(i, t int) complex128 { return s.coeffs[i][t] }

// Row returns a copy of the coefficients at scale index i.
func (s *Surface) Row(i int) []complex128 {
	return append([]complex128(nil), s.coeffs[i]...)
}

// PowerRow writes |W|^2 for scale index i into dst, growing it if needed.
func (s *Surface) PowerRow(dst []float64, i int) []float64 {
	dst = core.EnsureLen(dst, s.n)
	spectrum.PowerTo(dst, s.coeffs[i])
	return dst
}

// Power returns the power surface |W|^2.
func (s *Surface) Power() [][]float64 {
	out := make([][]float64, len(s.coeffs))
	for i, row := range s.coeffs {
		out[i] = spectrum.Power(row)
	}
	return out
}

// Amplitude returns |W|/sqrt(s), the amplitude surface normalised by scale.
func (s *Surface) Amplitude() [][]float64 {
	out := make([][]float64, len(s.coeffs))
	for i, row := range s.coeffs {
		out[i] = spectrum.Magnitude(row)
		vecmath.ScaleBlockInPlace(out[i], 1/math.Sqrt(s.grid.scales[i]))
	}
	return out
}

// Phase returns arg(W) in radians.
func (s *Surface) Phase() [][]float64 {
	out := make([][]float64, len(s.coeffs))
	for i, row := range s.coeffs {
		out[i] = spectrum.Phase(row)
	}
	return out
}

// Ridge marks, for every time index, the scales where power is a strict
// local maximum along the scale axis.
func Ridge(power [][]float64) [][]bool {
	out := make([][]bool, len(power))
	for i := range power {
		out[i] = make([]bool, len(power[i]))
	}
	for i := 1; i < len(power)-1; i++ {
		for t, p := range power[i] {
			if p > power[i-1][t] && p > power[i+1][t] {
				out[i][t] = true
			}
		}
	}
	return out
}
