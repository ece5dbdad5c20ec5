package wavelet

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// maxGridSize bounds the number of scales a grid may hold.
const maxGridSize = 1 << 20

// bandEpsilon is the relative tolerance for a period to count as lying on a
// band edge.
const bandEpsilon = 1e-12

// gridEpsilon absorbs rounding in log2(upper/lower)/dj so exact multiples
// of dj are not lost.
const gridEpsilon = 1e-9

// ScaleGrid is an immutable, strictly increasing set of scales spaced by dj
// in log2 space, with their Fourier periods.
type ScaleGrid struct {
	scales  []float64
	periods []float64
	dj      float64
	omega   float64
}

// NewScaleGrid derives the scales probing periods from lowerPeriod up to
// upperPeriod with a log2 step of dj for a Morlet wavelet of angular
// frequency omega.
//
// The grid holds n = floor(log2(upperPeriod/lowerPeriod)/dj) + 1 scales
// scale_k = lowerScale * 2^(k*dj), so the largest period never exceeds
// upperPeriod.
func NewScaleGrid(lowerPeriod, upperPeriod, dj, omega float64) (*ScaleGrid, error) {
	if !(lowerPeriod > 0) || !(upperPeriod > 0) || math.IsInf(upperPeriod, 0) {
		return nil, fmt.Errorf("%w: periods must be positive and finite: [%g, %g]", ErrInvalidRange, lowerPeriod, upperPeriod)
	}
	if lowerPeriod >= upperPeriod {
		return nil, fmt.Errorf("%w: lower period %g >= upper period %g", ErrInvalidRange, lowerPeriod, upperPeriod)
	}
	if !(dj > 0) || math.IsInf(dj, 0) {
		return nil, fmt.Errorf("%w: dj must be > 0: %g", ErrInvalidParameter, dj)
	}
	if !(omega > 0) || math.IsInf(omega, 0) {
		return nil, fmt.Errorf("%w: omega must be > 0: %g", ErrInvalidParameter, omega)
	}

	lowerScale := PeriodToScale(lowerPeriod, omega)
	upperScale := PeriodToScale(upperPeriod, omega)

	steps := math.Log2(upperScale/lowerScale) / dj
	if math.IsNaN(steps) || steps+1 > maxGridSize {
		return nil, fmt.Errorf("%w: %g scales requested", ErrDegenerateGrid, steps+1)
	}
	n := int(math.Floor(steps+gridEpsilon)) + 1
	if n < 1 {
		return nil, fmt.Errorf("%w: %d scales", ErrDegenerateGrid, n)
	}

	g := &ScaleGrid{
		scales:  make([]float64, n),
		periods: make([]float64, n),
		dj:      dj,
		omega:   omega,
	}
	factor := FourierFactor(omega)
	for k := range g.scales {
		s := lowerScale * math.Exp2(float64(k)*dj)
		g.scales[k] = s
		g.periods[k] = s * factor
	}

	return g, nil
}

// Len returns the number of scales.
func (g *ScaleGrid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.scales)
}

// Scale returns the i-th scale.
func (g *ScaleGrid) Scale(i int) float64 { return g.scales[i] }

// Period returns the Fourier period of the i-th scale.
func (g *ScaleGrid) Period(i int) float64 { return g.periods[i] }

// Scales returns a copy of the scales in increasing order.
func (g *ScaleGrid) Scales() []float64 {
	return append([]float64(nil), g.scales...)
}

// Periods returns a copy of the Fourier periods in increasing order.
func (g *ScaleGrid) Periods() []float64 {
	return append([]float64(nil), g.periods...)
}

// Dj returns the log2 spacing between consecutive scales.
func (g *ScaleGrid) Dj() float64 { return g.dj }

// Omega returns the wavelet angular frequency the grid was built for.
func (g *ScaleGrid) Omega() float64 { return g.omega }

// Band returns the half-open index range [start, end) of the scales whose
// period lies in [lowerPeriod, upperPeriod]. Periods within rounding of an
// edge are included. An empty selection yields [ErrEmptyBand].
func (g *ScaleGrid) Band(lowerPeriod, upperPeriod float64) (start, end int, err error) {
	if math.IsNaN(lowerPeriod) || math.IsNaN(upperPeriod) || lowerPeriod > upperPeriod {
		return 0, 0, fmt.Errorf("%w: band [%g, %g]", ErrInvalidRange, lowerPeriod, upperPeriod)
	}

	start = len(g.periods)
	for i, p := range g.periods {
		if p >= lowerPeriod || core.NearlyEqual(p, lowerPeriod, bandEpsilon) {
			start = i
			break
		}
	}
	end = start
	for end < len(g.periods) && (g.periods[end] <= upperPeriod || core.NearlyEqual(g.periods[end], upperPeriod, bandEpsilon)) {
		end++
	}

	if end == start {
		return 0, 0, fmt.Errorf("%w: [%g, %g] outside grid [%g, %g]",
			ErrEmptyBand, lowerPeriod, upperPeriod, g.periods[0], g.periods[len(g.periods)-1])
	}

	return start, end, nil
}
