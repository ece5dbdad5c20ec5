package wavelet

import (
	"fmt"
	"math"
)

// EdgeMask flags the coefficients influenced by the series boundaries.
// At scale s the first and last ceil(s*sqrt(2)/dt) samples lie outside the
// cone of influence and are unreliable.
type EdgeMask struct {
	n         int
	dt        float64
	omega     float64
	halfWidth []int
}

// ComputeCOI builds the cone of influence for a series of n samples analysed
// on grid. Only Config.Dt is read from opts.
func ComputeCOI(n int, grid *ScaleGrid, opts ...Option) (*EdgeMask, error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}
	if grid.Len() == 0 {
		return nil, fmt.Errorf("%w: empty scale grid", ErrShapeMismatch)
	}

	cfg := ApplyOptions(opts...)

	m := &EdgeMask{
		n:         n,
		dt:        cfg.Dt,
		omega:     grid.omega,
		halfWidth: make([]int, grid.Len()),
	}
	for i, s := range grid.scales {
		m.halfWidth[i] = COIHalfWidth(s, cfg.Dt)
	}

	return m, nil
}

// COIHalfWidth returns the number of samples at each end of the series that
// are edge-contaminated at scale s: the e-folding time s*sqrt(2) in samples.
func COIHalfWidth(scale, dt float64) int {
	return int(math.Ceil(scale * math.Sqrt2 / dt))
}

// Len returns the series length.
func (m *EdgeMask) Len() int { return m.n }

// Scales returns the number of scales.
func (m *EdgeMask) Scales() int { return len(m.halfWidth) }

// HalfWidth returns the unreliable edge width in samples at scale index i.
func (m *EdgeMask) HalfWidth(i int) int { return m.halfWidth[i] }

// Reliable reports whether the coefficient at (i, t) is inside the cone of
// influence.
func (m *EdgeMask) Reliable(i, t int) bool {
	hw := m.halfWidth[i]
	return t >= hw && t < m.n-hw
}

// ReliableRange returns the half-open time range [lo, hi) inside the cone of
// influence at scale index i. lo >= hi when no sample is reliable.
func (m *EdgeMask) ReliableRange(i int) (lo, hi int) {
	hw := m.halfWidth[i]
	return min(hw, m.n), max(m.n-hw, 0)
}

// Mask returns the boolean surface, true inside the cone of influence.
func (m *EdgeMask) Mask() [][]bool {
	out := make([][]bool, len(m.halfWidth))
	for i := range out {
		out[i] = make([]bool, m.n)
		lo, hi := m.ReliableRange(i)
		for t := lo; t < hi; t++ {
			out[i][t] = true
		}
	}
	return out
}

// Boundary returns, for every time index, the longest Fourier period whose
// coefficient is still inside the cone of influence there. It is the curve
// plotted over a power spectrum.
func (m *EdgeMask) Boundary() []float64 {
	out := make([]float64, m.n)
	for t := range out {
		edge := float64(min(t, m.n-1-t)) * m.dt
		out[t] = ScaleToPeriod(edge/math.Sqrt2, m.omega)
	}
	return out
}
