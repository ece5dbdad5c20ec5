package wavelet

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Analysis bundles a scale grid, the coefficient surface and the cone of
// influence computed for one series.
type Analysis struct {
	Config  Config
	Grid    *ScaleGrid
	Surface *Surface
	COI     *EdgeMask
}

// Analyze runs the full pipeline on x: optional detrending, scale grid
// construction from the configured period range, transform and cone of
// influence.
func Analyze(ctx context.Context, x []float64, opts ...Option) (*Analysis, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	cfg := ApplyOptions(opts...)
	if cfg.UpperPeriod == 0 {
		cfg.UpperPeriod = math.Floor(float64(len(x))/3) * cfg.Dt
	}

	grid, err := NewScaleGrid(cfg.LowerPeriod, cfg.UpperPeriod, cfg.Dj, cfg.Omega)
	if err != nil {
		return nil, err
	}

	surf, err := Transform(ctx, x, grid, opts...)
	if err != nil {
		return nil, err
	}

	coi, err := ComputeCOI(len(x), grid, opts...)
	if err != nil {
		return nil, err
	}

	return &Analysis{Config: cfg, Grid: grid, Surface: surf, COI: coi}, nil
}

// Power returns the power surface |W|^2.
func (a *Analysis) Power() [][]float64 {
	return a.Surface.Power()
}

// AveragePower returns the time-averaged power per scale. With excludeCOI
// only samples inside the cone of influence are averaged; scales without any
// reliable sample yield NaN.
func (a *Analysis) AveragePower(excludeCOI bool) []float64 {
	out := make([]float64, a.Surface.Scales())
	var row []float64
	for i := range out {
		row = a.Surface.PowerRow(row, i)
		lo, hi := 0, len(row)
		if excludeCOI {
			lo, hi = a.COI.ReliableRange(i)
		}
		if lo >= hi {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.Mean(row[lo:hi], nil)
	}
	return out
}

// DominantPeriod returns the period with the largest time-averaged power and
// its scale index, or (NaN, -1) if no scale has an average.
func (a *Analysis) DominantPeriod(excludeCOI bool) (float64, int) {
	best := -1
	bestPower := math.Inf(-1)
	for i, p := range a.AveragePower(excludeCOI) {
		if !math.IsNaN(p) && p > bestPower {
			best, bestPower = i, p
		}
	}
	if best < 0 {
		return math.NaN(), -1
	}
	return a.Grid.Period(best), best
}

// Reconstruct sums the scales whose period lies in [lowerPeriod, upperPeriod]
// back into a series. See [Reconstruct].
func (a *Analysis) Reconstruct(lowerPeriod, upperPeriod float64, opts ...ReconstructOption) ([]float64, error) {
	return Reconstruct(a.Surface, lowerPeriod, upperPeriod, opts...)
}
