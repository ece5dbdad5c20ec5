package wavelet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// admissibilityReach is the half width, in units of the Gaussian standard
// deviation, of the interval the admissibility integral is evaluated on.
const admissibilityReach = 8.0

// admissibilitySamples is the (odd) number of Simpson nodes.
const admissibilitySamples = 4001

// admissibilityFloor is the lower integration limit as a fraction of omega.
// Near u = 0 the integrand behaves like exp(-omega^2/2)/u, so the integral
// diverges logarithmically and the result depends on this floor by roughly
// exp(-omega^2/2)*ln(1/admissibilityFloor). That is below 1e-7 for
// omega >= 6 but dominates for omega below about 3.
const admissibilityFloor = 1e-2

// ReconstructionFactor returns the reconstruction constant C_delta of a
// Morlet wavelet with angular frequency omega:
//
//	C_delta = sqrt(2*pi) / (2*ln 2) * integral_0^inf exp(-(u-omega)^2/2) / u du
//
// It is about 0.776 for omega = 6. The integral is cut at
// admissibilityFloor*omega, so values for small omega are only meaningful
// relative to that cutoff. Non-positive omega yields NaN.
func ReconstructionFactor(omega float64) float64 {
	if !(omega > 0) {
		return math.NaN()
	}
	return math.Sqrt(2*math.Pi) / (2 * math.Ln2) * admissibilityIntegral(omega, admissibilityFloor)
}

// admissibilityIntegral evaluates the C_delta integral on
// [max(omega-8, floor*omega), omega+8] with Simpson's rule.
func admissibilityIntegral(omega, floor float64) float64 {
	lo := math.Max(omega-admissibilityReach, omega*floor)
	hi := omega + admissibilityReach

	u := make([]float64, admissibilitySamples)
	f := make([]float64, admissibilitySamples)
	step := (hi - lo) / float64(admissibilitySamples-1)
	for i := range u {
		u[i] = lo + float64(i)*step
		d := u[i] - omega
		f[i] = math.Exp(-0.5*d*d) / u[i]
	}

	return integrate.Simpsons(u, f)
}

// ReconstructOption configures [Reconstruct].
type ReconstructOption func(*reconstructConfig)

type reconstructConfig struct {
	original []float64
	mask     *EdgeMask
}

// WithRescale rescales the reconstruction to the standard deviation of
// original and restores its mean.
func WithRescale(original []float64) ReconstructOption {
	return func(cfg *reconstructConfig) {
		cfg.original = original
	}
}

// WithReliableOnly drops coefficients outside the cone of influence of mask
// before summing.
func WithReliableOnly(mask *EdgeMask) ReconstructOption {
	return func(cfg *reconstructConfig) {
		cfg.mask = mask
	}
}

// Reconstruct approximates the inverse transform from the scales of s whose
// period lies in [lowerPeriod, upperPeriod]:
//
//	x[t] = dj*sqrt(dt) / (C_delta * pi^(-1/4)) * sum_s Re(W(t, s)) / sqrt(s)
//
// Content with period below the grid's lower period (and at most twice the
// sampling interval) is not recoverable, and values near the boundaries are
// damped by the padding.
func Reconstruct(s *Surface, lowerPeriod, upperPeriod float64, opts ...ReconstructOption) ([]float64, error) {
	if s == nil || s.grid == nil || s.grid.Len() != len(s.coeffs) {
		return nil, fmt.Errorf("%w: surface does not match its scale grid", ErrShapeMismatch)
	}

	var cfg reconstructConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.mask != nil && (cfg.mask.Len() != s.n || cfg.mask.Scales() != len(s.coeffs)) {
		return nil, fmt.Errorf("%w: mask %dx%d, surface %dx%d",
			ErrShapeMismatch, cfg.mask.Scales(), cfg.mask.Len(), len(s.coeffs), s.n)
	}
	if cfg.original != nil && len(cfg.original) != s.n {
		return nil, fmt.Errorf("%w: original has %d samples, surface %d", ErrShapeMismatch, len(cfg.original), s.n)
	}

	start, end, err := s.grid.Band(lowerPeriod, upperPeriod)
	if err != nil {
		return nil, err
	}

	factor := s.grid.dj * math.Sqrt(s.dt) / (ReconstructionFactor(s.grid.omega) * morletNorm)

	out := make([]float64, s.n)
	for i := start; i < end; i++ {
		w := factor / math.Sqrt(s.grid.scales[i])
		lo, hi := 0, s.n
		if cfg.mask != nil {
			lo, hi = cfg.mask.ReliableRange(i)
		}
		row := s.coeffs[i]
		for t := lo; t < hi; t++ {
			out[t] += w * real(row[t])
		}
	}

	if cfg.original != nil {
		rescale(out, cfg.original)
	}

	return out, nil
}

// rescale maps x to the mean and standard deviation of ref in place.
func rescale(x, ref []float64) {
	if len(x) < 2 {
		return
	}

	refMean, refSD := stat.MeanStdDev(ref, nil)
	mean, sd := stat.MeanStdDev(x, nil)
	if sd == 0 {
		return
	}

	gain := refSD / sd
	for i := range x {
		x[i] = (x[i]-mean)*gain + refMean
	}
}
