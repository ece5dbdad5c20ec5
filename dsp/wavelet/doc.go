// Package wavelet implements a continuous wavelet transform (CWT) specialised
// to the Morlet wavelet.
//
// A regularly sampled real series is decomposed into a complex coefficient
// surface indexed by (scale, time). Power, phase and amplitude surfaces are
// derived from it, a cone-of-influence mask flags coefficients contaminated by
// the series boundaries, and a band of scales can be summed back into an
// approximate time-domain reconstruction.
//
// # Usage
//
// Build a scale grid from a period range and transform a series:
//
//	grid, err := wavelet.NewScaleGrid(2, 200, 1.0/20, wavelet.DefaultOmega)
//	surf, err := wavelet.Transform(ctx, series, grid)
//	power := surf.Power()
//	coi, err := wavelet.ComputeCOI(len(series), grid)
//
// Or let [Analyze] do all of it with a [Config]:
//
//	a, err := wavelet.Analyze(ctx, series, wavelet.WithPeriodRange(2, 1024))
//	period, _ := a.DominantPeriod(true)
//	recon, err := a.Reconstruct(300, 450)
//
// # Conventions
//
// Scales and periods are expressed in the unit of the sampling interval dt
// (samples when dt = 1). A scale s maps to the Fourier period
// s * 4*pi / (omega + sqrt(2 + omega^2)).
//
// The coefficient at time index tau and scale s is
//
//	W(tau, s) = sqrt(dt/s) * sum_t x[t] * conj(psi((t - tau) * dt / s))
//
// # Algorithm Selection
//
// [MethodDirect] evaluates the sum above in O(N^2) per scale.
// [MethodFFT] computes the same correlation exactly through the FFT: the
// series is zero-padded to the next power of two >= 2N-1, so the circular
// product contains no wrap-around and the two paths agree to rounding error.
// [MethodAuto] uses the direct path for series of at most 256 samples.
//
// # Padding
//
// [PadZero] (default) treats samples outside the series as zero.
// [PadReflect] mirrors the series about its end samples before the
// transform and crops the result back to the original length; it reduces
// the amplitude loss near the boundaries for smooth signals.
// The cone of influence is computed the same way for both policies.
package wavelet
