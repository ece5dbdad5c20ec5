// Package conv provides time-domain convolution and correlation of real
// sequences.
//
// # Usage
//
// One-shot full-length results:
//
//	y, err := conv.Direct(signal, kernel)          // linear convolution
//	c, err := conv.CorrelateDirect(signal, kernel) // cross-correlation
//
// When only a window of lags is needed, [CorrelateLagsTo] writes exactly
// len(dst) lags into a caller buffer, treating the signal as zero outside
// its bounds:
//
//	conv.CorrelateLagsTo(dst, signal, kernel, firstLag)
//
// The wavelet transform evaluates one such window per scale, once for the
// real and once for the imaginary part of the wavelet taps.
package conv
