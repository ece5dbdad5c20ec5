// Package spectrum converts complex coefficient rows, such as FFT bins or
// wavelet coefficients at one scale, into real-valued power, magnitude and
// phase rows.
//
// The package does not compute transforms itself. The *To variants write
// into caller buffers and, in steady state, do not allocate.
package spectrum
