// Package testutil holds deterministic signal generators and tolerance
// helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// PeriodicSine generates amplitude*sin(2*pi*i/period) for i in [0, length).
// period is expressed in samples.
func PeriodicSine(period, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi / period
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// GaussianNoise generates zero-mean normal noise with standard deviation sd
// and a fixed seed for reproducibility.
func GaussianNoise(seed int64, sd float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * sd
	}
	return out
}

// UniformNoise generates white noise in [-amplitude, amplitude) with a fixed seed.
func UniformNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Mix returns a*x + b*y element-wise. x and y must have equal length.
func Mix(a float64, x []float64, b float64, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		out[i] = a*x[i] + b*y[i]
	}
	return out
}

// Ramp returns offset + slope*i for i in [0, length).
func Ramp(offset, slope float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = offset + slope*float64(i)
	}
	return out
}
