package wavelet

import "gonum.org/v1/gonum/stat"

// Detrend returns x minus its least-squares linear trend. x is not modified.
func Detrend(x []float64) []float64 {
	out := append([]float64(nil), x...)
	if len(x) < 2 {
		return out
	}

	t := make([]float64, len(x))
	for i := range t {
		t[i] = float64(i)
	}

	alpha, beta := stat.LinearRegression(t, x, nil, false)
	for i := range out {
		out[i] -= alpha + beta*t[i]
	}

	return out
}
