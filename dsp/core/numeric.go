package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b agree within eps, absolutely for values
// near zero and relative to the larger magnitude otherwise. A non-positive
// eps selects 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return diff <= eps*scale
}

// FirstNonFinite returns the index of the first NaN or Inf in x, or -1 if
// every sample is finite.
func FirstNonFinite(x []float64) int {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}

	return -1
}

// NextPowerOf2 returns the smallest power of 2 >= n.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// IsPowerOf2 reports whether n is a positive power of 2.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
