package conv

import "github.com/cwbudde/algo-vecmath"

// CorrelateDirect computes the full cross-correlation of a and b by direct
// summation. The result has length len(a) + len(b) - 1, and output index k
// corresponds to lag k - (len(b) - 1):
//
//	c[lag] = sum_i a[i+lag] * b[i]
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	reversed := make([]float64, len(b))
	for i := range b {
		reversed[i] = b[len(b)-1-i]
	}

	return Direct(a, reversed)
}

// CorrelateLagsTo writes len(dst) consecutive lags of the cross-correlation
// of a and b, starting at firstLag:
//
//	dst[k] = sum_i a[i+firstLag+k] * b[i]
//
// Samples of a outside [0, len(a)) count as zero, so any lag range is valid.
// Only the overlapping part of a and b is touched for each lag.
func CorrelateLagsTo(dst, a, b []float64, firstLag int) {
	for k := range dst {
		lag := firstLag + k
		lo := max(0, -lag)
		hi := min(len(b), len(a)-lag)
		if lo >= hi {
			dst[k] = 0
			continue
		}
		dst[k] = vecmath.DotProduct(a[lo+lag:hi+lag], b[lo:hi])
	}
}

// LagFromIndex converts an index of a [CorrelateDirect] result to its lag,
// for a second operand of length lenB.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}
