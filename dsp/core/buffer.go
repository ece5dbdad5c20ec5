package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// ZeroComplex sets all values in buf to 0.
func ZeroComplex(buf []complex128) {
	for i := range buf {
		buf[i] = 0
	}
}
