package spectrum

import (
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// getScratch splits in into pooled real and imaginary slices.
func getScratch(in []complex128) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	n := len(in)
	if cap(buf.data) < 2*n {
		buf.data = make([]float64, 2*n)
	}
	buf.data = buf.data[:2*n]
	re, im = buf.data[:n], buf.data[n:]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex value.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	MagnitudeTo(out, in)
	return out
}

// MagnitudeTo writes |X[k]| into dst. dst must have the length of in.
func MagnitudeTo(dst []float64, in []complex128) {
	re, im, buf := getScratch(in)
	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}

// Power returns |X[k]|^2 for each complex value.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	PowerTo(out, in)
	return out
}

// PowerTo writes |X[k]|^2 into dst. dst must have the length of in.
func PowerTo(dst []float64, in []complex128) {
	re, im, buf := getScratch(in)
	vecmath.Power(dst, re, im)
	putScratch(buf)
}

// Phase returns arg(X[k]) in radians for each complex value.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}
