package wavelet

import "math"

// DefaultOmega is the conventional Morlet angular frequency.
const DefaultOmega = 6.0

// morletNorm is the L2 normalisation pi^(-1/4) of the mother wavelet.
var morletNorm = math.Pow(math.Pi, -0.25)

// Morlet evaluates the normalised Morlet mother wavelet
//
//	psi(t) = pi^(-1/4) * exp(-t^2/2) * exp(i*omega*t)
//
// at t.
func Morlet(t, omega float64) complex128 {
	env := morletNorm * math.Exp(-0.5*t*t)
	sin, cos := math.Sincos(omega * t)
	return complex(env*cos, env*sin)
}

// MorletBatch evaluates [Morlet] at every element of t, writing into dst.
// dst is grown if it is shorter than t; the filled slice is returned.
func MorletBatch(dst []complex128, t []float64, omega float64) []complex128 {
	if cap(dst) < len(t) {
		dst = make([]complex128, len(t))
	}
	dst = dst[:len(t)]
	for i, v := range t {
		dst[i] = Morlet(v, omega)
	}
	return dst
}

// FourierFactor returns the ratio between the Fourier period and the scale
// of a Morlet wavelet with angular frequency omega.
func FourierFactor(omega float64) float64 {
	return 4 * math.Pi / (omega + math.Sqrt(2+omega*omega))
}

// ScaleToPeriod converts a scale to its Fourier period.
func ScaleToPeriod(scale, omega float64) float64 {
	return scale * FourierFactor(omega)
}

// PeriodToScale converts a Fourier period to its scale.
func PeriodToScale(period, omega float64) float64 {
	return period / FourierFactor(omega)
}

// morletTaps fills re[j] and im[j] with norm*psi(m*step) for the signed
// offsets m = j - half, j in [0, 2*half]. When conjugate is set the
// conjugate wavelet is stored instead.
func morletTaps(re, im []float64, half int, step, omega, norm float64, conjugate bool) {
	for j := range re[:2*half+1] {
		v := Morlet(float64(j-half)*step, omega)
		re[j] = norm * real(v)
		im[j] = norm * imag(v)
		if conjugate {
			im[j] = -im[j]
		}
	}
}
