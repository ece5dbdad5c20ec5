package wavelet

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// prepareSpectrum computes the FFT of the padded series once. The FFT size
// is the next power of two >= 2M-1 for a padded length M, which keeps every
// lag of the linear correlation free of circular wrap-around.
func (j *job) prepareSpectrum() error {
	j.fftSize = core.NextPowerOf2(2*len(j.x) - 1)

	plan, err := algofft.NewPlan64(j.fftSize)
	if err != nil {
		return fmt.Errorf("wavelet: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, j.fftSize)
	for i, v := range j.x {
		padded[i] = complex(v, 0)
	}

	j.spectrum = make([]complex128, j.fftSize)
	if err := plan.Forward(j.spectrum, padded); err != nil {
		return fmt.Errorf("wavelet: forward FFT failed: %w", err)
	}

	return nil
}

// fftEngine computes one row as IFFT(X * G) where g[m] = sqrt(dt/s)*psi(m*dt/s)
// is the time-reversed conjugate of the correlation kernel, stored at m mod L.
type fftEngine struct {
	job  *job
	plan *algofft.Plan[complex128]
	buf  []complex128
}

func newFFTEngine(j *job) (*fftEngine, error) {
	if !core.IsPowerOf2(j.fftSize) {
		return nil, fmt.Errorf("wavelet: FFT size %d is not a power of 2", j.fftSize)
	}

	plan, err := algofft.NewPlan64(j.fftSize)
	if err != nil {
		return nil, fmt.Errorf("wavelet: failed to create FFT plan: %w", err)
	}

	return &fftEngine{
		job:  j,
		plan: plan,
		buf:  make([]complex128, j.fftSize),
	}, nil
}

func (e *fftEngine) row(dst []complex128, scale float64) error {
	j := e.job
	size := j.fftSize
	step := j.dt / scale
	norm := complex(math.Sqrt(step), 0)
	half := tapHalfWidth(len(j.x)-1, step)

	core.ZeroComplex(e.buf)
	e.buf[0] = norm * Morlet(0, j.omega)
	for m := 1; m <= half; m++ {
		w := norm * Morlet(float64(m)*step, j.omega)
		e.buf[m] = w
		// psi(-u) = conj(psi(u))
		e.buf[size-m] = complex(real(w), -imag(w))
	}

	if err := e.plan.Forward(e.buf, e.buf); err != nil {
		return fmt.Errorf("wavelet: forward FFT failed: %w", err)
	}

	for i, v := range j.spectrum {
		e.buf[i] *= v
	}

	if err := e.plan.Inverse(e.buf, e.buf); err != nil {
		return fmt.Errorf("wavelet: inverse FFT failed: %w", err)
	}

	copy(dst[:j.n], e.buf[j.off:j.off+j.n])
	return nil
}
