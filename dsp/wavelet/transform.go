package wavelet

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-wavelet/dsp/conv"
	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/spectrum"
)

// directThreshold is the padded series length up to which MethodAuto uses
// direct correlation.
const directThreshold = 256

// reflectReach is the number of scales (in units of the largest scale) the
// series is mirrored by under PadReflect. The Gaussian envelope is below
// exp(-18) beyond it.
const reflectReach = 6

// tapReach bounds |t|/s where the envelope exp(-t^2/2) is still
// representable. Taps beyond it are exactly zero.
const tapReach = 40.0

// Transform computes the Morlet wavelet coefficients of x at every scale of
// grid. The result is complete or an error is returned; no partial surface
// is produced.
//
// Scales are computed concurrently by up to Config.Workers goroutines, each
// writing a disjoint row. Cancelling ctx aborts the batch.
func Transform(ctx context.Context, x []float64, grid *ScaleGrid, opts ...Option) (*Surface, error) {
	cfg := ApplyOptions(opts...)

	j, err := newJob(x, grid, cfg)
	if err != nil {
		return nil, err
	}

	n := len(x)
	backing := make([]complex128, grid.Len()*n)
	rows := make([][]complex128, grid.Len())
	for i := range rows {
		rows[i] = backing[i*n : (i+1)*n : (i+1)*n]
	}

	if err := j.computeRows(ctx, rows, cfg.Workers); err != nil {
		return nil, err
	}

	return &Surface{grid: grid, dt: cfg.Dt, n: n, coeffs: rows}, nil
}

// TransformDirect is [Transform] forced onto the direct correlation path.
func TransformDirect(ctx context.Context, x []float64, grid *ScaleGrid, opts ...Option) (*Surface, error) {
	return Transform(ctx, x, grid, append(opts, WithMethod(MethodDirect))...)
}

// TransformFFT is [Transform] forced onto the frequency-domain path.
func TransformFFT(ctx context.Context, x []float64, grid *ScaleGrid, opts ...Option) (*Surface, error) {
	return Transform(ctx, x, grid, append(opts, WithMethod(MethodFFT))...)
}

// StreamPower computes the power |W|^2 one scale at a time and hands each row
// to fn in increasing scale order, without materialising the complex surface.
// The power slice is reused between calls and must not be retained.
// A non-nil error from fn stops the stream and is returned.
func StreamPower(ctx context.Context, x []float64, grid *ScaleGrid, fn func(i int, period float64, power []float64) error, opts ...Option) error {
	cfg := ApplyOptions(opts...)

	j, err := newJob(x, grid, cfg)
	if err != nil {
		return err
	}

	eng, err := j.newEngine()
	if err != nil {
		return err
	}

	row := make([]complex128, len(x))
	power := make([]float64, len(x))

	for i, s := range grid.scales {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := eng.row(row, s); err != nil {
			return err
		}
		spectrum.PowerTo(power, row)
		if err := fn(i, grid.periods[i], power); err != nil {
			return err
		}
	}

	return nil
}

// job holds the read-only inputs shared by all row workers of one transform.
type job struct {
	grid  *ScaleGrid
	x     []float64 // series after detrending and padding
	off   int       // index of the first original sample in x
	n     int       // original series length
	dt    float64
	omega float64

	method   Method
	fftSize  int
	spectrum []complex128 // FFT of x zero-padded to fftSize
}

func newJob(x []float64, grid *ScaleGrid, cfg Config) (*job, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if grid.Len() == 0 {
		return nil, fmt.Errorf("%w: empty scale grid", ErrShapeMismatch)
	}
	if i := core.FirstNonFinite(x); i >= 0 {
		return nil, fmt.Errorf("%w: sample %d is %v", ErrNonFiniteInput, i, x[i])
	}
	if !(cfg.Dt > 0) || math.IsInf(cfg.Dt, 0) {
		return nil, fmt.Errorf("%w: dt must be > 0: %g", ErrInvalidParameter, cfg.Dt)
	}

	series := x
	if cfg.Detrend {
		series = Detrend(x)
	}

	maxScale := grid.scales[len(grid.scales)-1]
	reach := int(math.Min(math.Ceil(reflectReach*maxScale/cfg.Dt), float64(len(x))))
	padded, off := padSeries(series, cfg.Padding, reach)

	j := &job{
		grid:   grid,
		x:      padded,
		off:    off,
		n:      len(x),
		dt:     cfg.Dt,
		omega:  grid.omega,
		method: cfg.Method,
	}

	if j.method == MethodAuto {
		j.method = MethodFFT
		if len(padded) <= directThreshold {
			j.method = MethodDirect
		}
	}

	if j.method == MethodFFT {
		if err := j.prepareSpectrum(); err != nil {
			return nil, err
		}
	}

	return j, nil
}

// computeRows fills rows[i] with the coefficients at grid scale i.
func (j *job) computeRows(ctx context.Context, rows [][]complex128, workers int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	workers = max(1, min(workers, len(rows)))

	g, ctx := errgroup.WithContext(ctx)
	next := make(chan int)

	g.Go(func() error {
		defer close(next)
		for i := range rows {
			select {
			case next <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range workers {
		g.Go(func() error {
			eng, err := j.newEngine()
			if err != nil {
				return err
			}
			for i := range next {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := eng.row(rows[i], j.grid.scales[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// rowEngine computes the coefficients of one scale. Engines own scratch
// memory and are not safe for concurrent use.
type rowEngine interface {
	row(dst []complex128, scale float64) error
}

func (j *job) newEngine() (rowEngine, error) {
	if j.method == MethodDirect {
		return &directEngine{job: j}, nil
	}
	return newFFTEngine(j)
}

// directEngine evaluates the correlation sum in the time domain, as two real
// correlations of the series against the real and imaginary taps.
type directEngine struct {
	job    *job
	tapsRe []float64
	tapsIm []float64
	re     []float64
	im     []float64
}

func (e *directEngine) row(dst []complex128, scale float64) error {
	j := e.job
	step := j.dt / scale
	half := tapHalfWidth(len(j.x)-1, step)

	e.tapsRe = core.EnsureLen(e.tapsRe, 2*half+1)
	e.tapsIm = core.EnsureLen(e.tapsIm, 2*half+1)
	morletTaps(e.tapsRe, e.tapsIm, half, step, j.omega, math.Sqrt(step), true)

	// W(tau) = sum_k x[tau-half+k] * taps[k], tau = off..off+n-1
	e.re = core.EnsureLen(e.re, j.n)
	e.im = core.EnsureLen(e.im, j.n)
	conv.CorrelateLagsTo(e.re, j.x, e.tapsRe, j.off-half)
	conv.CorrelateLagsTo(e.im, j.x, e.tapsIm, j.off-half)

	for k := range dst[:j.n] {
		dst[k] = complex(e.re[k], e.im[k])
	}

	return nil
}

// tapHalfWidth returns the largest offset with a non-zero tap, capped at limit.
func tapHalfWidth(limit int, step float64) int {
	reach := tapReach / step
	if reach >= float64(limit) {
		return limit
	}
	return int(reach)
}

// padSeries extends x according to p and returns the padded series and the
// offset of x[0] in it. PadReflect mirrors up to reach samples on each side,
// excluding the end samples themselves.
func padSeries(x []float64, p Padding, reach int) ([]float64, int) {
	if p != PadReflect || reach < 1 || len(x) < 2 {
		return x, 0
	}

	r := min(reach, len(x)-1)
	n := len(x)
	out := make([]float64, n+2*r)
	copy(out[r:], x)
	for k := 1; k <= r; k++ {
		out[r-k] = x[k]
		out[r+n-1+k] = x[n-1-k]
	}

	return out, r
}
