package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{name: "identity", a: []float64{1, 2, 3}, b: []float64{1}, want: []float64{1, 2, 3}},
		{name: "delay", a: []float64{1, 2, 3}, b: []float64{0, 1}, want: []float64{0, 1, 2, 3}},
		{name: "box", a: []float64{1, 1, 1}, b: []float64{1, 1}, want: []float64{1, 2, 2, 1}},
		{name: "long kernel", a: []float64{2}, b: []float64{1, -1, 0.5, 3, 4}, want: []float64{2, -2, 1, 6, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Direct: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("err = %v, want ErrEmptyKernel", err)
	}
	if _, err := CorrelateDirect(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestCorrelateDirect(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{0, 1, 0.5}

	got, err := CorrelateDirect(a, b)
	if err != nil {
		t.Fatalf("CorrelateDirect: %v", err)
	}

	// c[lag] = sum_i a[i+lag] * b[i], lags -2..2
	want := []float64{0.5, 2, 3.5, 3, 0}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	if lag := LagFromIndex(0, len(b)); lag != -2 {
		t.Fatalf("LagFromIndex(0) = %d, want -2", lag)
	}
}

func TestCorrelateLagsToMatchesFull(t *testing.T) {
	a := testutil.GaussianNoise(11, 1, 37)
	b := testutil.GaussianNoise(12, 1, 9)

	full, err := CorrelateDirect(a, b)
	if err != nil {
		t.Fatalf("CorrelateDirect: %v", err)
	}

	first := LagFromIndex(0, len(b))
	got := make([]float64, len(full))
	CorrelateLagsTo(got, a, b, first)
	testutil.RequireSliceNearlyEqual(t, got, full, 1e-12)

	// A window starting mid-signal.
	window := make([]float64, 10)
	CorrelateLagsTo(window, a, b, 5)
	testutil.RequireSliceNearlyEqual(t, window, full[5-first:15-first], 1e-12)
}

func TestCorrelateLagsToOutsideSignal(t *testing.T) {
	dst := []float64{7, 7, 7}
	CorrelateLagsTo(dst, []float64{1, 2}, []float64{1, 1}, 5)
	testutil.RequireSliceNearlyEqual(t, dst, []float64{0, 0, 0}, 0)

	CorrelateLagsTo(dst, []float64{1, 2}, []float64{1, 1}, -4)
	testutil.RequireSliceNearlyEqual(t, dst, []float64{0, 0, 0}, 0)
}
