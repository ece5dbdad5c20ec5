package wavelet

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMorletNormalization(t *testing.T) {
	// Trapezoidal integral of |psi|^2 over [-10, 10].
	const (
		lo   = -10.0
		hi   = 10.0
		step = 1e-3
	)
	n := int((hi-lo)/step) + 1
	var sum float64
	for i := range n {
		v := cmplx.Abs(Morlet(lo+float64(i)*step, DefaultOmega))
		w := 1.0
		if i == 0 || i == n-1 {
			w = 0.5
		}
		sum += w * v * v
	}
	energy := sum * step

	if math.Abs(energy-1) > 1e-3 {
		t.Fatalf("integral |psi|^2 = %v, want 1", energy)
	}
}

func TestMorletAtOrigin(t *testing.T) {
	got := Morlet(0, DefaultOmega)
	want := complex(math.Pow(math.Pi, -0.25), 0)
	if got != want {
		t.Fatalf("Morlet(0) = %v, want %v", got, want)
	}
}

func TestMorletSymmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.7, 1.5, 3} {
		a := Morlet(x, DefaultOmega)
		b := Morlet(-x, DefaultOmega)
		if cmplx.Abs(a-cmplx.Conj(b)) > 1e-15 {
			t.Fatalf("psi(%v) = %v, conj(psi(-%v)) = %v", x, a, x, cmplx.Conj(b))
		}
	}
}

func TestMorletBatchMatchesScalar(t *testing.T) {
	ts := []float64{-3, -1.25, 0, 0.5, 2, 40}
	got := MorletBatch(nil, ts, 5)
	if len(got) != len(ts) {
		t.Fatalf("len = %d, want %d", len(got), len(ts))
	}
	for i, x := range ts {
		if got[i] != Morlet(x, 5) {
			t.Fatalf("batch[%d] = %v, want %v", i, got[i], Morlet(x, 5))
		}
	}

	// Reuses capacity.
	buf := make([]complex128, 0, 16)
	out := MorletBatch(buf, ts, 5)
	if &out[0] != &buf[:1][0] {
		t.Fatal("MorletBatch did not reuse dst capacity")
	}
}

func TestFourierFactor(t *testing.T) {
	got := FourierFactor(6)
	want := 4 * math.Pi / (6 + math.Sqrt(38))
	if got != want {
		t.Fatalf("FourierFactor(6) = %v, want %v", got, want)
	}
	if math.Abs(got-1.0330436477) > 1e-9 {
		t.Fatalf("FourierFactor(6) = %v, want ~1.0330", got)
	}
}

func TestPeriodScaleRoundTrip(t *testing.T) {
	for _, omega := range []float64{5, 6, 8} {
		for _, s := range []float64{0.5, 1, 1.9360, 42, 1e4} {
			back := PeriodToScale(ScaleToPeriod(s, omega), omega)
			if math.Abs(back-s) > 1e-12*s {
				t.Fatalf("omega=%v: round trip %v -> %v", omega, s, back)
			}
		}
	}
}
