package wavelet

import (
	"context"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestReconstructionFactor(t *testing.T) {
	got := ReconstructionFactor(DefaultOmega)
	if math.Abs(got-0.776) > 0.01 {
		t.Fatalf("ReconstructionFactor(6) = %v, want ~0.776", got)
	}
	if !math.IsNaN(ReconstructionFactor(0)) {
		t.Fatal("expected NaN for omega = 0")
	}
}

func TestReconstructionFactorCutoff(t *testing.T) {
	// At omega = 6 the region below the floor carries ~exp(-18) of weight.
	coarse := admissibilityIntegral(DefaultOmega, admissibilityFloor)
	fine := admissibilityIntegral(DefaultOmega, 1e-4)
	if math.Abs(coarse-fine) > 1e-6 {
		t.Fatalf("omega=6: floor changes integral from %v to %v", coarse, fine)
	}

	// At omega = 1 the integral diverges towards zero and the floor dominates.
	coarse = admissibilityIntegral(1, admissibilityFloor)
	fine = admissibilityIntegral(1, 1e-4)
	if fine-coarse < 0.1 {
		t.Fatalf("omega=1: expected floor sensitivity, got %v and %v", coarse, fine)
	}
	if got := ReconstructionFactor(1); math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("ReconstructionFactor(1) = %v, want finite", got)
	}
}

// annualSeries is ten years of daily samples of a 365-day cycle with
// amplitude 10 plus Gaussian noise of standard deviation 0.2.
func annualSeries() []float64 {
	const n = 3652
	return testutil.Mix(1, testutil.PeriodicSine(365, 10, n), 1, testutil.GaussianNoise(3, 0.2, n))
}

func TestReconstructFullBand(t *testing.T) {
	x := annualSeries()
	grid := mustGrid(t, 2, 1024, 1.0/20)

	surf, err := Transform(context.Background(), x, grid)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	recon, err := Reconstruct(surf, 0, math.Inf(1))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	testutil.RequireFinite(t, recon)

	sd := stat.StdDev(x, nil)

	full, err := testutil.RMSE(recon, x)
	if err != nil {
		t.Fatalf("RMSE: %v", err)
	}
	if full > 0.1*sd {
		t.Errorf("full-series RMSE = %v, want < %v", full, 0.1*sd)
	}

	// Outside the cone of influence of the 365-sample period.
	edge := COIHalfWidth(PeriodToScale(365, DefaultOmega), 1)
	interior, err := testutil.RMSE(recon[edge:len(x)-edge], x[edge:len(x)-edge])
	if err != nil {
		t.Fatalf("RMSE: %v", err)
	}
	if interior > 0.05*sd {
		t.Errorf("interior RMSE = %v, want < %v", interior, 0.05*sd)
	}
}

func TestReconstructBandSelectsComponent(t *testing.T) {
	const n = 2048
	slow := testutil.PeriodicSine(200, 4, n)
	fast := testutil.PeriodicSine(8, 1, n)
	x := testutil.Mix(1, slow, 1, fast)

	grid := mustGrid(t, 2, 800, 1.0/16)
	surf, err := Transform(context.Background(), x, grid)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	recon, err := Reconstruct(surf, 60, 800)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}

	edge := COIHalfWidth(PeriodToScale(200, DefaultOmega), 1)
	rmse, err := testutil.RMSE(recon[edge:n-edge], slow[edge:n-edge])
	if err != nil {
		t.Fatalf("RMSE: %v", err)
	}
	if rmse > 0.1*stat.StdDev(slow, nil) {
		t.Fatalf("band RMSE against slow component = %v", rmse)
	}
}

func TestReconstructRescale(t *testing.T) {
	x := testutil.Mix(1, testutil.PeriodicSine(50, 2, 600), 1, testutil.Ramp(5, 0, 600))
	grid := mustGrid(t, 2, 200, 0.125)
	surf, err := Transform(context.Background(), x, grid)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	recon, err := Reconstruct(surf, 0, 1000, WithRescale(x))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}

	var mean, wantMean float64
	for i := range x {
		mean += recon[i]
		wantMean += x[i]
	}
	mean /= float64(len(x))
	wantMean /= float64(len(x))
	if math.Abs(mean-wantMean) > 1e-9 {
		t.Fatalf("mean = %v, want %v", mean, wantMean)
	}
	if math.Abs(stat.StdDev(recon, nil)-stat.StdDev(x, nil)) > 1e-9 {
		t.Fatalf("sd = %v, want %v", stat.StdDev(recon, nil), stat.StdDev(x, nil))
	}
}

func TestReconstructReliableOnly(t *testing.T) {
	x := annualSeries()[:1000]
	grid := mustGrid(t, 2, 300, 0.25)
	surf, err := Transform(context.Background(), x, grid)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	mask, err := ComputeCOI(len(x), grid)
	if err != nil {
		t.Fatalf("ComputeCOI: %v", err)
	}

	recon, err := Reconstruct(surf, 0, 1000, WithReliableOnly(mask))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	// Every scale is unreliable at the first and last sample.
	if recon[0] != 0 || recon[len(x)-1] != 0 {
		t.Fatalf("edge samples = %v, %v, want 0", recon[0], recon[len(x)-1])
	}
	if recon[len(x)/2] == 0 {
		t.Fatal("centre sample is zero")
	}
}

func TestReconstructErrors(t *testing.T) {
	x := testutil.PeriodicSine(20, 1, 128)
	grid := mustGrid(t, 2, 40, 0.5)
	surf, err := Transform(context.Background(), x, grid)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	if _, err := Reconstruct(surf, 1, 1.5); !errors.Is(err, ErrEmptyBand) {
		t.Errorf("band [1, 1.5]: err = %v, want ErrEmptyBand", err)
	}
	if _, err := Reconstruct(surf, 10, 5); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("band [10, 5]: err = %v, want ErrInvalidRange", err)
	}
	if _, err := Reconstruct(nil, 1, 10); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("nil surface: err = %v, want ErrShapeMismatch", err)
	}
	if _, err := Reconstruct(&Surface{}, 1, 10); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("zero surface: err = %v, want ErrShapeMismatch", err)
	}

	otherMask, err := ComputeCOI(64, grid)
	if err != nil {
		t.Fatalf("ComputeCOI: %v", err)
	}
	if _, err := Reconstruct(surf, 2, 40, WithReliableOnly(otherMask)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("mismatched mask: err = %v, want ErrShapeMismatch", err)
	}
	if _, err := Reconstruct(surf, 2, 40, WithRescale(x[:10])); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("mismatched original: err = %v, want ErrShapeMismatch", err)
	}
}
