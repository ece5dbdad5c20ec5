package wavelet

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkTransform(b *testing.B) {
	ctx := context.Background()
	sizes := []int{256, 1024, 3652}

	for _, n := range sizes {
		x := testSeries(n)
		grid := mustGrid(b, 2, float64(n)/3, 1.0/20)

		for _, m := range []struct {
			name   string
			method Method
		}{
			{"direct", MethodDirect},
			{"fft", MethodFFT},
		} {
			if m.method == MethodDirect && n > 1024 {
				continue
			}
			b.Run(fmt.Sprintf("%s/n=%d", m.name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, _ = Transform(ctx, x, grid, WithMethod(m.method))
				}
			})
		}
	}
}

func BenchmarkStreamPower(b *testing.B) {
	ctx := context.Background()
	x := testSeries(3652)
	grid := mustGrid(b, 2, 1024, 1.0/20)
	sink := func(int, float64, []float64) error { return nil }

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = StreamPower(ctx, x, grid, sink)
	}
}
