// Command cwtinfo prints the Morlet wavelet power spectrum of a series.
//
// Usage:
//
//	cwtinfo [flags] < series.txt
//
// The series is read from stdin, one value per line (blank lines and lines
// starting with # are skipped). With -synth-period a sinusoid is generated
// instead. Flag defaults come from CWT_* environment variables.
//
// Examples:
//
//	cwtinfo -synth-period 30 -synth-len 1000 -lower 2 -upper 200 -dj 0.05
//	cwtinfo -dt 1 -upper 1024 -reflect < daily.txt
//	CWT_DJ=0.01 cwtinfo -grid -lower 2 -upper 64
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

func main() {
	defaults, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	lower := flag.Float64("lower", defaults.LowerPeriod, "lower period")
	upper := flag.Float64("upper", defaults.UpperPeriod, "upper period (0 = one third of the series)")
	dj := flag.Float64("dj", defaults.Dj, "log2 scale resolution")
	dt := flag.Float64("dt", defaults.Dt, "sampling interval")
	omega := flag.Float64("omega", defaults.Omega, "Morlet angular frequency")
	reflect := flag.Bool("reflect", defaults.Reflect, "mirror the series at its boundaries instead of zero padding")
	detrend := flag.Bool("detrend", defaults.Detrend, "remove a linear trend before the transform")
	gridOnly := flag.Bool("grid", false, "print the scale grid and exit")
	every := flag.Int("every", 1, "print every n-th scale")
	synthPeriod := flag.Float64("synth-period", 0, "generate a sinusoid with this period instead of reading stdin")
	synthLen := flag.Int("synth-len", 1000, "length of the generated sinusoid")
	synthAmp := flag.Float64("synth-amp", 1, "amplitude of the generated sinusoid")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cwtinfo [flags] < series.txt\n\n")
		fmt.Fprintf(os.Stderr, "Prints the time-averaged Morlet wavelet power per period.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment: CWT_LOWER, CWT_UPPER, CWT_DJ, CWT_DT, CWT_OMEGA, CWT_REFLECT, CWT_DETREND\n")
	}
	flag.Parse()

	if *gridOnly {
		grid, err := wavelet.NewScaleGrid(*lower, *upper, *dj, *omega)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		printGrid(os.Stdout, grid, *dt, *every)
		return
	}

	var series []float64
	if *synthPeriod > 0 {
		series = synthesize(*synthPeriod, *synthAmp, *synthLen)
	} else {
		series, err = readSeries(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	opts := []wavelet.Option{
		wavelet.WithPeriodRange(*lower, *upper),
		wavelet.WithDj(*dj),
		wavelet.WithDt(*dt),
		wavelet.WithOmega(*omega),
		wavelet.WithDetrend(*detrend),
	}
	if *reflect {
		opts = append(opts, wavelet.WithPadding(wavelet.PadReflect))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := wavelet.Analyze(ctx, series, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSpectrum(os.Stdout, a, *every)
}

func synthesize(period, amplitude float64, n int) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*float64(i)/period)
	}
	return out
}

// readSeries parses one float per line.
func readSeries(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}
	return out, nil
}

func printGrid(w io.Writer, grid *wavelet.ScaleGrid, dt float64, every int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Index\tScale\tPeriod\tCOI [samples]\n")
	_, _ = fmt.Fprintf(tw, "-----\t-----\t------\t-------------\n")
	for i := 0; i < grid.Len(); i += max(every, 1) {
		_, _ = fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%d\n", i, grid.Scale(i), grid.Period(i), wavelet.COIHalfWidth(grid.Scale(i), dt))
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSpectrum(w io.Writer, a *wavelet.Analysis, every int) {
	all := a.AveragePower(false)
	inside := a.AveragePower(true)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Period\tScale\tAvg Power\tAvg Power (COI)\tReliable\n")
	_, _ = fmt.Fprintf(tw, "------\t-----\t---------\t---------------\t--------\n")
	for i := 0; i < a.Grid.Len(); i += max(every, 1) {
		lo, hi := a.COI.ReliableRange(i)
		_, _ = fmt.Fprintf(tw, "%.4f\t%.4f\t%.6g\t%.6g\t%d\n",
			a.Grid.Period(i), a.Grid.Scale(i), all[i], inside[i], max(hi-lo, 0))
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	if period, _ := a.DominantPeriod(true); !math.IsNaN(period) {
		_, _ = fmt.Fprintf(w, "\ndominant period (inside COI): %.4f\n", period)
	}
}
