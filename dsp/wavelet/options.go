package wavelet

import "runtime"

// Method selects how coefficients are computed.
type Method int

const (
	// MethodAuto picks MethodDirect for short series and MethodFFT otherwise.
	MethodAuto Method = iota

	// MethodDirect evaluates the correlation sum directly, O(N^2) per scale.
	MethodDirect

	// MethodFFT computes the correlation in the frequency domain,
	// O(N log N) per scale.
	MethodFFT
)

// Padding selects how the series is extended beyond its boundaries.
type Padding int

const (
	// PadZero treats samples outside the series as zero.
	PadZero Padding = iota

	// PadReflect mirrors the series about its first and last samples.
	PadReflect
)

// Config holds the analysis settings.
type Config struct {
	// Dj is the log2 spacing between scales.
	Dj float64
	// Dt is the sampling interval. Periods are expressed in its unit.
	Dt float64
	// Omega is the Morlet angular frequency.
	Omega float64
	// LowerPeriod and UpperPeriod bound the analysed periods. A zero
	// UpperPeriod means floor(N/3)*Dt for a series of N samples.
	LowerPeriod float64
	UpperPeriod float64
	// Detrend removes a least-squares linear trend before the transform.
	Detrend bool
	// ComputePValues is recorded for callers but has no effect: this
	// package performs no significance testing.
	ComputePValues bool

	Padding Padding
	Method  Method
	// Workers bounds the number of scales computed concurrently.
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults used by [Analyze] and [Transform].
func DefaultConfig() Config {
	return Config{
		Dj:          1.0 / 250,
		Dt:          1,
		Omega:       DefaultOmega,
		LowerPeriod: 2,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithDj sets the log2 scale resolution. It is validated when the grid is built.
func WithDj(dj float64) Option {
	return func(cfg *Config) {
		cfg.Dj = dj
	}
}

// WithDt sets the sampling interval. Non-positive values are ignored.
func WithDt(dt float64) Option {
	return func(cfg *Config) {
		if dt > 0 {
			cfg.Dt = dt
		}
	}
}

// WithOmega sets the Morlet angular frequency. It is validated when the grid is built.
func WithOmega(omega float64) Option {
	return func(cfg *Config) {
		cfg.Omega = omega
	}
}

// WithPeriodRange sets the analysed period range.
func WithPeriodRange(lower, upper float64) Option {
	return func(cfg *Config) {
		cfg.LowerPeriod = lower
		cfg.UpperPeriod = upper
	}
}

// WithDetrend enables or disables linear detrending.
func WithDetrend(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Detrend = enabled
	}
}

// WithPValues records whether significance testing was requested.
func WithPValues(enabled bool) Option {
	return func(cfg *Config) {
		cfg.ComputePValues = enabled
	}
}

// WithPadding sets the boundary padding policy.
func WithPadding(p Padding) Option {
	return func(cfg *Config) {
		cfg.Padding = p
	}
}

// WithMethod forces a computation method.
func WithMethod(m Method) Option {
	return func(cfg *Config) {
		cfg.Method = m
	}
}

// WithWorkers bounds the number of concurrently computed scales.
// Non-positive values are ignored.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}
