package core

// GridConfig defines an evenly spaced sampling grid over [Start, Stop].
type GridConfig struct {
	Start   float64
	Stop    float64
	Samples int
}

// GridOption mutates a GridConfig.
type GridOption func(*GridConfig)

// DefaultGridConfig returns the reference grid: 2000 samples over [0, 1000].
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Start:   0,
		Stop:    1000,
		Samples: 2000,
	}
}

// WithSpan sets the grid interval. Empty or reversed spans are ignored.
func WithSpan(start, stop float64) GridOption {
	return func(cfg *GridConfig) {
		if stop > start {
			cfg.Start = start
			cfg.Stop = stop
		}
	}
}

// WithSamples sets the number of grid samples.
func WithSamples(samples int) GridOption {
	return func(cfg *GridConfig) {
		if samples > 0 {
			cfg.Samples = samples
		}
	}
}

// ApplyGridOptions applies zero or more options to the default config.
func ApplyGridOptions(opts ...GridOption) GridConfig {
	cfg := DefaultGridConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Step returns the spacing between adjacent samples, or 0 for fewer than
// two samples.
func (c GridConfig) Step() float64 {
	if c.Samples < 2 {
		return 0
	}
	return (c.Stop - c.Start) / float64(c.Samples-1)
}
