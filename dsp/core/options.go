package core

// ProcessorConfig defines the sample clock and delay memory of the card.
type ProcessorConfig struct {
	SampleRate    int
	BufferSamples int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the hardware defaults: 48 kHz and two
// seconds of delay memory.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:    48000,
		BufferSamples: 96000,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBufferSamples sets the delay buffer capacity in samples.
func WithBufferSamples(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.BufferSamples = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Ticks converts a duration in milliseconds to a whole number of ticks at
// the configured sample rate.
func (c ProcessorConfig) Ticks(ms int) int {
	return c.SampleRate * ms / 1000
}
