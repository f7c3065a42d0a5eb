package fluxion

import (
	"fmt"

	"github.com/fluxion/fluxion/metrics"
	"github.com/fluxion/fluxion/runtime"
)

// Option configures the multicast/sink family (FluxionSubject, Share,
// Partition, SubscribeAsync, SubscribeLatestAsync).
type Option func(*config)

// WithOutputBuffer sets the per-subscriber output channel buffer size.
func WithOutputBuffer(size uint) Option {
	return func(c *config) { c.OutputBufferSize = size }
}

// WithMetrics stores a metrics.Provider in the config. FluxionSubject,
// Share, Partition and the sinks record no instruments through it.
func WithMetrics(p metrics.Provider) Option {
	return func(c *config) {
		if p == nil {
			panic("fluxion: WithMetrics requires a non-nil Provider")
		}
		c.Metrics = p
	}
}

// WithRuntime selects the runtime.Runtime backing Spawn and any internal
// Mutex. Passing nil panics; omit the option entirely to use the
// package-wide default parallel runtime.
func WithRuntime(rt runtime.Runtime) Option {
	return func(c *config) {
		if rt == nil {
			panic("fluxion: WithRuntime requires a non-nil Runtime")
		}
		c.Runtime = rt
	}
}

// buildConfig applies opts over defaultConfig, resolving a nil Runtime to
// the package default, and panics if the resulting config is invalid.
func buildConfig(opts ...Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			panic("fluxion: nil option")
		}
		opt(&c)
	}
	if c.Runtime == nil {
		c.Runtime = defaultRuntime()
	}
	if err := validateConfig(&c); err != nil {
		panic(fmt.Errorf("fluxion: invalid config: %w", err))
	}
	return c
}
