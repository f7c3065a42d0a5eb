package fluxion

import (
	"github.com/fluxion/fluxion/metrics"
	"github.com/fluxion/fluxion/runtime"
)

// config holds the shared construction-time settings for the
// multicast/sink family: FluxionSubject, Share, Partition, and the
// SubscribeAsync/SubscribeLatestAsync sinks.
type config struct {
	// OutputBufferSize sizes every per-subscriber output channel.
	// Default: 0 (unbuffered)
	OutputBufferSize uint

	// Metrics is the provider set by WithMetrics. FluxionSubject, Share,
	// Partition and the sinks record no instruments through it.
	// Default: metrics.NewNoopProvider()
	Metrics metrics.Provider

	// Runtime backs Spawn and any internal Mutex used by the
	// constructed value.
	// Default: the package-wide default parallel runtime.
	Runtime runtime.Runtime
}

// defaultConfig centralizes default values for config.
// These defaults are applied by every constructor that accepts Option.
func defaultConfig() config {
	return config{
		OutputBufferSize: 0,
		Metrics:          metrics.NewNoopProvider(),
		Runtime:          nil, // resolved to defaultRuntime() lazily by callers
	}
}

// validateConfig performs lightweight invariant checks.
// It returns nil for all currently valid states; reserved for future validation expansions.
func validateConfig(_ *config) error {
	return nil
}
