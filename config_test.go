package fluxion

import "testing"

func TestValidateConfig_Defaults(t *testing.T) {
	cfg := defaultConfig()
	if err := validateConfig(&cfg); err != nil {
		t.Fatalf("validateConfig returned error for defaults: %v", err)
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := defaultConfig()
	if cfg.OutputBufferSize != 0 {
		t.Fatalf("OutputBufferSize default = %d; want 0", cfg.OutputBufferSize)
	}
	if cfg.Metrics == nil {
		t.Fatalf("Metrics default = nil; want a noop provider")
	}
	if cfg.Runtime != nil {
		t.Fatalf("Runtime default = %v; want nil (resolved lazily by buildConfig)", cfg.Runtime)
	}
}
