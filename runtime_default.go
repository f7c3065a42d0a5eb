package fluxion

import (
	"sync"

	"github.com/fluxion/fluxion/runtime"
)

var (
	defaultRuntimeOnce sync.Once
	defaultRuntimeInst runtime.Runtime
)

// defaultRuntime lazily constructs the package-wide default runtime
// (runtime.NewParallel) used whenever a caller passes a nil
// runtime.Runtime to a constructor.
func defaultRuntime() runtime.Runtime {
	defaultRuntimeOnce.Do(func() {
		defaultRuntimeInst = runtime.NewParallel()
	})
	return defaultRuntimeInst
}
