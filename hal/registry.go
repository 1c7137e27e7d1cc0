package hal

import (
	"sync"

	"github.com/ksgfk/radray-go/types"
)

var (
	// backendsMu protects backends and registeredFactories.
	backendsMu sync.RWMutex

	// backends stores eagerly-registered backend drivers.
	backends = make(map[types.Backend]BackendDriver)
)

// RegisterBackend registers a backend driver, typically from a backend
// package's init(). Registering the same variant twice replaces the
// earlier registration.
func RegisterBackend(driver BackendDriver) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[driver.Variant()] = driver
}

// GetBackend returns the registered driver for variant, if any.
func GetBackend(variant types.Backend) (BackendDriver, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	b, ok := backends[variant]
	return b, ok
}

// AvailableBackends returns every registered backend variant, in no
// particular order.
func AvailableBackends() []types.Backend {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	result := make([]types.Backend, 0, len(backends))
	for v := range backends {
		result = append(result, v)
	}
	return result
}
