package hal

import "github.com/ksgfk/radray-go/types"

// Backend Implementation Guide
//
//   - hal/noop/ - in-memory reference backend, the only one shipped today;
//     exercises the full Device/Queue/CommandBuffer/DescriptorSet/SwapChain
//     surface below against host memory instead of a native driver.
//
// A native backend (D3D12, Vulkan, Metal) registers itself the same way
// hal/noop does, via RegisterBackend (or RegisterBackendFactory, for
// drivers whose init may legitimately fail — missing loader, no compatible
// adapter) from its own init(); see hal/allbackends for the side-effect
// import that wires registered backends together.

// BackendFactory lazily constructs a BackendDriver. Prefer this over
// RegisterBackend when construction can fail, e.g. a Vulkan loader that
// is not present on the host.
type BackendFactory func() (BackendDriver, error)

// registeredFactories holds lazy backend factories.
var registeredFactories = make(map[types.Backend]BackendFactory)

// RegisterBackendFactory registers a lazily-constructed backend driver.
func RegisterBackendFactory(variant types.Backend, factory BackendFactory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	registeredFactories[variant] = factory
}

// CreateBackend constructs the backend driver registered for variant,
// via its factory. Returns ErrBackendNotFound if none was registered.
func CreateBackend(variant types.Backend) (BackendDriver, error) {
	backendsMu.RLock()
	factory, ok := registeredFactories[variant]
	backendsMu.RUnlock()

	if !ok {
		return nil, ErrBackendNotFound
	}
	return factory()
}

// ProbeBackend reports whether variant is available, constructing and
// registering it via its factory if it was not already registered.
func ProbeBackend(variant types.Backend) (BackendDriver, error) {
	if b, ok := GetBackend(variant); ok {
		return b, nil
	}

	backendsMu.RLock()
	factory, hasFactory := registeredFactories[variant]
	backendsMu.RUnlock()

	if !hasFactory {
		return nil, ErrBackendNotFound
	}

	b, err := factory()
	if err != nil {
		return nil, err
	}
	RegisterBackend(b)
	return b, nil
}

// SelectBestBackend chooses the most capable backend available on the
// host, preferring a native backend over the noop reference backend.
// Priority: D3D12 > Vulkan > Metal > None (noop).
func SelectBestBackend() (BackendDriver, error) {
	priority := []types.Backend{
		types.BackendD3D12,
		types.BackendVulkan,
		types.BackendMetal,
		types.BackendNone,
	}

	for _, variant := range priority {
		if b, ok := GetBackend(variant); ok {
			return b, nil
		}
		backendsMu.RLock()
		factory, hasFactory := registeredFactories[variant]
		backendsMu.RUnlock()
		if hasFactory {
			if b, err := factory(); err == nil {
				RegisterBackend(b)
				return b, nil
			}
		}
	}

	return nil, ErrBackendNotFound
}
