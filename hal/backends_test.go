package hal_test

import (
	"errors"
	"testing"

	"github.com/ksgfk/radray-go/hal"
	"github.com/ksgfk/radray-go/types"
)

// Use non-standard backend variant numbers to avoid interfering with
// registry_test.go, which checks specific standard variants.
const (
	testFactoryVariant1 = types.Backend(200)
	testFactoryVariant2 = types.Backend(201)
	testFactoryVariant3 = types.Backend(202)
)

// factoryTestDriver implements hal.BackendDriver for factory tests.
type factoryTestDriver struct {
	variant types.Backend
}

func (b *factoryTestDriver) Variant() types.Backend { return b.variant }
func (b *factoryTestDriver) CreateDevice(_ *types.DeviceDescriptor) (hal.Device, error) {
	return nil, nil
}

func TestRegisterBackendFactory(t *testing.T) {
	callCount := 0
	factory := func() (hal.BackendDriver, error) {
		callCount++
		return &factoryTestDriver{variant: testFactoryVariant1}, nil
	}

	hal.RegisterBackendFactory(testFactoryVariant1, factory)

	if callCount != 0 {
		t.Errorf("factory called during registration, want lazy")
	}
}

func TestCreateBackend(t *testing.T) {
	hal.RegisterBackendFactory(testFactoryVariant1, func() (hal.BackendDriver, error) {
		return &factoryTestDriver{variant: testFactoryVariant1}, nil
	})

	backend, err := hal.CreateBackend(testFactoryVariant1)
	if err != nil {
		t.Fatalf("CreateBackend failed: %v", err)
	}
	if backend == nil {
		t.Fatal("CreateBackend returned nil backend")
	}
	if backend.Variant() != testFactoryVariant1 {
		t.Errorf("variant = %v, want %v", backend.Variant(), testFactoryVariant1)
	}
}

func TestCreateBackendNotRegistered(t *testing.T) {
	_, err := hal.CreateBackend(types.Backend(99))
	if !errors.Is(err, hal.ErrBackendNotFound) {
		t.Errorf("expected ErrBackendNotFound, got %v", err)
	}
}

func TestCreateBackendFactoryError(t *testing.T) {
	factoryErr := errors.New("init failed")
	hal.RegisterBackendFactory(testFactoryVariant2, func() (hal.BackendDriver, error) {
		return nil, factoryErr
	})

	_, err := hal.CreateBackend(testFactoryVariant2)
	if !errors.Is(err, factoryErr) {
		t.Errorf("expected factory error, got %v", err)
	}
}

func TestProbeBackendRegistered(t *testing.T) {
	// noop registers itself under BackendNone from init() in hal/noop,
	// which this package's other test files import; the real noop driver
	// is left in place for the tests that open a device from it.
	backend, err := hal.ProbeBackend(types.BackendNone)
	if err != nil {
		t.Fatalf("ProbeBackend for BackendNone failed: %v", err)
	}
	if backend == nil {
		t.Fatal("ProbeBackend returned nil")
	}
	if backend.Variant() != types.BackendNone {
		t.Errorf("variant = %v, want BackendNone", backend.Variant())
	}
}

func TestProbeBackendViaFactory(t *testing.T) {
	hal.RegisterBackendFactory(testFactoryVariant3, func() (hal.BackendDriver, error) {
		return &factoryTestDriver{variant: testFactoryVariant3}, nil
	})

	backend, err := hal.ProbeBackend(testFactoryVariant3)
	if err != nil {
		t.Fatalf("ProbeBackend via factory failed: %v", err)
	}
	if backend == nil {
		t.Fatal("ProbeBackend returned nil")
	}
	if backend.Variant() != testFactoryVariant3 {
		t.Errorf("variant = %v, want %v", backend.Variant(), testFactoryVariant3)
	}
}

func TestProbeBackendNotFound(t *testing.T) {
	_, err := hal.ProbeBackend(types.Backend(77))
	if !errors.Is(err, hal.ErrBackendNotFound) {
		t.Errorf("expected ErrBackendNotFound, got %v", err)
	}
}

func TestSelectBestBackend(t *testing.T) {
	backend, err := hal.SelectBestBackend()
	if err != nil {
		t.Fatalf("SelectBestBackend failed: %v", err)
	}
	if backend == nil {
		t.Fatal("SelectBestBackend returned nil")
	}
}
