package noop

import (
	"github.com/ksgfk/radray-go/hal"
	"github.com/ksgfk/radray-go/types"
)

// Driver implements hal.BackendDriver for the noop backend.
type Driver struct{}

// Variant returns types.BackendNone.
func (Driver) Variant() types.Backend { return types.BackendNone }

// CreateDevice always succeeds and returns a fresh in-memory Device.
func (Driver) CreateDevice(desc *types.DeviceDescriptor) (hal.Device, error) {
	d := &Device{}
	d.detail = types.DeviceDetail{
		AdapterName: "Noop Adapter",
		Backend:     types.BackendNone,
		Kind:        types.DeviceKindCPU,
		VRAMBytes:   0,
		IsUMA:       true,
		Features:    0,
		Limits:      types.DefaultLimits(),
	}
	if desc != nil && desc.Label != "" {
		d.label = desc.Label
	}
	d.valid = true
	d.queues = make(map[types.QueueType][]*Queue)
	for qt := types.QueueTypeDirect; qt <= types.QueueTypeCopy; qt++ {
		d.queues[qt] = append(d.queues[qt], &Queue{device: d, qtype: qt})
	}
	return d, nil
}
