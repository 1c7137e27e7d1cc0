package types

// DeviceKind classifies the physical GPU behind a Device.
type DeviceKind uint8

const (
	DeviceKindOther DeviceKind = iota
	DeviceKindIntegratedGPU
	DeviceKindDiscreteGPU
	DeviceKindVirtualGPU
	DeviceKindCPU
)

func (d DeviceKind) String() string {
	switch d {
	case DeviceKindIntegratedGPU:
		return "IntegratedGPU"
	case DeviceKindDiscreteGPU:
		return "DiscreteGPU"
	case DeviceKindVirtualGPU:
		return "VirtualGPU"
	case DeviceKindCPU:
		return "CPU"
	default:
		return "Other"
	}
}

// DeviceDetail is the record a Device exposes after creation, per
// spec.md §4.1: adapter name, VRAM bytes, and whether the adapter uses
// unified memory (integrated GPUs, Apple Silicon).
type DeviceDetail struct {
	AdapterName string
	Backend     Backend
	Kind        DeviceKind
	VRAMBytes   uint64
	IsUMA       bool
	Features    Features
	Limits      Limits
}

// QueueType is the kind of work a CommandQueue accepts, per spec.md §3's
// SwapChain/Queue attributes and §4.8.
type QueueType uint8

const (
	QueueTypeDirect QueueType = iota
	QueueTypeCompute
	QueueTypeCopy
)

// MaxQueueCountPerType bounds how many queues of one QueueType a Device
// may expose concurrently (spec.md §4.8: "up to MAX_COUNT slots per
// QueueType").
const MaxQueueCountPerType = 3

// QueueRequest asks a Vulkan Device for a number of queues of a given
// type at creation time.
type QueueRequest struct {
	Type  QueueType
	Count uint32
}

// D3D12DeviceDescriptor selects a D3D12 adapter and enables debug/GPU
// based validation layers, per spec.md §4.1.
type D3D12DeviceDescriptor struct {
	AdapterIndex        *uint32
	EnableDebugLayer    bool
	EnableGPUValidation bool
}

// VulkanDeviceDescriptor carries a prior VkInstance handle (managed by
// the caller's windowing/instance collaborator) and the queues to
// request at device creation.
type VulkanDeviceDescriptor struct {
	Instance     uintptr
	QueueRequest []QueueRequest
	EnableDebug  bool
}

// MetalDeviceDescriptor optionally selects among multiple MTLDevices
// (discrete GPU + integrated GPU systems).
type MetalDeviceDescriptor struct {
	DeviceIndex *uint32
}

// DeviceDescriptor is the backend-tagged descriptor passed to
// CreateDevice (spec.md §4.1). Exactly one of the three backend-specific
// fields is consulted, selected by Backend.
type DeviceDescriptor struct {
	Backend Backend
	Label   string

	D3D12  D3D12DeviceDescriptor
	Vulkan VulkanDeviceDescriptor
	Metal  MetalDeviceDescriptor
}
