package hal

import "github.com/ksgfk/radray-go/types"

// Resource is the base interface every GPU object satisfies, per spec.md
// §3's object model: a tag, and a validity bit that goes false exactly
// once, at Destroy.
//
// Destroy is idempotent; calling it again on an already-invalid Resource
// is a no-op, not undefined behavior.
type Resource interface {
	// Destroy releases the underlying native object. After Destroy,
	// IsValid returns false and every other method is inert.
	Destroy()

	// IsValid reports whether the object has not yet been destroyed.
	IsValid() bool
}

// Buffer is a contiguous GPU-visible memory allocation, created with a
// fixed MemoryType and BufferUse mask (types.BufferDescriptor).
type Buffer interface {
	Resource

	// Size returns the buffer's byte length, as given at creation.
	Size() uint64

	// Map returns a host-visible pointer into an Upload or Readback
	// buffer's memory. It panics if called on a Device-memory buffer.
	Map() ([]byte, error)

	// Unmap invalidates the slice returned by Map.
	Unmap()
}

// BufferRange names a byte range within a Buffer for a descriptor write
// that does not consume the whole allocation — a constant buffer view
// into a suballocated upload arena, or a structured/byte-address buffer
// SRV/UAV over part of a larger buffer.
type BufferRange struct {
	Buffer Buffer
	Offset uint64
	Size   uint64
}

// Texture is a multi-dimensional GPU image, created with a fixed
// PixelFormat, Extent3D, mip/array/sample counts, and TextureUse mask
// (types.TextureDescriptor).
type Texture interface {
	Resource

	Format() types.PixelFormat
	Extent() types.Extent3D
}

// TextureView interprets a Texture (or a sub-range of it) through a
// specific format, dimension, and aspect for binding to a shader or
// attaching to a render pass.
type TextureView interface {
	Resource
}

// Sampler configures texture filtering and addressing, independent of
// any specific texture.
type Sampler interface {
	Resource
}

// ShaderModule wraps a single backend-native shader blob (DXIL, SPIR-V,
// or MSL) plus the entry point and stage it was compiled for. The RHI
// does not compile HLSL itself — a ShaderModule is produced upstream by
// the shader compiler front end (DXC/SPIRV-Cross) and carries a
// reflection record alongside the blob; see package shaderreflect.
type ShaderModule interface {
	Resource

	Stage() types.ShaderStage
}

// RootSignature is the backend realization of a bridged binding layout:
// an ordered root constant block, root descriptors, and descriptor set
// layouts, built by package bindbridge from shader reflection and
// translated per-backend (spec.md §4.5).
type RootSignature interface {
	Resource
}

// GraphicsPipelineState is an immutable, cheap-to-bind graphics PSO:
// shaders, root signature, vertex layouts, and fixed-function state
// (spec.md §4.6).
type GraphicsPipelineState interface {
	Resource
}

// ComputePipelineState is an immutable compute PSO: a compute shader,
// root signature, and thread-group size.
type ComputePipelineState interface {
	Resource
}

// DescriptorSet is a backend-owned handle created on demand by a
// bindbridge.Bridge to realize one descriptor-set slot of a
// RootSignature with concrete resource views bound (spec.md §4.7).
type DescriptorSet interface {
	Resource

	// Write binds one resource view at (elemIndex, arrayIndex), the
	// same (element, array offset) coordinates a bindbridge.Layout
	// assigns each binding name within this set. view must be a
	// TextureView, Sampler, or BufferRange matching the element's
	// declared ResourceBindType; a mismatched or unsupported view type
	// is an *Error with Kind InvalidArgument.
	Write(elemIndex, arrayIndex uint32, view any) error
}

// CommandBufferState is one node of the CommandBuffer state machine
// (the full CommandBuffer interface is declared in command.go,
// alongside the descriptors its methods take).
type CommandBufferState uint8

const (
	CommandBufferStateInitial CommandBufferState = iota
	CommandBufferStateRecording
	CommandBufferStateRecordingPass
	CommandBufferStateExecutable
	CommandBufferStatePending
)

func (s CommandBufferState) String() string {
	switch s {
	case CommandBufferStateInitial:
		return "Initial"
	case CommandBufferStateRecording:
		return "Recording"
	case CommandBufferStateRecordingPass:
		return "RecordingPass"
	case CommandBufferStateExecutable:
		return "Executable"
	case CommandBufferStatePending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// FenceStatus is a Fence's host-observable completion state.
type FenceStatus uint8

const (
	// FenceStatusNotSubmitted marks a Fence that has never been passed
	// to Queue.Submit as a signal target.
	FenceStatusNotSubmitted FenceStatus = iota
	FenceStatusIncomplete
	FenceStatusComplete
)

func (s FenceStatus) String() string {
	switch s {
	case FenceStatusComplete:
		return "Complete"
	case FenceStatusIncomplete:
		return "Incomplete"
	default:
		return "NotSubmitted"
	}
}

// Fence is a host-observable GPU synchronization primitive: a
// monotonically increasing counter the queue signals on submission
// completion (spec.md §3, §4.9).
type Fence interface {
	Resource

	// GetStatus returns the fence's current status without blocking.
	GetStatus() FenceStatus

	// Wait blocks the calling goroutine until the fence reaches
	// Complete. Returns ErrTimeout if timeoutNanos elapses first; 0
	// means wait forever.
	Wait(timeoutNanos uint64) error
}

// Semaphore is a GPU-side wait/signal token consumed by exactly one
// submission pair (queue-to-queue, or swap-chain-to-queue).
type Semaphore interface {
	Resource
}

// SwapChain owns a ring of back-buffer Textures presented to a platform
// window, per spec.md §4.10. The caller may read its back-buffer
// Textures but must never Destroy them directly.
type SwapChain interface {
	Resource

	// BackBufferCount returns the number of Textures in the ring.
	BackBufferCount() uint32

	// CurrentBackBufferIndex is defined only between AcquireNext and
	// Present; calling it outside that window panics.
	CurrentBackBufferIndex() uint32

	// AcquireNext blocks only if the back-buffer ring is full. On
	// success it signals signalSem (if non-nil) and records the newly
	// current index, returning its Texture. Returns ErrSurfaceOutdated
	// if the swap chain must be resized, ErrSurfaceLost if the
	// presentation surface was destroyed.
	AcquireNext(signalSem Semaphore, waitFence Fence) (Texture, error)

	// Present submits the current back buffer to the present queue
	// after waitSems have signalled.
	Present(waitSems []Semaphore) error
}
