package hal

import "github.com/ksgfk/radray-go/types"

// BackendDriver identifies one compiled-in backend (D3D12, Vulkan,
// Metal). Backend packages register themselves at init time via
// RegisterBackend; see registry.go.
type BackendDriver interface {
	// Variant returns the backend this driver implements.
	Variant() types.Backend

	// CreateDevice implements spec.md §4.1's factory: it enumerates
	// adapters, selects one (the highest-performance adapter when the
	// descriptor names none), verifies the backend's minimum feature
	// level, and returns an open Device. Failure returns a non-nil
	// *Error; CreateDevice never panics on a caller-supplied descriptor.
	CreateDevice(desc *types.DeviceDescriptor) (Device, error)
}

// Device is a logical GPU opened from one adapter. It owns up to
// types.MaxQueueCountPerType queues per types.QueueType and is the sole
// factory for every other GPU object (spec.md §3, §4.1).
type Device interface {
	Resource

	// Detail returns the adapter identity and limits this Device was
	// opened with.
	Detail() types.DeviceDetail

	// Queue returns the index'th queue of the given type, or nil if
	// index is out of range for what this Device opened.
	Queue(qtype types.QueueType, index uint32) Queue

	CreateBuffer(desc *types.BufferDescriptor) (Buffer, error)
	CreateTexture(desc *types.TextureDescriptor) (Texture, error)
	CreateTextureView(texture Texture, desc *types.TextureViewDescriptor) (TextureView, error)
	CreateSampler(desc *types.SamplerDescriptor) (Sampler, error)
	CreateShaderModule(desc *types.ShaderModuleDescriptor) (ShaderModule, error)

	// CreateRootSignature translates a backend-neutral
	// RootSignatureDescriptor (the bind bridge's output) into a native
	// root signature / pipeline layout / argument table.
	CreateRootSignature(desc *RootSignatureDescriptor) (RootSignature, error)

	CreateGraphicsPipelineState(desc *GraphicsPipelineStateDescriptor) (GraphicsPipelineState, error)
	CreateComputePipelineState(desc *ComputePipelineStateDescriptor) (ComputePipelineState, error)

	// CreateDescriptorSet realizes one descriptor-set slot of sig with
	// no bound views; a bindbridge.Bridge calls this lazily the first
	// time Bind needs the set.
	CreateDescriptorSet(sig RootSignature, setIndex uint32) (DescriptorSet, error)

	CreateCommandBuffer(queue Queue, desc *CommandBufferDescriptor) (CommandBuffer, error)
	CreateFence(desc *FenceDescriptor) (Fence, error)
	CreateSemaphore(desc *SemaphoreDescriptor) (Semaphore, error)
	CreateSwapChain(desc *SwapChainDescriptor) (SwapChain, error)

	// WaitFences blocks until every named (fence, value) pair has
	// signalled, or until timeoutNanos elapses (0 = forever).
	WaitFences(fences []Fence, values []uint64, timeoutNanos uint64) error
}

// SubmitDescriptor describes one Queue.Submit call: an ordered list of
// CommandBuffers plus the semaphores/fence that gate and report its
// completion (spec.md §4.8).
type SubmitDescriptor struct {
	CommandBuffers []CommandBuffer
	WaitSems       []Semaphore
	SignalSems     []Semaphore
	SignalFence    Fence
}

// Queue accepts CommandBuffers for execution and drives presentation.
// Submissions to one Queue execute in submit order; cross-queue
// ordering is the caller's responsibility via semaphores.
type Queue interface {
	Type() types.QueueType

	// Submit executes desc.CommandBuffers in order, signalling
	// desc.SignalSems and desc.SignalFence once complete. Each
	// CommandBuffer must be Executable; on return it is Pending.
	Submit(desc *SubmitDescriptor) error

	// Wait blocks the calling goroutine until the queue is idle.
	Wait() error

	// Present submits sc's current back buffer after waitSems signal.
	// This is equivalent to sc.Present but routes through the queue the
	// SwapChain was created against, matching spec.md §4.8's
	// queue-attached present model.
	Present(sc SwapChain, waitSems []Semaphore) error
}
