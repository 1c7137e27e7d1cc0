package hal

import "github.com/ksgfk/radray-go/types"

// StaticSampler pairs a sampler description with the shader binding
// point it is compiled into a RootSignature at, bypassing runtime
// binding entirely (spec.md §4.5).
type StaticSampler struct {
	Name    string
	Space   uint32
	Slot    uint32
	Sampler types.SamplerDescriptor
}

// RootConstEntry is the RootSignature's single push-constant block, if
// the bind bridge placed one.
type RootConstEntry struct {
	Name      string
	DwordSize uint32
	Stages    types.ShaderStages
}

// RootDescriptorEntry is a single-resource inline binding placed
// directly in the RootSignature, skipping descriptor-set indirection.
type RootDescriptorEntry struct {
	Name   string
	Type   types.ResourceBindType
	Space  uint32
	Slot   uint32
	Stages types.ShaderStages
}

// DescriptorSetElement is one (possibly merged) range of bindings
// within a descriptor set, grouped by space and contiguous slot run.
type DescriptorSetElement struct {
	Type      types.ResourceBindType
	Space     uint32
	BaseSlot  uint32
	Count     uint32
	Stages    types.ShaderStages
}

// DescriptorSetLayout is one descriptor-set slot of a RootSignature.
type DescriptorSetLayout struct {
	Elements []DescriptorSetElement
}

// RootSignatureDescriptor is the backend-neutral output of the bind
// bridge's classification algorithm (spec.md §4.5): at most one root
// constant, an ordered list of root descriptors, and an ordered list of
// descriptor set layouts, plus any static samplers compiled in.
type RootSignatureDescriptor struct {
	Label          string
	RootConst      *RootConstEntry
	RootDescriptors []RootDescriptorEntry
	DescriptorSets  []DescriptorSetLayout
	StaticSamplers  []StaticSampler
}

// CostDwords computes the RootSignatureBudgetDwords accounting used by
// the classification algorithm: rootConstDwords + 2*rootDescriptorCount
// + descriptorSetCount.
func (d *RootSignatureDescriptor) CostDwords() uint32 {
	var cost uint32
	if d.RootConst != nil {
		cost += d.RootConst.DwordSize
	}
	cost += 2 * uint32(len(d.RootDescriptors))
	cost += uint32(len(d.DescriptorSets))
	return cost
}

// GraphicsPipelineStateDescriptor bundles everything a graphics PSO is
// built from, per spec.md §4.6.
type GraphicsPipelineStateDescriptor struct {
	Label string

	RootSignature RootSignature
	VertexShader  ShaderModule
	VertexEntry   string
	PixelShader   ShaderModule
	PixelEntry    string

	VertexBuffers []types.VertexBufferLayout
	Primitive     types.PrimitiveState
	DepthStencil  *types.DepthStencilState
	Multisample   types.MultisampleState
	ColorTargets  []types.ColorTargetState
}

// ComputePipelineStateDescriptor bundles a compute PSO, per spec.md §4.6:
// just the compute shader, root signature, and thread-group size.
type ComputePipelineStateDescriptor struct {
	Label string

	RootSignature RootSignature
	ComputeShader ShaderModule
	ComputeEntry  string

	ThreadGroupSize [3]uint32
}

// LoadAction selects what a render pass does with an attachment's
// existing contents at pass start.
type LoadAction uint8

const (
	LoadActionDontCare LoadAction = iota
	LoadActionLoad
	LoadActionClear
)

// StoreAction selects what a render pass does with an attachment's
// contents at pass end.
type StoreAction uint8

const (
	StoreActionStore StoreAction = iota
	StoreActionDiscard
)

// RenderPassColorAttachment binds one color target for a render pass.
type RenderPassColorAttachment struct {
	View          TextureView
	ResolveTarget TextureView
	Load          LoadAction
	Store         StoreAction
	Clear         types.ClearValue
}

// RenderPassDepthStencilAttachment binds the depth-stencil target for a
// render pass, with independent load/store pairs for each aspect.
type RenderPassDepthStencilAttachment struct {
	View TextureView

	DepthLoad    LoadAction
	DepthStore   StoreAction
	DepthClear   float32
	DepthReadOnly bool

	StencilLoad    LoadAction
	StencilStore   StoreAction
	StencilClear   uint32
	StencilReadOnly bool
}

// RenderPassDescriptor names the attachments a BeginRenderPass call
// targets, per spec.md §4.8.
type RenderPassDescriptor struct {
	Label                  string
	ColorAttachments       []RenderPassColorAttachment
	DepthStencilAttachment *RenderPassDepthStencilAttachment
}

// ComputePassDescriptor names an optional debug label for a compute
// pass; compute passes carry no attachments.
type ComputePassDescriptor struct {
	Label string
}

// Access is a bitset over BufferUse/TextureUse describing the
// before/after state of a resource across a barrier (spec.md §4.9).
// Buffer barriers interpret it as types.BufferUse; texture barriers as
// types.TextureUse.
type Access uint32

// Transition is one abstract barrier: a resource moves from Before to
// After usage, optionally scoped to a subresource range and optionally
// handing off between queues.
type Transition struct {
	Before Access
	After  Access

	// QueueHandoff, if non-nil, names the queue type the resource is
	// being handed off to as part of this barrier.
	QueueHandoff *types.QueueType
}

// BufferBarrier transitions one Buffer between BufferUse states.
type BufferBarrier struct {
	Buffer Buffer
	Transition
}

// TextureBarrier transitions one Texture (or a subresource range of it)
// between TextureUse states.
type TextureBarrier struct {
	Texture Texture
	Range   types.SubresourceRange
	Transition
}

// SwapChainDescriptor describes a presentable back-buffer ring, per
// spec.md §4.10.
type SwapChainDescriptor struct {
	Label           string
	PresentQueue    Queue
	WindowHandle    uintptr
	Width           uint32
	Height          uint32
	BackBufferCount uint32
	Format          types.PixelFormat

	// Sync requests vsync-style presentation (FIFO) when true; when
	// false the backend prefers the lowest-latency mode it offers
	// (Immediate on D3D12/Vulkan, Mailbox-like on Metal).
	Sync bool
}

// CommandBufferDescriptor names an optional debug label for a
// CommandBuffer created from a Queue.
type CommandBufferDescriptor struct {
	Label string
}

// FenceDescriptor names an optional debug label and the Fence's initial
// counter value.
type FenceDescriptor struct {
	Label         string
	InitialValue  uint64
}

// SemaphoreDescriptor names an optional debug label for a Semaphore.
type SemaphoreDescriptor struct {
	Label string
}
