package hal

import "github.com/ksgfk/radray-go/types"

// CommandBuffer is created from a Queue and moves through the state
// machine in spec.md §4.8:
//
//	Initial -> Begin() -> Recording
//	Recording -> BeginRenderPass/BeginComputePass -> RecordingPass
//	RecordingPass -> EndPass -> Recording
//	Recording -> End() -> Executable
//	Executable -> Submit -> Pending
//	Pending -> (fence signals) -> Executable
//
// While Recording, a CommandBuffer accepts ResourceBarrier and copy
// commands directly; it does not accept draw or dispatch calls, which
// require the encoder returned by BeginRenderPass/BeginComputePass.
// Calling any method in the wrong state is a programmer error and
// panics — it is not surfaced as an *Error.
type CommandBuffer interface {
	Resource

	// State returns the buffer's current position in the state machine.
	State() CommandBufferState

	// Begin transitions Initial->Recording, or Executable->Recording
	// once a prior submission's fence has signalled. Panics outside
	// those two states.
	Begin() error

	// End transitions Recording->Executable. Panics if a pass is open.
	End() error

	// ResourceBarrier records buffer and texture transitions, honored
	// in record order. Valid only in Recording.
	ResourceBarrier(bufferBarriers []BufferBarrier, textureBarriers []TextureBarrier)

	// CopyBufferToBuffer records one or more buffer-to-buffer copies.
	CopyBufferToBuffer(src, dst Buffer, regions []BufferCopy)

	// CopyBufferToTexture records a copy from linear buffer memory into
	// a texture subresource.
	CopyBufferToTexture(src Buffer, dst Texture, regions []BufferTextureCopy)

	// CopyTextureToBuffer records a copy from a texture subresource into
	// linear buffer memory.
	CopyTextureToBuffer(src Texture, dst Buffer, regions []BufferTextureCopy)

	// CopyTextureToTexture records a texture-to-texture copy.
	CopyTextureToTexture(src, dst Texture, regions []TextureCopy)

	// BeginRenderPass transitions Recording->RecordingPass and returns
	// an encoder scoped to the pass.
	BeginRenderPass(desc *RenderPassDescriptor) GraphicsCommandEncoder

	// BeginComputePass transitions Recording->RecordingPass and returns
	// an encoder scoped to the pass.
	BeginComputePass(desc *ComputePassDescriptor) ComputeCommandEncoder
}

// BindingEncoder is the set of binding operations shared by the
// graphics and compute command encoders, mirroring how a BindBridge's
// Bind walks root-signature order (spec.md §4.7).
type BindingEncoder interface {
	// BindRootSignature selects the RootSignature subsequent bind calls
	// and the bound pipeline are interpreted against.
	BindRootSignature(sig RootSignature)

	// PushConstant writes data into the RootSignature's root-constant
	// block, if one was placed.
	PushConstant(data []byte)

	// BindRootDescriptor binds a single buffer range directly into a
	// root descriptor slot, skipping descriptor-set indirection.
	BindRootDescriptor(slot uint32, buffer Buffer, offset, size uint64)

	// BindDescriptorSet binds a realized DescriptorSet to a
	// RootSignature descriptor-set slot.
	BindDescriptorSet(slot uint32, set DescriptorSet)

	// BindBindlessArray binds an unbounded resource array directly,
	// bypassing the bind bridge's placement algorithm entirely (see the
	// bindless-array resolution in SPEC_FULL.md).
	BindBindlessArray(slot uint32, views []TextureView)
}

// GraphicsCommandEncoder records draw commands within one render pass
// (spec.md §4.8). It is only valid between BeginRenderPass and the
// matching EndPass; using it afterward panics.
type GraphicsCommandEncoder interface {
	BindingEncoder

	// EndPass closes the render pass, returning the CommandBuffer to
	// Recording.
	EndPass()

	SetViewport(vp Viewport)
	SetScissor(rect ScissorRect)

	BindVertexBuffer(slot uint32, views []VertexBufferView)
	BindIndexBuffer(view IndexBufferView)
	BindGraphicsPipelineState(pso GraphicsPipelineState)

	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)
}

// ComputeCommandEncoder records dispatch commands within one compute
// pass. It is only valid between BeginComputePass and the matching
// EndPass.
type ComputeCommandEncoder interface {
	BindingEncoder

	// EndPass closes the compute pass, returning the CommandBuffer to
	// Recording.
	EndPass()

	BindComputePipelineState(pso ComputePipelineState)
	SetThreadGroupSize(x, y, z uint32)
	Dispatch(x, y, z uint32)
}

// Viewport describes the graphics encoder's viewport transform.
type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

// ScissorRect describes the graphics encoder's scissor clip rectangle,
// in pixels.
type ScissorRect struct {
	X, Y, Width, Height uint32
}

// VertexBufferView names one bound vertex buffer slot.
type VertexBufferView struct {
	Buffer Buffer
	Offset uint64
	Size   uint64
	Stride uint64
}

// IndexBufferView names the bound index buffer.
type IndexBufferView struct {
	Buffer Buffer
	Offset uint64
	Size   uint64
	Format types.IndexFormat
}

// BufferCopy is one buffer-to-buffer copy region.
type BufferCopy struct {
	SrcOffset uint64
	DstOffset uint64
	Size      uint64
}

// BufferTextureCopy is one copy region between linear buffer memory and
// a texture subresource.
type BufferTextureCopy struct {
	BufferOffset       uint64
	BufferBytesPerRow  uint32
	BufferRowsPerImage uint32

	TextureMipLevel uint32
	TextureOrigin   types.Origin3D
	TextureAspect   types.TextureAspect

	Extent types.Extent3D
}

// TextureCopy is one texture-to-texture copy region.
type TextureCopy struct {
	SrcMipLevel uint32
	SrcOrigin   types.Origin3D
	DstMipLevel uint32
	DstOrigin   types.Origin3D
	Extent      types.Extent3D
}
