package noop

import (
	"fmt"

	"github.com/ksgfk/radray-go/hal"
)

// CommandBuffer is a noop command buffer. It enforces the state
// machine from hal.CommandBuffer so misuse panics the same way a real
// backend's validation layer would, even though no commands are
// actually recorded.
type CommandBuffer struct {
	base
	state hal.CommandBufferState
	queue *Queue

	encoder *encoder
}

func (c *CommandBuffer) State() hal.CommandBufferState { return c.state }

func (c *CommandBuffer) Begin() error {
	if c.state != hal.CommandBufferStateInitial && c.state != hal.CommandBufferStateExecutable {
		panic(fmt.Sprintf("noop: Begin called in state %v", c.state))
	}
	c.state = hal.CommandBufferStateRecording
	return nil
}

func (c *CommandBuffer) End() error {
	c.requireState(hal.CommandBufferStateRecording, "End")
	c.state = hal.CommandBufferStateExecutable
	return nil
}

func (c *CommandBuffer) requireState(want hal.CommandBufferState, op string) {
	if c.state != want {
		panic(fmt.Sprintf("noop: %s called in state %v, want %v", op, c.state, want))
	}
}

func (c *CommandBuffer) ResourceBarrier(_ []hal.BufferBarrier, _ []hal.TextureBarrier) {
	c.requireState(hal.CommandBufferStateRecording, "ResourceBarrier")
}

func (c *CommandBuffer) CopyBufferToBuffer(_, _ hal.Buffer, _ []hal.BufferCopy) {
	c.requireState(hal.CommandBufferStateRecording, "CopyBufferToBuffer")
}

func (c *CommandBuffer) CopyBufferToTexture(_ hal.Buffer, _ hal.Texture, _ []hal.BufferTextureCopy) {
	c.requireState(hal.CommandBufferStateRecording, "CopyBufferToTexture")
}

func (c *CommandBuffer) CopyTextureToBuffer(_ hal.Texture, _ hal.Buffer, _ []hal.BufferTextureCopy) {
	c.requireState(hal.CommandBufferStateRecording, "CopyTextureToBuffer")
}

func (c *CommandBuffer) CopyTextureToTexture(_, _ hal.Texture, _ []hal.TextureCopy) {
	c.requireState(hal.CommandBufferStateRecording, "CopyTextureToTexture")
}

func (c *CommandBuffer) BeginRenderPass(_ *hal.RenderPassDescriptor) hal.GraphicsCommandEncoder {
	c.requireState(hal.CommandBufferStateRecording, "BeginRenderPass")
	c.state = hal.CommandBufferStateRecordingPass
	c.encoder = &encoder{cmd: c}
	return c.encoder
}

func (c *CommandBuffer) BeginComputePass(_ *hal.ComputePassDescriptor) hal.ComputeCommandEncoder {
	c.requireState(hal.CommandBufferStateRecording, "BeginComputePass")
	c.state = hal.CommandBufferStateRecordingPass
	c.encoder = &encoder{cmd: c}
	return c.encoder
}

// encoder implements both hal.GraphicsCommandEncoder and
// hal.ComputeCommandEncoder; the noop backend records nothing, so one
// type can satisfy both shapes.
type encoder struct {
	cmd *CommandBuffer
	ended bool
}

func (e *encoder) requireOpen(op string) {
	if e.ended {
		panic(fmt.Sprintf("noop: %s called after EndPass", op))
	}
}

func (e *encoder) EndPass() {
	e.requireOpen("EndPass")
	e.ended = true
	e.cmd.state = hal.CommandBufferStateRecording
}

func (e *encoder) BindRootSignature(_ hal.RootSignature)                  { e.requireOpen("BindRootSignature") }
func (e *encoder) PushConstant(_ []byte)                                  { e.requireOpen("PushConstant") }
func (e *encoder) BindRootDescriptor(_ uint32, _ hal.Buffer, _, _ uint64) { e.requireOpen("BindRootDescriptor") }
func (e *encoder) BindDescriptorSet(_ uint32, _ hal.DescriptorSet)        { e.requireOpen("BindDescriptorSet") }
func (e *encoder) BindBindlessArray(_ uint32, _ []hal.TextureView)        { e.requireOpen("BindBindlessArray") }

func (e *encoder) SetViewport(_ hal.Viewport)       { e.requireOpen("SetViewport") }
func (e *encoder) SetScissor(_ hal.ScissorRect)     { e.requireOpen("SetScissor") }
func (e *encoder) BindVertexBuffer(_ uint32, _ []hal.VertexBufferView) {
	e.requireOpen("BindVertexBuffer")
}
func (e *encoder) BindIndexBuffer(_ hal.IndexBufferView)               { e.requireOpen("BindIndexBuffer") }
func (e *encoder) BindGraphicsPipelineState(_ hal.GraphicsPipelineState) {
	e.requireOpen("BindGraphicsPipelineState")
}
func (e *encoder) Draw(_, _, _, _ uint32) { e.requireOpen("Draw") }
func (e *encoder) DrawIndexed(_, _, _ uint32, _ int32, _ uint32) {
	e.requireOpen("DrawIndexed")
}

func (e *encoder) BindComputePipelineState(_ hal.ComputePipelineState) {
	e.requireOpen("BindComputePipelineState")
}
func (e *encoder) SetThreadGroupSize(_, _, _ uint32) { e.requireOpen("SetThreadGroupSize") }
func (e *encoder) Dispatch(_, _, _ uint32)           { e.requireOpen("Dispatch") }
