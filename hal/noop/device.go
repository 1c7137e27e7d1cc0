package noop

import (
	"fmt"

	"github.com/ksgfk/radray-go/hal"
	"github.com/ksgfk/radray-go/types"
)

// Device is a noop logical device: a bookkeeping struct that hands out
// bookkeeping resources, enough to drive hal's state machines and
// bind-bridge logic without a native driver underneath.
type Device struct {
	base
	label  string
	detail types.DeviceDetail
	queues map[types.QueueType][]*Queue
}

func (d *Device) Detail() types.DeviceDetail { return d.detail }

func (d *Device) Queue(qtype types.QueueType, index uint32) hal.Queue {
	list := d.queues[qtype]
	if int(index) >= len(list) {
		return nil
	}
	return list[index]
}

func (d *Device) CreateBuffer(desc *types.BufferDescriptor) (hal.Buffer, error) {
	if desc.Size == 0 {
		return nil, hal.NewError(hal.InvalidArgument, "CreateBuffer", fmt.Errorf("size must be non-zero"))
	}
	return &Buffer{base: base{valid: true}, size: desc.Size}, nil
}

func (d *Device) CreateTexture(desc *types.TextureDescriptor) (hal.Texture, error) {
	if desc.Extent.Width == 0 || desc.Extent.Height == 0 {
		return nil, hal.NewError(hal.InvalidArgument, "CreateTexture", fmt.Errorf("extent must be non-zero"))
	}
	return &Texture{base: base{valid: true}, format: desc.Format, extent: desc.Extent}, nil
}

func (d *Device) CreateTextureView(_ hal.Texture, _ *types.TextureViewDescriptor) (hal.TextureView, error) {
	return &TextureView{base: base{valid: true}}, nil
}

func (d *Device) CreateSampler(_ *types.SamplerDescriptor) (hal.Sampler, error) {
	return &Sampler{base: base{valid: true}}, nil
}

func (d *Device) CreateShaderModule(desc *types.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if len(desc.Blob) == 0 {
		return nil, hal.NewError(hal.InvalidArgument, "CreateShaderModule", fmt.Errorf("blob must be non-empty"))
	}
	return &ShaderModule{base: base{valid: true}, stage: desc.Stage}, nil
}

func (d *Device) CreateRootSignature(desc *hal.RootSignatureDescriptor) (hal.RootSignature, error) {
	if desc.CostDwords() > types.RootSignatureBudgetDwords {
		return nil, hal.NewError(hal.InvalidOperation, "CreateRootSignature",
			fmt.Errorf("cost %d dwords exceeds budget %d", desc.CostDwords(), types.RootSignatureBudgetDwords))
	}
	return &RootSignature{base: base{valid: true}}, nil
}

func (d *Device) CreateGraphicsPipelineState(_ *hal.GraphicsPipelineStateDescriptor) (hal.GraphicsPipelineState, error) {
	return &GraphicsPipelineState{base: base{valid: true}}, nil
}

func (d *Device) CreateComputePipelineState(_ *hal.ComputePipelineStateDescriptor) (hal.ComputePipelineState, error) {
	return &ComputePipelineState{base: base{valid: true}}, nil
}

func (d *Device) CreateDescriptorSet(_ hal.RootSignature, _ uint32) (hal.DescriptorSet, error) {
	return &DescriptorSet{base: base{valid: true}}, nil
}

func (d *Device) CreateCommandBuffer(queue hal.Queue, _ *hal.CommandBufferDescriptor) (hal.CommandBuffer, error) {
	q, _ := queue.(*Queue)
	return &CommandBuffer{base: base{valid: true}, state: hal.CommandBufferStateInitial, queue: q}, nil
}

func (d *Device) CreateFence(_ *hal.FenceDescriptor) (hal.Fence, error) {
	return &Fence{base: base{valid: true}}, nil
}

func (d *Device) CreateSemaphore(_ *hal.SemaphoreDescriptor) (hal.Semaphore, error) {
	return &Semaphore{base: base{valid: true}}, nil
}

func (d *Device) CreateSwapChain(desc *hal.SwapChainDescriptor) (hal.SwapChain, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, hal.NewError(hal.InvalidArgument, "CreateSwapChain", fmt.Errorf("width and height must be non-zero"))
	}
	count := desc.BackBufferCount
	if count < 2 {
		count = 2
	}
	sc := &SwapChain{
		base:         base{valid: true},
		backBuffers:  make([]*Texture, count),
		currentIndex: -1,
	}
	for i := range sc.backBuffers {
		sc.backBuffers[i] = &Texture{
			base:   base{valid: true},
			format: desc.Format,
			extent: types.Extent3D{Width: desc.Width, Height: desc.Height, DepthOrArrayLayers: 1},
		}
	}
	return sc, nil
}

func (d *Device) WaitFences(fences []hal.Fence, _ []uint64, _ uint64) error {
	for _, f := range fences {
		if nf, ok := f.(*Fence); ok {
			nf.complete = true
		}
	}
	return nil
}
