package types

// RootSignatureBudgetDwords is the maximum
// `rootConstDwords + 2*rootDescriptorCount + descriptorSetCount` a
// RootSignature may cost, per spec.md §4.5. It is identical across
// backends: D3D12's root signature is hard-limited to 64 DWORDs of root
// arguments, and this RHI applies the same ceiling uniformly so a bind
// layout behaves identically regardless of backend.
const RootSignatureBudgetDwords uint32 = 64

// Limits describes a Device's resource limits, queried after Open and
// used by callers to size pipelines and descriptor layouts conservatively.
type Limits struct {
	MaxTextureDimension1D   uint32
	MaxTextureDimension2D   uint32
	MaxTextureDimension3D   uint32
	MaxTextureArrayLayers   uint32
	MaxDescriptorSets       uint32
	MaxBindingsPerSet       uint32
	MaxSampledTextures      uint32
	MaxSamplers             uint32
	MaxStorageBuffers       uint32
	MaxStorageTextures      uint32
	MaxCBuffers             uint32
	MaxCBufferBindingSize   uint64
	MaxStorageBufferSize    uint64
	MinCBufferOffsetAlign   uint32
	MinStorageBufferAlign   uint32
	MaxVertexBuffers        uint32
	MaxVertexAttributes     uint32
	MaxColorAttachments     uint32
	MaxComputeWorkgroupSize [3]uint32
	MaxComputeInvocations   uint32
	MaxBufferSize           uint64
}

// DefaultLimits returns a conservative limit set compatible with the
// minimum feature levels named in spec.md §4.1 (D3D12 FL11.0, Vulkan
// 1.1+VK_KHR_swapchain, Metal3).
func DefaultLimits() Limits {
	return Limits{
		MaxTextureDimension1D:   8192,
		MaxTextureDimension2D:   8192,
		MaxTextureDimension3D:   2048,
		MaxTextureArrayLayers:   256,
		MaxDescriptorSets:       4,
		MaxBindingsPerSet:       64,
		MaxSampledTextures:      16,
		MaxSamplers:             16,
		MaxStorageBuffers:       8,
		MaxStorageTextures:      4,
		MaxCBuffers:             14,
		MaxCBufferBindingSize:   65536,
		MaxStorageBufferSize:    128 << 20,
		MinCBufferOffsetAlign:   256,
		MinStorageBufferAlign:   256,
		MaxVertexBuffers:        16,
		MaxVertexAttributes:     16,
		MaxColorAttachments:     8,
		MaxComputeWorkgroupSize: [3]uint32{1024, 1024, 64},
		MaxComputeInvocations:   1024,
		MaxBufferSize:           256 << 20,
	}
}
