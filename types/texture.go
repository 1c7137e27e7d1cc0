package types

// PixelFormat is the closed set of texture formats this RHI supports
// (spec.md §6). Backends reject any format not in this set at creation
// time with NotSupported.
type PixelFormat uint32

const (
	PixelFormatUndefined PixelFormat = iota

	// 8-bit per component
	PixelFormatR8Sint
	PixelFormatR8Uint
	PixelFormatR8Snorm
	PixelFormatR8Unorm

	PixelFormatRG8Sint
	PixelFormatRG8Uint
	PixelFormatRG8Snorm
	PixelFormatRG8Unorm

	PixelFormatRGBA8Sint
	PixelFormatRGBA8Uint
	PixelFormatRGBA8Snorm
	PixelFormatRGBA8Unorm
	PixelFormatRGBA8UnormSrgb
	PixelFormatBGRA8Unorm
	PixelFormatBGRA8UnormSrgb

	// 16-bit per component
	PixelFormatR16Sint
	PixelFormatR16Uint
	PixelFormatR16Snorm
	PixelFormatR16Unorm
	PixelFormatR16Float

	PixelFormatRG16Sint
	PixelFormatRG16Uint
	PixelFormatRG16Snorm
	PixelFormatRG16Unorm
	PixelFormatRG16Float

	PixelFormatRGBA16Sint
	PixelFormatRGBA16Uint
	PixelFormatRGBA16Snorm
	PixelFormatRGBA16Unorm
	PixelFormatRGBA16Float

	// 32-bit per component
	PixelFormatR32Sint
	PixelFormatR32Uint
	PixelFormatR32Float

	PixelFormatRG32Sint
	PixelFormatRG32Uint
	PixelFormatRG32Float

	PixelFormatRGBA32Sint
	PixelFormatRGBA32Uint
	PixelFormatRGBA32Float

	// packed
	PixelFormatRGB10A2Uint
	PixelFormatRGB10A2Unorm
	PixelFormatRG11B10Float

	// depth/stencil
	PixelFormatS8
	PixelFormatD16Unorm
	PixelFormatD32Float
	PixelFormatD24UnormS8Uint
	PixelFormatD32FloatS8Uint
)

// IsDepthStencilFormat reports whether f carries a depth and/or stencil
// aspect, per spec.md §4.3.
func IsDepthStencilFormat(f PixelFormat) bool {
	switch f {
	case PixelFormatS8, PixelFormatD16Unorm, PixelFormatD32Float,
		PixelFormatD24UnormS8Uint, PixelFormatD32FloatS8Uint:
		return true
	default:
		return false
	}
}

// TextureDimension is the base shape of a texture resource.
type TextureDimension uint8

const (
	TextureDimension1D TextureDimension = iota
	TextureDimension2D
	TextureDimension3D
)

// ViewDimension is the shape a TextureView presents its target texture
// through, per spec.md §4.3 (1D, 2D, 3D, 1DArray, 2DArray, Cube, CubeArray).
type ViewDimension uint8

const (
	ViewDimension1D ViewDimension = iota
	ViewDimension2D
	ViewDimension2DArray
	ViewDimension3D
	ViewDimensionCube
	ViewDimensionCubeArray
	ViewDimension1DArray
)

// TextureAspect selects which planes of a texture a view or barrier
// addresses.
type TextureAspect uint8

const (
	TextureAspectAll TextureAspect = iota
	TextureAspectDepthOnly
	TextureAspectStencilOnly
)

// TextureUse is one bit of the allowed-uses set an Texture is created
// with; see spec.md §3's Texture entity.
type TextureUse uint32

const (
	TextureUseCopySrc TextureUse = 1 << iota
	TextureUseCopyDst
	TextureUseResource
	TextureUseRenderTarget
	TextureUseDepthRead
	TextureUseDepthWrite
	TextureUseStorageRO
	TextureUseStorageRW
)

// MipCountAll and LayerCountAll are the SubresourceRange sentinels
// meaning "the rest of the chain", per spec.md §4.3.
const (
	MipCountAll   uint32 = 0xFFFFFFFF
	LayerCountAll uint32 = 0xFFFFFFFF
)

// Extent3D is a 3D size in texels.
type Extent3D struct {
	Width              uint32
	Height             uint32
	DepthOrArrayLayers uint32
}

// Origin3D is a 3D texel offset.
type Origin3D struct {
	X, Y, Z uint32
}

// SubresourceRange names a contiguous (mip, array layer) block of a
// texture. BaseMip/BaseLayer are first-index; MipCount/LayerCount may be
// MipCountAll/LayerCountAll to mean "through the end".
type SubresourceRange struct {
	Aspect     TextureAspect
	BaseMip    uint32
	MipCount   uint32
	BaseLayer  uint32
	LayerCount uint32
}

// ClearValue is the value a render target or depth-stencil attachment is
// cleared to; exactly one of the two fields is meaningful depending on
// whether the attachment format is a color or depth/stencil format.
type ClearValue struct {
	Color        [4]float32
	Depth        float32
	Stencil      uint32
}

// TextureDescriptor describes a Texture to create on a Device.
type TextureDescriptor struct {
	Label         string
	Dimension     TextureDimension
	Extent        Extent3D
	ArrayLayers   uint32
	MipLevels     uint32
	SampleCount   uint32
	Format        PixelFormat
	Usage         TextureUse
	InitialClear  *ClearValue
}

// TextureViewDescriptor describes a view into a Texture.
type TextureViewDescriptor struct {
	Label     string
	Dimension ViewDimension
	Format    PixelFormat
	Range     SubresourceRange
	Usage     TextureUse
}
