package types

// AddressMode describes how out-of-range texture coordinates are
// resolved, per spec.md §3's Sampler entity ({ClampEdge, Repeat, Mirror}).
type AddressMode uint8

const (
	AddressModeClampEdge AddressMode = iota
	AddressModeRepeat
	AddressModeMirror
)

// FilterMode describes min/mag/mip filtering ({Nearest, Linear}).
type FilterMode uint8

const (
	FilterModeNearest FilterMode = iota
	FilterModeLinear
)

// CompareFunction is a comparison used by depth tests and compare
// samplers.
type CompareFunction uint8

const (
	CompareFunctionUndefined CompareFunction = iota
	CompareFunctionNever
	CompareFunctionLess
	CompareFunctionEqual
	CompareFunctionLessEqual
	CompareFunctionGreater
	CompareFunctionNotEqual
	CompareFunctionGreaterEqual
	CompareFunctionAlways
)

// SamplerDescriptor describes a Sampler. Samplers are value-typed; a
// backend may intern identical descriptors rather than allocating a new
// native object per call.
type SamplerDescriptor struct {
	Label         string
	AddressS      AddressMode
	AddressT      AddressMode
	AddressR      AddressMode
	MagFilter     FilterMode
	MinFilter     FilterMode
	MipFilter     FilterMode
	LodMinClamp   float32
	LodMaxClamp   float32
	Compare       CompareFunction
	MaxAnisotropy uint16
}

// DefaultSamplerDescriptor returns a bilinear-filtering, edge-clamped
// sampler with no depth comparison.
func DefaultSamplerDescriptor() SamplerDescriptor {
	return SamplerDescriptor{
		AddressS:      AddressModeClampEdge,
		AddressT:      AddressModeClampEdge,
		AddressR:      AddressModeClampEdge,
		MagFilter:     FilterModeLinear,
		MinFilter:     FilterModeLinear,
		MipFilter:     FilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		Compare:       CompareFunctionUndefined,
		MaxAnisotropy: 1,
	}
}
