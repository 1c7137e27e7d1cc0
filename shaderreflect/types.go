package shaderreflect

import "github.com/ksgfk/radray-go/types"

// ScalarClass is the shape of a cbuffer member's type, as reported by
// reflection (spec.md §6's CBuffer side table).
type ScalarClass uint8

const (
	ScalarClassScalar ScalarClass = iota
	ScalarClassVector
	ScalarClassMatrix
	ScalarClassStruct
	ScalarClassArray
	ScalarClassObject
)

// ScalarBase is the base numeric type of a cbuffer member.
type ScalarBase uint8

const (
	ScalarBaseInt ScalarBase = iota
	ScalarBaseUInt
	ScalarBaseFloat
	ScalarBaseHalf
	ScalarBaseDouble
	ScalarBaseBool
)

// MemberType describes one cbuffer member's shape: a scalar, vector,
// matrix, struct, or array, per spec.md §6's type side table.
type MemberType struct {
	Class   ScalarClass
	Base    ScalarBase
	Rows    uint8
	Columns uint8
	Elements uint32
}

// CBufferMember is one field of a constant buffer.
type CBufferMember struct {
	Name      string
	Type      MemberType
	Offset    uint32
	ArraySize uint32
}

// CBuffer is one reflected constant buffer: its bind point, byte size,
// and member layout (spec.md §4.4, §6).
type CBuffer struct {
	Name      string
	BindPoint uint32
	Space     uint32
	Size      uint32
	Members   []CBufferMember

	// Stages is the set of pipeline stages that read this cbuffer.
	// MergeHlslShaderDesc fills it in from which per-stage descriptor the
	// cbuffer appeared in; a caller building a single-stage HlslShaderDesc
	// by hand may leave it unset, since Merge OR's in the owning stage's
	// bit regardless.
	Stages types.ShaderStages

	// RootConstantHint marks a cbuffer the shader author intends to be
	// bound as a push constant rather than through a descriptor — by
	// convention, DXC reflection surfaces this for a cbuffer declared
	// with the HLSL `[[vk::push_constant]]` attribute or a D3D12 root
	// constants register. bindbridge.ClassifyBindings only considers a
	// cbuffer for the root-constant slot when this is true.
	RootConstantHint bool
}

// DwordSize returns the cbuffer's size rounded up to whole 4-byte
// words, the unit bindbridge's 64-DWORD budget is denominated in.
func (c CBuffer) DwordSize() uint32 {
	return (c.Size + 3) / 4
}

// BoundResource is one non-cbuffer shader binding: a Buffer, RWBuffer,
// Texture, RWTexture, or Sampler (spec.md §6).
type BoundResource struct {
	Name      string
	Type      types.ResourceBindType
	BindPoint uint32
	Space     uint32

	// BindCount is the array size the shader declares for this binding;
	// 1 for a scalar resource. types.UnboundedBindCount marks a shader
	// declared unbounded array (HLSL `Texture2D arr[]`) — bindbridge
	// treats these as NotSupported per spec.md §9's bindless Open
	// Question.
	BindCount uint32

	Stages types.ShaderStages
}

// VertexInput is one vertex-shader input element, reported only for a
// Vertex-stage reflection record (spec.md §6).
type VertexInput struct {
	Semantic      string
	SemanticIndex uint32
	Register      uint32
	ComponentType ScalarBase
	Mask          uint8
}

// HlslShaderDesc is the reflection record a DXC-compiled HLSL shader
// blob carries, per spec.md §4.4. SpirvShaderDesc has the identical
// shape but is reflected from a SPIR-V blob instead — they are kept as
// distinct types so a caller cannot accidentally feed a SPIR-V
// reflection into a DXIL-only code path, or vice versa.
type HlslShaderDesc struct {
	Stage            types.ShaderStage
	CBuffers         []CBuffer
	Resources        []BoundResource
	VertexInputs     []VertexInput
	ComputeGroupSize [3]uint32
}

// SpirvShaderDesc is the SPIR-V analog of HlslShaderDesc.
type SpirvShaderDesc struct {
	Stage            types.ShaderStage
	CBuffers         []CBuffer
	Resources        []BoundResource
	VertexInputs     []VertexInput
	ComputeGroupSize [3]uint32
}
