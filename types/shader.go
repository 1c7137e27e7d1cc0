package types

// ShaderStage identifies a single programmable pipeline stage.
type ShaderStage uint8

const (
	ShaderStageNone    ShaderStage = 0
	ShaderStageVertex  ShaderStage = 1 << 0
	ShaderStagePixel   ShaderStage = 1 << 1
	ShaderStageCompute ShaderStage = 1 << 2
)

// ShaderStages is a bitset of ShaderStage, used as a binding's stage
// visibility mask.
type ShaderStages = ShaderStage

const ShaderStagesAll = ShaderStageVertex | ShaderStagePixel | ShaderStageCompute

// ShaderCategory is the encoding of a compiled shader blob, per
// spec.md §3's Shader entity and §6.
type ShaderCategory uint8

const (
	ShaderCategoryDXIL ShaderCategory = iota
	ShaderCategorySPIRV
	ShaderCategoryMSL
)

// ShaderModuleDescriptor describes a Shader: an opaque compiled blob plus
// the stage and entry point the RHI needs to bind it, per spec.md §4.4.
// The RHI does not compile shaders; Blob is produced by an external
// front end (DXC, SPIRV-Cross) before this descriptor is built.
type ShaderModuleDescriptor struct {
	Label      string
	Category   ShaderCategory
	Stage      ShaderStage
	EntryPoint string
	Blob       []byte
}
