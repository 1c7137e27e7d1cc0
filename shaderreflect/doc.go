// Package shaderreflect holds the backend-neutral reflection records a
// shader compiler front end (DXC for HLSL->DXIL/SPIR-V, SPIRV-Cross for
// SPIR-V->MSL) produces alongside a compiled blob, per spec.md §4.4 and
// §6.
//
// The RHI never compiles or reflects shader bytecode itself — Device
// backends and package bindbridge only consume the records this package
// describes. MergeHlslShaderDesc is the one piece of actual logic here:
// it combines the same HLSL entry point's per-stage reflection (one
// HlslShaderDesc per VS/PS/CS DXIL blob) into a single record a
// GraphicsPipelineState or ComputePipelineState is built from.
package shaderreflect
