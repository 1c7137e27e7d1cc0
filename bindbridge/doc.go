// Package bindbridge implements the root-signature/binding-layout
// bridge of spec.md §4.5 and the runtime binding table of §4.7.
//
// ClassifyBindings is the compile-time half: given a merged
// shaderreflect descriptor, it sorts every cbuffer and bound resource
// into one of three placements — a single root constant block, a
// handful of inline root descriptors, and descriptor-set ranges for
// everything else — under the 64-DWORD budget every backend shares
// (types.RootSignatureBudgetDwords), producing a hal.RootSignatureDescriptor
// a Device.CreateRootSignature call translates per-backend.
//
// Bridge is the runtime half: a per-draw/per-dispatch staging area that
// a caller names bindings into by name or bridge-assigned id, and which
// walks the classified layout in root-signature order to push constants,
// set root descriptors, and bind descriptor sets on a hal.BindingEncoder.
package bindbridge
