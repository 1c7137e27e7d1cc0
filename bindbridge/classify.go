package bindbridge

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/ksgfk/radray-go/hal"
	"github.com/ksgfk/radray-go/shaderreflect"
	"github.com/ksgfk/radray-go/types"
)

// PlacementKind is where ClassifyBindings put one named binding.
type PlacementKind uint8

const (
	PlacementPushConstant PlacementKind = iota
	PlacementRootDescriptor
	PlacementDescriptorSet
)

// BindingPlacement records where one shader-declared name landed after
// classification, so a Bridge built over the resulting Layout can route
// SetResource/GetCBuffer calls by name without re-running the
// classification algorithm.
type BindingPlacement struct {
	Name     string
	Type     types.ResourceBindType
	ByteSize uint32 // cbuffer size in bytes; 0 for non-cbuffer bindings
	Stages   types.ShaderStages

	Kind PlacementKind

	// RootSlot indexes Layout.Descriptor.RootDescriptors. Only valid
	// when Kind == PlacementRootDescriptor.
	RootSlot uint32

	// SetIndex/ElemIndex index Layout.Descriptor.DescriptorSets and its
	// Elements. ArrayIndex is this name's offset within a merged,
	// Count>1 element. Only valid when Kind == PlacementDescriptorSet.
	SetIndex   uint32
	ElemIndex  uint32
	ArrayIndex uint32
}

// Layout is ClassifyBindings' full output. Descriptor is the
// backend-neutral root signature a Device.CreateRootSignature call
// translates; Bindings is the per-name placement map NewBridge uses to
// build a runtime binding table over it.
type Layout struct {
	Descriptor *hal.RootSignatureDescriptor
	Bindings   []BindingPlacement
}

// candidate unifies a shaderreflect.CBuffer and shaderreflect.BoundResource
// under one shape so the placement algorithm can sort and demote them
// together.
type candidate struct {
	name          string
	typ           types.ResourceBindType
	space         uint32
	slot          uint32
	count         uint32
	stages        types.ShaderStages
	dwordSize     uint32
	byteSize      uint32
	rootConstHint bool
}

func (c candidate) stageScore() int { return bits.OnesCount8(uint8(c.stages)) }

// rootDescriptorLess orders root-descriptor candidates most-useful
// first: lower ResourceBindType.Priority (cbuffers before raw buffers),
// then higher stage usage, then lower space, lower slot and name for
// determinism.
func rootDescriptorLess(a, b candidate) bool {
	if a.typ.Priority() != b.typ.Priority() {
		return a.typ.Priority() < b.typ.Priority()
	}
	if a.stageScore() != b.stageScore() {
		return a.stageScore() > b.stageScore()
	}
	if a.space != b.space {
		return a.space < b.space
	}
	if a.slot != b.slot {
		return a.slot < b.slot
	}
	return a.name < b.name
}

func costDwords(rootConst *candidate, rootDescriptorCount, descriptorSetCount int) uint32 {
	var cost uint32
	if rootConst != nil {
		cost += rootConst.dwordSize
	}
	cost += 2 * uint32(rootDescriptorCount)
	cost += uint32(descriptorSetCount)
	return cost
}

func countSets(cands []candidate) int {
	seen := make(map[uint32]struct{})
	for _, c := range cands {
		seen[c.space] = struct{}{}
	}
	return len(seen)
}

// ClassifyBindings implements the root-signature placement algorithm of
// spec.md §4.5: a merged shader reflection record's cbuffers and bound
// resources are sorted into a single root constant, as many root
// descriptors as the shared 64-DWORD budget
// (types.RootSignatureBudgetDwords) allows, and descriptor-set ranges
// for everything else. Demotion on overflow proceeds root descriptors
// first, from the least useful end of the priority ordering, then the
// root constant itself; ClassifyBindings fails only if demotion alone
// cannot bring the layout under budget.
func ClassifyBindings(merged *shaderreflect.HlslShaderDesc, label string) (*Layout, error) {
	if merged == nil {
		return nil, fmt.Errorf("bindbridge: ClassifyBindings requires a non-nil merged descriptor")
	}

	var candidates []candidate
	for _, cb := range merged.CBuffers {
		candidates = append(candidates, candidate{
			name:          cb.Name,
			typ:           types.ResourceBindTypeCBuffer,
			space:         cb.Space,
			slot:          cb.BindPoint,
			count:         1,
			stages:        cb.Stages,
			dwordSize:     cb.DwordSize(),
			byteSize:      cb.Size,
			rootConstHint: cb.RootConstantHint,
		})
	}
	for _, res := range merged.Resources {
		if res.BindCount == types.UnboundedBindCount {
			return nil, hal.NewError(hal.NotSupported, "bindbridge.ClassifyBindings",
				fmt.Errorf("binding %q declares an unbounded array; use BindingEncoder.BindBindlessArray instead of a classified binding", res.Name))
		}
		candidates = append(candidates, candidate{
			name:   res.Name,
			typ:    res.Type,
			space:  res.Space,
			slot:   res.BindPoint,
			count:  res.BindCount,
			stages: res.Stages,
		})
	}

	// 1. Root constant: at most one RootConstantHint cbuffer that fits
	// the budget on its own. Ties broken by smallest size, then name.
	var rootConstCands []candidate
	var rest []candidate
	for _, c := range candidates {
		if c.typ == types.ResourceBindTypeCBuffer && c.rootConstHint && c.dwordSize <= types.RootSignatureBudgetDwords {
			rootConstCands = append(rootConstCands, c)
		} else {
			rest = append(rest, c)
		}
	}
	sort.Slice(rootConstCands, func(i, j int) bool {
		if rootConstCands[i].dwordSize != rootConstCands[j].dwordSize {
			return rootConstCands[i].dwordSize < rootConstCands[j].dwordSize
		}
		return rootConstCands[i].name < rootConstCands[j].name
	})
	var rootConst *candidate
	if len(rootConstCands) > 0 {
		chosen := rootConstCands[0]
		rootConst = &chosen
		rest = append(rest, rootConstCands[1:]...)
	}

	// 2. Root descriptor candidates: single-resource CBuffer/Buffer/RWBuffer.
	var rootDescCands, setCands []candidate
	for _, c := range rest {
		if c.count == 1 && (c.typ == types.ResourceBindTypeCBuffer || c.typ == types.ResourceBindTypeBuffer || c.typ == types.ResourceBindTypeRWBuffer) {
			rootDescCands = append(rootDescCands, c)
		} else {
			setCands = append(setCands, c)
		}
	}
	sort.Slice(rootDescCands, func(i, j int) bool { return rootDescriptorLess(rootDescCands[i], rootDescCands[j]) })

	// 3. Budget enforcement: demote the least useful root descriptor
	// into its space's descriptor set until the layout fits or none
	// remain, then demote the root constant, then fail.
	for len(rootDescCands) > 0 && costDwords(rootConst, len(rootDescCands), countSets(setCands)) > types.RootSignatureBudgetDwords {
		last := rootDescCands[len(rootDescCands)-1]
		rootDescCands = rootDescCands[:len(rootDescCands)-1]
		setCands = append(setCands, last)
	}
	if rootConst != nil && costDwords(rootConst, len(rootDescCands), countSets(setCands)) > types.RootSignatureBudgetDwords {
		setCands = append(setCands, *rootConst)
		rootConst = nil
	}
	if cost := costDwords(rootConst, len(rootDescCands), countSets(setCands)); cost > types.RootSignatureBudgetDwords {
		return nil, hal.NewError(hal.InvalidOperation, "bindbridge.ClassifyBindings",
			fmt.Errorf("binding layout costs %d dwords after demotion, budget is %d", cost, types.RootSignatureBudgetDwords))
	}

	desc := &hal.RootSignatureDescriptor{Label: label}
	var placements []BindingPlacement

	if rootConst != nil {
		desc.RootConst = &hal.RootConstEntry{Name: rootConst.name, DwordSize: rootConst.dwordSize, Stages: rootConst.stages}
		placements = append(placements, BindingPlacement{
			Name: rootConst.name, Type: types.ResourceBindTypeCBuffer, ByteSize: rootConst.byteSize,
			Stages: rootConst.stages, Kind: PlacementPushConstant,
		})
	}

	for i, c := range rootDescCands {
		desc.RootDescriptors = append(desc.RootDescriptors, hal.RootDescriptorEntry{
			Name: c.name, Type: c.typ, Space: c.space, Slot: c.slot, Stages: c.stages,
		})
		placements = append(placements, BindingPlacement{
			Name: c.name, Type: c.typ, ByteSize: c.byteSize, Stages: c.stages,
			Kind: PlacementRootDescriptor, RootSlot: uint32(i),
		})
	}

	sets, setPlacements := buildDescriptorSets(setCands)
	desc.DescriptorSets = sets
	placements = append(placements, setPlacements...)

	return &Layout{Descriptor: desc, Bindings: placements}, nil
}

// buildDescriptorSets groups candidates into one descriptor set per
// distinct space, sorts each space's bindings by (type priority, slot),
// and merges adjacent same-type contiguous-slot runs into a single
// DescriptorSetElement — except CBuffers, which are never merged, since
// each constant buffer is independently sized CPU-side storage rather
// than an indexable resource array.
func buildDescriptorSets(cands []candidate) ([]hal.DescriptorSetLayout, []BindingPlacement) {
	if len(cands) == 0 {
		return nil, nil
	}

	bySpace := make(map[uint32][]candidate)
	var spaces []uint32
	for _, c := range cands {
		if _, ok := bySpace[c.space]; !ok {
			spaces = append(spaces, c.space)
		}
		bySpace[c.space] = append(bySpace[c.space], c)
	}
	sort.Slice(spaces, func(i, j int) bool { return spaces[i] < spaces[j] })

	var sets []hal.DescriptorSetLayout
	var placements []BindingPlacement
	for si, space := range spaces {
		group := bySpace[space]
		sort.Slice(group, func(i, j int) bool {
			if group[i].typ.Priority() != group[j].typ.Priority() {
				return group[i].typ.Priority() < group[j].typ.Priority()
			}
			return group[i].slot < group[j].slot
		})

		var elems []hal.DescriptorSetElement
		for _, c := range group {
			if n := len(elems); n > 0 && c.typ != types.ResourceBindTypeCBuffer {
				last := &elems[n-1]
				if last.Type == c.typ && last.BaseSlot+last.Count == c.slot {
					arrayIdx := last.Count
					last.Count += c.count
					last.Stages |= c.stages
					placements = append(placements, BindingPlacement{
						Name: c.name, Type: c.typ, ByteSize: c.byteSize, Stages: c.stages,
						Kind: PlacementDescriptorSet, SetIndex: uint32(si), ElemIndex: uint32(n - 1), ArrayIndex: arrayIdx,
					})
					continue
				}
			}
			elemIndex := len(elems)
			elems = append(elems, hal.DescriptorSetElement{Type: c.typ, Space: space, BaseSlot: c.slot, Count: c.count, Stages: c.stages})
			placements = append(placements, BindingPlacement{
				Name: c.name, Type: c.typ, ByteSize: c.byteSize, Stages: c.stages,
				Kind: PlacementDescriptorSet, SetIndex: uint32(si), ElemIndex: uint32(elemIndex), ArrayIndex: 0,
			})
		}
		sets = append(sets, hal.DescriptorSetLayout{Elements: elems})
	}
	return sets, placements
}
