package bindbridge_test

import (
	"testing"

	"github.com/ksgfk/radray-go/bindbridge"
	"github.com/ksgfk/radray-go/hal"
	"github.com/ksgfk/radray-go/shaderreflect"
	"github.com/ksgfk/radray-go/types"
)

func names(placements []bindbridge.BindingPlacement) map[string]bindbridge.BindingPlacement {
	m := make(map[string]bindbridge.BindingPlacement, len(placements))
	for _, p := range placements {
		m[p.Name] = p
	}
	return m
}

func TestClassifyPlacesRootConstantHintedCBuffer(t *testing.T) {
	merged := &shaderreflect.HlslShaderDesc{
		Stage: types.ShaderStageVertex,
		CBuffers: []shaderreflect.CBuffer{
			{Name: "PushConsts", Space: 0, BindPoint: 0, Size: 16, RootConstantHint: true, Stages: types.ShaderStageVertex},
		},
	}

	layout, err := bindbridge.ClassifyBindings(merged, "test")
	if err != nil {
		t.Fatalf("ClassifyBindings failed: %v", err)
	}
	if layout.Descriptor.RootConst == nil {
		t.Fatal("expected a root constant to be placed")
	}
	if layout.Descriptor.RootConst.Name != "PushConsts" {
		t.Errorf("RootConst.Name = %q, want PushConsts", layout.Descriptor.RootConst.Name)
	}
	if layout.Descriptor.RootConst.DwordSize != 4 {
		t.Errorf("RootConst.DwordSize = %d, want 4", layout.Descriptor.RootConst.DwordSize)
	}

	p, ok := names(layout.Bindings)["PushConsts"]
	if !ok {
		t.Fatal("missing placement for PushConsts")
	}
	if p.Kind != bindbridge.PlacementPushConstant {
		t.Errorf("Kind = %v, want PlacementPushConstant", p.Kind)
	}
}

func TestClassifySingleCBufferBecomesRootDescriptor(t *testing.T) {
	merged := &shaderreflect.HlslShaderDesc{
		Stage: types.ShaderStageVertex,
		CBuffers: []shaderreflect.CBuffer{
			{Name: "Scene", Space: 0, BindPoint: 0, Size: 256, Stages: types.ShaderStageVertex},
		},
	}

	layout, err := bindbridge.ClassifyBindings(merged, "test")
	if err != nil {
		t.Fatalf("ClassifyBindings failed: %v", err)
	}
	if layout.Descriptor.RootConst != nil {
		t.Fatal("expected no root constant without RootConstantHint")
	}
	if len(layout.Descriptor.RootDescriptors) != 1 {
		t.Fatalf("len(RootDescriptors) = %d, want 1", len(layout.Descriptor.RootDescriptors))
	}
	if layout.Descriptor.RootDescriptors[0].Name != "Scene" {
		t.Errorf("RootDescriptors[0].Name = %q, want Scene", layout.Descriptor.RootDescriptors[0].Name)
	}
}

func TestClassifyMergesContiguousTextures(t *testing.T) {
	merged := &shaderreflect.HlslShaderDesc{
		Stage: types.ShaderStagePixel,
		Resources: []shaderreflect.BoundResource{
			{Name: "g_Tex0", Type: types.ResourceBindTypeTexture, Space: 0, BindPoint: 0, BindCount: 1, Stages: types.ShaderStagePixel},
			{Name: "g_Tex1", Type: types.ResourceBindTypeTexture, Space: 0, BindPoint: 1, BindCount: 1, Stages: types.ShaderStagePixel},
			{Name: "g_Samp", Type: types.ResourceBindTypeSampler, Space: 0, BindPoint: 0, BindCount: 1, Stages: types.ShaderStagePixel},
		},
	}

	layout, err := bindbridge.ClassifyBindings(merged, "test")
	if err != nil {
		t.Fatalf("ClassifyBindings failed: %v", err)
	}
	if len(layout.Descriptor.DescriptorSets) != 1 {
		t.Fatalf("len(DescriptorSets) = %d, want 1", len(layout.Descriptor.DescriptorSets))
	}
	elems := layout.Descriptor.DescriptorSets[0].Elements
	if len(elems) != 2 {
		t.Fatalf("len(Elements) = %d, want 2 (merged textures + separate sampler)", len(elems))
	}
	if elems[0].Type != types.ResourceBindTypeTexture || elems[0].Count != 2 {
		t.Errorf("Elements[0] = %+v, want a merged Texture range of Count 2", elems[0])
	}

	byName := names(layout.Bindings)
	if byName["g_Tex0"].ArrayIndex != 0 || byName["g_Tex1"].ArrayIndex != 1 {
		t.Errorf("expected g_Tex0/g_Tex1 at array indices 0/1, got %d/%d",
			byName["g_Tex0"].ArrayIndex, byName["g_Tex1"].ArrayIndex)
	}
	if byName["g_Tex0"].ElemIndex != byName["g_Tex1"].ElemIndex {
		t.Error("expected g_Tex0 and g_Tex1 to share one merged element")
	}
}

func TestClassifyDoesNotMergeNonContiguousSlots(t *testing.T) {
	merged := &shaderreflect.HlslShaderDesc{
		Stage: types.ShaderStagePixel,
		Resources: []shaderreflect.BoundResource{
			// Two same-type textures with a gap at slot 1.
			{Name: "g_Tex", Type: types.ResourceBindTypeTexture, Space: 0, BindPoint: 0, BindCount: 1},
			{Name: "g_Tex2", Type: types.ResourceBindTypeTexture, Space: 0, BindPoint: 2, BindCount: 1},
		},
	}

	layout, err := bindbridge.ClassifyBindings(merged, "test")
	if err != nil {
		t.Fatalf("ClassifyBindings failed: %v", err)
	}
	// Non-contiguous slots (0 and 2, with a gap at 1) must not merge
	// even though both are Textures in the same space.
	elems := layout.Descriptor.DescriptorSets[0].Elements
	if len(elems) != 2 {
		t.Fatalf("len(Elements) = %d, want 2 (non-contiguous slots must not merge)", len(elems))
	}
}

func TestClassifyDemotesRootDescriptorsOnOverflow(t *testing.T) {
	merged := &shaderreflect.HlslShaderDesc{Stage: types.ShaderStageVertex}
	// One 16-byte (4-dword) root-constant-hinted cbuffer plus 30
	// single-bind CBVs: root descriptors cost 2 dwords apiece, so the 30
	// of them cost 60 dwords, and with the root constant and one
	// descriptor set the layout costs 65, past the 64-DWORD budget.
	// Demoting one root descriptor brings it to 4 + 58 + 2 = 64.
	merged.CBuffers = append(merged.CBuffers, shaderreflect.CBuffer{
		Name: "Consts", Space: 0, BindPoint: 0, Size: 16, RootConstantHint: true,
	})
	for i := 0; i < 30; i++ {
		merged.CBuffers = append(merged.CBuffers, shaderreflect.CBuffer{
			Name:      cbName(i),
			Space:     1,
			BindPoint: uint32(i),
			Size:      256,
		})
	}
	merged.Resources = append(merged.Resources, shaderreflect.BoundResource{
		Name: "g_ExtraTex", Type: types.ResourceBindTypeTexture, Space: 2, BindPoint: 0, BindCount: 1,
	})

	layout, err := bindbridge.ClassifyBindings(merged, "test")
	if err != nil {
		t.Fatalf("ClassifyBindings failed: %v", err)
	}
	if layout.Descriptor.CostDwords() > types.RootSignatureBudgetDwords {
		t.Fatalf("CostDwords() = %d, want <= %d after demotion", layout.Descriptor.CostDwords(), types.RootSignatureBudgetDwords)
	}

	// Every originally-declared name must still resolve to exactly one
	// placement: demotion moves bindings between tiers, it never drops
	// them.
	byName := names(layout.Bindings)
	if _, ok := byName["Consts"]; !ok {
		t.Error("Consts binding lost during demotion")
	}
	for i := 0; i < 30; i++ {
		if _, ok := byName[cbName(i)]; !ok {
			t.Errorf("%s binding lost during demotion", cbName(i))
		}
	}
	if _, ok := byName["g_ExtraTex"]; !ok {
		t.Error("g_ExtraTex binding lost during demotion")
	}
}

func cbName(i int) string {
	return "CB" + string(rune('A'+i%26)) + string(rune('0'+i/26))
}

func TestClassifyRejectsUnboundedArray(t *testing.T) {
	merged := &shaderreflect.HlslShaderDesc{
		Stage: types.ShaderStagePixel,
		Resources: []shaderreflect.BoundResource{
			{Name: "g_Bindless", Type: types.ResourceBindTypeTexture, Space: 0, BindPoint: 0, BindCount: types.UnboundedBindCount},
		},
	}

	_, err := bindbridge.ClassifyBindings(merged, "test")
	if err == nil {
		t.Fatal("expected an error for an unbounded-array binding")
	}
	if !hal.IsKind(err, hal.NotSupported) {
		t.Errorf("expected hal.NotSupported, got %v", err)
	}
}
