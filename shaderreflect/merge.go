package shaderreflect

import (
	"fmt"
	"reflect"
)

type cbufferKey struct {
	name      string
	space     uint32
	bindPoint uint32
}

type resourceKey struct {
	name      string
	space     uint32
	bindPoint uint32
}

// MergeHlslShaderDesc combines one reflection record per pipeline stage
// (typically Vertex + Pixel, or a single Compute record) into the single
// merged descriptor package bindbridge classifies, per spec.md §4.4.
//
// For every (name, space, bindPoint) a cbuffer or bound resource is
// declared at, the merged record lists it once with the union of every
// stage's visibility mask. Two stages declaring the same (name, space,
// bindPoint) must agree on type and layout exactly — a cbuffer's member
// list must match field-for-field, and a bound resource's type and bind
// count must match — or Merge fails, since the backend root
// signature/pipeline layout has exactly one binding slot per location
// and cannot serve two different shapes through it.
func MergeHlslShaderDesc(stages ...*HlslShaderDesc) (*HlslShaderDesc, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("shaderreflect: Merge requires at least one stage")
	}

	merged := &HlslShaderDesc{}
	cbufferIndex := make(map[cbufferKey]int)
	resourceIndex := make(map[resourceKey]int)

	for _, s := range stages {
		if s == nil {
			return nil, fmt.Errorf("shaderreflect: Merge received a nil stage descriptor")
		}
		merged.Stage |= s.Stage

		for _, cb := range s.CBuffers {
			cb.Stages |= s.Stage
			key := cbufferKey{name: cb.Name, space: cb.Space, bindPoint: cb.BindPoint}
			if idx, ok := cbufferIndex[key]; ok {
				existing := &merged.CBuffers[idx]
				if err := assertCBufferLayoutEqual(*existing, cb); err != nil {
					return nil, err
				}
				existing.RootConstantHint = existing.RootConstantHint || cb.RootConstantHint
				existing.Stages |= cb.Stages
				continue
			}
			cbufferIndex[key] = len(merged.CBuffers)
			merged.CBuffers = append(merged.CBuffers, cb)
		}

		for _, res := range s.Resources {
			key := resourceKey{name: res.Name, space: res.Space, bindPoint: res.BindPoint}
			if idx, ok := resourceIndex[key]; ok {
				existing := &merged.Resources[idx]
				if existing.Type != res.Type {
					return nil, fmt.Errorf(
						"shaderreflect: Merge: resource %q at (space %d, slot %d) declared as type %d in one stage and %d in another",
						res.Name, res.Space, res.BindPoint, existing.Type, res.Type)
				}
				if existing.BindCount != res.BindCount {
					return nil, fmt.Errorf(
						"shaderreflect: Merge: resource %q at (space %d, slot %d) has mismatched bind counts %d vs %d",
						res.Name, res.Space, res.BindPoint, existing.BindCount, res.BindCount)
				}
				existing.Stages |= res.Stages
				continue
			}
			resourceIndex[key] = len(merged.Resources)
			merged.Resources = append(merged.Resources, res)
		}

		if len(s.VertexInputs) > 0 {
			if len(merged.VertexInputs) > 0 {
				return nil, fmt.Errorf("shaderreflect: Merge: more than one stage declares vertex inputs")
			}
			merged.VertexInputs = append(merged.VertexInputs, s.VertexInputs...)
		}

		if s.ComputeGroupSize != ([3]uint32{}) {
			if merged.ComputeGroupSize != ([3]uint32{}) && merged.ComputeGroupSize != s.ComputeGroupSize {
				return nil, fmt.Errorf("shaderreflect: Merge: conflicting compute group sizes %v vs %v",
					merged.ComputeGroupSize, s.ComputeGroupSize)
			}
			merged.ComputeGroupSize = s.ComputeGroupSize
		}
	}

	return merged, nil
}

// assertCBufferLayoutEqual reports an error unless a and b describe the
// identical cbuffer: same size and an identical member list in the same
// order, per spec.md §4.4's "type mismatch is an error".
func assertCBufferLayoutEqual(a, b CBuffer) error {
	if a.Size != b.Size {
		return fmt.Errorf("shaderreflect: Merge: cbuffer %q size mismatch: %d vs %d", a.Name, a.Size, b.Size)
	}
	if len(a.Members) != len(b.Members) {
		return fmt.Errorf("shaderreflect: Merge: cbuffer %q member count mismatch: %d vs %d",
			a.Name, len(a.Members), len(b.Members))
	}
	for i := range a.Members {
		if !reflect.DeepEqual(a.Members[i], b.Members[i]) {
			return fmt.Errorf("shaderreflect: Merge: cbuffer %q member %d (%q) layout mismatch",
				a.Name, i, a.Members[i].Name)
		}
	}
	return nil
}
