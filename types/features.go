package types

// Feature is an optional capability a Device may or may not expose,
// reported by Adapter.Open and queryable on DeviceDetail.
type Feature uint64

const (
	FeatureDepthClipControl Feature = 1 << iota
	FeatureDepth32FloatStencil8
	FeatureTextureCompressionBC
	FeatureConservativeRasterization
	FeatureTimestampQueries
	FeatureShaderFloat16
)

// Features is a set of Feature flags.
type Features uint64

func (f Features) Contains(feature Feature) bool    { return f&Features(feature) != 0 }
func (f Features) ContainsAll(other Features) bool  { return f&other == other }
func (f *Features) Insert(feature Feature)          { *f |= Features(feature) }
func (f *Features) Remove(feature Feature)          { *f &^= Features(feature) }
func (f Features) Intersect(other Features) Features { return f & other }
func (f Features) Union(other Features) Features     { return f | other }
