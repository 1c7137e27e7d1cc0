package noop

import "github.com/ksgfk/radray-go/types"

// base is embedded by every noop resource; it implements hal.Resource.
type base struct {
	valid bool
}

func (b *base) Destroy()        { b.valid = false }
func (b *base) IsValid() bool   { return b.valid }

// Buffer is a noop GPU buffer backed by a plain Go slice, so Map/Unmap
// behave like a real Upload/Readback buffer would.
type Buffer struct {
	base
	size uint64
	data []byte
}

func (b *Buffer) Size() uint64 { return b.size }

func (b *Buffer) Map() ([]byte, error) {
	if b.data == nil {
		b.data = make([]byte, b.size)
	}
	return b.data, nil
}

func (b *Buffer) Unmap() {}

// Texture is a noop texture; it carries only the metadata other
// components (barrier translation, swap-chain back buffers) need to
// inspect.
type Texture struct {
	base
	format types.PixelFormat
	extent types.Extent3D
}

func (t *Texture) Format() types.PixelFormat { return t.format }
func (t *Texture) Extent() types.Extent3D    { return t.extent }

// TextureView, Sampler, ShaderModule, and RootSignature carry no
// behavior in the noop backend beyond Resource.
type TextureView struct {
	base
}

type Sampler struct {
	base
}

type ShaderModule struct {
	base
	stage types.ShaderStage
}

func (s *ShaderModule) Stage() types.ShaderStage { return s.stage }

type RootSignature struct {
	base
}

type GraphicsPipelineState struct {
	base
}

type ComputePipelineState struct {
	base
}

// DescriptorSet records whatever its last Write call stored at each
// (elemIndex, arrayIndex), with no validation against the layout it was
// created from — the noop backend trusts the caller the same way it
// trusts every other binding call.
type DescriptorSet struct {
	base
	views map[[2]uint32]any
}

func (d *DescriptorSet) Write(elemIndex, arrayIndex uint32, view any) error {
	if d.views == nil {
		d.views = make(map[[2]uint32]any)
	}
	d.views[[2]uint32{elemIndex, arrayIndex}] = view
	return nil
}

// View returns whatever was last written at (elemIndex, arrayIndex), or
// nil if nothing was. Exported so noop-backed tests can assert on bound
// views without a backend-specific inspection API.
func (d *DescriptorSet) View(elemIndex, arrayIndex uint32) any {
	return d.views[[2]uint32{elemIndex, arrayIndex}]
}

// Semaphore is a noop token; Submit/Present treat it as already
// signalled since the noop backend executes synchronously.
type Semaphore struct {
	base
}
