package bindbridge

import (
	"fmt"

	"github.com/ksgfk/radray-go/hal"
	"github.com/ksgfk/radray-go/types"
)

// BindingID is a bridge-assigned, zero-based identifier for one named
// binding within a classified Layout. GetBindingId resolves a name to
// its BindingID once so a hot loop can skip the map lookup on
// subsequent calls.
type BindingID uint32

// cbufferUploadAlignment matches the D3D12/Vulkan minimum constant
// buffer offset alignment common to both backends' default limits.
const cbufferUploadAlignment = 256

// Arena allocates transient, host-writable buffer storage. Upload
// copies each dirty cbuffer's CPU-side bytes into an Arena allocation;
// a caller typically backs this with a per-frame ring buffer over an
// Upload-visible Buffer.
type Arena interface {
	Allocate(size, align uint64) (buf hal.Buffer, offset uint64, err error)
}

// cbufferSlot is one bridge-managed cbuffer's CPU-side backing storage,
// shared by every root-constant, root-descriptor, or descriptor-set
// binding of type CBuffer.
type cbufferSlot struct {
	offset uint32 // offset into Bridge.storage
	size   uint32
	dirty  bool

	buffer hal.Buffer // set by Upload; valid until the next field write
	bufOff uint64
}

type resourceRef struct {
	isRootDescriptor bool
	rootSlot         uint32

	setIndex  uint32
	elemIndex uint32
	arrayIdx  uint32
}

// StructuredBufferView is a named view into a Bridge's CPU cbuffer
// storage, returned by GetCBuffer so a caller can write fields by byte
// offset without knowing the bridge's internal memory layout.
type StructuredBufferView struct {
	bridge *Bridge
	slot   *cbufferSlot
}

// Bytes returns the view's backing storage for direct field writes and
// marks the cbuffer dirty, so the next Upload re-copies it.
func (v *StructuredBufferView) Bytes() []byte {
	v.slot.dirty = true
	return v.bridge.storage[v.slot.offset : v.slot.offset+v.slot.size]
}

// SetField writes data at byteOffset within the cbuffer.
func (v *StructuredBufferView) SetField(byteOffset uint32, data []byte) {
	copy(v.Bytes()[byteOffset:], data)
}

// Bridge is the runtime binding table of spec.md §4.7: a per-draw or
// per-dispatch staging area a caller writes cbuffer fields and resource
// views into by name or BindingID, which Upload and Bind then push onto
// a hal.BindingEncoder in root-signature order.
//
// A Bridge is not safe for concurrent use; callers building command
// buffers on multiple goroutines build one Bridge per goroutine (or per
// frame-in-flight) from the same Layout.
type Bridge struct {
	sig    hal.RootSignature
	layout *Layout

	storage []byte

	ids            map[string]BindingID
	cbuffers       map[BindingID]*cbufferSlot
	resources      map[BindingID]resourceRef
	rootConstID    *BindingID
	rootConstSlot  *cbufferSlot

	rootDescCBuffers map[uint32]*cbufferSlot // rootSlot -> cbuffer, for CBuffer-typed root descriptors
	rootDescBuffers  map[uint32]hal.Buffer   // rootSlot -> bound buffer, for Buffer/RWBuffer-typed ones

	setCBuffers map[[2]uint32]*cbufferSlot // (setIndex, elemIndex) -> cbuffer
	elemViews   map[[2]uint32][]any        // (setIndex, elemIndex) -> Count-length view array

	sets []hal.DescriptorSet // lazily created, parallel to layout.Descriptor.DescriptorSets
}

// NewBridge builds a Bridge over a classified Layout and the backend
// RootSignature it was translated into.
func NewBridge(sig hal.RootSignature, layout *Layout) *Bridge {
	b := &Bridge{
		sig:              sig,
		layout:           layout,
		ids:              make(map[string]BindingID),
		cbuffers:         make(map[BindingID]*cbufferSlot),
		resources:        make(map[BindingID]resourceRef),
		rootDescCBuffers: make(map[uint32]*cbufferSlot),
		rootDescBuffers:  make(map[uint32]hal.Buffer),
		setCBuffers:      make(map[[2]uint32]*cbufferSlot),
		elemViews:        make(map[[2]uint32][]any),
	}

	var cursor uint32
	for i, p := range layout.Bindings {
		id := BindingID(i)
		b.ids[p.Name] = id

		switch p.Kind {
		case PlacementPushConstant:
			slot := &cbufferSlot{offset: cursor, size: p.ByteSize}
			cursor += p.ByteSize
			b.cbuffers[id] = slot
			b.rootConstID = &id
			b.rootConstSlot = slot

		case PlacementRootDescriptor:
			if p.Type == types.ResourceBindTypeCBuffer {
				slot := &cbufferSlot{offset: cursor, size: p.ByteSize}
				cursor += p.ByteSize
				b.cbuffers[id] = slot
				b.rootDescCBuffers[p.RootSlot] = slot
			} else {
				b.resources[id] = resourceRef{isRootDescriptor: true, rootSlot: p.RootSlot}
			}

		case PlacementDescriptorSet:
			if p.Type == types.ResourceBindTypeCBuffer {
				slot := &cbufferSlot{offset: cursor, size: p.ByteSize}
				cursor += p.ByteSize
				b.cbuffers[id] = slot
				b.setCBuffers[[2]uint32{p.SetIndex, p.ElemIndex}] = slot
			} else {
				key := [2]uint32{p.SetIndex, p.ElemIndex}
				if _, ok := b.elemViews[key]; !ok {
					elem := layout.Descriptor.DescriptorSets[p.SetIndex].Elements[p.ElemIndex]
					b.elemViews[key] = make([]any, elem.Count)
				}
				b.resources[id] = resourceRef{setIndex: p.SetIndex, elemIndex: p.ElemIndex, arrayIdx: p.ArrayIndex}
			}
		}
	}

	b.storage = make([]byte, cursor)
	b.sets = make([]hal.DescriptorSet, len(layout.Descriptor.DescriptorSets))
	return b
}

// GetBindingId resolves a shader-declared name to its BindingID, or
// reports false if the classified Layout has no binding by that name.
func (b *Bridge) GetBindingId(name string) (BindingID, bool) {
	id, ok := b.ids[name]
	return id, ok
}

func (b *Bridge) resolveID(idOrName any) (BindingID, error) {
	switch v := idOrName.(type) {
	case BindingID:
		return v, nil
	case string:
		id, ok := b.ids[v]
		if !ok {
			return 0, fmt.Errorf("bindbridge: unknown binding %q", v)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("bindbridge: binding identifier must be a BindingID or string, got %T", idOrName)
	}
}

// SetResource records view at the named resource binding, or at
// arrayIndex within it if the binding classified into a merged,
// Count>1 descriptor-set range. view must be a hal.TextureView,
// hal.Sampler, or hal.Buffer (root descriptors bind the whole buffer;
// a caller needing a sub-range there should size the buffer to match).
// Constant buffers are not set this way — see GetCBuffer.
func (b *Bridge) SetResource(idOrName any, view any, arrayIndex uint32) error {
	id, err := b.resolveID(idOrName)
	if err != nil {
		return err
	}
	ref, ok := b.resources[id]
	if !ok {
		return fmt.Errorf("bindbridge: binding %v is a constant buffer; write its fields via GetCBuffer", idOrName)
	}

	if ref.isRootDescriptor {
		buf, ok := view.(hal.Buffer)
		if !ok {
			return fmt.Errorf("bindbridge: root descriptor binding %v requires a hal.Buffer, got %T", idOrName, view)
		}
		b.rootDescBuffers[ref.rootSlot] = buf
		return nil
	}

	key := [2]uint32{ref.setIndex, ref.elemIndex}
	views := b.elemViews[key]
	idx := ref.arrayIdx + arrayIndex
	if int(idx) >= len(views) {
		return fmt.Errorf("bindbridge: array index %d out of range for binding %v (capacity %d)", idx, idOrName, len(views))
	}
	views[idx] = view
	return nil
}

// GetCBuffer returns a writable view over the named constant buffer's
// CPU-side storage, whether it classified as the root constant, a root
// descriptor, or a descriptor-set element.
func (b *Bridge) GetCBuffer(idOrName any) (*StructuredBufferView, error) {
	id, err := b.resolveID(idOrName)
	if err != nil {
		return nil, err
	}
	slot, ok := b.cbuffers[id]
	if !ok {
		return nil, fmt.Errorf("bindbridge: binding %v is not a constant buffer", idOrName)
	}
	return &StructuredBufferView{bridge: b, slot: slot}, nil
}

// Upload copies every dirty cbuffer's CPU-side bytes into a fresh Arena
// allocation. Call it once per frame (or per draw, if a cbuffer's
// fields changed) before Bind.
func (b *Bridge) Upload(arena Arena) error {
	for _, slot := range b.cbuffers {
		if slot.buffer != nil && !slot.dirty {
			continue
		}
		buf, off, err := arena.Allocate(uint64(slot.size), cbufferUploadAlignment)
		if err != nil {
			return fmt.Errorf("bindbridge: Upload: allocating %d bytes: %w", slot.size, err)
		}
		mapped, err := buf.Map()
		if err != nil {
			return fmt.Errorf("bindbridge: Upload: mapping arena buffer: %w", err)
		}
		copy(mapped[off:off+uint64(slot.size)], b.storage[slot.offset:slot.offset+slot.size])
		buf.Unmap()
		slot.buffer = buf
		slot.bufOff = off
		slot.dirty = false
	}
	return nil
}

// Bind pushes every classified binding onto encoder in root-signature
// order: the root constant (if any), then root descriptors, then
// descriptor sets — creating and writing descriptor set handles lazily
// via device the first time a set is needed. Every root descriptor and
// descriptor-set binding the Layout named must have been set (via
// SetResource, or GetCBuffer followed by Upload for cbuffers) before
// Bind is called, or Bind returns an error naming the root descriptor,
// or the descriptor set and element index, that is unset. The root
// constant is pushed straight from CPU storage and needs no Upload.
func (b *Bridge) Bind(device hal.Device, encoder hal.BindingEncoder) error {
	encoder.BindRootSignature(b.sig)

	if b.rootConstID != nil {
		encoder.PushConstant(b.storage[b.rootConstSlot.offset : b.rootConstSlot.offset+b.rootConstSlot.size])
	}

	for i, rd := range b.layout.Descriptor.RootDescriptors {
		slot := uint32(i)
		if rd.Type == types.ResourceBindTypeCBuffer {
			cb := b.rootDescCBuffers[slot]
			if cb.buffer == nil {
				return fmt.Errorf("bindbridge: Bind: root descriptor cbuffer %q was never uploaded", rd.Name)
			}
			encoder.BindRootDescriptor(slot, cb.buffer, cb.bufOff, uint64(cb.size))
		} else {
			buf := b.rootDescBuffers[slot]
			if buf == nil {
				return fmt.Errorf("bindbridge: Bind: root descriptor %q has no bound buffer", rd.Name)
			}
			encoder.BindRootDescriptor(slot, buf, 0, buf.Size())
		}
	}

	for si, setLayout := range b.layout.Descriptor.DescriptorSets {
		setIndex := uint32(si)
		set := b.sets[si]
		if set == nil {
			created, err := device.CreateDescriptorSet(b.sig, setIndex)
			if err != nil {
				return fmt.Errorf("bindbridge: Bind: creating descriptor set %d: %w", setIndex, err)
			}
			b.sets[si] = created
			set = created
		}

		for ei, elem := range setLayout.Elements {
			elemIndex := uint32(ei)
			if elem.Type == types.ResourceBindTypeCBuffer {
				cb := b.setCBuffers[[2]uint32{setIndex, elemIndex}]
				if cb == nil || cb.buffer == nil {
					return fmt.Errorf("bindbridge: Bind: descriptor set %d element %d cbuffer was never uploaded", setIndex, elemIndex)
				}
				if err := set.Write(elemIndex, 0, hal.BufferRange{Buffer: cb.buffer, Offset: cb.bufOff, Size: uint64(cb.size)}); err != nil {
					return fmt.Errorf("bindbridge: Bind: writing descriptor set %d element %d: %w", setIndex, elemIndex, err)
				}
				continue
			}

			views := b.elemViews[[2]uint32{setIndex, elemIndex}]
			for arrayIdx, view := range views {
				if view == nil {
					return fmt.Errorf("bindbridge: Bind: descriptor set %d element %d array index %d was never bound", setIndex, elemIndex, arrayIdx)
				}
				if err := set.Write(elemIndex, uint32(arrayIdx), view); err != nil {
					return fmt.Errorf("bindbridge: Bind: writing descriptor set %d element %d: %w", setIndex, elemIndex, err)
				}
			}
		}

		encoder.BindDescriptorSet(setIndex, set)
	}

	return nil
}

// Clear drops every uploaded cbuffer's transient buffer and bound
// resource view, without forgetting the Layout's binding names. Call it
// between frames when reusing a Bridge over a new Arena generation.
func (b *Bridge) Clear() {
	for _, slot := range b.cbuffers {
		slot.buffer = nil
		slot.bufOff = 0
		slot.dirty = true
	}
	for k := range b.rootDescBuffers {
		delete(b.rootDescBuffers, k)
	}
	for k, views := range b.elemViews {
		for i := range views {
			views[i] = nil
		}
		b.elemViews[k] = views
	}
	for i := range b.sets {
		b.sets[i] = nil
	}
}
