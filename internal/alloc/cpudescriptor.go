package alloc

import "sync"

// DescriptorAllocation is a contiguous run of descriptors within one
// heap page: the backend writes Length descriptors starting at Start
// within Heap.
type DescriptorAllocation[H any] struct {
	Heap   H
	Start  uint32
	Length uint32
}

// CpuDescriptorHeapConfig configures a CpuDescriptorAllocator.
type CpuDescriptorHeapConfig[H comparable] struct {
	// BasicSize is the descriptor count a freshly created page is
	// sized to when no single request needs more.
	BasicSize uint32

	// KeepFreePages caps how many fully-empty pages stay allocated
	// rather than being handed back through DestroyHeap.
	KeepFreePages int

	// GrowFactor scales a CPU-visible page's capacity when Alloc needs
	// more room than BasicSize provides and demands a single page (a
	// bindless table the backend must keep indexable as one range). A
	// GPU-visible heap cannot expand this way — pass 1 to disable
	// growth and let requests larger than BasicSize land in their own
	// dedicated page instead.
	GrowFactor float64

	// NewHeap allocates a descriptor heap page with room for capacity
	// descriptors.
	NewHeap func(capacity uint32) (H, error)

	// DestroyHeap releases a heap page. May be nil.
	DestroyHeap func(H)
}

// CpuDescriptorAllocator hands out descriptor ranges from a pool of
// backend descriptor heap pages, each page suballocated by a
// BuddyAllocator. Requests are rounded up to a power of two (so the
// buddy allocator's Longest-run bookkeeping applies directly) before
// being placed in an existing page or a freshly grown one.
type CpuDescriptorAllocator[H comparable] struct {
	mu     sync.Mutex
	config CpuDescriptorHeapConfig[H]

	pages []*descriptorPage[H]
}

type descriptorPage[H comparable] struct {
	heap     H
	capacity uint32
	buddy    *BuddyAllocator
	live     int

	// blocks maps a live allocation's Start offset back to the
	// BuddyBlock buddy.Alloc returned, so Free can hand buddy the exact
	// block it needs rather than reconstructing one from Start/Length
	// alone.
	blocks map[uint64]BuddyBlock
}

// NewCpuDescriptorAllocator validates cfg and returns an empty
// CpuDescriptorAllocator.
func NewCpuDescriptorAllocator[H comparable](cfg CpuDescriptorHeapConfig[H]) (*CpuDescriptorAllocator[H], error) {
	if cfg.BasicSize == 0 || cfg.NewHeap == nil {
		return nil, ErrInvalidConfig
	}
	if cfg.GrowFactor < 1 {
		cfg.GrowFactor = 1
	}
	cfg.BasicSize = uint32(nextPowerOfTwo(uint64(cfg.BasicSize)))
	return &CpuDescriptorAllocator[H]{config: cfg}, nil
}

// Alloc rounds count up to the next power of two and returns a
// contiguous descriptor range of that size from an existing page with
// room, or a newly created page sized to fit it.
func (a *CpuDescriptorAllocator[H]) Alloc(count uint32) (DescriptorAllocation[H], error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if count == 0 {
		return DescriptorAllocation[H]{}, ErrInvalidSize
	}
	rounded := uint32(nextPowerOfTwo(uint64(count)))

	for _, p := range a.pages {
		block, err := p.buddy.Alloc(uint64(rounded))
		if err != nil {
			continue
		}
		p.live++
		p.blocks[block.Offset] = block
		return DescriptorAllocation[H]{Heap: p.heap, Start: uint32(block.Offset), Length: rounded}, nil
	}

	pageCap := a.config.BasicSize
	if rounded > pageCap {
		pageCap = uint32(float64(rounded) * a.config.GrowFactor)
		if pageCap < rounded {
			pageCap = rounded
		}
	}
	pageCap = uint32(nextPowerOfTwo(uint64(pageCap)))
	heap, err := a.config.NewHeap(pageCap)
	if err != nil {
		return DescriptorAllocation[H]{}, err
	}
	buddy, err := NewBuddyAllocator(uint64(pageCap))
	if err != nil {
		return DescriptorAllocation[H]{}, err
	}
	p := &descriptorPage[H]{heap: heap, capacity: pageCap, buddy: buddy, blocks: make(map[uint64]BuddyBlock)}
	a.pages = append(a.pages, p)

	block, err := p.buddy.Alloc(uint64(rounded))
	if err != nil {
		return DescriptorAllocation[H]{}, err
	}
	p.live++
	p.blocks[block.Offset] = block
	return DescriptorAllocation[H]{Heap: p.heap, Start: uint32(block.Offset), Length: rounded}, nil
}

// Free returns a descriptor range to its page. Once a page's live
// count reaches zero it becomes a candidate for reclaiming: pages
// beyond KeepFreePages empty pages are released through DestroyHeap.
func (a *CpuDescriptorAllocator[H]) Free(alloc DescriptorAllocation[H]) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, p := range a.pages {
		if p.heap != alloc.Heap {
			continue
		}
		block, ok := p.blocks[uint64(alloc.Start)]
		if !ok {
			return ErrDoubleFree
		}
		if err := p.buddy.Free(block); err != nil {
			return err
		}
		delete(p.blocks, uint64(alloc.Start))
		p.live--
		if p.live == 0 {
			a.reclaimEmptyPages()
		}
		return nil
	}
	return ErrDoubleFree
}

// reclaimEmptyPages destroys fully-empty pages beyond KeepFreePages.
func (a *CpuDescriptorAllocator[H]) reclaimEmptyPages() {
	empty := 0
	for _, p := range a.pages {
		if p.live == 0 {
			empty++
		}
	}
	if empty <= a.config.KeepFreePages {
		return
	}

	kept := a.pages[:0]
	dropped := empty - a.config.KeepFreePages
	for _, p := range a.pages {
		if dropped > 0 && p.live == 0 {
			if a.config.DestroyHeap != nil {
				a.config.DestroyHeap(p.heap)
			}
			dropped--
			continue
		}
		kept = append(kept, p)
	}
	a.pages = kept
}

// Destroy releases every page through DestroyHeap, if set.
func (a *CpuDescriptorAllocator[H]) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.config.DestroyHeap != nil {
		for _, p := range a.pages {
			a.config.DestroyHeap(p.heap)
		}
	}
	a.pages = nil
}
