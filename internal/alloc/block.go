package alloc

import "sync"

// Region is satisfied by a suballocator's block-token type: anything
// carrying a byte offset and size. BuddyBlock and FreeListBlock both
// implement it, letting BlockAllocator compose either one.
type Region interface {
	Bounds() (offset, size uint64)
}

// SubAllocator is the Alloc/Free shape BuddyAllocator and
// FreeListAllocator already implement. BlockAllocator drives one
// instance per pooled heap.
type SubAllocator[A Region] interface {
	Alloc(size uint64) (A, error)
	Free(block A) error
}

// BlockAllocatorConfig configures a BlockAllocator. NewHeap and
// NewSubAllocator are called together whenever the pool grows; the
// heap they describe is sized BlockSize and the suballocator manages
// that same extent.
type BlockAllocatorConfig[H comparable, A Region] struct {
	// BlockSize is the size of each pooled heap requested from NewHeap.
	BlockSize uint64

	// DedicatedThreshold is the request size at or above which Alloc
	// bypasses the pool and asks NewHeap for a heap sized exactly to
	// the request. Defaults to BlockSize if zero.
	DedicatedThreshold uint64

	// MaxBlocksPerHeap caps how many pooled heaps Alloc will create
	// before falling back to a dedicated heap for requests that don't
	// fit an existing one.
	MaxBlocksPerHeap int

	// NewHeap requests a backing heap of the given size (a device
	// memory allocation, a descriptor heap page, ...).
	NewHeap func(size uint64) (H, error)

	// DestroyHeap releases a heap NewHeap returned. May be nil if the
	// caller's heaps need no explicit release.
	DestroyHeap func(H)

	// NewSubAllocator builds the suballocator that manages a freshly
	// created pooled heap of the given size.
	NewSubAllocator func(size uint64) (SubAllocator[A], error)
}

type poolHeap[H comparable, A Region] struct {
	heap H
	sub  SubAllocator[A]
}

// Allocation is one BlockAllocator.Alloc result: the heap it landed in
// and the byte range within it. Pass it back to Free unmodified.
type Allocation[H comparable, A Region] struct {
	Heap   H
	Offset uint64
	Size   uint64

	dedicated bool
	token     A
}

// BlockAllocator composes a SubAllocator (BuddyAllocator for CPU
// descriptor heap pages, FreeListAllocator for variable-size device
// memory ranges) with a pool of backing heaps, falling back to a
// dedicated heap once a request is too large to pool or the pool has
// hit MaxBlocksPerHeap — the same pool-of-blocks-plus-dedicated-
// fallback shape hal/vulkan/memory.GpuAllocator uses for
// VkDeviceMemory, generalized to any heap handle and suballocation
// strategy.
type BlockAllocator[H comparable, A Region] struct {
	mu     sync.Mutex
	config BlockAllocatorConfig[H, A]

	pools     []*poolHeap[H, A]
	dedicated map[H]struct{}
}

// NewBlockAllocator validates cfg and returns an empty BlockAllocator;
// no heap is requested until the first Alloc.
func NewBlockAllocator[H comparable, A Region](cfg BlockAllocatorConfig[H, A]) (*BlockAllocator[H, A], error) {
	if cfg.BlockSize == 0 || cfg.NewHeap == nil || cfg.NewSubAllocator == nil {
		return nil, ErrInvalidConfig
	}
	if cfg.MaxBlocksPerHeap <= 0 {
		cfg.MaxBlocksPerHeap = 8
	}
	if cfg.DedicatedThreshold == 0 {
		cfg.DedicatedThreshold = cfg.BlockSize
	}
	return &BlockAllocator[H, A]{
		config:    cfg,
		dedicated: make(map[H]struct{}),
	}, nil
}

// Alloc satisfies size from an existing pooled heap if one has room,
// creates a new pooled heap if MaxBlocksPerHeap allows it, or falls
// back to a dedicated heap sized exactly to size.
func (b *BlockAllocator[H, A]) Alloc(size uint64) (Allocation[H, A], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if size == 0 {
		return Allocation[H, A]{}, ErrInvalidSize
	}

	if size >= b.config.DedicatedThreshold {
		return b.allocDedicated(size)
	}

	for _, p := range b.pools {
		token, err := p.sub.Alloc(size)
		if err != nil {
			continue
		}
		offset, allocSize := token.Bounds()
		return Allocation[H, A]{Heap: p.heap, Offset: offset, Size: allocSize, token: token}, nil
	}

	if len(b.pools) >= b.config.MaxBlocksPerHeap {
		return b.allocDedicated(size)
	}

	heap, err := b.config.NewHeap(b.config.BlockSize)
	if err != nil {
		return Allocation[H, A]{}, err
	}
	sub, err := b.config.NewSubAllocator(b.config.BlockSize)
	if err != nil {
		return Allocation[H, A]{}, err
	}
	p := &poolHeap[H, A]{heap: heap, sub: sub}
	b.pools = append(b.pools, p)

	token, err := p.sub.Alloc(size)
	if err != nil {
		return Allocation[H, A]{}, err
	}
	offset, allocSize := token.Bounds()
	return Allocation[H, A]{Heap: p.heap, Offset: offset, Size: allocSize, token: token}, nil
}

func (b *BlockAllocator[H, A]) allocDedicated(size uint64) (Allocation[H, A], error) {
	heap, err := b.config.NewHeap(size)
	if err != nil {
		return Allocation[H, A]{}, err
	}
	b.dedicated[heap] = struct{}{}
	return Allocation[H, A]{Heap: heap, Offset: 0, Size: size, dedicated: true}, nil
}

// Free releases an Allocation back to its pool, or destroys its
// dedicated heap. Returns ErrDoubleFree if a is not a live allocation
// this BlockAllocator produced.
func (b *BlockAllocator[H, A]) Free(a Allocation[H, A]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if a.dedicated {
		if _, ok := b.dedicated[a.Heap]; !ok {
			return ErrDoubleFree
		}
		delete(b.dedicated, a.Heap)
		if b.config.DestroyHeap != nil {
			b.config.DestroyHeap(a.Heap)
		}
		return nil
	}

	for _, p := range b.pools {
		if p.heap == a.Heap {
			return p.sub.Free(a.token)
		}
	}
	return ErrDoubleFree
}

// Destroy releases every pooled and dedicated heap via DestroyHeap, if
// set, and resets the allocator to empty.
func (b *BlockAllocator[H, A]) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.config.DestroyHeap != nil {
		for heap := range b.dedicated {
			b.config.DestroyHeap(heap)
		}
		for _, p := range b.pools {
			b.config.DestroyHeap(p.heap)
		}
	}
	b.dedicated = make(map[H]struct{})
	b.pools = nil
}
