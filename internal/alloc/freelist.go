package alloc

import "sort"

// FreeListAllocator implements first-fit allocation over a contiguous
// byte range, without the power-of-2 rounding a BuddyAllocator imposes.
// It is the better fit for device-memory heaps where over-allocating to
// the next power of 2 would waste a large fraction of the heap (e.g. a
// 3MB texture in a 256MB heap costs 4MB under buddy, 3MB under freelist).
//
// Free blocks are kept sorted by offset; Free merges a returned block
// with its immediate neighbors when they are also free.
type FreeListAllocator struct {
	totalSize uint64
	alignment uint64

	// free holds free blocks sorted by Offset, never adjacent to one
	// another (adjacent free blocks are always merged eagerly).
	free []freeBlock

	// allocated maps offset -> size, for validating Free calls.
	allocated map[uint64]uint64

	stats FreeListStats
}

type freeBlock struct {
	Offset uint64
	Size   uint64
}

// FreeListStats reports allocator usage.
type FreeListStats struct {
	TotalSize       uint64
	AllocatedSize   uint64
	AllocationCount uint64
	PeakAllocated   uint64
	FreeBlockCount  int
}

// FreeListBlock identifies an allocated region returned by Alloc.
type FreeListBlock struct {
	Offset uint64
	Size   uint64
}

// Bounds reports the block's byte range, satisfying the Region
// constraint BlockAllocator composes suballocators through.
func (b FreeListBlock) Bounds() (offset, size uint64) { return b.Offset, b.Size }

// NewFreeListAllocator creates a free-list allocator managing totalSize
// bytes. Every allocation's offset and size are rounded up to alignment
// (use 1 for byte-granular allocation).
func NewFreeListAllocator(totalSize, alignment uint64) (*FreeListAllocator, error) {
	if totalSize == 0 {
		return nil, ErrInvalidConfig
	}
	if alignment == 0 || !isPowerOfTwo(alignment) {
		return nil, ErrInvalidConfig
	}
	return &FreeListAllocator{
		totalSize: totalSize,
		alignment: alignment,
		free:      []freeBlock{{Offset: 0, Size: totalSize}},
		allocated: make(map[uint64]uint64),
		stats:     FreeListStats{TotalSize: totalSize, FreeBlockCount: 1},
	}, nil
}

// Alloc finds the first free block that fits size (rounded up to
// alignment) and carves it out of the free list. Returns ErrOutOfMemory
// if no block is large enough, ErrInvalidSize if size is 0.
func (f *FreeListAllocator) Alloc(size uint64) (FreeListBlock, error) {
	if size == 0 {
		return FreeListBlock{}, ErrInvalidSize
	}
	allocSize := alignUp(size, f.alignment)
	if allocSize > f.totalSize {
		return FreeListBlock{}, ErrInvalidSize
	}

	for i := range f.free {
		blk := f.free[i]
		if blk.Size < allocSize {
			continue
		}

		offset := blk.Offset
		if blk.Size == allocSize {
			f.free = append(f.free[:i], f.free[i+1:]...)
		} else {
			f.free[i] = freeBlock{Offset: blk.Offset + allocSize, Size: blk.Size - allocSize}
		}

		f.allocated[offset] = allocSize
		f.stats.AllocatedSize += allocSize
		f.stats.AllocationCount++
		f.stats.FreeBlockCount = len(f.free)
		if f.stats.AllocatedSize > f.stats.PeakAllocated {
			f.stats.PeakAllocated = f.stats.AllocatedSize
		}
		return FreeListBlock{Offset: offset, Size: allocSize}, nil
	}

	return FreeListBlock{}, ErrOutOfMemory
}

// Free returns a block to the free list, coalescing it with an
// immediately adjacent free block on either side. Returns ErrDoubleFree
// if the block was not allocated by this allocator or was already freed.
func (f *FreeListAllocator) Free(block FreeListBlock) error {
	size, ok := f.allocated[block.Offset]
	if !ok || size != block.Size {
		return ErrDoubleFree
	}
	delete(f.allocated, block.Offset)

	f.stats.AllocatedSize -= size
	f.stats.AllocationCount--

	f.insertAndMerge(freeBlock{Offset: block.Offset, Size: size})
	f.stats.FreeBlockCount = len(f.free)
	return nil
}

// Stats returns current allocator statistics.
func (f *FreeListAllocator) Stats() FreeListStats { return f.stats }

// insertAndMerge inserts blk into f.free at its sorted position and
// merges it with the preceding and/or following block if either is
// directly adjacent.
func (f *FreeListAllocator) insertAndMerge(blk freeBlock) {
	i := sort.Search(len(f.free), func(i int) bool { return f.free[i].Offset >= blk.Offset })
	f.free = append(f.free, freeBlock{})
	copy(f.free[i+1:], f.free[i:])
	f.free[i] = blk

	// Merge with the following block first so indices stay stable.
	if i+1 < len(f.free) && f.free[i].Offset+f.free[i].Size == f.free[i+1].Offset {
		f.free[i].Size += f.free[i+1].Size
		f.free = append(f.free[:i+1], f.free[i+2:]...)
	}
	if i > 0 && f.free[i-1].Offset+f.free[i-1].Size == f.free[i].Offset {
		f.free[i-1].Size += f.free[i].Size
		f.free = append(f.free[:i], f.free[i+1:]...)
	}
}

func alignUp(n, alignment uint64) uint64 {
	return (n + alignment - 1) &^ (alignment - 1)
}
