package types

// MemoryType is where a Buffer's backing memory lives, per spec.md §4.3.
type MemoryType uint8

const (
	// MemoryTypeDevice is GPU-private memory with no CPU mapping.
	MemoryTypeDevice MemoryType = iota
	// MemoryTypeUpload is CPU-writable, GPU-readable; initial state is
	// GenericRead.
	MemoryTypeUpload
	// MemoryTypeReadback is GPU-writable, CPU-readable.
	MemoryTypeReadback
)

// BufferUse is one bit of the allowed-uses set a Buffer is created with.
type BufferUse uint32

const (
	BufferUseMapRead BufferUse = 1 << iota
	BufferUseMapWrite
	BufferUseCopySrc
	BufferUseCopyDst
	BufferUseIndex
	BufferUseVertex
	BufferUseCBuffer
	BufferUseStorageRO
	BufferUseStorageRW
	BufferUseIndirect
)

// BufferHint tells the allocator whether a buffer is a good candidate for
// a dedicated (non-suballocated) memory allocation.
type BufferHint uint8

const (
	BufferHintNone BufferHint = iota
	BufferHintDedicated
)

// BufferDescriptor describes a Buffer to create on a Device.
type BufferDescriptor struct {
	Label string
	Size  uint64
	Type  MemoryType
	Usage BufferUse
	Hint  BufferHint
}

// BufferViewDescriptor describes a BufferView binding a range of a
// Buffer into a usage category.
type BufferViewDescriptor struct {
	Label  string
	Usage  BufferUse
	Offset uint64
	Size   uint64
}

// IndexFormat is the element width of an index buffer.
type IndexFormat uint8

const (
	IndexFormatUint16 IndexFormat = iota
	IndexFormatUint32
)
