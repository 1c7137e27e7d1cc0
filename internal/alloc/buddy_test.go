package alloc

import "testing"

func TestNewBuddyAllocator(t *testing.T) {
	tests := []struct {
		name     string
		capacity uint64
		wantErr  bool
	}{
		{name: "valid power of 2", capacity: 1 << 20, wantErr: false},
		{name: "valid non-power-of-2", capacity: 1000, wantErr: false},
		{name: "valid capacity 1", capacity: 1, wantErr: false},
		{name: "invalid zero capacity", capacity: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuddyAllocator(tt.capacity)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBuddyAllocator() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && b == nil {
				t.Error("NewBuddyAllocator() returned nil allocator without error")
			}
		})
	}
}

func TestBuddyAllocRoundsUpToPowerOfTwo(t *testing.T) {
	b, err := NewBuddyAllocator(1 << 20)
	if err != nil {
		t.Fatalf("NewBuddyAllocator failed: %v", err)
	}
	block, err := b.Alloc(300)
	if err != nil {
		t.Fatalf("Alloc(300) failed: %v", err)
	}
	if block.Size != 512 {
		t.Errorf("Size = %d, want 512 (next power of 2 >= 300)", block.Size)
	}
}

// TestBuddyAllocScenarioCapacity8 pins the exact offset sequence an
// 8-byte-capacity allocator must produce: three successive allocations
// exhaust it, and a further request must fail rather than returning a
// stale or overlapping offset.
func TestBuddyAllocScenarioCapacity8(t *testing.T) {
	b, err := NewBuddyAllocator(8)
	if err != nil {
		t.Fatalf("NewBuddyAllocator failed: %v", err)
	}

	a1, err := b.Alloc(4)
	if err != nil || a1.Offset != 0 {
		t.Fatalf("Alloc(4) = (offset %d, err %v), want (offset 0, nil)", a1.Offset, err)
	}
	a2, err := b.Alloc(2)
	if err != nil || a2.Offset != 4 {
		t.Fatalf("Alloc(2) = (offset %d, err %v), want (offset 4, nil)", a2.Offset, err)
	}
	a3, err := b.Alloc(2)
	if err != nil || a3.Offset != 6 {
		t.Fatalf("Alloc(2) = (offset %d, err %v), want (offset 6, nil)", a3.Offset, err)
	}
	if _, err := b.Alloc(1); err != ErrOutOfMemory {
		t.Errorf("Alloc(1) on exhausted allocator = %v, want ErrOutOfMemory", err)
	}
}

// TestBuddyAllocScenarioCapacity16 pins the exact offset/size sequence a
// 16-byte-capacity allocator must produce, including the case where a
// 1-byte request is satisfied from a 2-byte leaf (the minimum allocation
// unit) rather than a 1-byte one.
func TestBuddyAllocScenarioCapacity16(t *testing.T) {
	b, err := NewBuddyAllocator(16)
	if err != nil {
		t.Fatalf("NewBuddyAllocator failed: %v", err)
	}

	a1, err := b.Alloc(3)
	if err != nil || a1.Offset != 0 || a1.Size != 4 {
		t.Fatalf("Alloc(3) = (offset %d, size %d, err %v), want (offset 0, size 4, nil)", a1.Offset, a1.Size, err)
	}
	a2, err := b.Alloc(5)
	if err != nil || a2.Offset != 8 || a2.Size != 8 {
		t.Fatalf("Alloc(5) = (offset %d, size %d, err %v), want (offset 8, size 8, nil)", a2.Offset, a2.Size, err)
	}
	if _, err := b.Alloc(5); err != ErrOutOfMemory {
		t.Fatalf("second Alloc(5) = %v, want ErrOutOfMemory", err)
	}
	a3, err := b.Alloc(1)
	if err != nil || a3.Offset != 4 || a3.Size != 2 {
		t.Fatalf("Alloc(1) = (offset %d, size %d, err %v), want (offset 4, size 2, nil)", a3.Offset, a3.Size, err)
	}
}

// TestBuddyAllocNonPowerOfTwoCapacity checks that a capacity which is not
// itself a power of 2 still works: the tree's virtual size rounds up to
// the next power of 2, but a request may not be satisfied by a node whose
// clipped actual capacity falls short, and the sum of what fits must
// never exceed the real (not virtual) capacity.
func TestBuddyAllocNonPowerOfTwoCapacity(t *testing.T) {
	b, err := NewBuddyAllocator(6)
	if err != nil {
		t.Fatalf("NewBuddyAllocator failed: %v", err)
	}

	// A request for the whole non-power-of-2 capacity must still succeed
	// at offset 0.
	a, err := b.Alloc(6)
	if err != nil || a.Offset != 0 {
		t.Fatalf("Alloc(6) = (offset %d, err %v), want (offset 0, nil)", a.Offset, err)
	}
	if err := b.Free(a); err != nil {
		t.Fatalf("Free failed: %v", err)
	}

	// Two 4-byte leaves exist in the virtual (8-byte) tree, but the
	// second one is clipped to 2 actual bytes by the capacity of 6: a
	// request for more than that must fail even though the virtual node
	// size would otherwise admit it.
	if _, err := b.Alloc(4); err != nil {
		t.Fatalf("Alloc(4) failed: %v", err)
	}
	if _, err := b.Alloc(4); err != ErrOutOfMemory {
		t.Errorf("Alloc(4) into the clipped remainder = %v, want ErrOutOfMemory", err)
	}
}

func TestBuddyAllocExhaustion(t *testing.T) {
	b, err := NewBuddyAllocator(1024)
	if err != nil {
		t.Fatalf("NewBuddyAllocator failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err := b.Alloc(256); err != nil {
			t.Fatalf("Alloc #%d failed: %v", i, err)
		}
	}
	if _, err := b.Alloc(256); err != ErrOutOfMemory {
		t.Errorf("Alloc past capacity error = %v, want ErrOutOfMemory", err)
	}
}

func TestBuddyFreeMergesBuddies(t *testing.T) {
	b, err := NewBuddyAllocator(1024)
	if err != nil {
		t.Fatalf("NewBuddyAllocator failed: %v", err)
	}
	a, err := b.Alloc(512)
	if err != nil {
		t.Fatalf("Alloc(512) failed: %v", err)
	}
	if err := b.Free(a); err != nil {
		t.Fatalf("Free failed: %v", err)
	}
	// The whole region should be free again, so a single 1024-byte
	// request must succeed after the 512-byte block merges back with
	// its buddy.
	if _, err := b.Alloc(1024); err != nil {
		t.Errorf("Alloc(1024) after Free failed: %v, want blocks to have merged", err)
	}
}

func TestBuddyFreeRejectsDoubleFree(t *testing.T) {
	b, err := NewBuddyAllocator(1024)
	if err != nil {
		t.Fatalf("NewBuddyAllocator failed: %v", err)
	}
	a, err := b.Alloc(256)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if err := b.Free(a); err != nil {
		t.Fatalf("first Free failed: %v", err)
	}
	if err := b.Free(a); err != ErrDoubleFree {
		t.Errorf("second Free error = %v, want ErrDoubleFree", err)
	}
}

func TestBuddyAllocOversizeRejected(t *testing.T) {
	b, err := NewBuddyAllocator(1024)
	if err != nil {
		t.Fatalf("NewBuddyAllocator failed: %v", err)
	}
	if _, err := b.Alloc(2048); err != ErrInvalidSize {
		t.Errorf("Alloc(2048) error = %v, want ErrInvalidSize", err)
	}
}

func TestBuddyStatsTrackAllocatedSize(t *testing.T) {
	b, err := NewBuddyAllocator(1024)
	if err != nil {
		t.Fatalf("NewBuddyAllocator failed: %v", err)
	}
	a1, _ := b.Alloc(256)
	a2, _ := b.Alloc(256)
	if got := b.Stats().AllocatedSize; got != 512 {
		t.Errorf("AllocatedSize = %d, want 512", got)
	}
	b.Free(a1)
	b.Free(a2)
	if got := b.Stats().AllocatedSize; got != 0 {
		t.Errorf("AllocatedSize after freeing both = %d, want 0", got)
	}
}

func TestBuddyResetReclaimsSpace(t *testing.T) {
	b, err := NewBuddyAllocator(1024)
	if err != nil {
		t.Fatalf("NewBuddyAllocator failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err := b.Alloc(256); err != nil {
			t.Fatalf("Alloc #%d failed: %v", i, err)
		}
	}
	b.Reset()
	if _, err := b.Alloc(1024); err != nil {
		t.Errorf("Alloc(1024) after Reset failed: %v", err)
	}
}
