package alloc

import "testing"

type fakeDescriptorHeap int

func newCpuDescriptorAllocator(t *testing.T, basicSize uint32, keepFree int, grow float64) (*CpuDescriptorAllocator[fakeDescriptorHeap], *int) {
	t.Helper()
	next := 0
	destroyed := 0
	a, err := NewCpuDescriptorAllocator(CpuDescriptorHeapConfig[fakeDescriptorHeap]{
		BasicSize:     basicSize,
		KeepFreePages: keepFree,
		GrowFactor:    grow,
		NewHeap: func(capacity uint32) (fakeDescriptorHeap, error) {
			next++
			return fakeDescriptorHeap(next), nil
		},
		DestroyHeap: func(fakeDescriptorHeap) {
			destroyed++
		},
	})
	if err != nil {
		t.Fatalf("NewCpuDescriptorAllocator failed: %v", err)
	}
	return a, &destroyed
}

func TestCpuDescriptorAllocatorRejectsInvalidConfig(t *testing.T) {
	_, err := NewCpuDescriptorAllocator(CpuDescriptorHeapConfig[fakeDescriptorHeap]{})
	if err != ErrInvalidConfig {
		t.Errorf("NewCpuDescriptorAllocator() error = %v, want ErrInvalidConfig", err)
	}
}

func TestCpuDescriptorAllocatorRoundsCountToPowerOfTwo(t *testing.T) {
	a, _ := newCpuDescriptorAllocator(t, 256, 0, 1)
	alloc, err := a.Alloc(10)
	if err != nil {
		t.Fatalf("Alloc(10) failed: %v", err)
	}
	if alloc.Length != 16 {
		t.Errorf("Length = %d, want 16 (10 rounded up to a power of 2)", alloc.Length)
	}
}

func TestCpuDescriptorAllocatorPacksSmallRequestsIntoOnePage(t *testing.T) {
	a, _ := newCpuDescriptorAllocator(t, 256, 0, 1)
	first, err := a.Alloc(8)
	if err != nil {
		t.Fatalf("first Alloc failed: %v", err)
	}
	second, err := a.Alloc(8)
	if err != nil {
		t.Fatalf("second Alloc failed: %v", err)
	}
	if first.Heap != second.Heap {
		t.Errorf("expected both small requests to share one page, got %v and %v", first.Heap, second.Heap)
	}
}

func TestCpuDescriptorAllocatorGrowsPageForLargeRequest(t *testing.T) {
	a, _ := newCpuDescriptorAllocator(t, 16, 0, 1.5)
	alloc, err := a.Alloc(100)
	if err != nil {
		t.Fatalf("Alloc(100) failed: %v", err)
	}
	if alloc.Length != 128 {
		t.Errorf("Length = %d, want 128 (100 rounded up)", alloc.Length)
	}
}

func TestCpuDescriptorAllocatorFreeReusesSpace(t *testing.T) {
	a, _ := newCpuDescriptorAllocator(t, 16, 1, 1)
	first, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if err := a.Free(first); err != nil {
		t.Fatalf("Free failed: %v", err)
	}
	second, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc after Free failed: %v", err)
	}
	if second.Heap != first.Heap || second.Start != first.Start {
		t.Errorf("expected the freed range to be reused, got start %d on heap %v, want start %d on heap %v",
			second.Start, second.Heap, first.Start, first.Heap)
	}
}

func TestCpuDescriptorAllocatorFreeRejectsUnknown(t *testing.T) {
	a, _ := newCpuDescriptorAllocator(t, 16, 0, 1)
	err := a.Free(DescriptorAllocation[fakeDescriptorHeap]{Heap: fakeDescriptorHeap(99), Start: 0, Length: 16})
	if err != ErrDoubleFree {
		t.Errorf("Free(unknown) error = %v, want ErrDoubleFree", err)
	}
}

func TestCpuDescriptorAllocatorKeepFreePagesCapsReclaiming(t *testing.T) {
	a, destroyed := newCpuDescriptorAllocator(t, 16, 1, 1)

	// Force two separate pages: fill the first page's 16 descriptors,
	// then allocate again so a second page is created.
	first, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("first Alloc failed: %v", err)
	}
	second, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("second Alloc failed: %v", err)
	}
	if first.Heap == second.Heap {
		t.Fatal("expected the first page to be full, forcing a second page")
	}

	if err := a.Free(first); err != nil {
		t.Fatalf("Free(first) failed: %v", err)
	}
	if *destroyed != 0 {
		t.Errorf("destroyed = %d after freeing one of two pages with KeepFreePages=1, want 0", *destroyed)
	}

	if err := a.Free(second); err != nil {
		t.Fatalf("Free(second) failed: %v", err)
	}
	if *destroyed != 1 {
		t.Errorf("destroyed = %d after both pages empty with KeepFreePages=1, want 1", *destroyed)
	}
}

func TestCpuDescriptorAllocatorDestroyReleasesAllPages(t *testing.T) {
	a, destroyed := newCpuDescriptorAllocator(t, 16, 0, 1)
	if _, err := a.Alloc(16); err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	a.Destroy()
	if *destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", *destroyed)
	}
}
