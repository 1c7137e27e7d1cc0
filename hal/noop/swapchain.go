package noop

import (
	"fmt"

	"github.com/ksgfk/radray-go/hal"
)

// SwapChain is a noop back-buffer ring: AcquireNext/Present just walk
// the ring index, with no actual presentation happening.
type SwapChain struct {
	base
	backBuffers  []*Texture
	currentIndex int
	nextIndex    uint64
}

func (s *SwapChain) BackBufferCount() uint32 { return uint32(len(s.backBuffers)) }

func (s *SwapChain) CurrentBackBufferIndex() uint32 {
	if s.currentIndex < 0 {
		panic("noop: CurrentBackBufferIndex called outside Acquire/Present")
	}
	return uint32(s.currentIndex)
}

func (s *SwapChain) AcquireNext(signalSem hal.Semaphore, _ hal.Fence) (hal.Texture, error) {
	if s.currentIndex >= 0 {
		return nil, hal.NewError(hal.InvalidOperation, "AcquireNext", fmt.Errorf("previous back buffer not yet presented"))
	}
	s.currentIndex = int(s.nextIndex % uint64(len(s.backBuffers)))
	s.nextIndex++
	if sem, ok := signalSem.(*Semaphore); ok && sem != nil {
		sem.valid = true
	}
	return s.backBuffers[s.currentIndex], nil
}

func (s *SwapChain) Present(_ []hal.Semaphore) error {
	if s.currentIndex < 0 {
		return hal.NewError(hal.InvalidOperation, "Present", fmt.Errorf("no back buffer acquired"))
	}
	s.currentIndex = -1
	return nil
}
