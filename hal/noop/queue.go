package noop

import (
	"fmt"

	"github.com/ksgfk/radray-go/hal"
	"github.com/ksgfk/radray-go/types"
)

// Queue is a noop command queue. Submit executes nothing but still
// drives the CommandBuffer state machine and fence signalling so
// callers can exercise real control flow against it.
type Queue struct {
	device *Device
	qtype  types.QueueType
}

func (q *Queue) Type() types.QueueType { return q.qtype }

func (q *Queue) Submit(desc *hal.SubmitDescriptor) error {
	for _, cb := range desc.CommandBuffers {
		nc, ok := cb.(*CommandBuffer)
		if !ok {
			return hal.NewError(hal.InvalidArgument, "Submit", fmt.Errorf("command buffer not created by this backend"))
		}
		if nc.state != hal.CommandBufferStateExecutable {
			panic(fmt.Sprintf("noop: Submit called with command buffer in state %v, want Executable", nc.state))
		}
		nc.state = hal.CommandBufferStatePending
	}
	for _, sem := range desc.SignalSems {
		if s, ok := sem.(*Semaphore); ok {
			s.valid = true
		}
	}
	if desc.SignalFence != nil {
		if f, ok := desc.SignalFence.(*Fence); ok {
			f.signal()
		}
	}
	return nil
}

func (q *Queue) Wait() error { return nil }

func (q *Queue) Present(sc hal.SwapChain, waitSems []hal.Semaphore) error {
	return sc.Present(waitSems)
}
