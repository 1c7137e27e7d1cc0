package noop

import "github.com/ksgfk/radray-go/hal"

// Fence is a noop synchronization primitive. Unlike a real GPU, the
// noop backend has no asynchronous device timeline to observe
// completion on, so it treats the act of waiting as the thing that
// finalizes a submission: Submit marks the fence submitted but not yet
// complete, and Wait (the only operation a real caller could use to
// learn completion happened) flips it to Complete. GetStatus is
// otherwise a pure read and never blocks.
type Fence struct {
	base
	submitted bool
	complete  bool
}

func (f *Fence) GetStatus() hal.FenceStatus {
	switch {
	case !f.submitted:
		return hal.FenceStatusNotSubmitted
	case f.complete:
		return hal.FenceStatusComplete
	default:
		return hal.FenceStatusIncomplete
	}
}

func (f *Fence) Wait(_ uint64) error {
	f.complete = true
	return nil
}

func (f *Fence) signal() {
	f.submitted = true
	f.complete = false
}
