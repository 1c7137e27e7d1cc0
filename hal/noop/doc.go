// Package noop is an in-memory reference backend for package hal. It
// performs no GPU work: every resource is a bookkeeping struct, every
// command a no-op, every fence a pair of flags: Submit marks a fence
// submitted and not yet complete, and Fence.Wait or Device.WaitFences
// marks it complete. It exists so hal's state machine, bind bridge, and swap-chain
// ring logic can be exercised in tests without a native driver.
//
// The backend is identified as types.BackendNone.
package noop
