package noop_test

import (
	"testing"

	"github.com/ksgfk/radray-go/hal"
	_ "github.com/ksgfk/radray-go/hal/noop"
	"github.com/ksgfk/radray-go/types"
)

func openDevice(t *testing.T) hal.Device {
	t.Helper()
	backend, ok := hal.GetBackend(types.BackendNone)
	if !ok {
		t.Fatal("noop backend not registered")
	}
	device, err := backend.CreateDevice(&types.DeviceDescriptor{Backend: types.BackendNone})
	if err != nil {
		t.Fatalf("CreateDevice failed: %v", err)
	}
	return device
}

func TestDeviceDetail(t *testing.T) {
	device := openDevice(t)
	defer device.Destroy()

	detail := device.Detail()
	if detail.Backend != types.BackendNone {
		t.Errorf("Backend = %v, want BackendNone", detail.Backend)
	}
	if !detail.IsUMA {
		t.Error("noop device should report IsUMA=true")
	}
}

func TestDeviceQueuesPerType(t *testing.T) {
	device := openDevice(t)
	defer device.Destroy()

	for _, qt := range []types.QueueType{types.QueueTypeDirect, types.QueueTypeCompute, types.QueueTypeCopy} {
		q := device.Queue(qt, 0)
		if q == nil {
			t.Fatalf("Queue(%v, 0) = nil, want a queue", qt)
		}
		if q.Type() != qt {
			t.Errorf("Queue(%v, 0).Type() = %v, want %v", qt, q.Type(), qt)
		}
	}

	if q := device.Queue(types.QueueTypeDirect, 1); q != nil {
		t.Error("Queue(Direct, 1) should be nil: only one queue was opened per type")
	}
}

func TestCreateBufferZeroSize(t *testing.T) {
	device := openDevice(t)
	defer device.Destroy()

	_, err := device.CreateBuffer(&types.BufferDescriptor{Size: 0})
	if !hal.IsKind(err, hal.InvalidArgument) {
		t.Errorf("CreateBuffer with size=0 should fail InvalidArgument, got: %v", err)
	}
}

func TestBufferMapUnmap(t *testing.T) {
	device := openDevice(t)
	defer device.Destroy()

	buf, err := device.CreateBuffer(&types.BufferDescriptor{Size: 64, Type: types.MemoryTypeUpload})
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}
	defer buf.Destroy()

	data, err := buf.Map()
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if len(data) != 64 {
		t.Errorf("Map returned %d bytes, want 64", len(data))
	}
	data[0] = 0xAB
	buf.Unmap()

	data2, _ := buf.Map()
	if data2[0] != 0xAB {
		t.Error("Map should return the same backing storage across calls")
	}
}

func TestCommandBufferStateMachine(t *testing.T) {
	device := openDevice(t)
	defer device.Destroy()

	queue := device.Queue(types.QueueTypeDirect, 0)
	cb, err := device.CreateCommandBuffer(queue, &hal.CommandBufferDescriptor{})
	if err != nil {
		t.Fatalf("CreateCommandBuffer failed: %v", err)
	}

	if cb.State() != hal.CommandBufferStateInitial {
		t.Fatalf("initial state = %v, want Initial", cb.State())
	}

	if err := cb.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if cb.State() != hal.CommandBufferStateRecording {
		t.Fatalf("state after Begin = %v, want Recording", cb.State())
	}

	enc := cb.BeginRenderPass(&hal.RenderPassDescriptor{})
	if cb.State() != hal.CommandBufferStateRecordingPass {
		t.Fatalf("state after BeginRenderPass = %v, want RecordingPass", cb.State())
	}
	enc.EndPass()
	if cb.State() != hal.CommandBufferStateRecording {
		t.Fatalf("state after EndPass = %v, want Recording", cb.State())
	}

	if err := cb.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if cb.State() != hal.CommandBufferStateExecutable {
		t.Fatalf("state after End = %v, want Executable", cb.State())
	}
}

func TestCommandBufferEndWithOpenPassPanics(t *testing.T) {
	device := openDevice(t)
	defer device.Destroy()

	queue := device.Queue(types.QueueTypeDirect, 0)
	cb, _ := device.CreateCommandBuffer(queue, &hal.CommandBufferDescriptor{})
	cb.Begin()

	defer func() {
		if recover() == nil {
			t.Fatal("End while a render pass is open should panic")
		}
	}()

	cb.BeginRenderPass(&hal.RenderPassDescriptor{})
	_ = cb.End()
}

func TestFenceLifecycle(t *testing.T) {
	device := openDevice(t)
	defer device.Destroy()

	queue := device.Queue(types.QueueTypeDirect, 0)
	fence, err := device.CreateFence(&hal.FenceDescriptor{})
	if err != nil {
		t.Fatalf("CreateFence failed: %v", err)
	}

	if fence.GetStatus() != hal.FenceStatusNotSubmitted {
		t.Fatalf("status before submit = %v, want NotSubmitted", fence.GetStatus())
	}

	cb, _ := device.CreateCommandBuffer(queue, &hal.CommandBufferDescriptor{})
	cb.Begin()
	cb.End()

	if err := queue.Submit(&hal.SubmitDescriptor{
		CommandBuffers: []hal.CommandBuffer{cb},
		SignalFence:    fence,
	}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if fence.GetStatus() != hal.FenceStatusIncomplete {
		t.Fatalf("status immediately after submit = %v, want Incomplete", fence.GetStatus())
	}

	if err := fence.Wait(0); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if fence.GetStatus() != hal.FenceStatusComplete {
		t.Fatalf("status after wait = %v, want Complete", fence.GetStatus())
	}
}

func TestSwapChainRingOfTwo(t *testing.T) {
	device := openDevice(t)
	defer device.Destroy()

	sc, err := device.CreateSwapChain(&hal.SwapChainDescriptor{
		Width:           640,
		Height:          480,
		BackBufferCount: 2,
		Format:          types.PixelFormatRGBA8Unorm,
	})
	if err != nil {
		t.Fatalf("CreateSwapChain failed: %v", err)
	}
	defer sc.Destroy()

	want := []uint32{0, 1, 0, 1}
	for i, w := range want {
		if _, err := sc.AcquireNext(nil, nil); err != nil {
			t.Fatalf("AcquireNext #%d failed: %v", i, err)
		}
		if got := sc.CurrentBackBufferIndex(); got != w {
			t.Errorf("cycle %d: CurrentBackBufferIndex() = %d, want %d", i, got, w)
		}
		if err := sc.Present(nil); err != nil {
			t.Fatalf("Present #%d failed: %v", i, err)
		}
	}
}
