// Package hal is the Render Hardware Interface: a thin, uniform
// abstraction over Direct3D 12, Vulkan, and Metal that hides backend
// differences behind a single capability surface for an
// application-level renderer.
//
// # Architecture
//
// A caller describes resources (buffers, textures, views, samplers),
// pipelines (shaders, root signatures, graphics/compute PSOs), and work
// (command buffers encoded as render/compute passes, submitted on
// queues, synchronized by fences and semaphores); hal translates each
// call into the equivalent concepts of the chosen backend:
//
//  1. BackendDriver - factory registered per backend; selects an
//     adapter and opens a Device (entry point)
//  2. Device - logical GPU; owns queues, is the sole resource factory
//  3. Queue - command submission and presentation
//  4. CommandBuffer / GraphicsCommandEncoder / ComputeCommandEncoder -
//     command recording, gated by the state machine in command.go
//  5. RootSignature / DescriptorSet - the bind bridge's backend output;
//     see package bindbridge for the classification algorithm that
//     produces a RootSignatureDescriptor from shader reflection
//  6. SwapChain - back-buffer ring, acquire/present, resize
//
// # Object model
//
// Every GPU object implements Resource: Destroy is idempotent, and
// IsValid goes false exactly once. SwapChain owns its back-buffer
// Textures; callers may read them but must never Destroy them
// directly. DescriptorSets hold non-owning references to the views
// they bind — the caller guarantees those views outlive any submitted
// work that uses the set, typically via a Fence.
//
// # Error handling
//
// Every fallible hal call returns a *Error carrying one of a closed
// set of ErrorKinds (InvalidArgument, InvalidOperation,
// ResourceExhausted, DeviceLost, NotSupported, BackendError). State
// machine violations — drawing outside a pass, reusing a destroyed
// resource — are programmer errors and panic instead; they have no
// recovery path.
//
// # Backend registration
//
// Backend packages register themselves via RegisterBackend (or
// RegisterBackendFactory when construction can fail) from their own
// init():
//
//	backend, ok := hal.GetBackend(types.BackendVulkan)
//	if !ok {
//		return fmt.Errorf("vulkan backend not available")
//	}
//	device, err := backend.CreateDevice(desc)
//
// # Thread safety
//
// Unless stated otherwise, hal interfaces are not thread-safe;
// synchronization across Queues and CommandBuffers is the caller's
// responsibility via Fences and Semaphores. Backend registration
// (RegisterBackend, GetBackend, AvailableBackends) is thread-safe.
package hal
