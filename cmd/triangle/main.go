// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command triangle draws a single three-vertex triangle end to end
// through the RHI: device creation, shader modules, root signature,
// graphics pipeline state, a vertex/index upload, one render pass, and
// present. It runs against whatever backend hal.SelectBestBackend finds
// on the host, falling back to the in-memory noop backend so the whole
// pipeline can be exercised without a GPU or a window.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/ksgfk/radray-go/bindbridge"
	"github.com/ksgfk/radray-go/hal"
	_ "github.com/ksgfk/radray-go/hal/allbackends"
	"github.com/ksgfk/radray-go/hal/noop"
	"github.com/ksgfk/radray-go/shaderreflect"
	"github.com/ksgfk/radray-go/types"
)

const (
	frameWidth  = 800
	frameHeight = 600
)

// triangleVertices matches spec.md Testable Scenario 1's three clip-space
// positions, laid out as 3x float32 per vertex.
var triangleVertices = []float32{
	0, 0.5, 0,
	-0.5, -0.366, 0,
	0.5, -0.366, 0,
}

var triangleIndices = []uint16{0, 1, 2}

func main() {
	if err := run(); err != nil {
		fmt.Printf("FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("=== Triangle draw ===")

	fmt.Print("1. Selecting backend... ")
	driver, device, err := openDevice()
	if err != nil {
		return fmt.Errorf("opening device: %w", err)
	}
	defer device.Destroy()
	detail := device.Detail()
	fmt.Printf("OK (%s on %s)\n", detail.Backend, detail.AdapterName)

	fmt.Print("2. Uploading vertex and index buffers... ")
	vertexBuf, indexBuf, err := uploadGeometry(device)
	if err != nil {
		return fmt.Errorf("uploading geometry: %w", err)
	}
	defer vertexBuf.Destroy()
	defer indexBuf.Destroy()
	fmt.Println("OK")

	fmt.Print("3. Creating shader modules... ")
	category := shaderCategoryFor(driver.Variant())
	vs, ps, vsRefl, psRefl, err := createShaders(device, category)
	if err != nil {
		return fmt.Errorf("creating shader modules: %w", err)
	}
	defer vs.Destroy()
	defer ps.Destroy()
	fmt.Println("OK")

	fmt.Print("4. Classifying bindings and creating root signature... ")
	merged, err := shaderreflect.MergeHlslShaderDesc(vsRefl, psRefl)
	if err != nil {
		return fmt.Errorf("merging shader reflection: %w", err)
	}
	layout, err := bindbridge.ClassifyBindings(merged, "triangle")
	if err != nil {
		return fmt.Errorf("classifying bindings: %w", err)
	}
	rootSig, err := device.CreateRootSignature(layout.Descriptor)
	if err != nil {
		return fmt.Errorf("creating root signature: %w", err)
	}
	defer rootSig.Destroy()
	bridge := bindbridge.NewBridge(rootSig, layout)
	fmt.Printf("OK (cost %d/%d dwords)\n", layout.Descriptor.CostDwords(), types.RootSignatureBudgetDwords)

	fmt.Print("5. Creating graphics pipeline state... ")
	pso, err := device.CreateGraphicsPipelineState(&hal.GraphicsPipelineStateDescriptor{
		Label:         "triangle",
		RootSignature: rootSig,
		VertexShader:  vs,
		VertexEntry:   "VSMain",
		PixelShader:   ps,
		PixelEntry:    "PSMain",
		VertexBuffers: []types.VertexBufferLayout{
			{
				Stride:   3 * 4,
				StepMode: types.VertexStepModeVertex,
				Elements: []types.VertexElement{
					{Location: 0, Semantic: "POSITION", Format: types.VertexFormatFloat32x3},
				},
			},
		},
		Primitive: types.PrimitiveState{
			Topology:  types.PrimitiveTopologyTriangleList,
			FrontFace: types.FrontFaceCCW,
			CullMode:  types.CullModeNone,
		},
		ColorTargets: []types.ColorTargetState{
			{Format: types.PixelFormatRGBA8Unorm, WriteMask: types.ColorWriteMaskAll},
		},
	})
	if err != nil {
		return fmt.Errorf("creating graphics pipeline state: %w", err)
	}
	defer pso.Destroy()
	fmt.Println("OK")

	fmt.Print("6. Creating swap chain... ")
	queue := device.Queue(types.QueueTypeDirect, 0)
	swapChain, err := device.CreateSwapChain(&hal.SwapChainDescriptor{
		Label:           "triangle",
		PresentQueue:    queue,
		WindowHandle:    0,
		Width:           frameWidth,
		Height:          frameHeight,
		BackBufferCount: 2,
		Format:          types.PixelFormatRGBA8Unorm,
		Sync:            true,
	})
	if err != nil {
		return fmt.Errorf("creating swap chain: %w", err)
	}
	defer swapChain.Destroy()
	fmt.Println("OK")

	fmt.Print("7. Recording and submitting the frame... ")
	frameFence, err := device.CreateFence(&hal.FenceDescriptor{Label: "triangle-frame"})
	if err != nil {
		return fmt.Errorf("creating fence: %w", err)
	}
	defer frameFence.Destroy()

	backBuffer, err := swapChain.AcquireNext(nil, nil)
	if err != nil {
		return fmt.Errorf("acquiring back buffer: %w", err)
	}
	backBufferView, err := device.CreateTextureView(backBuffer, &types.TextureViewDescriptor{Format: types.PixelFormatRGBA8Unorm})
	if err != nil {
		return fmt.Errorf("creating back buffer view: %w", err)
	}
	defer backBufferView.Destroy()

	cmd, err := device.CreateCommandBuffer(queue, &hal.CommandBufferDescriptor{Label: "triangle"})
	if err != nil {
		return fmt.Errorf("creating command buffer: %w", err)
	}
	if err := cmd.Begin(); err != nil {
		return fmt.Errorf("beginning command buffer: %w", err)
	}

	encoder := cmd.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "triangle",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:  backBufferView,
				Load:  hal.LoadActionClear,
				Store: hal.StoreActionStore,
				Clear: types.ClearValue{Color: [4]float32{0, 0, 0, 1}},
			},
		},
	})
	encoder.SetViewport(hal.Viewport{Width: frameWidth, Height: frameHeight, MinDepth: 0, MaxDepth: 1})
	encoder.SetScissor(hal.ScissorRect{Width: frameWidth, Height: frameHeight})
	encoder.BindGraphicsPipelineState(pso)
	if err := bridge.Bind(device, encoder); err != nil {
		return fmt.Errorf("binding root signature: %w", err)
	}
	encoder.BindVertexBuffer(0, []hal.VertexBufferView{
		{Buffer: vertexBuf, Size: vertexBuf.Size(), Stride: 3 * 4},
	})
	encoder.BindIndexBuffer(hal.IndexBufferView{Buffer: indexBuf, Size: indexBuf.Size(), Format: types.IndexFormatUint16})
	encoder.DrawIndexed(uint32(len(triangleIndices)), 1, 0, 0, 0)
	encoder.EndPass()

	if err := cmd.End(); err != nil {
		return fmt.Errorf("ending command buffer: %w", err)
	}
	if err := queue.Submit(&hal.SubmitDescriptor{
		CommandBuffers: []hal.CommandBuffer{cmd},
		SignalFence:    frameFence,
	}); err != nil {
		return fmt.Errorf("submitting command buffer: %w", err)
	}
	if err := device.WaitFences([]hal.Fence{frameFence}, []uint64{1}, 0); err != nil {
		return fmt.Errorf("waiting for frame fence: %w", err)
	}
	if err := queue.Present(swapChain, nil); err != nil {
		return fmt.Errorf("presenting: %w", err)
	}
	fmt.Println("OK")

	fmt.Println("Triangle drawn and presented successfully.")
	return nil
}

// openDevice picks the best backend the host offers and opens a Device
// against it, falling back to the noop backend if the preferred one
// cannot actually open a device (no adapter, no driver).
func openDevice() (hal.BackendDriver, hal.Device, error) {
	driver, err := hal.SelectBestBackend()
	if err == nil {
		if device, err := driver.CreateDevice(&types.DeviceDescriptor{Label: "triangle"}); err == nil {
			return driver, device, nil
		}
	}

	noopDriver, ok := hal.GetBackend(types.BackendNone)
	if !ok {
		noopDriver = noop.Driver{}
	}
	device, err := noopDriver.CreateDevice(&types.DeviceDescriptor{Label: "triangle (noop fallback)"})
	if err != nil {
		return nil, nil, err
	}
	return noopDriver, device, nil
}

// uploadGeometry writes the triangle's vertex and index data into Upload
// buffers, then copies each into a Device-local buffer the pipeline
// reads from, per spec.md Testable Scenario 1.
func uploadGeometry(device hal.Device) (vertexBuf, indexBuf hal.Buffer, err error) {
	vertexBytes := float32SliceToBytes(triangleVertices)
	indexBytes := uint16SliceToBytes(triangleIndices)

	vertexUpload, err := device.CreateBuffer(&types.BufferDescriptor{
		Label: "triangle-vertices-upload",
		Size:  uint64(len(vertexBytes)),
		Type:  types.MemoryTypeUpload,
	})
	if err != nil {
		return nil, nil, err
	}
	defer vertexUpload.Destroy()
	if err := copyIntoBuffer(vertexUpload, vertexBytes); err != nil {
		return nil, nil, err
	}

	indexUpload, err := device.CreateBuffer(&types.BufferDescriptor{
		Label: "triangle-indices-upload",
		Size:  uint64(len(indexBytes)),
		Type:  types.MemoryTypeUpload,
	})
	if err != nil {
		return nil, nil, err
	}
	defer indexUpload.Destroy()
	if err := copyIntoBuffer(indexUpload, indexBytes); err != nil {
		return nil, nil, err
	}

	vertexBuf, err = device.CreateBuffer(&types.BufferDescriptor{
		Label: "triangle-vertices",
		Size:  uint64(len(vertexBytes)),
		Type:  types.MemoryTypeDevice,
		Usage: types.BufferUseVertex | types.BufferUseCopyDst,
	})
	if err != nil {
		return nil, nil, err
	}
	indexBuf, err = device.CreateBuffer(&types.BufferDescriptor{
		Label: "triangle-indices",
		Size:  uint64(len(indexBytes)),
		Type:  types.MemoryTypeDevice,
		Usage: types.BufferUseIndex | types.BufferUseCopyDst,
	})
	if err != nil {
		vertexBuf.Destroy()
		return nil, nil, err
	}

	queue := device.Queue(types.QueueTypeCopy, 0)
	if queue == nil {
		queue = device.Queue(types.QueueTypeDirect, 0)
	}
	cmd, err := device.CreateCommandBuffer(queue, &hal.CommandBufferDescriptor{Label: "triangle-upload"})
	if err != nil {
		return nil, nil, err
	}
	if err := cmd.Begin(); err != nil {
		return nil, nil, err
	}
	cmd.CopyBufferToBuffer(vertexUpload, vertexBuf, []hal.BufferCopy{{Size: uint64(len(vertexBytes))}})
	cmd.CopyBufferToBuffer(indexUpload, indexBuf, []hal.BufferCopy{{Size: uint64(len(indexBytes))}})
	if err := cmd.End(); err != nil {
		return nil, nil, err
	}
	if err := queue.Submit(&hal.SubmitDescriptor{CommandBuffers: []hal.CommandBuffer{cmd}}); err != nil {
		return nil, nil, err
	}
	if err := queue.Wait(); err != nil {
		return nil, nil, err
	}
	return vertexBuf, indexBuf, nil
}

func copyIntoBuffer(buf hal.Buffer, data []byte) error {
	mapped, err := buf.Map()
	if err != nil {
		return err
	}
	copy(mapped, data)
	buf.Unmap()
	return nil
}

func float32SliceToBytes(values []float32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		bits := uint32FromFloat32(v)
		out = append(out, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
	}
	return out
}

func uint16SliceToBytes(values []uint16) []byte {
	out := make([]byte, 0, len(values)*2)
	for _, v := range values {
		out = append(out, byte(v), byte(v>>8))
	}
	return out
}

func uint32FromFloat32(v float32) uint32 { return math.Float32bits(v) }

// shaderCategoryFor picks the blob encoding CreateShaderModule expects
// for the chosen backend: DXIL for D3D12, SPIR-V for Vulkan, MSL source
// for Metal.
func shaderCategoryFor(backend types.Backend) types.ShaderCategory {
	switch backend {
	case types.BackendD3D12:
		return types.ShaderCategoryDXIL
	case types.BackendMetal:
		return types.ShaderCategoryMSL
	default:
		return types.ShaderCategorySPIRV
	}
}

// createShaders builds the vertex and pixel ShaderModules plus their
// reflection records. The RHI never compiles HLSL itself (spec.md
// §4.4) — in a real build these blobs and reflection records come from
// a DXC/SPIRV-Cross front end; this example inlines a placeholder blob
// and a hand-written HlslShaderDesc matching the shader source below,
// since no bindings need resolving for a triangle with no constant
// buffers or textures.
func createShaders(device hal.Device, category types.ShaderCategory) (vs, ps hal.ShaderModule, vsRefl, psRefl *shaderreflect.HlslShaderDesc, err error) {
	vs, err = device.CreateShaderModule(&types.ShaderModuleDescriptor{
		Label:      "triangle-vs",
		Category:   category,
		Stage:      types.ShaderStageVertex,
		EntryPoint: "VSMain",
		Blob:       triangleShaderSource,
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ps, err = device.CreateShaderModule(&types.ShaderModuleDescriptor{
		Label:      "triangle-ps",
		Category:   category,
		Stage:      types.ShaderStagePixel,
		EntryPoint: "PSMain",
		Blob:       triangleShaderSource,
	})
	if err != nil {
		vs.Destroy()
		return nil, nil, nil, nil, err
	}

	vsRefl = &shaderreflect.HlslShaderDesc{
		Stage: types.ShaderStageVertex,
		VertexInputs: []shaderreflect.VertexInput{
			{Semantic: "POSITION", Register: 0, ComponentType: shaderreflect.ScalarBaseFloat, Mask: 0b0111},
		},
	}
	psRefl = &shaderreflect.HlslShaderDesc{Stage: types.ShaderStagePixel}
	return vs, ps, vsRefl, psRefl, nil
}

// triangleShaderSource is the HLSL this example's vertex/pixel stages
// compile from. It reads no constant buffers or textures — vertex color
// comes entirely from the vertex ID, so the root signature carries no
// bindings, matching spec.md Testable Scenario 1.
var triangleShaderSource = []byte(`
static const float3 g_Color[3] = {
    float3(1, 0, 0),
    float3(0, 1, 0),
    float3(0, 0, 1),
};

struct VSOut {
    float4 position : SV_Position;
    float3 color : COLOR0;
};

VSOut VSMain(float3 position : POSITION, uint vertId : SV_VertexID) {
    VSOut o;
    o.position = float4(position, 1);
    o.color = g_Color[vertId % 3];
    return o;
}

float4 PSMain(VSOut input) : SV_Target {
    return float4(input.color, 1);
}
`)
