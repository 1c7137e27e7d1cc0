// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package allbackends imports every HAL backend implementation this module
// ships for side-effect registration:
//
//	import (
//		_ "github.com/ksgfk/radray-go/hal/allbackends"
//	)
//
// Today that is the no-op reference backend only — it runs on every
// platform and is what the test suite and cmd/triangle fall back to. A
// native D3D12, Vulkan, or Metal backend plugs into the same registration
// mechanism (hal.RegisterBackend / hal.RegisterBackendFactory) from its own
// init(); adding one is a matter of dropping its package here behind the
// appropriate //go:build tag, not changing this package's API.
//
// After importing, use hal.GetBackend or hal.SelectBestBackend to access
// registered drivers.
//
// Example usage:
//
//	import (
//		_ "github.com/ksgfk/radray-go/hal/allbackends"
//		"github.com/ksgfk/radray-go/hal"
//	)
//
//	func main() {
//		driver, err := hal.SelectBestBackend()
//		if err != nil {
//			panic(err)
//		}
//		device, err := driver.CreateDevice(&types.DeviceDescriptor{})
//		...
//	}
package allbackends
