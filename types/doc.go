// Package types defines the backend-agnostic value types shared by the
// render hardware interface: backend and device identity, resource
// descriptors (buffers, textures, views, samplers), fixed-function
// pipeline state, shader stage and binding-kind tags, and device limits.
//
// Nothing in this package depends on a specific backend; hal and the
// backend packages translate these into D3D12, Vulkan, or Metal native
// equivalents.
package types
