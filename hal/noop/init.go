package noop

import "github.com/ksgfk/radray-go/hal"

// init registers the noop backend with the hal registry.
func init() {
	hal.RegisterBackend(Driver{})
}
