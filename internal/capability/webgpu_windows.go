//go:build windows

package capability

import "github.com/go-webgpu/webgpu/wgpu"

// webGPUAvailable reports whether a WebGPU adapter can be requested.
func webGPUAvailable() (available bool) {
	// The native library panics on load when wgpu_native is missing.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return false
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}
