//go:build !windows

package capability

// webGPUAvailable is false where the WebGPU backend is not built.
func webGPUAvailable() bool {
	return false
}
