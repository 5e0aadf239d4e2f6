// Package capability reports which scalar types the running platform can
// execute, independently of which types a kernel accepts.
package capability

import (
	"log/slog"
	"sync"

	"github.com/born-ml/dispatch/internal/config"
	"github.com/born-ml/dispatch/internal/scalar"
	"golang.org/x/sys/cpu"
)

// Platform is an immutable set of platform capabilities.
type Platform struct {
	// BFloat16 is true when bfloat16 arithmetic is available natively.
	BFloat16 bool
	// Source records how the BFloat16 capability was decided.
	Source string
}

// Supports reports whether t can run on the platform.
// Only BFloat16 is gated; every other type is always available.
func (p Platform) Supports(t scalar.ScalarType) bool {
	if t == scalar.BFloat16 {
		return p.BFloat16
	}
	return true
}

// All returns a platform that supports every scalar type.
func All() Platform {
	return Platform{BFloat16: true, Source: "forced"}
}

// Baseline returns a platform without optional capabilities.
func Baseline() Platform {
	return Platform{Source: "baseline"}
}

// Detect probes the running platform. BORN_BFLOAT16 overrides detection.
func Detect() Platform {
	if enabled, ok := config.BFloat16(); ok {
		p := Platform{BFloat16: enabled, Source: "BORN_BFLOAT16"}
		slog.Debug("capability: bfloat16 forced", "enabled", enabled)
		return p
	}

	if cpu.X86.HasAVX512BF16 {
		slog.Debug("capability: bfloat16 via avx512_bf16")
		return Platform{BFloat16: true, Source: "avx512_bf16"}
	}

	if webGPUAvailable() {
		slog.Debug("capability: bfloat16 via webgpu adapter")
		return Platform{BFloat16: true, Source: "webgpu"}
	}

	slog.Debug("capability: bfloat16 unavailable")
	return Baseline()
}

var detected = sync.OnceValue(Detect)

// Default returns the platform detected on first use.
func Default() Platform {
	return detected()
}
