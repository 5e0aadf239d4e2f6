// Package parallel provides chunked parallel loops for kernels.
package parallel

import (
	"github.com/born-ml/dispatch/internal/config"
	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Ranges shorter than this run on the caller's goroutine.
}

// DefaultConfig returns the configuration from BORN_NUM_THREADS,
// BORN_PARALLEL_MIN and BORN_SEQUENTIAL.
func DefaultConfig() Config {
	n := config.Threads()
	return Config{
		Enabled:      n > 1 && !config.Sequential(),
		NumWorkers:   n,
		MinChunkSize: max(int(config.ParallelMin()), 1),
	}
}

// For calls f on consecutive chunks [lo, hi) covering [0, n). Chunks run
// concurrently on at most cfg.NumWorkers goroutines. The first error is
// returned after every started chunk finishes.
func For(n int, cfg Config, f func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		return f(0, n)
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error { return f(lo, hi) })
	}
	return g.Wait()
}

// Range is For for chunk functions that cannot fail.
func Range(n int, cfg Config, f func(lo, hi int)) {
	_ = For(n, cfg, func(lo, hi int) error {
		f(lo, hi)
		return nil
	})
}
