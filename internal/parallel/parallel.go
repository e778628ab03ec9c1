// Package parallel fans independent per-sample work out over goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config decides how a batch of samples is split across goroutines.
type Config struct {
	Enabled      bool // false runs every sample on the calling goroutine
	NumWorkers   int  // upper bound on concurrent chunks
	MinChunkSize int  // fewest samples handed to one goroutine
}

// DefaultConfig sizes the pool to the machine's CPUs.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16, // A forward pass per item is already sizeable work.
	}
}

// For executes f(i) for i in [0, n), splitting the range into contiguous
// chunks when parallelism is enabled and n is large enough.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForErr is For with a fallible body. Every index runs; the error for the
// lowest failing index is returned.
func ForErr(n int, f func(i int) error, cfg Config) error {
	errs := make([]error, n)
	For(n, func(i int) {
		errs[i] = f(i)
	}, cfg)
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
