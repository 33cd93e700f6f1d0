// Package parallel provides chunked parallel execution for the lazymat
// library.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per sweep to justify goroutine overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096, // Below this, goroutine overhead dominates cell reads.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

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

// ForRows executes f(i) for each row i in [0, rows), chunking whole rows
// across workers. cols feeds only the work-size estimate: a sweep of
// fewer than MinChunkSize cells runs sequentially.
func ForRows(rows, cols int, f func(i int), cfg Config) {
	if !cfg.Enabled || rows == 1 || rows*cols < cfg.MinChunkSize {
		for i := 0; i < rows; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((rows+cfg.NumWorkers-1)/cfg.NumWorkers, 1)

	for start := 0; start < rows; start += chunkSize {
		end := min(start+chunkSize, rows)
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
