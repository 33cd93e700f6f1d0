package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 10000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForRows(t *testing.T) {
	cfg := DefaultConfig()

	rows, cols := 256, 64
	visited := make([]int64, rows)

	ForRows(rows, cols, func(i int) {
		atomic.AddInt64(&visited[i], 1)
	}, cfg)

	for i, n := range visited {
		if n != 1 {
			t.Errorf("Row %d visited %d times, want 1", i, n)
		}
	}
}

func TestForRows_SmallMatrix(t *testing.T) {
	// rows*cols below the threshold runs sequentially and still covers
	// every row exactly once.
	cfg := DefaultConfig()

	rows, cols := 7, 3
	visited := make([]int64, rows)

	ForRows(rows, cols, func(i int) {
		visited[i]++
	}, cfg)

	for i, n := range visited {
		if n != 1 {
			t.Errorf("Row %d visited %d times, want 1", i, n)
		}
	}
}

func BenchmarkForRows(b *testing.B) {
	cfg := DefaultConfig()
	rows, cols := 1024, 1024

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			ForRows(rows, cols, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			ForRows(rows, cols, func(i int) {
				sum += int64(i)
			}, cfgSeq)
		}
	})
}
