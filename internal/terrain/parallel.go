package terrain

import (
	"runtime"
	"sync"
)

// forEachRow runs fn for every row index, fanning out across at most workers
// goroutines. Rows write disjoint cells, so no synchronization beyond the
// final wait is needed. Stochastic passes must not go through here: they
// consume a single RNG stream in row-major order.
func forEachRow(height, workers int, fn func(row int)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers <= 1 || height <= 1 {
		for row := 0; row < height; row++ {
			fn(row)
		}
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for row := 0; row < height; row++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(row int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(row)
		}(row)
	}
	wg.Wait()
}
