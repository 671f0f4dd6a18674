/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractcore

import (
	"runtime"
	"sync"
)

// resolveWorkers applies the §5 "runtime.GOMAXPROCS workers by default,
// overridable via config" rule.
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}
	return runtime.GOMAXPROCS(0)
}

// forEachPage runs fn(workerIdx, page) for every entry in pages over a
// fixed pool of workers goroutines, waiting for every call to finish
// before returning (§5 "embarrassingly-parallel-per-page allowed"). Each
// worker's index is stable for the lifetime of the call, so the caller
// can hand every slot its own *backend.Document and never share a
// model.PdfReader across goroutines (§5 "the PDF backend adapter is
// created once per worker").
func forEachPage(workers int, pages []int, fn func(workerIdx, page int)) {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				fn(w, p)
			}
		}()
	}
	for _, p := range pages {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
}
