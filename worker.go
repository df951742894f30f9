package main

import (
	"image"
	"runtime"
	"sync"
)

// workerRows collects the rows assigned to one fill goroutine.
type workerRows struct {
	rows []int
}

// assignRows distributes image rows across workers in round robin fashion.
func assignRows(workerCount, minY, maxY int) []workerRows {
	if workerCount < 1 {
		workerCount = 1
	}
	if n := maxY - minY; n > 0 && workerCount > n {
		workerCount = n
	}
	masks := make([]workerRows, workerCount)
	for y := minY; y < maxY; y++ {
		idx := (y - minY) % workerCount
		masks[idx].rows = append(masks[idx].rows, y)
	}
	return masks
}

// defaultWorkerCount is the fill parallelism used when none is requested.
func defaultWorkerCount() int {
	return runtime.NumCPU()
}

// fillAurora runs the per-pixel pass over the whole canvas. Every row is
// written by exactly one goroutine, so the result does not depend on
// workerCount.
func fillAurora(img *image.RGBA, workerCount int) {
	b := img.Bounds()
	masks := assignRows(workerCount, b.Min.Y, b.Max.Y)
	if len(masks) == 1 {
		for _, y := range masks[0].rows {
			fillRow(img, y)
		}
		return
	}
	var wg sync.WaitGroup
	for i := range masks {
		wg.Add(1)
		go func(mask workerRows) {
			defer wg.Done()
			for _, y := range mask.rows {
				fillRow(img, y)
			}
		}(masks[i])
	}
	wg.Wait()
}
