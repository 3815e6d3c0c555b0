package main

import (
	"sync"

	"honnef.co/go/lineclip"
)

// result holds both clippings of one input segment.
type result struct {
	cohen      lineclip.Segment
	cohenOK    bool
	midpoint   lineclip.Segment
	midpointOK bool
}

// clipAll clips every segment with both algorithms using up to workers
// goroutines. Results are in input order.
func clipAll(w lineclip.Window, segs []lineclip.Segment, tolerance float64, workers int) []result {
	results := make([]result, len(segs))
	if workers < 1 {
		workers = 1
	}
	workers = min(workers, len(segs))

	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range idx {
				s := segs[i]
				r := &results[i]
				r.cohen, r.cohenOK = w.ClipCohenSutherland(s.P0, s.P1)
				r.midpoint, r.midpointOK = w.ClipMidpoint(s.P0, s.P1, tolerance)
			}
		}()
	}
	for i := range segs {
		idx <- i
	}
	close(idx)
	wg.Wait()
	return results
}
