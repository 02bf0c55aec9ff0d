package universe

import (
	"sync"
)

/*
	Engine with multithreaded computation
	the area is split into row bands each of which is computed by individual goroutine
*/

const (
	DefWorkers          = 10 //default workers
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

//band is the rows range y1..y2 computed by one worker
type band struct {
	y1   int
	y2   int
	live []Cell
}

//splitBands splits height rows to at most workers bands
func splitBands(height int, workers int) []band {
	linesPerWorker := height / workers
	if linesPerWorker < DefMinRowsPerWorker {
		linesPerWorker = DefMinRowsPerWorker
	} else if linesPerWorker*workers < height {
		linesPerWorker++
	}
	bands := make([]band, 0, workers)
	for y1 := 0; y1 < height; y1 += linesPerWorker {
		y2 := y1 + linesPerWorker - 1
		if y2 > height-1 {
			y2 = height - 1
		}
		bands = append(bands, band{y1: y1, y2: y2})
	}
	return bands
}

//nextParallel starts one goroutine per band, waits for all of them and joins the results
func nextParallel(w *World) CellSet {
	a := w.Area()
	bands := splitBands(a.Height, DefWorkers)
	var waitGroup sync.WaitGroup
	for i := range bands {
		b := &bands[i]
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			b.live = a.calcRows(b.y1, b.y2, nil)
		}()
	}
	waitGroup.Wait()
	next := make(CellSet, len(w.live))
	for _, b := range bands {
		for _, c := range b.live {
			next[c] = struct{}{}
		}
	}
	return next
}
