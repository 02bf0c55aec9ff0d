package universe

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

//DefOneIn is the default seeding density: one live cell out of DefOneIn
const DefOneIn = 30

var ErrUnknownEngine = errors.New("unknown engine")

//Engine computes the next generation of the World without modifying it
type Engine func(w *World) CellSet

var engines = map[string]Engine{
	"sparse":   nextSparse,
	"scan":     nextScan,
	"parallel": nextParallel,
}

//EngineNames returns the names of all registered engines, sorted
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//World is the bounded, non-toroidal grid and the set of its live cells
//the World is not safe for concurrent use, it is owned by the single control goroutine
type World struct {
	width  int
	height int
	live   CellSet
	rnd    RandomSource
	engine string
	next   Engine
	status Status
}

//NewWorld creates an empty World using the sparse engine
//dimensions below 1 are raised to 1
func NewWorld(width int, height int, rnd RandomSource) *World {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &World{
		width:  width,
		height: height,
		live:   CellSet{},
		rnd:    rnd,
		engine: "sparse",
		next:   nextSparse,
	}
}

//SetEngine switches the transition engine by name
func (w *World) SetEngine(name string) error {
	e, ok := engines[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownEngine, name)
	}
	w.engine = name
	w.next = e
	return nil
}

func (w *World) Engine() string {
	return w.engine
}

func (w *World) Width() int {
	return w.width
}

func (w *World) Height() int {
	return w.height
}

//Live returns the current live set, it must not be modified
func (w *World) Live() CellSet {
	return w.live
}

func (w *World) Status() Status {
	return w.status
}

//Snapshot returns the current state for rendering
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Width:  w.width,
		Height: w.height,
		Live:   w.live,
		Status: w.status,
	}
}

//Seed replaces the live set with random data
//every cell of the grid, row and column 0 included, is alive with probability 1/oneIn
func (w *World) Seed(oneIn int) {
	live := CellSet{}
	for x := 0; x < w.width; x++ {
		for y := 0; y < w.height; y++ {
			if w.rnd.WeightedBool(oneIn) {
				live[Cell{x, y}] = struct{}{}
			}
		}
	}
	w.reset(live)
}

//Load replaces the live set with the given cells, cells outside the grid are dropped
func (w *World) Load(cells []Cell) {
	live := make(CellSet, len(cells))
	for _, c := range cells {
		if w.inside(c) {
			live[c] = struct{}{}
		}
	}
	w.reset(live)
}

//LoadTemplate places the template in the middle of the grid
func (w *World) LoadTemplate(t Template) {
	tw, th := t.Size()
	ox, oy := (w.width-tw)/2, (w.height-th)/2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}
	w.Load(t.Cells(ox, oy))
}

//Neighbors returns the in-bounds cells adjacent to c, 3 for a corner, 5 for an edge and 8 inside
func (w *World) Neighbors(c Cell) CellSet {
	n := make(CellSet, 8)
	w.walkNeighbors(c, func(nc Cell) {
		n[nc] = struct{}{}
	})
	return n
}

//Step computes the next generation and replaces the live set
func (w *World) Step() {
	start := time.Now()
	w.live = w.next(w)
	w.status.Generation++
	w.status.LiveCells = len(w.live)
	w.status.StepTime = time.Since(start)
}

func (w *World) reset(live CellSet) {
	w.live = live
	w.status = Status{LiveCells: len(live)}
}

func (w *World) inside(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < w.width && c.Y < w.height
}

//walkNeighbors calls cb for every in-bounds neighbor of c
func (w *World) walkNeighbors(c Cell, cb func(nc Cell)) {
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nc := Cell{c.X + i, c.Y + j}
			if !w.inside(nc) {
				continue
			}
			cb(nc)
		}
	}
}

//liveNeighbors counts the live cells around c
func (w *World) liveNeighbors(c Cell) (n int) {
	w.walkNeighbors(c, func(nc Cell) {
		if w.live.Contains(nc) {
			n++
		}
	})
	return
}

//nextState is the B3/S23 rule
func nextState(alive bool, liveNeighbors int) bool {
	return liveNeighbors == 3 || (alive && liveNeighbors == 2)
}

//nextSparse visits only the live cells and their dead neighbors
//cells outside this neighborhood have no live neighbor and stay dead
func nextSparse(w *World) CellSet {
	next := make(CellSet, len(w.live))
	visited := make(CellSet, len(w.live)*4)
	for c := range w.live {
		if nextState(true, w.liveNeighbors(c)) {
			next[c] = struct{}{}
		}
		w.walkNeighbors(c, func(nc Cell) {
			if w.live.Contains(nc) || visited.Contains(nc) {
				return
			}
			visited[nc] = struct{}{}
			if nextState(false, w.liveNeighbors(nc)) {
				next[nc] = struct{}{}
			}
		})
	}
	return next
}
