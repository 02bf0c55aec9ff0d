package universe

import (
	"sort"
	"time"
)

//Cell is a position on the grid, 0 <= X < width and 0 <= Y < height
type Cell struct {
	X int
	Y int
}

//CellSet is the set of live cells, a cell is alive when it is present in the set
type CellSet map[Cell]struct{}

//Status represents the status of the World at concrete moment
type Status struct {
	Generation int
	LiveCells  int
	StepTime   time.Duration
}

//Snapshot is the read only view of the World passed to the renderers
//Live is shared with the World and must not be modified
type Snapshot struct {
	Width  int
	Height int
	Live   CellSet
	Status
}

//RandomSource is the Bernoulli trial used for the random seeding
//WeightedBool returns true with probability 1/oneIn
type RandomSource interface {
	WeightedBool(oneIn int) bool
}

//NewCellSet builds the set from the list of cells
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

//Contains reports whether the cell is alive
func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

//Equal reports whether both sets hold the same cells
func (s CellSet) Equal(o CellSet) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

//Sorted returns the cells ordered by row, then by column
func (s CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
