package universe

//Area is the dense representation of the grid, Entities[y][x] is true for a live cell
type Area struct {
	Width    int
	Height   int
	Entities [][]bool
}

//createArea allocate the new area backed by one slice
func createArea(width int, height int) Area {
	area := Area{Width: width, Height: height, Entities: make([][]bool, height)}
	b := make([]bool, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}

//Area returns the dense copy of the live set
func (w *World) Area() Area {
	a := createArea(w.width, w.height)
	for c := range w.live {
		a.Entities[c.Y][c.X] = true
	}
	return a
}

//cellNextState calculates the next state for the cell at x, y
func (a Area) cellNextState(x int, y int) bool {
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			if i == 0 && j == 0 {
				continue
			}
			nx := x + i
			ny := y + j
			//skip coordinates outside the area
			if nx < 0 || ny < 0 || nx >= a.Width || ny >= a.Height {
				continue
			}
			if a.Entities[ny][nx] {
				liveNeighbours++
			}
		}
	}
	return nextState(a.Entities[y][x], liveNeighbours)
}

//calcRows appends the live cells of rows y1..y2 of the next generation to next
func (a Area) calcRows(y1 int, y2 int, next []Cell) []Cell {
	for y := y1; y <= y2; y++ {
		for x := 0; x < a.Width; x++ {
			if a.cellNextState(x, y) {
				next = append(next, Cell{x, y})
			}
		}
	}
	return next
}

//nextScan walks the entire area, it is the reference for the other engines
func nextScan(w *World) CellSet {
	a := w.Area()
	return NewCellSet(a.calcRows(0, a.Height-1, nil)...)
}
