package universe

import (
	"errors"
	"sort"
)

var ErrUnknownTemplate = errors.New("unknown template")

//Template represent the seeding template which can used to settle the world with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

var templates = map[string]Template{
	"block": {
		"block",
		"still life, 2x2 square",
		[][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	"blinker": {
		"blinker",
		"period 2 oscillator",
		[][]int{{0, 0}, {1, 0}, {2, 0}},
	},
	"glider": {
		"glider",
		"moves one cell diagonally every 4 generations",
		[][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	"sample": {
		"sample",
		"the test sample with 3 stable patterns",
		[][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
	},
}

//LookupTemplate returns the template registered with the name
func LookupTemplate(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

//TemplateNames returns the names of all built in templates, sorted
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for k := range templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//Size returns the bounding box of the template
func (t Template) Size() (width int, height int) {
	for _, v := range t.Coordinates {
		if v[0]+1 > width {
			width = v[0] + 1
		}
		if v[1]+1 > height {
			height = v[1] + 1
		}
	}
	return
}

//Cells returns the template coordinates shifted by ox, oy
func (t Template) Cells(ox int, oy int) []Cell {
	cells := make([]Cell, 0, len(t.Coordinates))
	for _, v := range t.Coordinates {
		if len(v) < 2 {
			continue
		}
		cells = append(cells, Cell{v[0] + ox, v[1] + oy})
	}
	return cells
}
