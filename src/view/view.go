package view

import (
	"bytes"
	"fmt"

	"github.com/logrusorgru/aurora"

	"termlife/src/loop"
	"termlife/src/universe"
)

const (
	AliveGlyph = "▪"
	DeadGlyph  = " "
)

//View is the renderer which also owns the keyboard
type View interface {
	loop.Renderer
	//FieldSize returns the number of cells the view can display
	FieldSize() (width int, height int)
	//Start starts the keyboard producer pushing to q, returns immediately
	Start(q *loop.Queue) error
	//Close stops the keyboard producer and restores the terminal
	Close()
}

type keyBinding struct {
	key   rune
	name  string
	descr string
}

var keyBindings = []keyBinding{
	{'q', "Q", "Quit"},
	{'g', "G", "Generate"},
	{'n', "N", "Next step"},
	{'a', "A", "Auto-run"},
	{'s', "S", "Stop"},
}

//helpLine lists the key bindings
func helpLine(colored bool) string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	for i, k := range keyBindings {
		if i != 0 {
			b.WriteString(", ")
		}
		if colored {
			b.WriteString(aurora.Green(k.name).String())
		} else {
			b.WriteString(k.name)
		}
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

//fieldText draws the cells of the frame cropped to maxW x maxH
//when the frame does not fit, the last visible line is replaced by a warning
func fieldText(f loop.Frame, maxW int, maxH int, alive string, dead string) string {
	crop := f.Width > maxW || f.Height > maxH
	var b bytes.Buffer
	for y := 0; y < f.Height; y++ {
		//discard the data outside the view area
		if y >= maxH {
			break
		}
		//line feed char
		if y != 0 {
			b.WriteByte(10)
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for x := 0; x < f.Width && x < maxW; x++ {
			if f.Live.Contains(universe.Cell{X: x, Y: y}) {
				b.WriteString(alive)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

func modeDescr(auto bool) string {
	if auto {
		return aurora.Colorize("auto-run", aurora.CyanFg).String()
	}
	return aurora.Colorize("manual", aurora.BlueFg).String()
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}
