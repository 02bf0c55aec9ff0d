package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/gosuri/uilive"

	"termlife/src/loop"
	"termlife/src/universe"
)

//default console field size
const (
	DefWidth  = 40
	DefHeight = 15
)

//console glyphs are single byte, uilive counts the line width in bytes
const (
	consoleAlive = "#"
	consoleDead  = "."
)

//Console draws the frames in place with uilive and reads the keys from a line buffered input
//it is meant for terminals without raw mode and for scripted runs
type Console struct {
	out       io.Writer
	w         *uilive.Writer
	keys      loop.KeySource
	o         universe.Options
	last      loop.Frame
	startTime time.Time
}

//NewConsole creates the console view, zero dimensions in o fall back to DefWidth x DefHeight
func NewConsole(out io.Writer, in io.Reader, o universe.Options) *Console {
	w := uilive.New()
	w.Out = out
	if o.Width == 0 {
		o.Width = DefWidth
	}
	if o.Height == 0 {
		o.Height = DefHeight
	}
	return &Console{
		out:  out,
		w:    w,
		keys: loop.NewReaderKeys(in),
		o:    o,
	}
}

func (c *Console) FieldSize() (int, int) {
	return c.o.Width, c.o.Height
}

//Start prints the configuration and starts reading the keys
func (c *Console) Start(q *loop.Queue) error {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.out, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension": fmt.Sprintf("%v x %v", c.o.Width, c.o.Height),
		"Interval":  c.o.Interval,
		"Density":   fmt.Sprintf("1 in %v", c.o.OneIn),
		"Engine":    c.o.Engine,
	})
	_, _ = fmt.Fprintln(c.out, helpLine(false)+" (press Enter after the keys)")
	go loop.Keyboard(q, c.keys)
	return nil
}

//Render redraws the frame over the previous one
func (c *Console) Render(f loop.Frame) error {
	c.last = f
	mode := "manual"
	if f.Auto {
		mode = "auto-run"
	}
	_, _ = fmt.Fprintln(c.w, fieldText(f, f.Width, f.Height, consoleAlive, consoleDead))
	_, _ = fmt.Fprintf(c.w, "Generation: %v  Live cells: %v  Mode: %v\n", f.Generation, f.LiveCells, mode)
	return c.w.Flush()
}

//Close prints the summary
func (c *Console) Close() {
	_, _ = fmt.Fprintln(c.out, "\nFinished:")
	c.printHashData(map[string]interface{}{
		"Last generation": c.last.Generation,
		"Live cells":      c.last.LiveCells,
		"Total time":      time.Since(c.startTime).Round(time.Millisecond),
	})
}

func (c *Console) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.out, "  %s: %v\n", propName, d[propName])
	}
}
