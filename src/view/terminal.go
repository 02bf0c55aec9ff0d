package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"termlife/src/loop"
	"termlife/src/universe"
)

const (
	leftColumnWidth = 28
	headerHeight    = 3
	footerHeight    = 5
	minWindowHeight = 20
)

//Terminal is the full screen gocui view
//gocui key bindings are the keyboard producer, they run on the gocui main loop goroutine
type Terminal struct {
	g     *gocui.Gui
	o     universe.Options
	alive string
	frame loop.Frame //the last rendered frame, owned by the gocui main loop
	done  chan struct{}

	started bool //the main loop goroutine is launched
}

//NewTerminal switches the terminal to raw mode, clears the screen and hides the cursor
func NewTerminal(o universe.Options) (*Terminal, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	t := Terminal{
		g:     g,
		o:     o,
		alive: aurora.Green(AliveGlyph).String(),
		done:  make(chan struct{}),
	}
	g.Cursor = false
	g.SetManagerFunc(t.layout)
	return &t, nil
}

//FieldSize returns the inner size of the battlefield view for the current terminal size
func (t *Terminal) FieldSize() (int, int) {
	maxX, maxY := t.g.Size()
	return fieldSize(maxX, maxY)
}

func fieldSize(maxX int, maxY int) (width int, height int) {
	width = maxX - 1 - (leftColumnWidth + 1) - 1
	height = maxY - footerHeight - headerHeight - 1
	return
}

//terminalKey maps a gocui key to the key pushed as Input event
type terminalKey struct {
	key interface{}
	r   rune
}

//terminalKeys returns the bound keys, Ctrl+C is delivered as the quit key
func terminalKeys() []terminalKey {
	keys := make([]terminalKey, 0, len(keyBindings)+1)
	for _, kb := range keyBindings {
		keys = append(keys, terminalKey{kb.key, kb.key})
	}
	return append(keys, terminalKey{gocui.KeyCtrlC, loop.QuitKey})
}

//keyHandler pushes r to q, after the quit key the gocui main loop stops reading keys
func keyHandler(q *loop.Queue, r rune) func(*gocui.Gui, *gocui.View) error {
	return func(_ *gocui.Gui, _ *gocui.View) error {
		q.Push(loop.Input(r))
		if r == loop.QuitKey {
			return gocui.ErrQuit
		}
		return nil
	}
}

//Start binds the keys and runs the gocui main loop in the background
//a main loop failure closes q
func (t *Terminal) Start(q *loop.Queue) error {
	for _, k := range terminalKeys() {
		if err := t.g.SetKeybinding("", k.key, gocui.ModNone, keyHandler(q, k.r)); err != nil {
			return fmt.Errorf("bind key %q: %w", k.r, err)
		}
	}
	t.started = true
	go func() {
		defer close(t.done)
		if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
			q.Close(err)
		}
	}()
	return nil
}

//Render hands the frame to the gocui main loop and waits until it is accepted
//the screen is redrawn by the layout right after
func (t *Terminal) Render(f loop.Frame) error {
	if !t.started {
		return nil
	}
	accepted := make(chan struct{})
	t.g.Update(func(g *gocui.Gui) error {
		t.frame = f
		close(accepted)
		return nil
	})
	select {
	case <-accepted:
	case <-t.done:
	}
	return nil
}

//Close stops the main loop if it is still running and restores the terminal
func (t *Terminal) Close() {
	t.stopLoop()
	t.g.Close()
}

//stopLoop asks a running main loop to quit and waits for it
func (t *Terminal) stopLoop() {
	if !t.started {
		return
	}
	select {
	case <-t.done:
	default:
		t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
		<-t.done
	}
}

func (t *Terminal) renderField(g *gocui.Gui) {
	v, e := g.View("battlefield")
	if e != nil {
		return
	}
	//the entire field is redrawing at once
	v.Clear()
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, fieldText(t.frame, maxW, maxH, t.alive, DeadGlyph))
}

func (t *Terminal) renderStatus(g *gocui.Gui) {
	v, e := g.View("status")
	if e != nil {
		return
	}
	s := t.frame.Status
	v.Clear()
	_, _ = fmt.Fprintln(v, renderProp("Generation", "%v", s.Generation))
	_, _ = fmt.Fprintln(v, renderProp("Live Cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, renderProp("Step time", "%v", s.StepTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", modeDescr(t.frame.Auto)))
}

func (t *Terminal) renderConfiguration(g *gocui.Gui) {
	v, e := g.View("configuration")
	if e != nil {
		return
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, renderProp("Dimension", "%v x %v", t.frame.Width, t.frame.Height))
	_, _ = fmt.Fprintln(v, renderProp("Interval", "%v", t.o.Interval))
	_, _ = fmt.Fprintln(v, renderProp("Density", "1 in %v", t.o.OneIn))
	_, _ = fmt.Fprintln(v, renderProp("Engine", "%v", t.o.Engine))
}

func (t *Terminal) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil
	}
	if _, err := t.headerLayout(g, headerHeight, "Conway's Game of Life"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, headerHeight, leftColumnWidth, headerHeight+(maxY-footerHeight-headerHeight)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}

	if v, err := g.SetView("status", 0, headerHeight+(maxY-footerHeight-headerHeight)/2+1, leftColumnWidth, maxY-footerHeight); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, headerHeight, maxX-1, maxY-footerHeight); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "World"
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-footerHeight, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, helpLine(true))
	}

	t.renderConfiguration(g)
	t.renderStatus(g)
	t.renderField(g)
	return nil
}

func (t *Terminal) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			text = text[:maxX]
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}
