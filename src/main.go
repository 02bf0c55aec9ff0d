package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"termlife/src/loop"
	"termlife/src/universe"
	"termlife/src/view"
)

type EnvOptions struct {
	mode       string
	configPath string
	logPath    string
}

var modes = []string{"terminal", "console"}

func main() {
	eo, uo := initOptions()

	logFile, err := initLog(eo.logPath)
	if err != nil {
		log.Fatalf("termlife: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, eo, uo)
	stop()
	if err != nil {
		log.Printf("exit: %v", err)
	}
	closeLog(logFile)
	if fatal(err) {
		log.Fatalf("termlife: %v", err)
	}
}

//fatal reports whether the control loop ended on a failure rather than on quit or a signal
func fatal(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}

//run wires the World, the view and both producers and runs the control loop until quit
func run(ctx context.Context, eo *EnvOptions, o universe.Options) error {
	var v view.View
	switch eo.mode {
	case "console":
		v = view.NewConsole(os.Stdout, os.Stdin, o)
	default:
		t, err := view.NewTerminal(o)
		if err != nil {
			return err
		}
		v = t
	}
	defer v.Close()

	width, height := v.FieldSize()
	if o.Width > 0 {
		width = o.Width
	}
	if o.Height > 0 {
		height = o.Height
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := universe.NewWorld(width, height, universe.NewRandSource(seed))
	if err := w.SetEngine(o.Engine); err != nil {
		return err
	}
	if tmpl, ok := universe.LookupTemplate(o.Template); ok {
		w.LoadTemplate(tmpl)
	} else {
		w.Seed(o.OneIn)
	}
	log.Printf("world %v x %v, engine %s, seed %v, live cells %v", w.Width(), w.Height(), w.Engine(), seed, w.Status().LiveCells)

	q := loop.NewQueue()
	if err := v.Start(q); err != nil {
		return err
	}
	go loop.Clock(ctx, q, o.Interval)

	c := loop.NewController(w, v, o.OneIn)
	if err := c.Render(); err != nil {
		return fmt.Errorf("first render: %w", err)
	}
	return c.Run(ctx, q)
}

func initOptions() (eo *EnvOptions, uo universe.Options) {
	uo = universe.DefaultOptions
	eo = &EnvOptions{configPath: configPathFromArgs(os.Args[1:])}
	//the file goes under the flags, so every flag given on the command line wins
	if eo.configPath != "" {
		fo, err := universe.LoadOptions(eo.configPath, uo)
		if err != nil {
			flaggy.ShowHelpAndExit(err.Error())
		}
		uo = fo
	}

	p := newParser(eo, &uo)
	if err := p.Parse(); err != nil {
		p.ShowHelpAndExit(err.Error())
	}
	if err := uo.Validate(); err != nil {
		p.ShowHelpAndExit(err.Error())
	}
	if !validMode(eo.mode) {
		p.ShowHelpAndExit("unknown mode " + eo.mode)
	}
	return
}

//newParser binds the flags to eo and uo, the current values are the defaults
func newParser(eo *EnvOptions, uo *universe.Options) *flaggy.Parser {
	if eo.mode == "" {
		eo.mode = modes[0]
	}
	p := flaggy.NewParser("termlife")
	p.Description = "Conway's Game of Life in the terminal"
	p.ShowHelpOnUnexpected = true
	p.Int(&uo.Width, "x", "width", "Width of the world, the terminal width by default")
	p.Int(&uo.Height, "y", "height", "Height of the world, the terminal height by default")
	p.Int(&uo.OneIn, "d", "density", "Seed one live cell out of N cells")
	p.Duration(&uo.Interval, "i", "interval", "Interval between the auto-run steps, for example 500ms")
	p.Int64(&uo.Seed, "r", "seed", "Random seed, 0 picks one from the clock")
	p.String(&uo.Engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")
	p.String(&uo.Template, "t", "template", "Start with the template instead of random data ["+strings.Join(universe.TemplateNames(), "|")+"]")
	p.String(&eo.configPath, "c", "config", "YAML config file, flags take precedence")
	p.String(&eo.mode, "m", "mode", "View mode ["+strings.Join(modes, "|")+"]")
	p.String(&eo.logPath, "l", "log", "Write the log to the file")
	return p
}

//configPathFromArgs finds the config flag before the other flags are parsed
func configPathFromArgs(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		for _, name := range []string{"-c", "--config"} {
			if a == name && i+1 < len(args) {
				return args[i+1]
			}
			if strings.HasPrefix(a, name+"=") {
				return strings.TrimPrefix(a, name+"=")
			}
		}
	}
	return ""
}

func validMode(mode string) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

//initLog sends the log to the file at path, the screen belongs to the view so without a path the log is discarded
func initLog(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

//closeLog flushes the log file and sends the further log output to stderr
func closeLog(f *os.File) {
	log.SetOutput(os.Stderr)
	if f != nil {
		_ = f.Close()
	}
}
