package loop

import (
	"context"
	"fmt"
	"log"

	"termlife/src/universe"
)

//Frame is what the Renderer draws: the World state and the running mode
type Frame struct {
	universe.Snapshot
	Auto bool
}

//Renderer draws the frame, Render returns when the frame is drawn
type Renderer interface {
	Render(f Frame) error
}

//Controller is the single consumer of the event stream
//it owns the World and the auto-run flag, nothing else may touch them while Run is active
type Controller struct {
	world *universe.World
	view  Renderer
	oneIn int
	auto  bool
}

//NewController creates the Controller in manual mode, oneIn is the density used on reseeding
func NewController(w *universe.World, view Renderer, oneIn int) *Controller {
	return &Controller{world: w, view: view, oneIn: oneIn}
}

func (c *Controller) Auto() bool {
	return c.auto
}

//Render draws the current state
func (c *Controller) Render() error {
	return c.view.Render(Frame{Snapshot: c.world.Snapshot(), Auto: c.auto})
}

//Handle applies one event
//every seed or step is followed by a render before Handle returns
func (c *Controller) Handle(ev Event) (quit bool, err error) {
	switch ev.Kind {
	case KindInput:
		switch ev.Key {
		case QuitKey:
			return true, nil
		case 'g':
			c.world.Seed(c.oneIn)
			log.Printf("seeded, live cells: %v", c.world.Status().LiveCells)
		case 'n':
			c.world.Step()
		case 'a':
			c.auto = true
			log.Printf("auto-run on")
		case 's':
			c.auto = false
			log.Printf("auto-run off")
		default:
			return false, nil
		}
	case KindTick:
		if !c.auto {
			return false, nil
		}
		c.world.Step()
	default:
		return false, nil
	}
	return false, c.Render()
}

//Run consumes events from q until the quit key, the end of the stream or ctx is done
//returns nil on quit
func (c *Controller) Run(ctx context.Context, q *Queue) error {
	for {
		ev, err := q.Pop(ctx)
		if err != nil {
			return err
		}
		quit, err := c.Handle(ev)
		if err != nil {
			return fmt.Errorf("render %v: %w", ev, err)
		}
		if quit {
			return nil
		}
	}
}
