package loop

import "fmt"

//Kind is the event source
type Kind int

const (
	KindInput Kind = iota
	KindTick
)

//Event is the single item of the ordered stream consumed by the Controller
type Event struct {
	Kind Kind
	Key  rune //the pressed key, set for KindInput only
}

//Input creates the keypress event
func Input(key rune) Event {
	return Event{Kind: KindInput, Key: key}
}

//Tick creates the clock event
func Tick() Event {
	return Event{Kind: KindTick}
}

func (e Event) String() string {
	if e.Kind == KindTick {
		return "Tick"
	}
	return fmt.Sprintf("Input(%q)", e.Key)
}
