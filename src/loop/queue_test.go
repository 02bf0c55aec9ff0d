package loop

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"
)

func popTimeout(t *testing.T, q *Queue) (Event, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return q.Pop(ctx)
}

func TestQueueOrder(t *testing.T) {
	q := NewQueue()
	sent := []Event{Input('n'), Tick(), Input('a'), Tick(), Tick(), Input('q')}
	for _, ev := range sent {
		q.Push(ev)
	}
	for i, want := range sent {
		got, err := popTimeout(t, q)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("event %v: got %v, want %v", i, got, want)
		}
	}
}

//two producers hand the turn to each other, the consumer must see the send order
func TestQueueInterleavedProducers(t *testing.T) {
	q := NewQueue()
	keyTurn, clockTurn := make(chan struct{}), make(chan struct{})
	keys := []rune{'g', 'n', 'a', 's', 'q'}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for _, k := range keys {
			<-keyTurn
			q.Push(Input(k))
			clockTurn <- struct{}{}
		}
	}()
	go func() {
		defer wg.Done()
		for i := range keys {
			<-clockTurn
			q.Push(Tick())
			if i < len(keys)-1 {
				keyTurn <- struct{}{}
			}
		}
	}()
	keyTurn <- struct{}{}
	wg.Wait()

	for _, k := range keys {
		if ev, err := popTimeout(t, q); err != nil || ev != Input(k) {
			t.Fatalf("got %v %v, want %v", ev, err, Input(k))
		}
		if ev, err := popTimeout(t, q); err != nil || ev != Tick() {
			t.Fatalf("got %v %v, want Tick", ev, err)
		}
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	const producers, perProducer = 4, 500
	q := NewQueue()
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Kind: KindInput, Key: rune(p*perProducer + i)})
			}
		}(p)
	}
	last := make([]int, producers)
	for i := range last {
		last[i] = -1
	}
	for n := 0; n < producers*perProducer; n++ {
		ev, err := popTimeout(t, q)
		if err != nil {
			t.Fatal(err)
		}
		p, i := int(ev.Key)/perProducer, int(ev.Key)%perProducer
		if i <= last[p] {
			t.Fatalf("producer %v: event %v after %v", p, i, last[p])
		}
		last[p] = i
	}
	wg.Wait()
	if q.Len() != 0 {
		t.Errorf("%v events left", q.Len())
	}
}

func TestQueuePopBlocks(t *testing.T) {
	q := NewQueue()
	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Push(Input('g'))
	}()
	ev, err := popTimeout(t, q)
	if err != nil || ev != Input('g') {
		t.Fatalf("got %v %v", ev, err)
	}
}

func TestQueuePopCancel(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := q.Pop(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestQueueClose(t *testing.T) {
	q := NewQueue()
	q.Push(Input('n'))
	q.Close(io.ErrUnexpectedEOF)
	q.Close(errors.New("second close is ignored"))
	if q.Push(Tick()) {
		t.Error("push after close succeeded")
	}
	if ev, err := popTimeout(t, q); err != nil || ev != Input('n') {
		t.Fatalf("got %v %v, want the event pushed before close", ev, err)
	}
	_, err := popTimeout(t, q)
	if !errors.Is(err, ErrQueueClosed) || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("got %v", err)
	}
}
