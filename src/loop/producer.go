package loop

import (
	"bufio"
	"context"
	"io"
	"time"
)

//QuitKey stops the keyboard producer and the Controller
const QuitKey = 'q'

//KeySource is the blocking keyboard
type KeySource interface {
	ReadKey() (rune, error)
}

//Keyboard pushes every key read from src as Input event
//it returns after pushing the quit key; on a read error the queue is closed with the error
func Keyboard(q *Queue, src KeySource) {
	for {
		key, err := src.ReadKey()
		if err != nil {
			q.Close(err)
			return
		}
		if !q.Push(Input(key)) || key == QuitKey {
			return
		}
	}
}

//Clock pushes a Tick event every interval until ctx is done or the queue is closed
func Clock(ctx context.Context, q *Queue, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !q.Push(Tick()) {
				return
			}
		}
	}
}

//ReaderKeys reads keys from a line buffered stream, line breaks are skipped
type ReaderKeys struct {
	r *bufio.Reader
}

func NewReaderKeys(r io.Reader) *ReaderKeys {
	return &ReaderKeys{r: bufio.NewReader(r)}
}

func (k *ReaderKeys) ReadKey() (rune, error) {
	for {
		c, _, err := k.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if c != '\n' && c != '\r' {
			return c, nil
		}
	}
}
