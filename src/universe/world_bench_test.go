package universe

import (
	"testing"
)

const (
	width  = 200
	height = 200
)

func Benchmark_Step(b *testing.B) {
	for _, e := range EngineNames() {
		b.Run(e, func(b *testing.B) {
			w := NewWorld(width, height, NewRandSource(1))
			if err := w.SetEngine(e); err != nil {
				b.Fatal(err)
			}
			w.Seed(4)
			start := w.Live().Sorted()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				w.Load(start)
				b.StartTimer()
				w.Step()
			}
		})
	}
}

func Benchmark_Seed(b *testing.B) {
	w := NewWorld(width, height, NewRandSource(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Seed(DefOneIn)
	}
}
