package universe

import (
	"testing"
)

var (
	testTemplate = Template{"ts1", "", [][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {3, 3}, {2, 4}, {3, 4}, {3, 5}}}
)

const (
	width  = 200
	height = 200
)

func newBenchOptions(engine string) *Options {
	o := DefaultUniverseOptions
	o.Rows = height
	o.Cols = width
	o.Engine = engine
	return &o
}

func universeStep(s *Simulation, b *testing.B) {
	s.AddTemplate(testTemplate)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s.Clear()
		_ = s.SettleTemplate("ts1")
		b.StartTimer()
		s.Advance()
	}
}

func universeRun(s *Simulation, b *testing.B) {
	s.AddTemplate(testTemplate)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s.Clear()
		_ = s.SettleTemplate("ts1")
		b.StartTimer()
		//at most 100 generations, stops early when the board dies out
		for j := 0; j < 100 && s.Advance(); j++ {
		}
	}
}

func Benchmark_Step(b *testing.B) {
	for _, e := range EngineNames() {
		b.Run(e, func(b *testing.B) {
			s, err := NewSimulation(newBenchOptions(e))
			if err != nil {
				b.Fatal(err)
			}
			universeStep(s, b)
		})
	}
}

func Benchmark_Universe(b *testing.B) {
	for _, e := range EngineNames() {
		b.Run(e, func(b *testing.B) {
			s, err := NewSimulation(newBenchOptions(e))
			if err != nil {
				b.Fatal(err)
			}
			universeRun(s, b)
		})
	}
}
