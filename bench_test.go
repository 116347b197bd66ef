package trifill

import (
	"testing"
)

func BenchmarkDraw(b *testing.B) {
	s := defaultScene(b, DefaultConfig())
	r := NewRaster(s.Width(), s.Height())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Draw(r, StepAngleOf(i))
	}
}

func BenchmarkDrawWorkers(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Workers = 0
	s := defaultScene(b, cfg)
	var c Collector

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Reset()
		s.Draw(canvasFunc(c.Triangle), StepAngleOf(i))
	}
}

func BenchmarkLocalThickness(b *testing.B) {
	s := defaultScene(b, DefaultConfig())
	m := s.Mask()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.LocalThickness(300, 300, DefaultThicknessRadius)
	}
}
