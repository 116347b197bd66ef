package trifill

import "image/color"

// Emitter receives the triangles produced by a generator pass. The core
// never draws by itself; it only computes vertices and hands them off.
type Emitter interface {
	Triangle(t Triangle)
}

// EmitterFunc adapts a plain function to the Emitter interface.
type EmitterFunc func(t Triangle)

// Triangle calls f(t).
func (f EmitterFunc) Triangle(t Triangle) { f(t) }

// Canvas is an Emitter that also owns the drawing state. Triangles are filled
// with the color set by the most recent SetFill call and are never stroked.
type Canvas interface {
	Emitter
	Clear(c color.Color)
	SetFill(c color.Color)
}

// Collector records emitted triangles in order.
type Collector struct {
	Triangles []Triangle
}

// Triangle appends t to the collected list.
func (c *Collector) Triangle(t Triangle) {
	c.Triangles = append(c.Triangles, t)
}

// Reset drops the collected triangles and keeps the allocated storage.
func (c *Collector) Reset() {
	c.Triangles = c.Triangles[:0]
}
