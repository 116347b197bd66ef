package trifill

import "math"

// Point is a 2D point in canvas space (origin top-left, y down).
type Point struct {
	X, Y float64
}

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales p by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Mid returns the midpoint of the segment pq.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Polar returns the point at distance r from p in direction a (radians).
func (p Point) Polar(r, a float64) Point {
	return Point{X: p.X + r*math.Cos(a), Y: p.Y + r*math.Sin(a)}
}

// RotateAbout rotates p around pivot by angle a (radians).
func (p Point) RotateAbout(pivot Point, a float64) Point {
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	sin, cos := math.Sincos(a)
	return Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}
