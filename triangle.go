package trifill

import "math"

// Triangle holds the three vertices of a filled triangle.
// Triangles are recomputed every frame and never retained by the generator.
type Triangle [3]Point

// Equilateral builds the equilateral triangle centered on c with the given
// side length. The first vertex points in direction rot (radians), the other
// two follow at +120° and +240°.
func Equilateral(c Point, side, rot float64) Triangle {
	r := side / math.Sqrt(3) // circumradius
	return Triangle{
		c.Polar(r, rot),
		c.Polar(r, rot+2*math.Pi/3),
		c.Polar(r, rot+4*math.Pi/3),
	}
}

// Centroid returns the arithmetic mean of the vertices.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t[0].X + t[1].X + t[2].X) / 3,
		Y: (t[0].Y + t[1].Y + t[2].Y) / 3,
	}
}

// Rotate rotates every vertex around pivot by angle a.
func (t Triangle) Rotate(pivot Point, a float64) Triangle {
	if a == 0 {
		return t
	}
	return Triangle{
		t[0].RotateAbout(pivot, a),
		t[1].RotateAbout(pivot, a),
		t[2].RotateAbout(pivot, a),
	}
}

// Samples returns the points probed by the margin test: the three vertices
// followed by the three edge midpoints.
func (t Triangle) Samples() [6]Point {
	return [6]Point{
		t[0], t[1], t[2],
		t[0].Mid(t[1]),
		t[1].Mid(t[2]),
		t[2].Mid(t[0]),
	}
}
