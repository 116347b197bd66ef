package trifill

import "math"

// thicknessRays is the number of directions probed by LocalThickness.
const thicknessRays = 16

// rayDirs holds the unit vectors of the thickness probes, evenly spaced
// around the circle starting at angle 0.
var rayDirs = func() (dirs [thicknessRays]Point) {
	for i := range dirs {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / thicknessRays)
		dirs[i] = Point{X: cos, Y: sin}
	}
	return
}()

// Gradient returns the central difference of the mask alpha around (x, y)
// sampled at the given offset. The vector points toward increasing occupancy.
func (m *Mask) Gradient(x, y, offset float64) (gx, gy float64) {
	gx = float64(m.AlphaAt(x+offset, y)) - float64(m.AlphaAt(x-offset, y))
	gy = float64(m.AlphaAt(x, y+offset)) - float64(m.AlphaAt(x, y-offset))
	return gx, gy
}

// Normal returns the direction (radians) of the mask gradient at (x, y),
// i.e. the boundary normal of the nearest silhouette edge. It returns 0 in
// flat regions where the gradient vanishes.
func (m *Mask) Normal(x, y, offset float64) float64 {
	gx, gy := m.Gradient(x, y, offset)
	return math.Atan2(gy, gx)
}

// LocalThickness estimates the distance from (x, y) to the nearest point
// outside the silhouette. Rays are cast in 16 directions and walked in unit
// steps up to maxRadius; the shortest exit distance wins. When no ray leaves
// the shape within range, maxRadius is returned.
//
// The result approximates the local half-width of the shape: small values
// mark thin limbs, large values broad regions.
func (m *Mask) LocalThickness(x, y, maxRadius float64) float64 {
	best := maxRadius
	for _, dir := range rayDirs {
		for d := 1.0; d <= maxRadius && d < best; d++ {
			if m.AlphaAt(x+d*dir.X, y+d*dir.Y) <= InsideThreshold {
				best = d
				break
			}
		}
	}
	return best
}
