package trifill

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidLattice is returned for lattices whose drawn side would not be positive.
var ErrInvalidLattice = errors.New("trifill: lattice base side must exceed twice the spacing")

const (
	// DefaultWidthSwitch is the thickness (pixels) separating wide from narrow cells.
	DefaultWidthSwitch = 28
	// DefaultPivotFraction is the pivot offset as a fraction of the drawn side.
	DefaultPivotFraction = 0.12
	// DefaultThicknessRadius bounds the thickness probe used for classification.
	DefaultThicknessRadius = 40
	// DefaultGradientRadius is the finite difference offset of the normal estimate.
	DefaultGradientRadius = 2
	// DefaultBandFactor sets the narrow mode band width as a fraction of the base side.
	DefaultBandFactor = 0.5
)

// Params describes the geometry of a triangular lattice.
type Params struct {
	BaseSide float64 // nominal side before the gap is removed
	Spacing  float64 // visible gap between neighbouring triangles
}

// Side returns the side length of the drawn triangles.
func (p Params) Side() float64 { return p.BaseSide - 2*p.Spacing }

// RowStep returns the vertical distance between lattice rows.
func (p Params) RowStep() float64 { return math.Sqrt(3) / 2 * p.BaseSide }

// ColStep returns the horizontal distance between lattice columns.
func (p Params) ColStep() float64 { return p.BaseSide / 2 }

// Validate checks that the lattice yields triangles with a positive side.
func (p Params) Validate() error {
	if p.Spacing < 0 || !(p.BaseSide > 2*p.Spacing) {
		return fmt.Errorf("%w: base side %g, spacing %g", ErrInvalidLattice, p.BaseSide, p.Spacing)
	}
	return nil
}

// Mode selects which cells a lattice pass accepts.
type Mode int

const (
	// Background tiles the whole canvas without consulting the mask.
	Background Mode = iota
	// Wide accepts cells whose local thickness reaches the width switch.
	Wide
	// Narrow accepts cells thinner than the width switch and aligns them across the strip.
	Narrow
)

func (m Mode) String() string {
	switch m {
	case Background:
		return "background"
	case Wide:
		return "wide"
	case Narrow:
		return "narrow"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Lattice is one generator pass over the canvas.
type Lattice struct {
	Params
	Mode Mode

	WidthSwitch     float64
	PivotFraction   float64
	ThicknessRadius float64
	GradientRadius  float64
	BandFactor      float64
}

// NewLattice creates a lattice pass with the default tunables.
func NewLattice(p Params, mode Mode) *Lattice {
	return &Lattice{
		Params:          p,
		Mode:            mode,
		WidthSwitch:     DefaultWidthSwitch,
		PivotFraction:   DefaultPivotFraction,
		ThicknessRadius: DefaultThicknessRadius,
		GradientRadius:  DefaultGradientRadius,
		BandFactor:      DefaultBandFactor,
	}
}

// Center returns the nominal center of cell (r, c).
func (l *Lattice) Center(r, c int) Point {
	return Point{X: float64(c) * l.ColStep(), Y: float64(r) * l.RowStep()}
}

// Dims returns the number of rows and columns walked for a canvas. The walk
// overshoots the canvas by one step on each axis so rotated geometry leaves no
// gaps along the right and bottom edges. Invalid lattice parameters yield an
// empty grid.
func (l *Lattice) Dims(width, height int) (rows, cols int) {
	if l.Params.Validate() != nil {
		return 0, 0
	}
	rs, cs := l.RowStep(), l.ColStep()
	for float64(rows)*rs <= float64(height)+rs {
		rows++
	}
	for float64(cols)*cs <= float64(width)+l.BaseSide {
		cols++
	}
	return rows, cols
}

// gridRotation alternates upright and inverted cells along the lattice.
func gridRotation(r, c int) float64 {
	if (r+c)%2 == 0 {
		return -math.Pi / 2
	}
	return math.Pi / 2
}

// Pivot returns the rotation center of cell (r, c): the nominal center moved
// by side*frac along the cell's grid rotation.
func Pivot(center Point, side, frac float64, r, c int) Point {
	return center.Polar(side*frac, gridRotation(r, c))
}

// Classify returns the pass (Wide or Narrow) owning the point together with
// the measured thickness.
func (l *Lattice) Classify(m *Mask, x, y float64) (Mode, float64) {
	thick := m.LocalThickness(x, y, l.ThicknessRadius)
	if thick >= l.WidthSwitch {
		return Wide, thick
	}
	return Narrow, thick
}

// Orientation returns the base rotation of cell (r, c) centered on p.
// Narrow cells ignore the grid parity: p is projected onto the boundary
// normal and the parity of the resulting band index decides whether the
// triangle faces along or against the normal.
func (l *Lattice) Orientation(m *Mask, r, c int, p Point) float64 {
	if l.Mode != Narrow {
		return gridRotation(r, c)
	}
	normal := m.Normal(p.X, p.Y, l.GradientRadius)
	sin, cos := math.Sincos(normal)
	q := p.X*cos + p.Y*sin
	band := int(math.Floor(q / (l.BaseSide * l.BandFactor)))
	if band%2 == 0 {
		return normal
	}
	return normal + math.Pi
}

// Cell evaluates cell (r, c) at the given global rotation angle and returns
// its triangle when the pass accepts it. The evaluation has no side effects.
func (l *Lattice) Cell(m *Mask, r, c int, angle float64) (Triangle, bool) {
	p := l.Center(r, c)
	if l.Mode != Background {
		if !m.Inside(p.X, p.Y) {
			return Triangle{}, false
		}
		if mode, _ := l.Classify(m, p.X, p.Y); mode != l.Mode {
			return Triangle{}, false
		}
	}

	side := l.Side()
	t := Equilateral(p, side, l.Orientation(m, r, c, p))
	t = t.Rotate(Pivot(p, side, l.PivotFraction, r, c), angle)

	if l.Mode != Background && !FitsWithMargin(m, t, l.Spacing/2) {
		return Triangle{}, false
	}
	return t, true
}

// FitsWithMargin checks the vertices and edge midpoints of t against the mask.
// A sample fails when it lies outside the silhouette or closer than margin to
// its border.
func FitsWithMargin(m *Mask, t Triangle, margin float64) bool {
	probe := math.Ceil(margin * 2)
	for _, p := range t.Samples() {
		if !m.Inside(p.X, p.Y) {
			return false
		}
		if m.LocalThickness(p.X, p.Y, probe) < margin {
			return false
		}
	}
	return true
}

// Walk visits the lattice in row-major order and hands every accepted
// triangle to e. It returns the number of emitted triangles. The mask may be
// nil for Background passes.
func (l *Lattice) Walk(m *Mask, width, height int, angle float64, e Emitter) int {
	rows, cols := l.Dims(width, height)
	n := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if t, ok := l.Cell(m, r, c, angle); ok {
				e.Triangle(t)
				n++
			}
		}
	}
	return n
}

// Triangles evaluates the lattice rows concurrently on up to workers
// goroutines (GOMAXPROCS when workers <= 0). The result has the same order
// as the sequence produced by Walk.
func (l *Lattice) Triangles(m *Mask, width, height int, angle float64, workers int) []Triangle {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	rows, cols := l.Dims(width, height)
	out := make([][]Triangle, rows)

	var g errgroup.Group
	g.SetLimit(workers)
	for r := 0; r < rows; r++ {
		r := r // per-iteration copy; module targets go 1.21 loop semantics
		g.Go(func() error {
			var row []Triangle
			for c := 0; c < cols; c++ {
				if t, ok := l.Cell(m, r, c, angle); ok {
					row = append(row, t)
				}
			}
			out[r] = row
			return nil
		})
	}
	_ = g.Wait() // row closures never fail

	var total int
	for _, row := range out {
		total += len(row)
	}
	tris := make([]Triangle, 0, total)
	for _, row := range out {
		tris = append(tris, row...)
	}
	return tris
}
