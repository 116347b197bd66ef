package trifill

// SegmentKind identifies the drawing operation of a path segment.
type SegmentKind int

const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegCubicTo
	SegClose
)

// Segment is a single path operation. Pts holds one point for MoveTo and
// LineTo, three points (two controls and the end point) for CubicTo and none
// for Close.
type Segment struct {
	Kind SegmentKind
	Pts  [3]Point
}

// Path is a closed outline made of line and cubic Bézier segments with
// absolute coordinates.
type Path struct {
	segs  []Segment
	start Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{segs: make([]Segment, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.start = Pt(x, y)
	p.segs = append(p.segs, Segment{Kind: SegMoveTo, Pts: [3]Point{p.start}})
}

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, Segment{Kind: SegLineTo, Pts: [3]Point{Pt(x, y)}})
}

// CubicTo adds a cubic Bézier curve to (x, y) with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segs = append(p.segs, Segment{
		Kind: SegCubicTo,
		Pts:  [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)},
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Kind: SegClose})
}

// Segments returns the path segments.
func (p *Path) Segments() []Segment {
	return p.segs
}

// Empty reports whether the path has no drawable segment.
func (p *Path) Empty() bool {
	return p == nil || len(p.segs) == 0
}

// Rectangle adds an axis aligned rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle subpath approximated by four cubic curves.
func (p *Path) Circle(cx, cy, r float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	o := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+o, cx+o, cy+r, cx, cy+r)
	p.CubicTo(cx-o, cy+r, cx-r, cy+o, cx-r, cy)
	p.CubicTo(cx-r, cy-o, cx-o, cy-r, cx, cy-r)
	p.CubicTo(cx+o, cy-r, cx+r, cy-o, cx+r, cy)
	p.Close()
}
