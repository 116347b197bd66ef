package trifill

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"
)

// SVG is a Canvas writing every triangle as an SVG path element.
type SVG struct {
	canvas        *svg.SVG
	width, height int
	fill          string
}

// NewSVG starts an SVG document of the given size on w. Call End to close it.
func NewSVG(w io.Writer, width, height int) *SVG {
	s := &SVG{
		canvas: svg.New(w),
		width:  width,
		height: height,
		fill:   "fill:#000000",
	}
	s.canvas.Start(width, height)
	return s
}

// Clear paints the whole canvas with c.
func (s *SVG) Clear(c color.Color) {
	s.canvas.Rect(0, 0, s.width, s.height, fillStyle(c))
}

// SetFill sets the color used by the following triangles.
func (s *SVG) SetFill(c color.Color) {
	s.fill = fillStyle(c)
}

// Triangle writes t as a closed path. Coordinates keep two decimals so
// narrow lattice cells do not snap to the pixel grid.
func (s *SVG) Triangle(t Triangle) {
	d := fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f L%.2f,%.2f Z",
		t[0].X, t[0].Y, t[1].X, t[1].Y, t[2].X, t[2].Y)
	s.canvas.Path(d, s.fill)
}

// End closes the document.
func (s *SVG) End() {
	s.canvas.End()
}

// fillStyle converts c into an SVG fill declaration.
func fillStyle(c color.Color) string {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return "fill:none"
	}
	cf, _ := colorful.MakeColor(c)
	if a == 0xffff {
		return "fill:" + cf.Hex()
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f", cf.Hex(), float64(a)/0xffff)
}

// errWriter remembers the first write error so the SVG encoder, which has no
// error returns, can still report failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// EncodeSVG writes the frame at the given rotation angle as an SVG document.
func (s *Scene) EncodeSVG(w io.Writer, angle float64) error {
	ew := &errWriter{w: w}
	c := NewSVG(ew, s.Width(), s.Height())
	s.Draw(c, angle)
	c.End()
	return ew.err
}
