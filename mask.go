package trifill

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// InsideThreshold is the alpha value a mask pixel must exceed to count as
// part of the silhouette.
const InsideThreshold = 1

var (
	// ErrInvalidCanvas is returned when the requested canvas has no area.
	ErrInvalidCanvas = errors.New("trifill: canvas width and height must be positive")
	// ErrEmptySilhouette is returned when no outer path can be rasterized.
	ErrEmptySilhouette = errors.New("trifill: silhouette has no outer path")
)

// Mask is the occupancy field of the silhouette: one alpha value in [0, 255]
// per canvas pixel. A mask is immutable once built, so it can be sampled from
// any number of goroutines without synchronization.
type Mask struct {
	width  int
	height int
	pix    []uint8
}

// BuildMask rasterizes the union of the outer paths, then subtracts the union
// of the hole paths. Pixels fully covered by a hole end up with alpha 0
// whatever the outer fill underneath; partially covered edge pixels keep the
// fraction of the outer coverage the hole leaves uncovered.
func BuildMask(width, height int, outer, holes []*Path) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidCanvas, width, height)
	}
	fill := rasterizeUnion(width, height, outer)
	if fill == nil {
		return nil, ErrEmptySilhouette
	}
	if cut := rasterizeUnion(width, height, holes); cut != nil {
		andNot(fill, cut)
	}

	logger().Debug("occupancy mask built",
		"width", width, "height", height,
		"outer", len(outer), "holes", len(holes))

	return &Mask{width: width, height: height, pix: fill.Pix}, nil
}

// NewMaskFromImage derives the occupancy field from an image. Images with
// transparency are read through their alpha channel; fully opaque images
// (JPEG scans, flat PNG exports) are read as a dark silhouette on a light
// background.
func NewMaskFromImage(img image.Image) (*Mask, error) {
	src := ImgToNRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidCanvas, w, h)
	}
	m := &Mask{width: w, height: h, pix: make([]uint8, w*h)}

	opaque := src.Opaque()
	for y := 0; y < h; y++ {
		si := src.PixOffset(0, y)
		for x := 0; x < w; x++ {
			if opaque {
				m.pix[y*w+x] = 255 - luminance(src.Pix[si], src.Pix[si+1], src.Pix[si+2])
			} else {
				m.pix[y*w+x] = src.Pix[si+3]
			}
			si += 4
		}
	}
	return m, nil
}

// rasterizeUnion draws every non-empty path into its own coverage buffer and
// merges the buffers with a per-pixel max. It returns nil when no path could
// be drawn.
func rasterizeUnion(width, height int, paths []*Path) *image.Alpha {
	var dst *image.Alpha
	for _, p := range paths {
		if p.Empty() {
			continue
		}
		cov := rasterize(width, height, p)
		if dst == nil {
			dst = cov
			continue
		}
		for i, a := range cov.Pix {
			dst.Pix[i] = Max(dst.Pix[i], a)
		}
	}
	return dst
}

// rasterize converts a closed path into an anti-aliased coverage buffer.
func rasterize(width, height int, p *Path) *image.Alpha {
	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src

	open := false
	for _, s := range p.Segments() {
		switch s.Kind {
		case SegMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(s.Pts[0].X), float32(s.Pts[0].Y))
			open = true
		case SegLineTo:
			r.LineTo(float32(s.Pts[0].X), float32(s.Pts[0].Y))
		case SegCubicTo:
			r.CubeTo(
				float32(s.Pts[0].X), float32(s.Pts[0].Y),
				float32(s.Pts[1].X), float32(s.Pts[1].Y),
				float32(s.Pts[2].X), float32(s.Pts[2].Y),
			)
		case SegClose:
			if open {
				r.ClosePath()
				open = false
			}
		}
	}
	if open {
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// andNot removes the hole coverage from dst in place.
func andNot(dst, hole *image.Alpha) {
	for i, h := range hole.Pix {
		if h == 0 {
			continue
		}
		dst.Pix[i] = uint8(uint32(dst.Pix[i]) * uint32(255-h) / 255)
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// AlphaAt returns the alpha of the pixel containing (x, y). Coordinates
// outside the canvas are clamped to the nearest edge pixel.
func (m *Mask) AlphaAt(x, y float64) uint8 {
	ix := Clamp(int(math.Floor(x)), 0, m.width-1)
	iy := Clamp(int(math.Floor(y)), 0, m.height-1)
	return m.pix[iy*m.width+ix]
}

// Inside reports whether (x, y) belongs to the silhouette.
func (m *Mask) Inside(x, y float64) bool {
	return m.AlphaAt(x, y) > InsideThreshold
}

// Image returns a copy of the mask as an alpha image.
func (m *Mask) Image() *image.Alpha {
	img := image.NewAlpha(m.Bounds())
	copy(img.Pix, m.pix)
	return img
}
