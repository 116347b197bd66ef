package trifill

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

//go:embed data/figure.json
var figureJSON []byte

// ErrArtwork is wrapped by every artwork decoding error.
var ErrArtwork = errors.New("trifill: malformed artwork")

// DecorGroup is a named list of hand placed triangles drawn on top of the
// backdrop, such as the legs of the default figure.
type DecorGroup struct {
	Name      string
	Triangles []Triangle
}

// Artwork bundles the static input of a scene: the canvas size, the
// silhouette and hole outlines and the decorative triangle table.
type Artwork struct {
	Width      int
	Height     int
	Silhouette []*Path
	Holes      []*Path
	Decor      []DecorGroup
}

// artworkFile is the JSON layout of an artwork table. A path is a list of
// segments: the first one holds the start point (x, y), the following ones
// hold either an end point (line) or two control points and an end point
// (cubic curve). Paths are closed implicitly. A decorative triangle is
// written as x1, y1, x2, y2, x3, y3.
type artworkFile struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Silhouette [][][]float64 `json:"silhouette"`
	Holes      [][][]float64 `json:"holes"`
	Decor      []struct {
		Name      string      `json:"name"`
		Triangles [][]float64 `json:"triangles"`
	} `json:"decor"`
}

// DefaultArtwork returns the built-in figure: a head, torso and arms
// silhouette with a crown shaped hole, plus legs, cloth and stick drawn as
// decorative triangles.
func DefaultArtwork() (*Artwork, error) {
	return LoadArtwork(bytes.NewReader(figureJSON))
}

// LoadArtwork decodes an artwork table.
func LoadArtwork(r io.Reader) (*Artwork, error) {
	var f artworkFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtwork, err)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrArtwork, f.Width, f.Height)
	}

	art := &Artwork{Width: f.Width, Height: f.Height}
	for i, segs := range f.Silhouette {
		p, err := decodePath(segs)
		if err != nil {
			return nil, fmt.Errorf("%w: silhouette %d: %v", ErrArtwork, i, err)
		}
		art.Silhouette = append(art.Silhouette, p)
	}
	for i, segs := range f.Holes {
		p, err := decodePath(segs)
		if err != nil {
			return nil, fmt.Errorf("%w: hole %d: %v", ErrArtwork, i, err)
		}
		art.Holes = append(art.Holes, p)
	}
	for _, g := range f.Decor {
		group := DecorGroup{Name: g.Name, Triangles: make([]Triangle, 0, len(g.Triangles))}
		for j, v := range g.Triangles {
			if len(v) != 6 {
				return nil, fmt.Errorf("%w: decor %q triangle %d: want 6 coordinates, got %d",
					ErrArtwork, g.Name, j, len(v))
			}
			group.Triangles = append(group.Triangles, Triangle{
				Pt(v[0], v[1]), Pt(v[2], v[3]), Pt(v[4], v[5]),
			})
		}
		art.Decor = append(art.Decor, group)
	}
	return art, nil
}

func decodePath(segs [][]float64) (*Path, error) {
	if len(segs) == 0 {
		return nil, errors.New("empty path")
	}
	p := NewPath()
	for i, s := range segs {
		switch {
		case i == 0 && len(s) == 2:
			p.MoveTo(s[0], s[1])
		case i == 0:
			return nil, fmt.Errorf("segment 0: start point needs 2 coordinates, got %d", len(s))
		case len(s) == 2:
			p.LineTo(s[0], s[1])
		case len(s) == 6:
			p.CubicTo(s[0], s[1], s[2], s[3], s[4], s[5])
		default:
			return nil, fmt.Errorf("segment %d: want 2 or 6 coordinates, got %d", i, len(s))
		}
	}
	p.Close()
	return p, nil
}

// Mask rasterizes the silhouette minus its holes.
func (a *Artwork) Mask() (*Mask, error) {
	return BuildMask(a.Width, a.Height, a.Silhouette, a.Holes)
}

// DrawDecor emits every decorative triangle rotated about its own centroid
// by angle and returns the number of emitted triangles.
func (a *Artwork) DrawDecor(angle float64, e Emitter) int {
	n := 0
	for _, g := range a.Decor {
		for _, t := range g.Triangles {
			e.Triangle(t.Rotate(t.Centroid(), angle))
			n++
		}
	}
	return n
}
