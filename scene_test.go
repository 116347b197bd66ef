package trifill

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// recorder is a Canvas keeping the order of every drawing call.
type recorder struct {
	ops   []string
	fills []color.Color
	tris  []Triangle
}

func (r *recorder) Clear(c color.Color) {
	r.ops = append(r.ops, "clear")
	r.fills = append(r.fills, c)
}

func (r *recorder) SetFill(c color.Color) {
	r.ops = append(r.ops, "fill")
	r.fills = append(r.fills, c)
}

func (r *recorder) Triangle(t Triangle) {
	if n := len(r.ops); n == 0 || r.ops[n-1] != "tri" {
		r.ops = append(r.ops, "tri")
	}
	r.tris = append(r.tris, t)
}

func defaultScene(t testing.TB, cfg Config) *Scene {
	t.Helper()
	art, err := DefaultArtwork()
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewScene(cfg, art)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Wide = Params{BaseSide: 4, Spacing: 2}
	cfg.Backdrop = Params{BaseSide: 10, Spacing: -1}
	cfg.BandFactor = 0
	cfg.Workers = -2

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidLattice) {
		t.Fatalf("expected ErrInvalidLattice, got %v", err)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected a joined error, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 4 {
		t.Errorf("expected 4 errors, got %d: %v", n, err)
	}

	if _, err := NewScene(cfg, &Artwork{Width: 10, Height: 10}); !errors.Is(err, ErrInvalidLattice) {
		t.Errorf("expected NewScene to reject the config, got %v", err)
	}
}

func TestNewSceneFromMaskErrors(t *testing.T) {
	if _, err := NewSceneFromMask(DefaultConfig(), nil); !errors.Is(err, ErrInvalidCanvas) {
		t.Errorf("expected ErrInvalidCanvas, got %v", err)
	}
	if _, err := NewScene(DefaultConfig(), &Artwork{Width: 10, Height: 10}); !errors.Is(err, ErrEmptySilhouette) {
		t.Errorf("expected ErrEmptySilhouette, got %v", err)
	}
}

func TestSceneDrawOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Background = color.RGBA{R: 1, A: 0xff}
	cfg.BackdropFill = color.RGBA{G: 2, A: 0xff}
	cfg.Fill = color.RGBA{B: 3, A: 0xff}
	s := defaultScene(t, cfg)

	var r recorder
	st := s.Draw(&r, 0)

	want := []string{"clear", "fill", "tri", "fill", "tri"}
	if len(r.ops) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, r.ops)
	}
	for i := range want {
		if r.ops[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, r.ops)
		}
	}
	for i, c := range []color.Color{cfg.Background, cfg.BackdropFill, cfg.Fill} {
		if r.fills[i] != c {
			t.Errorf("color %d: expected %v, got %v", i, c, r.fills[i])
		}
	}

	if st.Backdrop == 0 || st.Decor != 206 || st.Wide == 0 || st.Narrow == 0 {
		t.Errorf("expected every layer to contribute, got %+v", st)
	}
	if st.Total() != len(r.tris) {
		t.Errorf("expected %d triangles, recorded %d", st.Total(), len(r.tris))
	}

	// Decorative triangles come right after the backdrop.
	var c Collector
	s.art.DrawDecor(0, &c)
	if r.tris[st.Backdrop] != c.Triangles[0] {
		t.Errorf("expected the first decor triangle after the backdrop, got %v", r.tris[st.Backdrop])
	}
}

func TestSceneWorkersMatchSequential(t *testing.T) {
	seq := DefaultConfig()
	par := DefaultConfig()
	par.Workers = 4

	for step := 0; step < RotationSteps; step++ {
		var a, b recorder
		sa := defaultScene(t, seq).Draw(&a, StepAngleOf(step))
		sb := defaultScene(t, par).Draw(&b, StepAngleOf(step))

		if sa != sb {
			t.Fatalf("step %d: stats differ: %+v != %+v", step, sa, sb)
		}
		for i := range a.tris {
			if a.tris[i] != b.tris[i] {
				t.Fatalf("step %d: triangle %d differs", step, i)
			}
		}
	}
}

func TestSceneFromMask(t *testing.T) {
	m := rectMask(t, 120, 90, image.Rect(10, 10, 110, 80))
	s, err := NewSceneFromMask(DefaultConfig(), m)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width() != 120 || s.Height() != 90 || s.Mask() != m {
		t.Errorf("unexpected scene geometry %dx%d", s.Width(), s.Height())
	}

	var c Collector
	st := s.Draw(canvasFunc(c.Triangle), StepAngle)
	if st.Decor != 0 {
		t.Errorf("expected no decor without artwork, got %d", st.Decor)
	}
	if st.Wide+st.Narrow == 0 {
		t.Error("expected the silhouette to be filled")
	}
	if len(c.Triangles) != st.Total() {
		t.Errorf("expected %d triangles, got %d", st.Total(), len(c.Triangles))
	}
}

// canvasFunc turns an emitter function into a Canvas ignoring colors.
type canvasFunc func(Triangle)

func (f canvasFunc) Triangle(t Triangle) { f(t) }
func (f canvasFunc) Clear(color.Color)   {}
func (f canvasFunc) SetFill(color.Color) {}
