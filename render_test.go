package trifill

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"strings"
	"testing"
)

func smallScene(t *testing.T, cfg Config) *Scene {
	t.Helper()
	m := rectMask(t, 120, 90, image.Rect(10, 10, 110, 80))
	s, err := NewSceneFromMask(cfg, m)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRenderImage(t *testing.T) {
	s := smallScene(t, DefaultConfig())
	img := s.RenderImage(0)

	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 90 {
		t.Fatalf("expected 120x90 image, got %v", b)
	}

	var bg, fill int
	for y := 0; y < 90; y++ {
		for x := 0; x < 120; x++ {
			switch color.NRGBAModel.Convert(img.At(x, y)) {
			case color.NRGBA{R: 0xff, B: 0xff, A: 0xff}:
				bg++
			case color.NRGBA{A: 0xff}:
				fill++
			}
		}
	}
	if bg == 0 || fill == 0 {
		t.Errorf("expected background gaps and filled triangles, got %d and %d pixels", bg, fill)
	}
}

func TestRenderNoiseIsStable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Noise = 20
	s := smallScene(t, cfg)

	a, ok := s.RenderImage(StepAngle).(*image.NRGBA)
	if !ok {
		t.Fatal("expected an NRGBA image with grain")
	}
	b := s.RenderImage(StepAngle).(*image.NRGBA)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("expected the grain to be identical between renders")
	}
}

func TestEncodePNG(t *testing.T) {
	s := defaultScene(t, DefaultConfig())

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf, 0); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 600 {
		t.Errorf("expected 600x600 image, got %v", b)
	}
}

func TestEncodeGIF(t *testing.T) {
	s := smallScene(t, DefaultConfig())

	var buf bytes.Buffer
	if err := s.EncodeGIF(&buf); err != nil {
		t.Fatalf("EncodeGIF: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("gif.DecodeAll: %v", err)
	}
	if len(g.Image) != RotationSteps {
		t.Fatalf("expected %d frames, got %d", RotationSteps, len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 100 {
			t.Errorf("frame %d: expected a 1s delay, got %d", i, d)
		}
	}
	if g.LoopCount != 0 {
		t.Errorf("expected an endless loop, got %d", g.LoopCount)
	}
}

func TestEncodeSVG(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fill = color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x80}
	s := defaultScene(t, cfg)

	var c Collector
	st := s.Draw(canvasFunc(c.Triangle), 2*StepAngle)

	var buf bytes.Buffer
	if err := s.EncodeSVG(&buf, 2*StepAngle); err != nil {
		t.Fatalf("EncodeSVG: %v", err)
	}
	out := buf.String()

	if n := strings.Count(out, "<path "); n != st.Total() {
		t.Errorf("expected %d path elements, got %d", st.Total(), n)
	}
	if n := strings.Count(out, "<rect "); n != 1 {
		t.Errorf("expected a single background rect, got %d", n)
	}
	if !strings.Contains(out, "fill:#ff00ff") {
		t.Error("expected the magenta background")
	}
	if !strings.Contains(out, "fill:#123456;fill-opacity:0.502") {
		t.Error("expected a translucent fill")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("expected a closed document")
	}
}

func TestFillStyle(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{color.Black, "fill:#000000"},
		{color.Transparent, "fill:none"},
		{color.RGBA{R: 0xff, B: 0xff, A: 0xff}, "fill:#ff00ff"},
	}
	for _, tt := range tests {
		if got := fillStyle(tt.c); got != tt.want {
			t.Errorf("fillStyle(%v): expected %q, got %q", tt.c, tt.want, got)
		}
	}
}
