package trifill

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"time"

	"github.com/fogleman/gg"
)

// Raster is a Canvas drawing anti-aliased triangles into an RGBA image.
type Raster struct {
	ctx *gg.Context
}

// NewRaster creates a transparent raster canvas.
func NewRaster(width, height int) *Raster {
	return &Raster{ctx: gg.NewContext(width, height)}
}

// Clear paints the whole canvas with c. The fill color is left untouched.
func (r *Raster) Clear(c color.Color) {
	r.ctx.Push()
	r.ctx.SetColor(c)
	r.ctx.Clear()
	r.ctx.Pop()
}

// SetFill sets the color used by the following triangles.
func (r *Raster) SetFill(c color.Color) {
	r.ctx.SetFillStyle(gg.NewSolidPattern(c))
}

// Triangle fills t without stroking its outline.
func (r *Raster) Triangle(t Triangle) {
	r.ctx.MoveTo(t[0].X, t[0].Y)
	r.ctx.LineTo(t[1].X, t[1].Y)
	r.ctx.LineTo(t[2].X, t[2].Y)
	r.ctx.ClosePath()
	r.ctx.Fill()
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image {
	return r.ctx.Image()
}

// RenderImage draws one frame at the given rotation angle.
func (s *Scene) RenderImage(angle float64) image.Image {
	r := NewRaster(s.Width(), s.Height())
	s.Draw(r, angle)

	img := r.Image()
	// Apply a grain on the final image. This gives it a more printed look.
	if s.cfg.Noise > 0 {
		return Noise(s.cfg.Noise, img, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return img
}

// EncodePNG writes the frame at the given rotation angle as PNG.
func (s *Scene) EncodePNG(w io.Writer, angle float64) error {
	return png.Encode(w, s.RenderImage(angle))
}

// EncodeGIF writes the full rotation cycle as a looping animated GIF, one
// frame per rotation step, each frame lasting one step period.
func (s *Scene) EncodeGIF(w io.Writer) error {
	period := NewAnimator(s.cfg.RotationRate, time.Time{}).Period()
	delay := int(period / (10 * time.Millisecond))

	anim := &gif.GIF{LoopCount: 0}
	for i := 0; i < RotationSteps; i++ {
		img := s.RenderImage(StepAngleOf(i))
		frame := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.Draw(frame, frame.Bounds(), img, img.Bounds().Min, draw.Src)

		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}
