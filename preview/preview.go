// Package preview plays a trifill scene inside a terminal. Every character
// cell shows two stacked canvas samples through the upper half block glyph,
// so the figure keeps roughly square proportions on common terminal fonts.
package preview

import (
	"context"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/esimov/trifill"
)

const (
	halfBlock     = '▀'
	frameInterval = time.Second / 30
)

// Terminal is a trifill.Canvas rasterizing triangles into a tcell screen.
type Terminal struct {
	screen tcell.Screen

	canvasW, canvasH float64
	cols, rows       int // screen size in cells
	scale            float64
	offX, offY       float64

	buf  []tcell.Color // cols × rows*2 samples
	fill tcell.Color
}

// New creates a terminal canvas showing a width×height scene on s.
func New(s tcell.Screen, width, height int) *Terminal {
	t := &Terminal{
		screen:  s,
		canvasW: float64(width),
		canvasH: float64(height),
		fill:    tcell.ColorBlack,
	}
	t.Resize()
	return t
}

// Resize fits the canvas into the current screen size, centered and with
// its aspect ratio preserved.
func (t *Terminal) Resize() {
	t.cols, t.rows = t.screen.Size()
	t.buf = make([]tcell.Color, t.cols*t.rows*2)
	if t.cols == 0 || t.rows == 0 {
		return
	}
	t.scale = math.Max(t.canvasW/float64(t.cols), t.canvasH/float64(t.rows*2))
	t.offX = (float64(t.cols) - t.canvasW/t.scale) / 2
	t.offY = (float64(t.rows*2) - t.canvasH/t.scale) / 2
}

// Clear fills every sample with c.
func (t *Terminal) Clear(c color.Color) {
	tc := tcell.FromImageColor(c)
	for i := range t.buf {
		t.buf[i] = tc
	}
}

// SetFill sets the color used by the following triangles.
func (t *Terminal) SetFill(c color.Color) {
	t.fill = tcell.FromImageColor(c)
}

// Triangle fills the samples whose center lies inside tri.
func (t *Terminal) Triangle(tri trifill.Triangle) {
	if t.cols == 0 || t.rows == 0 {
		return
	}
	var p [3]trifill.Point
	for i, v := range tri {
		p[i] = trifill.Pt(v.X/t.scale+t.offX, v.Y/t.scale+t.offY)
	}
	w, h := t.cols, t.rows*2
	x0 := trifill.Clamp(int(math.Floor(trifill.Min(p[0].X, p[1].X, p[2].X))), 0, w)
	x1 := trifill.Clamp(int(math.Ceil(trifill.Max(p[0].X, p[1].X, p[2].X))), 0, w)
	y0 := trifill.Clamp(int(math.Floor(trifill.Min(p[0].Y, p[1].Y, p[2].Y))), 0, h)
	y1 := trifill.Clamp(int(math.Ceil(trifill.Max(p[0].Y, p[1].Y, p[2].Y))), 0, h)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if covers(p, trifill.Pt(float64(x)+0.5, float64(y)+0.5)) {
				t.buf[y*w+x] = t.fill
			}
		}
	}
}

// covers reports whether q lies inside the triangle p, whatever its winding.
func covers(p [3]trifill.Point, q trifill.Point) bool {
	edge := func(a, b trifill.Point) float64 {
		return (b.X-a.X)*(q.Y-a.Y) - (b.Y-a.Y)*(q.X-a.X)
	}
	e0, e1, e2 := edge(p[0], p[1]), edge(p[1], p[2]), edge(p[2], p[0])
	return (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0)
}

// Flush copies the samples to the screen and shows them.
func (t *Terminal) Flush() {
	for y := 0; y < t.rows; y++ {
		top := t.buf[2*y*t.cols : (2*y+1)*t.cols]
		bottom := t.buf[(2*y+1)*t.cols : (2*y+2)*t.cols]
		for x := 0; x < t.cols; x++ {
			st := tcell.StyleDefault.Foreground(top[x]).Background(bottom[x])
			t.screen.SetContent(x, y, halfBlock, nil, st)
		}
	}
	t.screen.Show()
}

// Run plays the scene until the user presses Esc, q or Ctrl-C, or until ctx
// is done. The caller owns the screen: it must be initialized before Run and
// finalized afterwards. A frame is regenerated whenever the rotation steps or
// the terminal is resized.
func Run(ctx context.Context, s tcell.Screen, sc *trifill.Scene) error {
	t := New(s, sc.Width(), sc.Height())
	anim := trifill.NewAnimator(sc.Config().RotationRate, time.Now())

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	step, dirty := -1, true
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				t.Resize()
				s.Sync()
				dirty = true
			}

		case now := <-ticker.C:
			angle := anim.Update(now)
			if !dirty && anim.Step() == step {
				continue
			}
			step, dirty = anim.Step(), false
			st := sc.Draw(t, angle)
			t.Flush()
			trifill.Logger().Debug("preview frame", "step", step, "triangles", st.Total())
		}
	}
}
