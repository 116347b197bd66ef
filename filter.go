package trifill

import (
	"image"
	"image/color"
)

// grain is the Park-Miller minimal standard generator. It is seeded with a
// constant so the same frame always receives the same grain, which keeps the
// animation from flickering between rotation steps.
type grain struct {
	seed int
}

const (
	grainMul = 16807
	grainMod = 0x7fffffff
)

func (g *grain) next() float64 {
	lo := grainMul * (g.seed & 0xffff)
	hi := grainMul * (g.seed >> 16)
	lo += (hi & 0x7fff) << 16
	if lo > grainMod {
		lo &= grainMod
		lo++
	}
	lo += hi >> 15
	if lo > grainMod {
		lo &= grainMod
		lo++
	}
	g.seed = lo
	return float64(lo) / grainMod
}

// Noise applies a noise factor, like adobe's grain filter, to the w×h area
// at the origin of img.
func Noise(amount int, img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	src := ImgToNRGBA(img)
	g := &grain{seed: 1}

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			n := (g.next() - 0.1) * float64(amount)
			c := src.NRGBAAt(x, y)
			dst.SetNRGBA(x, y, color.NRGBA{
				R: uint8(Clamp(float64(c.R)+n, 0, 255)),
				G: uint8(Clamp(float64(c.G)+n, 0, 255)),
				B: uint8(Clamp(float64(c.B)+n, 0, 255)),
				A: c.A,
			})
		}
	}
	return dst
}
