package trifill

import (
	"errors"
	"fmt"
	"image/color"
)

// Config holds the static options of a scene.
type Config struct {
	Wide     Params // coarse lattice used in broad regions
	Narrow   Params // fine lattice used in thin limbs
	Backdrop Params // full-bleed lattice drawn behind the silhouette

	WidthSwitch   float64 // thickness separating wide from narrow cells
	PivotFraction float64 // pivot offset as a fraction of the drawn side
	BandFactor    float64 // narrow band width as a fraction of the base side
	RotationRate  float64 // rotation steps per second

	// Workers bounds the goroutines evaluating lattice rows.
	// 1 walks the lattice sequentially, 0 uses GOMAXPROCS.
	Workers int

	Background   color.Color
	BackdropFill color.Color
	Fill         color.Color

	// Noise applies a film grain of the given strength to raster output.
	Noise int
}

// DefaultConfig returns the options of the default figure.
func DefaultConfig() Config {
	return Config{
		Wide:          Params{BaseSide: 18, Spacing: 2},
		Narrow:        Params{BaseSide: 14, Spacing: 2},
		Backdrop:      Params{BaseSide: 20, Spacing: 3},
		WidthSwitch:   DefaultWidthSwitch,
		PivotFraction: DefaultPivotFraction,
		BandFactor:    DefaultBandFactor,
		RotationRate:  1.0,
		Workers:       1,
		Background:    color.RGBA{R: 0xff, B: 0xff, A: 0xff},
		BackdropFill:  color.Black,
		Fill:          color.Black,
	}
}

// Validate reports every configuration error at once. Invalid lattices are
// fatal: a non-positive drawn side cannot be recovered while running.
func (c Config) Validate() error {
	var errs []error
	for _, l := range []struct {
		name string
		p    Params
	}{
		{"wide", c.Wide},
		{"narrow", c.Narrow},
		{"backdrop", c.Backdrop},
	} {
		if err := l.p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s lattice: %w", l.name, err))
		}
	}
	if !(c.BandFactor > 0) {
		errs = append(errs, fmt.Errorf("band factor must be positive, got %g", c.BandFactor))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	return errors.Join(errs...)
}

func (c Config) lattice(p Params, mode Mode) *Lattice {
	l := NewLattice(p, mode)
	l.WidthSwitch = c.WidthSwitch
	l.PivotFraction = c.PivotFraction
	l.BandFactor = c.BandFactor
	return l
}
