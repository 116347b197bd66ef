/*
Package trifill fills a silhouette with an animated lattice of equilateral triangles.

The silhouette is rasterized once into an occupancy mask (outer paths minus holes).
Two lattice passes then walk the canvas: the wide pass places coarse triangles where
the shape is thick, the narrow pass places finer triangles in thin limbs and turns them
to face each other across the strip. Every triangle is rotated around a slightly
off-center pivot by a global angle that snaps through 0°, 120° and 240°, and is kept
only if its rotated vertices and edge midpoints stay inside the mask.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ trifill --help

The generator never draws by itself: triangles are handed to a Canvas, which can be a
raster image, an SVG document or the terminal preview.

Example to render the default figure as PNG:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/trifill"
	)

	func main() {
		art, err := trifill.DefaultArtwork()
		if err != nil {
			log.Fatal(err)
		}
		scene, err := trifill.NewScene(trifill.DefaultConfig(), art)
		if err != nil {
			log.Fatal(err)
		}
		f, err := os.Create("figure.png")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		if err := scene.EncodePNG(f, 0); err != nil {
			log.Fatal(err)
		}
	}

Example to drive the rotation from a frame loop and collect the triangles:

	anim := trifill.NewAnimator(cfg.RotationRate, time.Now())
	for range ticker.C {
		angle := anim.Update(time.Now())
		var c trifill.Collector
		lattice := trifill.NewLattice(cfg.Wide, trifill.Wide)
		lattice.Walk(mask, mask.Width(), mask.Height(), angle, &c)
	}
*/
package trifill
