package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/esimov/trifill"
	"github.com/esimov/trifill/preview"
	"github.com/esimov/trifill/utils"
)

var defaults = trifill.DefaultConfig()

var (
	// Flags
	destination = flag.String("out", "", "Destination file (.png, .gif or .svg)")
	step        = flag.Int("step", 0, "Rotation step (0, 1 or 2) of still output")
	artwork     = flag.String("artwork", "", "Artwork table (JSON); defaults to the built-in figure")
	maskSrc     = flag.String("mask", "", "Silhouette image path or URL, replaces the artwork outline")
	showPreview = flag.Bool("preview", false, "Play the animation in the terminal")
	baseSide    = flag.Float64("base", defaults.Wide.BaseSide, "Wide lattice base side")
	smallSide   = flag.Float64("small", defaults.Narrow.BaseSide, "Narrow lattice base side")
	spacing     = flag.Float64("spacing", defaults.Wide.Spacing, "Gap between silhouette triangles")
	bgSide      = flag.Float64("bg", defaults.Backdrop.BaseSide, "Backdrop lattice base side")
	bgSpacing   = flag.Float64("bgspacing", defaults.Backdrop.Spacing, "Gap between backdrop triangles")
	widthSwitch = flag.Float64("switch", defaults.WidthSwitch, "Thickness separating wide and narrow cells")
	pivot       = flag.Float64("pivot", defaults.PivotFraction, "Pivot offset as a fraction of the side")
	band        = flag.Float64("band", defaults.BandFactor, "Narrow band width as a fraction of the base side")
	rate        = flag.Float64("rate", defaults.RotationRate, "Rotation steps per second")
	bgColor     = flag.String("bgcolor", "#ff00ff", "Background color")
	backdrop    = flag.String("backdrop", "#000000", "Backdrop triangle color")
	fillColor   = flag.String("fill", "#000000", "Silhouette triangle color")
	noise       = flag.Int("noise", 0, "Noise factor of raster output")
	workers     = flag.Int("workers", defaults.Workers, "Goroutines generating lattice rows (0 = all CPUs)")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Parse()

	if len(*destination) == 0 && !*showPreview {
		log.Fatal("Usage: trifill -out figure.png | -out figure.gif | -out figure.svg | -preview")
	}
	if *verbose {
		trifill.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := config()
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scene, err := loadScene(ctx, cfg)
	if err != nil {
		log.Fatalf("Unable to build scene: %v", err)
	}

	if *showPreview {
		if err := play(ctx, scene); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Preview failed: %v", err)
		}
		return
	}

	var spinner *utils.Spinner
	if utils.IsTerminal(os.Stderr) {
		spinner = utils.NewSpinner(os.Stderr, "Generating triangle lattice...")
		spinner.Start()
	}
	start := time.Now()
	err = render(scene, *destination)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		log.Fatalf("Error rendering %s: %v", *destination, err)
	}

	fmt.Fprintf(os.Stderr, "Generated in: %s\n", utils.Decorate(utils.FormatTime(time.Since(start)), utils.SuccessColor))
	fmt.Fprintf(os.Stderr, "Saved as: %s %s\n", filepath.Base(*destination), utils.Decorate("✓", utils.SuccessColor))
}

// config collects the scene options from the command line flags.
func config() (trifill.Config, error) {
	cfg := trifill.DefaultConfig()
	cfg.Wide = trifill.Params{BaseSide: *baseSide, Spacing: *spacing}
	cfg.Narrow = trifill.Params{BaseSide: *smallSide, Spacing: *spacing}
	cfg.Backdrop = trifill.Params{BaseSide: *bgSide, Spacing: *bgSpacing}
	cfg.WidthSwitch = *widthSwitch
	cfg.PivotFraction = *pivot
	cfg.BandFactor = *band
	cfg.RotationRate = *rate
	cfg.Workers = *workers
	cfg.Noise = *noise

	var errs []error
	for _, c := range []struct {
		flag string
		src  string
		dst  *color.Color
	}{
		{"bgcolor", *bgColor, &cfg.Background},
		{"backdrop", *backdrop, &cfg.BackdropFill},
		{"fill", *fillColor, &cfg.Fill},
	} {
		col, err := colorful.Hex(c.src)
		if err != nil {
			errs = append(errs, fmt.Errorf("-%s: %w", c.flag, err))
			continue
		}
		*c.dst = col
	}
	errs = append(errs, cfg.Validate())
	return cfg, errors.Join(errs...)
}

// loadScene builds the scene from the artwork table or the silhouette image.
func loadScene(ctx context.Context, cfg trifill.Config) (*trifill.Scene, error) {
	if *maskSrc != "" {
		img, err := decodeImage(ctx, *maskSrc)
		if err != nil {
			return nil, err
		}
		m, err := trifill.NewMaskFromImage(img)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", *maskSrc, err)
		}
		return trifill.NewSceneFromMask(cfg, m)
	}

	art, err := loadArtwork(*artwork)
	if err != nil {
		return nil, err
	}
	return trifill.NewScene(cfg, art)
}

func loadArtwork(path string) (*trifill.Artwork, error) {
	if path == "" {
		return trifill.DefaultArtwork()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return trifill.LoadArtwork(f)
}

func decodeImage(ctx context.Context, src string) (image.Image, error) {
	var (
		f   *os.File
		err error
	)
	if utils.IsURL(src) {
		f, err = utils.DownloadFile(ctx, src)
		if err == nil {
			defer os.Remove(f.Name())
		}
	} else {
		f, err = os.Open(src)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", src, err)
	}
	return img, nil
}

// render writes the scene to path, picking the encoder from its extension.
func render(scene *trifill.Scene, path string) (err error) {
	var encode func(io.Writer) error
	angle := trifill.StepAngleOf(*step)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = func(w io.Writer) error { return scene.EncodePNG(w, angle) }
	case ".gif":
		encode = scene.EncodeGIF
	case ".svg":
		encode = func(w io.Writer) error { return scene.EncodeSVG(w, angle) }
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f)
}

// play runs the terminal preview.
func play(ctx context.Context, scene *trifill.Scene) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return preview.Run(ctx, screen, scene)
}
