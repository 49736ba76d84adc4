// Command noisegen renders seeded OpenSimplex noise to an image file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/noise"
	"github.com/gogpu/noise/imaging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// config holds the parsed command-line flags.
type config struct {
	seed          int64
	width, height int
	octaves       int
	detail        int
	zoom          float64
	seamless      bool
	workers       int
	scale         int
	first, second string
	output        string
}

func main() {
	var cfg config
	flag.Int64Var(&cfg.seed, "seed", 0, "noise seed")
	flag.IntVar(&cfg.width, "width", 256, "grid width in samples")
	flag.IntVar(&cfg.height, "height", 256, "grid height in samples")
	flag.IntVar(&cfg.octaves, "octaves", 1, "number of octaves")
	flag.IntVar(&cfg.detail, "detail", -1, "detail level 0-100 (overrides -octaves; -1 = off)")
	flag.Float64Var(&cfg.zoom, "zoom", 300, "feature scale used with -detail")
	flag.BoolVar(&cfg.seamless, "seamless", false, "blend edges so the image tiles")
	flag.IntVar(&cfg.workers, "workers", 0, "fill goroutines (0 = sequential)")
	flag.IntVar(&cfg.scale, "scale", 1, "upscale factor applied after sampling")
	flag.StringVar(&cfg.first, "first", "", "color at -1 as #rrggbb (empty = 16-bit gray)")
	flag.StringVar(&cfg.second, "second", "#ffffff", "color at +1 as #rrggbb")
	flag.StringVar(&cfg.output, "output", "noise.png", "output file (.png, .bmp, .tif)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		noise.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		log.Fatalf("noisegen: %v", err)
	}
}

// octaveList picks the layers to sample from -detail or -octaves.
func (cfg config) octaveList() ([]noise.Octave, error) {
	if cfg.detail >= 0 {
		if cfg.detail > 100 {
			return nil, fmt.Errorf("detail must be in 0..100, got %d", cfg.detail)
		}
		octaves := noise.DetailOctaves(cfg.zoom, cfg.detail)
		if octaves == nil {
			return nil, fmt.Errorf("zoom must be > 0, got %v", cfg.zoom)
		}
		return octaves, nil
	}
	if cfg.octaves <= 0 {
		return nil, fmt.Errorf("octaves must be > 0, got %d", cfg.octaves)
	}
	return noise.Octaves(cfg.octaves), nil
}

func run(cfg config) error {
	if cfg.scale < 1 {
		return fmt.Errorf("scale must be >= 1, got %d", cfg.scale)
	}
	n, err := noise.GridLen(cfg.width, cfg.height)
	if err != nil {
		return err
	}
	if cfg.width > math.MaxInt/cfg.scale || cfg.height > math.MaxInt/cfg.scale {
		return fmt.Errorf("scaled size %dx%d times %d overflows", cfg.width, cfg.height, cfg.scale)
	}
	if _, err := noise.GridLen(cfg.width*cfg.scale, cfg.height*cfg.scale); err != nil {
		return fmt.Errorf("scaled size: %w", err)
	}
	octaves, err := cfg.octaveList()
	if err != nil {
		return err
	}

	start := time.Now()
	ctx := noise.New(cfg.seed)
	buf := make([]float32, n)

	var opts []noise.FillOption
	if cfg.workers > 1 {
		opts = append(opts, noise.WithWorkers(cfg.workers))
	}
	fill := ctx.FillOctaves
	if cfg.seamless {
		fill = ctx.FillSeamless
	}
	if err := fill(buf, cfg.width, cfg.height, octaves, opts...); err != nil {
		return err
	}
	elapsed := time.Since(start)

	img, err := render(buf, cfg.width, cfg.height, cfg.first, cfg.second)
	if err != nil {
		return err
	}
	if cfg.scale > 1 {
		if img, err = imaging.Scale(img, cfg.width*cfg.scale, cfg.height*cfg.scale); err != nil {
			return err
		}
	}

	if err := imaging.Save(cfg.output, img); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Printf("seed %d: %d samples (%dx%d, %d octaves) in %v -> %s\n",
		cfg.seed, len(buf), cfg.width, cfg.height, len(octaves), elapsed.Round(time.Microsecond), cfg.output)
	return nil
}

func render(buf []float32, width, height int, first, second string) (image.Image, error) {
	if first == "" {
		return imaging.Gray16(buf, width, height)
	}
	a, err := parseHex(first)
	if err != nil {
		return nil, err
	}
	b, err := parseHex(second)
	if err != nil {
		return nil, err
	}
	return imaging.Colorize(buf, width, height, a, b)
}

// parseHex parses #rrggbb into an opaque color.
func parseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
