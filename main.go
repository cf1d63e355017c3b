package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-lambert-raytracer/pkg/output"
	"github.com/df07/go-lambert-raytracer/pkg/renderer"
	"github.com/df07/go-lambert-raytracer/pkg/scene"
)

const helpText = `Lambert Raytracer
Usage: raytracer --source=scene.obj --output=render.ppm [options]

Renders a Wavefront OBJ mesh or a JSON scene description to a PPM or PNG
image. OBJ meshes are viewed from (0,0,20) through a 10x10 frame at z=10 and
lit by a directional light travelling along -z.

Options:
`

// config holds the validated command line
type config struct {
	source  string
	output  string
	width   int
	height  int
	sizeSet bool // width or height given explicitly
	workers int
	preview bool
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run with --help for usage.")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs parses and validates the command line. It returns flag.ErrHelp
// after printing usage when --help is given.
func parseArgs(args []string, out io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.source, "source", "", "Scene file to render (.obj or .json)")
	fs.StringVar(&cfg.output, "output", "", "Image file to write (.ppm or .png)")
	fs.IntVar(&cfg.width, "width", scene.DefaultWidth, "Image width in pixels")
	fs.IntVar(&cfg.height, "height", scene.DefaultHeight, "Image height in pixels")
	fs.IntVar(&cfg.workers, "workers", 1, "Number of parallel row workers (0 = one per CPU)")
	fs.BoolVar(&cfg.preview, "preview", false, "Print an ASCII preview of the render")
	fs.Usage = func() {
		fmt.Fprint(out, helpText)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "width" || f.Name == "height" {
			cfg.sizeSet = true
		}
	})

	if cfg.source == "" {
		return cfg, errors.New("--source is required")
	}
	switch strings.ToLower(filepath.Ext(cfg.source)) {
	case ".obj", ".json":
	default:
		return cfg, fmt.Errorf("--source must be an .obj or .json file, got %s", cfg.source)
	}
	if info, err := os.Stat(cfg.source); err != nil {
		return cfg, fmt.Errorf("--source: %w", err)
	} else if info.IsDir() {
		return cfg, fmt.Errorf("--source: %s is a directory", cfg.source)
	}

	if cfg.output == "" {
		return cfg, errors.New("--output is required")
	}
	if _, err := output.ForPath(cfg.output); err != nil {
		return cfg, fmt.Errorf("--output must be a .ppm or .png file: %w", err)
	}

	if cfg.width <= 0 || cfg.height <= 0 {
		return cfg, fmt.Errorf("image size must be positive, got %dx%d", cfg.width, cfg.height)
	}
	if cfg.workers < 0 {
		return cfg, fmt.Errorf("--workers must not be negative, got %d", cfg.workers)
	}

	return cfg, nil
}

// run loads the scene, renders it and writes the image
func run(ctx context.Context, cfg config, stdout io.Writer) error {
	logger := renderer.NewDefaultLogger()

	fmt.Fprintf(stdout, "Loading %s...\n", cfg.source)
	s, err := scene.NewFileScene(cfg.source, logger)
	if err != nil {
		return err
	}

	// Scene files may set their own size; explicit flags win
	width, height := cfg.width, cfg.height
	if !cfg.sizeSet {
		width, height = s.Width, s.Height
	}

	raytracer := renderer.NewRaytracer(s, s.Camera, width, height)
	raytracer.SetWorkers(cfg.workers)
	raytracer.SetLogger(logger)

	frame, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Fprintf(stdout, "Stats: %s\n", frame.Stats)

	writer, err := output.ForPath(cfg.output)
	if err != nil {
		return err
	}
	if err := writer.Write(frame.Pixels, frame.Width, frame.Height); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Render saved as %s\n", cfg.output)

	if cfg.preview {
		if err := output.NewConsoleWriter(stdout).Write(frame.Pixels, frame.Width, frame.Height); err != nil {
			return err
		}
	}
	return nil
}
