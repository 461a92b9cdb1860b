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
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType   string
	file        string
	sceneDir    string
	width       int
	height      int
	depth       int
	workers     int
	softShadows bool
	serial      bool
	output      string
	format      string
	stamp       bool
	watch       bool
	logLevel    string
	list        bool
	help        bool
}

func parseFlags(args []string, output io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.sceneType, "scene", "default", "Built-in scene name, 'file:<name>' from -scenes, or a .toml path")
	fs.StringVar(&opts.file, "file", "", "TOML scene file to render (overrides -scene)")
	fs.StringVar(&opts.sceneDir, "scenes", "scenes", "Directory searched for 'file:<name>' scenes")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", -1, "Reflection/refraction bounce budget (-1 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Parallel workers (0 = number of CPUs)")
	fs.BoolVar(&opts.softShadows, "soft-shadows", false, "Sample 8 points around the light for soft shadows")
	fs.BoolVar(&opts.serial, "serial", false, "Render on a single goroutine in row-major order")
	fs.StringVar(&opts.output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	fs.StringVar(&opts.format, "format", "", "Output format: "+strings.Join(canvas.Formats(), ", ")+" (default from -output, else png)")
	fs.BoolVar(&opts.stamp, "stamp", false, "Draw render statistics onto the image")
	fs.BoolVar(&opts.watch, "watch", false, "Re-render whenever the -file scene changes")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if opts.watch && opts.file == "" {
		return nil, fs, errors.New("-watch requires -file")
	}
	if opts.width < 0 || opts.height < 0 {
		return nil, fs, fmt.Errorf("image size must not be negative, got %dx%d", opts.width, opts.height)
	}
	return opts, fs, nil
}

// createScene builds the scene named by sceneType, or the TOML file when one is given
func createScene(sceneType, file, sceneDir string, cameraOverride scene.CameraConfig) (*scene.Scene, error) {
	if file != "" {
		return loaders.ResolveScene(file, sceneDir, cameraOverride)
	}
	if sceneType == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}
	return loaders.ResolveScene(sceneType, sceneDir, cameraOverride)
}

// applyRenderOverrides applies the render flags on top of the scene's settings
func applyRenderOverrides(s *scene.Scene, opts *options) {
	if opts.depth >= 0 {
		s.Render.MaxDepth = opts.depth
	}
	if opts.workers > 0 {
		s.Render.Workers = opts.workers
	}
	if opts.softShadows {
		s.Render.SoftShadows = true
	}
}

// resolveFormat picks the output format from -format, then the -output extension
func resolveFormat(format, output string) (string, error) {
	if format != "" {
		return canvas.NormalizeFormat(format)
	}
	if output != "" {
		return canvas.FormatFromPath(output)
	}
	return canvas.FormatPNG, nil
}

// createOutputDir returns the directory renders of a scene are written to
func createOutputDir(sceneName string) string {
	base := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	base = strings.TrimPrefix(base, loaders.FileScenePrefix)
	if base == "" || base == "." {
		base = "scene"
	}
	return filepath.Join("output", base)
}

// outputPath returns the file a render is written to
func outputPath(opts *options, sceneName, format string, now time.Time) string {
	if opts.output != "" {
		return opts.output
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join(createOutputDir(sceneName), fmt.Sprintf("render_%s.%s", timestamp, format))
}

// render renders the scene and writes it to disk, returning the file written
func render(ctx context.Context, s *scene.Scene, opts *options, format string, logger core.Logger) (string, error) {
	rt, err := renderer.NewRaytracer(s, logger)
	if err != nil {
		return "", err
	}

	var c *canvas.Canvas
	var stats renderer.RenderStats
	if opts.serial {
		c, stats = rt.Render()
	} else {
		c, stats, err = rt.RenderParallel(ctx)
		if err != nil {
			return "", err
		}
	}

	filename := outputPath(opts, s.Name, format, time.Now())
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if opts.stamp && format != canvas.FormatPPM {
		err = canvas.EncodeImage(file, c.StampedImage(fmt.Sprintf("%s | %s", s.Name, stats)), format)
	} else {
		err = c.Encode(file, format)
	}
	if err != nil {
		return "", err
	}
	return filename, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet, sceneDir string) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	printScenes(w, sceneDir)
}

func printScenes(w io.Writer, sceneDir string) {
	response, err := scene.ListAllScenes(sceneDir)
	if err != nil {
		fmt.Fprintf(w, "Error listing scenes: %v\n", err)
		return
	}
	for _, group := range response.Groups {
		fmt.Fprintf(w, "%s:\n", group.Name)
		for _, info := range group.Scenes {
			if info.Description != "" {
				fmt.Fprintf(w, "  %-16s %s - %s\n", info.ID, info.DisplayName, info.Description)
			} else {
				fmt.Fprintf(w, "  %-16s %s\n", info.ID, info.DisplayName)
			}
		}
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.help {
		printHelp(stdout, fs, opts.sceneDir)
		return 0
	}
	if opts.list {
		printScenes(stdout, opts.sceneDir)
		return 0
	}

	logger, err := core.NewLogger(stderr, opts.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		logger.Error("Invalid output format", "err", err)
		return 2
	}

	cameraOverride := scene.CameraConfig{Width: opts.width, Height: opts.height}
	s, err := createScene(opts.sceneType, opts.file, opts.sceneDir, cameraOverride)
	if err != nil {
		logger.Error("Failed to create scene", "err", err)
		return 1
	}
	applyRenderOverrides(s, opts)
	logger.Info("Scene loaded", "name", s.Name, "shapes", s.ShapeCount(),
		"size", fmt.Sprintf("%dx%d", s.Camera.Width, s.Camera.Height))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := render(ctx, s, opts, format, logger)
	if err != nil {
		logger.Error("Render failed", "err", err)
		return 1
	}
	logger.Info("Render saved", "file", filename)

	if !opts.watch {
		return 0
	}

	watcher, err := loaders.NewWatcher(opts.file, logger)
	if err != nil {
		logger.Error("Failed to watch scene file", "err", err)
		return 1
	}
	logger.Info("Watching for changes, press Ctrl+C to stop", "file", opts.file)
	err = watcher.Run(ctx, func(reloaded *scene.Scene) {
		reloaded.Camera = scene.MergeCameraConfig(reloaded.Camera, cameraOverride)
		applyRenderOverrides(reloaded, opts)
		filename, err := render(ctx, reloaded, opts, format, logger)
		if err != nil {
			logger.Error("Render failed", "err", err)
			return
		}
		logger.Info("Render saved", "file", filename)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Watcher stopped", "err", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
