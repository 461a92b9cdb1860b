package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raytracer renders a scene's world through its camera
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	config     scene.RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a raytracer for the scene using the Whitted integrator
func NewRaytracer(s *scene.Scene, logger core.Logger) (*Raytracer, error) {
	if s == nil || s.World == nil {
		return nil, errors.New("raytracer: scene has no world")
	}
	camera, err := NewCameraFromConfig(s.Camera)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if logger == nil {
		logger = core.NewNopLogger()
	}
	return &Raytracer{
		scene:      s,
		camera:     camera,
		integrator: integrator.NewWhittedIntegrator(s.Render),
		config:     s.Render,
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// Camera returns the camera rays are generated from
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Config returns the render settings
func (rt *Raytracer) Config() scene.RenderConfig {
	return rt.config
}

// RenderPixel traces the primary ray through pixel (x, y)
func (rt *Raytracer) RenderPixel(x, y int) core.Color {
	ray := rt.camera.RayForPixel(x, y)
	return rt.integrator.RayColor(ray, rt.scene.World, rt.config.MaxDepth)
}

// RenderBounds renders the pixels inside bounds into target
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, target *canvas.Canvas) RenderStats {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			target.WritePixel(x, y, rt.RenderPixel(x, y))
		}
	}
	pixels := bounds.Dx() * bounds.Dy()
	return RenderStats{TotalPixels: pixels, PrimaryRays: pixels, Tiles: 1}
}

// Render renders every pixel in row-major order on the calling goroutine
func (rt *Raytracer) Render() (*canvas.Canvas, RenderStats) {
	start := time.Now()
	c := canvas.New(rt.camera.HSize, rt.camera.VSize)
	rt.logger.Infof("Rendering %s serially at %dx%d, max depth %d",
		rt.scene.Name, c.Width, c.Height, rt.config.MaxDepth)

	stats := rt.RenderBounds(c.Bounds(), c)
	stats.Workers = 1
	rt.finish(c, &stats, start)
	return c, stats
}

// RenderParallel splits the image into tiles and renders them on a worker
// pool. The result is identical to Render. Cancelling ctx stops workers from
// starting new tiles and returns ctx's error.
func (rt *Raytracer) RenderParallel(ctx context.Context) (*canvas.Canvas, RenderStats, error) {
	start := time.Now()
	c := canvas.New(rt.camera.HSize, rt.camera.VSize)
	tiles := NewTileGrid(c.Width, c.Height, rt.config.TileSize)

	numWorkers := rt.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = min(numWorkers, len(tiles))

	rt.logger.Infof("Rendering %s at %dx%d with %d workers over %d tiles, max depth %d",
		rt.scene.Name, c.Width, c.Height, numWorkers, len(tiles), rt.config.MaxDepth)

	pool := NewWorkerPool(rt, len(tiles), numWorkers)
	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Target: c})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var renderErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			renderErr = result.Error
			continue
		}
		stats.add(result.Stats)
		rt.logger.Debugf("Tile %d done by worker %d in %s (%d/%d)",
			result.TileID, result.Worker, result.Elapsed, stats.Tiles, len(tiles))
	}
	pool.Stop()

	if renderErr != nil {
		rt.logger.Warnf("Render of %s cancelled after %d/%d tiles: %v", rt.scene.Name, stats.Tiles, len(tiles), renderErr)
		return nil, stats, renderErr
	}

	rt.finish(c, &stats, start)
	return c, stats, nil
}

func (rt *Raytracer) finish(c *canvas.Canvas, stats *RenderStats, start time.Time) {
	stats.Elapsed = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(c.ToImage())
	rt.logger.Infof("Render of %s complete: %s", rt.scene.Name, stats)
}
