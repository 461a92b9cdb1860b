package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// TileTask asks a worker to render one tile into Target
type TileTask struct {
	Tile   *Tile
	TaskID int
	Target *canvas.Canvas
}

// TileResult reports a finished (or skipped) tile
type TileResult struct {
	TaskID  int
	TileID  int
	Worker  int
	Elapsed time.Duration
	Stats   RenderStats
	Error   error // ctx.Err() when the tile was skipped after cancellation
}

// tileRenderer renders the pixels inside bounds into target
type tileRenderer func(bounds image.Rectangle, target *canvas.Canvas) RenderStats

// WorkerPool fans tile tasks out to a fixed set of goroutines sharing one
// read-only raytracer. Tiles never overlap, so workers write to the shared
// canvas without locking.
type WorkerPool struct {
	tasks   chan TileTask
	results chan TileResult
	size    int
	render  tileRenderer
	wg      sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers goroutines (NumCPU when <= 0).
// Both queues hold maxTasks entries so a whole frame can be queued up front.
func NewWorkerPool(rt *Raytracer, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		tasks:   make(chan TileTask, maxTasks),
		results: make(chan TileResult, maxTasks),
		size:    numWorkers,
		render:  rt.RenderBounds,
	}
}

// Start launches the workers. They exit once Stop closes the task queue.
func (wp *WorkerPool) Start(ctx context.Context) {
	wp.wg.Add(wp.size)
	for id := 0; id < wp.size; id++ {
		go wp.work(ctx, id)
	}
}

// Stop closes the task queue, waits for queued tiles to drain and then
// closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.tasks)
	wp.wg.Wait()
	close(wp.results)
}

// SubmitTask queues a tile
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.tasks <- task
}

// GetResult blocks for the next finished tile. ok is false after Stop once
// every result has been read.
func (wp *WorkerPool) GetResult() (result TileResult, ok bool) {
	result, ok = <-wp.results
	return result, ok
}

// GetNumWorkers returns the pool size
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.size
}

func (wp *WorkerPool) work(ctx context.Context, id int) {
	defer wp.wg.Done()

	for task := range wp.tasks {
		result := TileResult{TaskID: task.TaskID, TileID: task.Tile.ID, Worker: id}
		// Keep draining after cancellation so Stop never blocks
		if err := ctx.Err(); err != nil {
			result.Error = err
		} else {
			start := time.Now()
			result.Stats = wp.render(task.Tile.Bounds, task.Target)
			result.Elapsed = time.Since(start)
		}
		wp.results <- result
	}
}
