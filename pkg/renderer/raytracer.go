package renderer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/geometry"
	"github.com/df07/go-lambert-raytracer/pkg/lights"
	"github.com/df07/go-lambert-raytracer/pkg/scene"
)

// Frame is a rendered grid of intensities in row-major order
type Frame struct {
	Width  int
	Height int
	Pixels []float64
	Stats  RenderStats
}

// At returns the intensity of pixel (x, y)
func (f *Frame) At(x, y int) float64 {
	return f.Pixels[y*f.Width+x]
}

// Raytracer renders a scene through a camera into a Frame. Every pixel is
// shaded with the Lambertian sum over all lights; there are no shadows or
// secondary rays.
type Raytracer struct {
	scene   *scene.Scene
	camera  *geometry.Camera
	width   int
	height  int
	workers int
	logger  core.Logger
}

// NewRaytracer creates a new single-worker raytracer
func NewRaytracer(s *scene.Scene, camera *geometry.Camera, width, height int) *Raytracer {
	return &Raytracer{
		scene:   s,
		camera:  camera,
		width:   width,
		height:  height,
		workers: 1,
		logger:  NewDefaultLogger(),
	}
}

// SetWorkers sets the number of parallel row workers. Zero or less uses one
// worker per CPU.
func (rt *Raytracer) SetWorkers(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rt.workers = workers
}

// Workers returns the number of row workers Render will use
func (rt *Raytracer) Workers() int {
	return rt.workers
}

// SetLogger replaces the logger used for render progress
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// TracePixel returns the intensity of pixel (x, y). It panics with a
// *geometry.SurfaceError if a shape reports a hit it cannot produce a normal
// for; Render turns that panic into an error.
func (rt *Raytracer) TracePixel(x, y int) float64 {
	intensity, _ := rt.tracePixel(x, y)
	return intensity
}

// tracePixel returns the pixel intensity and whether the camera ray hit
func (rt *Raytracer) tracePixel(x, y int) (float64, bool) {
	ray := rt.camera.RayForPixel(x, y, rt.width, rt.height)

	hit, ok := rt.scene.NearestHit(ray)
	if !ok {
		return 0, false
	}

	point := ray.At(hit.Intersection.T)
	normal := hit.Shape.NormalAt(point, hit.Intersection)

	return rt.shade(point, normal), true
}

// shade sums the Lambertian contribution of every light. Non-finite sums
// collapse to the background intensity.
func (rt *Raytracer) shade(point core.Point, normal core.Normal) float64 {
	intensity := 0.0
	for _, light := range rt.scene.Lights {
		intensity += lights.Lambert(light, point, normal)
	}

	if math.IsNaN(intensity) || math.IsInf(intensity, 0) {
		return 0
	}
	return intensity
}

// Render traces every pixel. With more than one worker, rows are spread over
// a worker pool; the result is identical to the sequential pass. A
// *geometry.SurfaceError raised while tracing aborts the render and is
// returned; cancellation of ctx returns ctx.Err(). No partial frame is
// returned on error.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, error) {
	if rt.width <= 0 || rt.height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", rt.width, rt.height)
	}
	if rt.camera == nil {
		return nil, errors.New("no camera")
	}

	start := time.Now()
	frame := &Frame{
		Width:  rt.width,
		Height: rt.height,
		Pixels: make([]float64, rt.width*rt.height),
	}
	rows := make([]rowStats, rt.height)

	rt.logger.Printf("Rendering %dx%d pixels, %d primitives, %d lights (using %d workers)...\n",
		rt.width, rt.height, rt.scene.PrimitiveCount(), len(rt.scene.Lights), rt.workers)

	var err error
	if rt.workers == 1 {
		err = rt.renderSequential(ctx, frame, rows)
	} else {
		err = rt.renderParallel(ctx, frame, rows)
	}
	if err != nil {
		return nil, err
	}

	frame.Stats = collectStats(frame, rows, rt.workers, time.Since(start))
	rt.logger.Printf("Render completed in %v: %d hits, %d misses\n",
		frame.Stats.Duration, frame.Stats.Hits, frame.Stats.Misses)

	return frame, nil
}

func (rt *Raytracer) renderSequential(ctx context.Context, frame *Frame, rows []rowStats) error {
	for y := 0; y < rt.height; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats, err := rt.renderRow(y, frame.Pixels[y*rt.width:(y+1)*rt.width])
		if err != nil {
			return err
		}
		rows[y] = stats
	}
	return nil
}

// rowStats counts hits and misses within one row
type rowStats struct {
	hits   int
	misses int
}

// renderRow traces one row into out, converting a surface precondition
// failure into an error
func (rt *Raytracer) renderRow(y int, out []float64) (stats rowStats, err error) {
	x := 0
	defer func() {
		if r := recover(); r != nil {
			surfaceErr, ok := r.(*geometry.SurfaceError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("pixel (%d, %d): %w", x, y, surfaceErr)
		}
	}()

	for x = 0; x < rt.width; x++ {
		intensity, hit := rt.tracePixel(x, y)
		out[x] = intensity
		if hit {
			stats.hits++
		} else {
			stats.misses++
		}
	}
	return stats, nil
}

// PixelInfo describes what the camera ray of one pixel hits
type PixelInfo struct {
	X, Y       int
	Ray        core.Ray
	Hit        bool
	ShapeIndex int
	ShapeType  string
	Distance   float64
	Point      core.Point
	Normal     core.Normal
	Intensity  float64
}

// Inspect traces pixel (x, y) and reports the hit details
func (rt *Raytracer) Inspect(x, y int) (info PixelInfo, err error) {
	if x < 0 || x >= rt.width || y < 0 || y >= rt.height {
		return PixelInfo{}, fmt.Errorf("pixel (%d, %d) outside %dx%d image", x, y, rt.width, rt.height)
	}

	defer func() {
		if r := recover(); r != nil {
			surfaceErr, ok := r.(*geometry.SurfaceError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("pixel (%d, %d): %w", x, y, surfaceErr)
		}
	}()

	ray := rt.camera.RayForPixel(x, y, rt.width, rt.height)
	info = PixelInfo{X: x, Y: y, Ray: ray, ShapeIndex: -1}

	hit, ok := rt.scene.NearestHit(ray)
	if !ok {
		return info, nil
	}

	info.Hit = true
	info.ShapeIndex = hit.Index
	info.ShapeType = fmt.Sprintf("%T", hit.Shape)
	info.Distance = hit.Intersection.T
	info.Point = ray.At(hit.Intersection.T)
	info.Normal = hit.Shape.NormalAt(info.Point, hit.Intersection)
	info.Intensity = rt.shade(info.Point, info.Normal)
	return info, nil
}
