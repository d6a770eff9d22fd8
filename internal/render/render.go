package render

import (
	"context"
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"raycast-renderer/internal/logging"
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/pool"
	"raycast-renderer/internal/postprocess"
	"raycast-renderer/internal/raster"
)

// Modes.
const (
	ModeScene  = "scene"
	ModeKernel = "kernel"
)

// Scene is what the driver needs from a scene: hit testing for the workers
// and a background for pixels no worker reports on.
type Scene interface {
	pool.Scene
	BackgroundColor(dir mathutil.Vec3) mathutil.Color
}

// Options configures one render.
type Options struct {
	Width       int
	Height      int
	Supersample int
	Workers     int
	Mode        string
	TMax        float64
	Logger      logging.Logger

	// Progress is the reporting interval; zero means every 2 seconds.
	Progress time.Duration
}

// Stats summarises a render.
type Stats struct {
	Mode      string
	Width     int // render resolution, supersampling included
	Height    int
	Workers   int
	Pixels    int
	Submitted int
	Hits      int
	Misses    int
	Failed    int
	Elapsed   time.Duration
}

func (o *Options) normalize() error {
	if o.Supersample <= 0 {
		o.Supersample = 1
	}
	if o.Width < 2 || o.Height < 2 {
		return fmt.Errorf("render: image must be at least 2x2, got %dx%d", o.Width, o.Height)
	}
	if o.Mode == "" {
		o.Mode = ModeScene
	}
	if o.TMax <= 0 {
		o.TMax = pool.DefaultTMax
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Progress <= 0 {
		o.Progress = 2 * time.Second
	}
	return nil
}

// viewport maps a pixel to (u, v) with v = 1 on the top row.
func viewport(col, row, w, h int) (float64, float64) {
	return float64(col) / float64(w-1), float64(h-1-row) / float64(h-1)
}

// Render draws the scene through cam at Width×Height×Supersample².
func Render(ctx context.Context, opts Options, cam pool.Camera, scn Scene) (*raster.FrameBuffer, Stats, error) {
	if err := opts.normalize(); err != nil {
		return nil, Stats{}, err
	}
	w := opts.Width * opts.Supersample
	h := opts.Height * opts.Supersample

	switch opts.Mode {
	case ModeScene:
		return renderScene(ctx, opts, w, h, cam, scn)
	case ModeKernel:
		return renderKernel(ctx, opts, w, h, cam)
	}
	return nil, Stats{}, fmt.Errorf("render: unknown mode %q", opts.Mode)
}

// renderScene farms one job per pixel out to a worker pool. Pixels whose
// ray misses get no result and keep the background.
func renderScene(ctx context.Context, opts Options, w, h int, cam pool.Camera, scn Scene) (*raster.FrameBuffer, Stats, error) {
	start := time.Now()
	log := opts.Logger
	stats := Stats{Mode: ModeScene, Width: w, Height: h, Workers: opts.Workers, Pixels: w * h}

	p, err := pool.New(opts.Workers, pool.WithLogger(log), pool.WithTMax(opts.TMax))
	if err != nil {
		return nil, stats, fmt.Errorf("render: %w", err)
	}

	fb := raster.NewFrameBuffer(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			u, v := viewport(col, row, w, h)
			fb.SetPixel(col, row, scn.BackgroundColor(cam.Ray(u, v).Direction))
		}
	}

	// Collectors: one per outbound queue. Results carry their own pixel,
	// so each write lands on a distinct element.
	var hits, submitted atomic.Int64
	var wg sync.WaitGroup
	for _, wk := range p.Workers() {
		wg.Add(1)
		go func(results *pool.Results) {
			defer wg.Done()
			for {
				res, err := results.Recv(context.Background())
				if err != nil {
					return
				}
				fb.SetPixel(res.Col, res.Row, res.Color)
				hits.Add(1)
			}
		}(wk.Results())
	}

	stopProgress := reportProgress(log, opts.Progress, start, w*h, func() int {
		pending := 0
		for _, wk := range p.Workers() {
			pending += wk.Pending()
		}
		return int(submitted.Load()) - pending
	})

	var submitErr error
submit:
	for row := 0; row < h; row++ {
		if err := ctx.Err(); err != nil {
			submitErr = err
			break submit
		}
		for col := 0; col < w; col++ {
			u, v := viewport(col, row, w, h)
			if err := p.SubmitFields(row, col, u, v, cam, scn); err != nil {
				if stats.Failed == 0 {
					log.Printf("render: %v", err)
				}
				stats.Failed++
				continue
			}
			submitted.Add(1)
		}
	}

	// Sentinels queue behind the submitted work, so Close returns once
	// every job has been cast.
	closeErr := p.Close()
	wg.Wait()
	stopProgress()

	stats.Submitted = int(submitted.Load())
	stats.Hits = int(hits.Load())
	stats.Misses = stats.Submitted - stats.Hits
	stats.Elapsed = time.Since(start)

	if closeErr != nil {
		log.Printf("render: teardown: %v", closeErr)
	}
	if submitErr != nil {
		return fb, stats, submitErr
	}
	if stats.Failed > 0 {
		return fb, stats, fmt.Errorf("render: %d of %d jobs not delivered: %w", stats.Failed, stats.Pixels, pool.ErrWorkerClosed)
	}
	return fb, stats, nil
}

// renderKernel shades every pixel with the built-in sphere kernel, rows
// fanned out over the same number of goroutines.
func renderKernel(ctx context.Context, opts Options, w, h int, cam pool.Camera) (*raster.FrameBuffer, Stats, error) {
	start := time.Now()
	workers := opts.Workers
	if workers <= 0 {
		return nil, Stats{}, fmt.Errorf("render: %w", pool.ErrNoWorkers)
	}
	stats := Stats{Mode: ModeKernel, Width: w, Height: h, Workers: workers, Pixels: w * h}
	fb := raster.NewFrameBuffer(w, h)

	var done, hits atomic.Int64
	stopProgress := reportProgress(opts.Logger, opts.Progress, start, w*h, func() int {
		return int(done.Load())
	})

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				for col := 0; col < w; col++ {
					u, v := viewport(col, row, w, h)
					r := cam.Ray(u, v)
					if _, ok := r.HitKernel(); ok {
						hits.Add(1)
					}
					fb.SetPixel(col, row, r.Trace())
				}
				done.Add(int64(w))
			}
		}()
	}

	var err error
	for row := 0; row < h; row++ {
		if err = ctx.Err(); err != nil {
			break
		}
		rows <- row
	}
	close(rows)
	wg.Wait()
	stopProgress()

	stats.Submitted = int(done.Load())
	stats.Hits = int(hits.Load())
	stats.Misses = stats.Submitted - stats.Hits
	stats.Elapsed = time.Since(start)
	return fb, stats, err
}

// reportProgress logs progress every interval until the returned stop
// function is called.
func reportProgress(log logging.Logger, interval time.Duration, start time.Time, total int, processed func() int) func() {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					log.Printf("  [%d/%d] %.0f pixels/sec", p, total, rate)
				}
			}
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}

// Finish encodes the buffer and downsamples it to the requested size.
func Finish(fb *raster.FrameBuffer, opts Options, tc raster.ToneConfig) *image.NRGBA {
	img := fb.ToNRGBA(tc)
	if opts.Supersample > 1 {
		img = postprocess.Downsample(img, opts.Width, opts.Height)
	}
	return img
}
