// Package loop drives a scene frame by frame, either interactively against
// the window clock or at a fixed step into an encoder.
package loop

import (
	"fmt"
	"log"
	"math"

	"github.com/richinsley/gldemos/encoder"
	"github.com/richinsley/gldemos/graphics"
	"github.com/richinsley/gldemos/motion"
)

// Scene draws one frame of a demo into the current framebuffer.
type Scene interface {
	// Frame renders at elapsed time t; dt is the time since the last frame.
	Frame(t, dt float64, width, height int)
	Destroy()
}

// Grabber owns the offscreen target recorded frames are drawn into.
type Grabber interface {
	// Begin binds the target before a frame is drawn.
	Begin()
	// Grab reads back the frame drawn since Begin.
	Grab() []byte
}

// Options controls how Run paces and where frames go.
type Options struct {
	// Pacer sleeps after every interactive frame. May be nil.
	Pacer *motion.Pacer
	// Record, when set, renders a fixed number of frames at a fixed time step
	// and pipes them to ffmpeg instead of pacing to the wall clock.
	Record   *encoder.Config
	Grabber  Grabber
	Duration float64
}

// Run drives scene until the window closes or, when recording, until the
// requested duration has been rendered. It returns the number of frames drawn.
func Run(ctx graphics.Context, scene Scene, opts Options) (int, error) {
	ctx.MakeCurrent()
	if opts.Record != nil {
		return runRecord(ctx, scene, opts)
	}

	startTime := ctx.Time()
	last := 0.0
	frameCount := 0
	for !ctx.ShouldClose() {
		t := ctx.Time() - startTime
		width, height := ctx.GetFramebufferSize()
		scene.Frame(t, t-last, width, height)
		last = t

		ctx.EndFrame()
		if opts.Pacer != nil {
			opts.Pacer.Wait()
		}
		frameCount++
	}
	log.Printf("Rendered %d frames", frameCount)
	return frameCount, nil
}

// FrameCount is the number of frames a recording of duration seconds holds.
func FrameCount(duration float64, fps int) int {
	return int(math.Round(duration * float64(fps)))
}

func runRecord(ctx graphics.Context, scene Scene, opts Options) (int, error) {
	if opts.Grabber == nil {
		return 0, fmt.Errorf("recording requires a frame grabber")
	}
	cfg := *opts.Record
	totalFrames := FrameCount(opts.Duration, cfg.FPS)
	enc, err := encoder.Start(cfg, totalFrames)
	if err != nil {
		return 0, fmt.Errorf("failed to start encoder: %w", err)
	}
	dt := 1.0 / float64(cfg.FPS)

	i := 0
	for ; i < totalFrames && !ctx.ShouldClose(); i++ {
		opts.Grabber.Begin()
		scene.Frame(float64(i)*dt, dt, cfg.Width, cfg.Height)
		enc.Encode(&encoder.Frame{Pixels: opts.Grabber.Grab(), PTS: int64(i)})
		ctx.EndFrame()
	}
	// The recording is complete; nothing is left to show.
	ctx.SetShouldClose(true)
	if err := enc.Close(); err != nil {
		return i, fmt.Errorf("encoding failed: %w", err)
	}
	return i, nil
}
