package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/gldemos/encoder"
	"github.com/richinsley/gldemos/glfwcontext"
	"github.com/richinsley/gldemos/loop"
	"github.com/richinsley/gldemos/options"
	"github.com/richinsley/gldemos/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := options.Parse("triangle", os.Args[1:], options.Defaults())
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	if opts.Help {
		fmt.Println("Rotating triangle. Left/Right change direction, Escape quits.")
		options.PrintDefaults("triangle")
		return
	}

	if opts.Record {
		// Swapping a hidden window must not wait for a display refresh.
		opts.VSync = false
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts, !opts.Record)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer ctx.Shutdown()

	scene, err := renderer.NewTriangle(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize scene: %v", err)
	}
	defer scene.Destroy()

	loopOpts := loop.Options{Duration: opts.Duration}
	if opts.Record {
		loopOpts.Record = &encoder.Config{
			Width:      opts.Width,
			Height:     opts.Height,
			FPS:        opts.FPS,
			OutputFile: opts.OutputFile,
			FFMPEGPath: opts.FFMPEGPath,
			Codec:      opts.Codec,
		}
		grabber, err := renderer.NewFrameGrabber(opts.Width, opts.Height)
		if err != nil {
			log.Fatalf("Failed to create offscreen target: %v", err)
		}
		defer grabber.Destroy()
		loopOpts.Grabber = grabber
	}

	log.Println("Starting render loop...")
	if _, err := loop.Run(ctx, scene, loopOpts); err != nil {
		log.Fatalf("Render loop failed: %v", err)
	}
}
