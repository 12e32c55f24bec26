package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame represents a single rendered frame's data, ready for encoding.
// Pixels are RGBA with the bottom row first, as read back from OpenGL.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// Config describes the video the encoder produces.
type Config struct {
	Width      int
	Height     int
	FPS        int
	OutputFile string
	FFMPEGPath string
	Codec      string
}

func (c Config) frameSize() int {
	return c.Width * c.Height * 4
}

// InputArgs describes the raw frames written to ffmpeg's stdin.
func InputArgs(c Config) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", c.Width, c.Height),
		"framerate": c.FPS,
	}
}

// OutputArgs selects a software encoder for the configured codec.
func OutputArgs(c Config) ffmpeg.KwArgs {
	outputArgs := ffmpeg.KwArgs{
		"pix_fmt": "yuv420p",
		"b:v":     "25M",
	}
	if c.Codec == "hevc" {
		outputArgs["c:v"] = "libx265"
		if strings.EqualFold(filepath.Ext(c.OutputFile), ".mp4") {
			outputArgs["tag:v"] = "hvc1"
		}
	} else {
		outputArgs["c:v"] = "libx264"
	}
	return outputArgs
}

// FlipRows reverses the row order of an RGBA image in place.
func FlipRows(pixels []byte, width, height int) {
	stride := width * 4
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pixels[top*stride : (top+1)*stride]
		b := pixels[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// Encoder pipes frames into an ffmpeg process.
type Encoder struct {
	cfg    Config
	frames chan *Frame
	done   chan error
}

// Start launches ffmpeg and the goroutine feeding it. totalFrames sizes the
// progress bar.
func Start(cfg Config, totalFrames int) (*Encoder, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.FPS <= 0 {
		return nil, fmt.Errorf("invalid encoder config %dx%d@%d", cfg.Width, cfg.Height, cfg.FPS)
	}
	e := &Encoder{
		cfg:    cfg,
		frames: make(chan *Frame, 3),
		done:   make(chan error, 1),
	}

	pipeReader, pipeWriter := io.Pipe()
	ffmpegCmd := ffmpeg.Input("pipe:", InputArgs(cfg)).
		Output(cfg.OutputFile, OutputArgs(cfg)).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if cfg.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(cfg.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Unblock the writer if ffmpeg exits early.
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	bar := progressbar.Default(int64(totalFrames), "recording")
	go func() {
		writeErr := writeFrames(pipeWriter, e.frames, cfg, bar)
		pipeWriter.Close()
		runErr := <-errc
		bar.Finish()
		e.done <- errors.Join(writeErr, runErr)
	}()

	log.Printf("Recording %dx%d at %d fps to %s", cfg.Width, cfg.Height, cfg.FPS, cfg.OutputFile)
	return e, nil
}

// writeFrames copies frames to w top row first until frames is closed. After
// a write error the remaining frames are drained so the producer never blocks.
func writeFrames(w io.Writer, frames <-chan *Frame, cfg Config, bar *progressbar.ProgressBar) error {
	var firstErr error
	for frame := range frames {
		if firstErr != nil {
			continue
		}
		if len(frame.Pixels) != cfg.frameSize() {
			firstErr = fmt.Errorf("frame %d has %d bytes, want %d", frame.PTS, len(frame.Pixels), cfg.frameSize())
			continue
		}
		FlipRows(frame.Pixels, cfg.Width, cfg.Height)
		if _, err := w.Write(frame.Pixels); err != nil {
			firstErr = fmt.Errorf("failed to write frame %d: %w", frame.PTS, err)
			continue
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	return firstErr
}

// Encode queues a frame. It blocks when the encoder falls behind.
func (e *Encoder) Encode(f *Frame) {
	e.frames <- f
}

// Close flushes queued frames and waits for ffmpeg to exit.
func (e *Encoder) Close() error {
	close(e.frames)
	return <-e.done
}
