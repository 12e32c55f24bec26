package encoder

import (
	"bytes"
	"errors"
	"testing"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	cfg := Config{Width: 640, Height: 360, FPS: 30, OutputFile: "out.mp4", Codec: "h264"}
	in := InputArgs(cfg)
	assert.Equal(t, "rawvideo", in["f"])
	assert.Equal(t, "rgba", in["pix_fmt"])
	assert.Equal(t, "640x360", in["s"])
	assert.Equal(t, 30, in["framerate"])

	out := OutputArgs(cfg)
	assert.Equal(t, "libx264", out["c:v"])
	assert.Equal(t, "yuv420p", out["pix_fmt"])
	assert.NotContains(t, out, "tag:v")

	cfg.Codec = "hevc"
	out = OutputArgs(cfg)
	assert.Equal(t, "libx265", out["c:v"])
	assert.Equal(t, "hvc1", out["tag:v"])

	cfg.OutputFile = "out.mkv"
	assert.NotContains(t, OutputArgs(cfg), "tag:v")
}

func TestFlipRows(t *testing.T) {
	// 1x3 image, one RGBA pixel per row.
	px := []byte{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
	}
	FlipRows(px, 1, 3)
	assert.Equal(t, []byte{3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1}, px)

	even := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	FlipRows(even, 2, 2)
	assert.Equal(t, []byte{9, 10, 11, 12, 13, 14, 15, 16, 1, 2, 3, 4, 5, 6, 7, 8}, even)
}

func TestWriteFrames(t *testing.T) {
	cfg := Config{Width: 1, Height: 2, FPS: 1}
	frames := make(chan *Frame, 2)
	frames <- &Frame{Pixels: []byte{1, 1, 1, 1, 2, 2, 2, 2}, PTS: 0}
	frames <- &Frame{Pixels: []byte{3, 3, 3, 3, 4, 4, 4, 4}, PTS: 1}
	close(frames)

	var buf bytes.Buffer
	bar := progressbar.DefaultSilent(2)
	require.NoError(t, writeFrames(&buf, frames, cfg, bar))
	assert.Equal(t, []byte{2, 2, 2, 2, 1, 1, 1, 1, 4, 4, 4, 4, 3, 3, 3, 3}, buf.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteFramesErrors(t *testing.T) {
	cfg := Config{Width: 1, Height: 1, FPS: 1}
	frames := make(chan *Frame, 3)
	frames <- &Frame{Pixels: []byte{1, 2, 3}, PTS: 0}
	frames <- &Frame{Pixels: []byte{1, 2, 3, 4}, PTS: 1}
	close(frames)
	err := writeFrames(&bytes.Buffer{}, frames, cfg, nil)
	assert.ErrorContains(t, err, "frame 0 has 3 bytes")

	frames = make(chan *Frame, 2)
	frames <- &Frame{Pixels: []byte{1, 2, 3, 4}, PTS: 7}
	frames <- &Frame{Pixels: []byte{1, 2, 3, 4}, PTS: 8}
	close(frames)
	err = writeFrames(failingWriter{}, frames, cfg, nil)
	assert.ErrorContains(t, err, "failed to write frame 7")
	assert.Empty(t, frames)
}

func TestStartRejectsInvalidConfig(t *testing.T) {
	_, err := Start(Config{Width: 0, Height: 10, FPS: 30}, 10)
	assert.Error(t, err)
}
