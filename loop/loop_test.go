package loop

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/richinsley/gldemos/encoder"
	"github.com/richinsley/gldemos/graphics"
	"github.com/richinsley/gldemos/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContext closes itself after a fixed number of frames and advances its
// clock by a fixed step on every EndFrame.
type fakeContext struct {
	frames    int
	maxFrames int
	now       float64
	step      float64
	closed    bool
	current   bool
	presses   map[graphics.Key]func()
}

func (c *fakeContext) MakeCurrent()                   { c.current = true }
func (c *fakeContext) Shutdown()                      {}
func (c *fakeContext) ShouldClose() bool              { return c.closed }
func (c *fakeContext) SetShouldClose(v bool)          { c.closed = v }
func (c *fakeContext) Time() float64                  { return c.now }
func (c *fakeContext) GetFramebufferSize() (int, int) { return 320, 240 }
func (c *fakeContext) EndFrame() {
	c.frames++
	c.now += c.step
	if c.frames >= c.maxFrames {
		c.closed = true
	}
}
func (c *fakeContext) RegisterKeyCallback(k graphics.Key, f func()) {
	if c.presses == nil {
		c.presses = make(map[graphics.Key]func())
	}
	c.presses[k] = f
}
func (c *fakeContext) RegisterKeyReleaseCallback(graphics.Key, func()) {}

type frameCall struct {
	t, dt         float64
	width, height int
}

type recordingScene struct {
	calls []frameCall
	// events, when set, receives "frame" for every Frame call.
	events *[]string
}

func (s *recordingScene) Frame(t, dt float64, width, height int) {
	s.calls = append(s.calls, frameCall{t, dt, width, height})
	if s.events != nil {
		*s.events = append(*s.events, "frame")
	}
}

type fakeGrabber struct {
	size   int
	events *[]string
}

func (g *fakeGrabber) Begin() { *g.events = append(*g.events, "begin") }

func (g *fakeGrabber) Grab() []byte {
	*g.events = append(*g.events, "grab")
	return make([]byte, g.size)
}
func (s *recordingScene) Destroy() {}

func TestRunInteractive(t *testing.T) {
	ctx := &fakeContext{maxFrames: 3, now: 10, step: 0.5}
	scene := &recordingScene{}

	n, err := Run(ctx, scene, Options{})
	require.NoError(t, err)
	assert.True(t, ctx.current)
	assert.Equal(t, 3, n)
	assert.Equal(t, []frameCall{
		{0, 0, 320, 240},
		{0.5, 0.5, 320, 240},
		{1, 0.5, 320, 240},
	}, scene.calls)
}

func TestRunPaces(t *testing.T) {
	ctx := &fakeContext{maxFrames: 2, step: 0.016}
	pacer := motion.NewPacer(time.Millisecond)
	start := time.Now()
	n, err := Run(ctx, &recordingScene{}, Options{Pacer: pacer})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
}

func TestRunAlreadyClosed(t *testing.T) {
	ctx := &fakeContext{closed: true}
	scene := &recordingScene{}
	n, err := Run(ctx, scene, Options{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, scene.calls)
}

func TestRecordRequiresGrabber(t *testing.T) {
	ctx := &fakeContext{maxFrames: 1}
	_, err := Run(ctx, &recordingScene{}, Options{Record: &encoder.Config{Width: 1, Height: 1, FPS: 1}, Duration: 1})
	assert.ErrorContains(t, err, "frame grabber")
}

func TestFrameCount(t *testing.T) {
	assert.Equal(t, 600, FrameCount(10, 60))
	assert.Equal(t, 15, FrameCount(0.5, 30))
	assert.Zero(t, FrameCount(0, 60))
	assert.Equal(t, 230, FrameCount(2.3, 100))
	assert.Equal(t, 29, FrameCount(0.29, 100))
	assert.Equal(t, 435, FrameCount(4.35, 100))
}

func TestRecordDrawsIntoGrabber(t *testing.T) {
	var events []string
	ctx := &fakeContext{maxFrames: 100}
	scene := &recordingScene{events: &events}
	cfg := &encoder.Config{
		Width:      2,
		Height:     2,
		FPS:        10,
		OutputFile: filepath.Join(t.TempDir(), "out.mp4"),
		Codec:      "h264",
	}

	// ffmpeg may be missing where tests run; the encoder error is not what
	// this test checks.
	n, _ := Run(ctx, scene, Options{
		Record:   cfg,
		Grabber:  &fakeGrabber{size: 2 * 2 * 4, events: &events},
		Duration: 0.3,
	})
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{
		"begin", "frame", "grab",
		"begin", "frame", "grab",
		"begin", "frame", "grab",
	}, events)
	assert.Equal(t, []frameCall{
		{0, 0.1, 2, 2},
		{0.1, 0.1, 2, 2},
		{0.2, 0.1, 2, 2},
	}, scene.calls)
	assert.True(t, ctx.ShouldClose())
	assert.True(t, ctx.current)
}
