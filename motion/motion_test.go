package motion

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRotatorKeys(t *testing.T) {
	r := NewRotator()
	assert.Equal(t, 45, r.Degrees())
	assert.True(t, r.Matrix().ApproxEqual(mgl32.Ident4()))

	r.Right()
	assert.Equal(t, -45, r.Degrees())
	r.Left()
	assert.Equal(t, 45, r.Degrees())
}

func TestRotatorStep(t *testing.T) {
	r := NewRotator()
	want := mgl32.DegToRad(0.45)
	assert.InDelta(t, want, r.StepAngle(), 1e-7)

	m := r.Step()
	assert.True(t, m.ApproxEqualThreshold(mgl32.HomogRotate3DZ(want), 1e-6))

	for i := 1; i < 200; i++ {
		r.Step()
	}
	// 200 steps of 0.45 degrees.
	assert.True(t, r.Matrix().ApproxEqualThreshold(mgl32.HomogRotate3DZ(mgl32.DegToRad(90)), 1e-4))

	r.Right()
	for i := 0; i < 200; i++ {
		r.Step()
	}
	assert.True(t, r.Matrix().ApproxEqualThreshold(mgl32.Ident4(), 1e-4))
}

func TestClock(t *testing.T) {
	c := NewClock(0.5, -1, 2)
	assert.Equal(t, float32(1), c.Speed())
	assert.InDelta(t, 0.5, c.Advance(0.5), 1e-6)

	c.Faster()
	c.Faster()
	c.Faster()
	assert.Equal(t, float32(2), c.Speed())

	for i := 0; i < 10; i++ {
		c.Slower()
	}
	assert.Equal(t, float32(-1), c.Speed())
	assert.InDelta(t, -0.5, c.Advance(1), 1e-6)
	assert.InDelta(t, -0.5, c.Value(), 1e-6)
}

func TestClockClampsInitialSpeed(t *testing.T) {
	c := NewClock(0.1, 0, 0.5)
	assert.Equal(t, float32(0.5), c.Speed())
}

func TestPacer(t *testing.T) {
	var slept []time.Duration
	p := &Pacer{Interval: 16 * time.Millisecond, sleep: func(d time.Duration) { slept = append(slept, d) }}
	p.Wait()
	p.Wait()
	assert.Equal(t, []time.Duration{16 * time.Millisecond, 16 * time.Millisecond}, slept)

	p.Interval = 0
	p.Wait()
	assert.Len(t, slept, 2)
}
