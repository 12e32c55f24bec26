package motion

import (
	"time"

	"github.com/chewxy/math32"
)

// Clock is a time-like value whose rate is changed from the keyboard.
type Clock struct {
	value    float32
	speed    float32
	step     float32
	min, max float32
}

// NewClock starts at zero, running at speed 1. Speed changes by step and is
// kept within [min, max].
func NewClock(step, min, max float32) *Clock {
	c := &Clock{speed: 1, step: step, min: min, max: max}
	c.speed = c.clamp(c.speed)
	return c
}

func (c *Clock) clamp(v float32) float32 {
	return math32.Max(c.min, math32.Min(c.max, v))
}

func (c *Clock) Faster() { c.speed = c.clamp(c.speed + c.step) }

func (c *Clock) Slower() { c.speed = c.clamp(c.speed - c.step) }

func (c *Clock) Speed() float32 { return c.speed }

func (c *Clock) Value() float32 { return c.value }

// Advance moves the clock forward by dt seconds of wall time.
func (c *Clock) Advance(dt float64) float32 {
	c.value += c.speed * float32(dt)
	return c.value
}

// Pacer sleeps a fixed interval after each frame. A zero interval disables it.
type Pacer struct {
	Interval time.Duration
	sleep    func(time.Duration)
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{Interval: interval, sleep: time.Sleep}
}

func (p *Pacer) Wait() {
	if p.Interval > 0 {
		p.sleep(p.Interval)
	}
}
