package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gldemos/graphics"
	"github.com/stretchr/testify/assert"
)

func newTestContext() *Context {
	return &Context{
		keyCallbacks:     make(map[glfw.Key]func()),
		releaseCallbacks: make(map[glfw.Key]func()),
	}
}

func TestKeyConstantsMatchGLFW(t *testing.T) {
	assert.Equal(t, int(glfw.KeyEscape), int(graphics.KeyEscape))
	assert.Equal(t, int(glfw.KeyLeft), int(graphics.KeyLeft))
	assert.Equal(t, int(glfw.KeyRight), int(graphics.KeyRight))
}

func TestKeyPressDispatch(t *testing.T) {
	c := newTestContext()
	var left, right int
	c.RegisterKeyCallback(graphics.KeyLeft, func() { left++ })
	c.RegisterKeyCallback(graphics.KeyRight, func() { right++ })

	c.dispatchKey(glfw.KeyLeft, glfw.Press)
	c.dispatchKey(glfw.KeyLeft, glfw.Press)
	c.dispatchKey(glfw.KeyRight, glfw.Press)
	assert.Equal(t, 2, left)
	assert.Equal(t, 1, right)

	// Keys without a callback are ignored.
	c.dispatchKey(glfw.KeyUp, glfw.Press)
	assert.Equal(t, 2, left)
}

func TestKeyReleaseDispatch(t *testing.T) {
	c := newTestContext()
	var pressed, released int
	c.RegisterKeyCallback(graphics.KeyLeft, func() { pressed++ })
	c.RegisterKeyReleaseCallback(graphics.KeyLeft, func() { released++ })

	c.dispatchKey(glfw.KeyLeft, glfw.Press)
	c.dispatchKey(glfw.KeyLeft, glfw.Release)
	assert.Equal(t, 1, pressed)
	assert.Equal(t, 1, released)
}

func TestKeyRepeatIgnored(t *testing.T) {
	c := newTestContext()
	var calls int
	c.RegisterKeyCallback(graphics.KeyRight, func() { calls++ })
	c.RegisterKeyReleaseCallback(graphics.KeyRight, func() { calls++ })

	c.dispatchKey(glfw.KeyRight, glfw.Repeat)
	assert.Zero(t, calls)
}

func TestEscapeCloses(t *testing.T) {
	c := newTestContext()
	var pressed, released int
	c.RegisterKeyCallback(graphics.KeyEscape, func() { pressed++ })
	c.RegisterKeyReleaseCallback(graphics.KeyEscape, func() { released++ })

	assert.True(t, c.dispatchKey(glfw.KeyEscape, glfw.Press))
	assert.False(t, c.dispatchKey(glfw.KeyEscape, glfw.Release))
	assert.False(t, c.dispatchKey(glfw.KeyEscape, glfw.Repeat))
	assert.Equal(t, 1, pressed)
	assert.Equal(t, 1, released)

	assert.False(t, c.dispatchKey(glfw.KeyLeft, glfw.Press))
}
