package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gldemos/graphics"
	options "github.com/richinsley/gldemos/options"
)

// Context wraps a GLFW window and its OpenGL context.
type Context struct {
	window *glfw.Window
	// Functions to be called on key presses and releases.
	keyCallbacks     map[glfw.Key]func()
	releaseCallbacks map[glfw.Key]func()
}

var _ graphics.Context = (*Context)(nil)

// New creates and initializes a new GLFW window and returns a Context object.
// The context is made current on the calling thread.
func New(opts *options.DemoOptions, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	c := &Context{
		window:           win,
		keyCallbacks:     make(map[glfw.Key]func()),
		releaseCallbacks: make(map[glfw.Key]func()),
	}

	win.SetKeyCallback(c.glfwKeyCallback)

	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key graphics.Key, f func()) {
	c.keyCallbacks[glfw.Key(key)] = f
}

// RegisterKeyReleaseCallback registers f to run when key is released.
func (c *Context) RegisterKeyReleaseCallback(key graphics.Key, f func()) {
	c.releaseCallbacks[glfw.Key(key)] = f
}

// glfwKeyCallback is called by GLFW on a key event.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if c.dispatchKey(key, action) {
		w.SetShouldClose(true)
	}
}

// dispatchKey runs the callback registered for key and action and reports
// whether the event asks for the window to close. Repeats are ignored.
func (c *Context) dispatchKey(key glfw.Key, action glfw.Action) bool {
	switch action {
	case glfw.Press:
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
		return key == glfw.KeyEscape
	case glfw.Release:
		if callback, ok := c.releaseCallbacks[key]; ok {
			callback()
		}
	}
	return false
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
