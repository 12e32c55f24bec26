package graphics

// Key identifies a keyboard key the demos react to. The values mirror GLFW key
// codes so a context can pass them through unchanged.
type Key int

const (
	KeyEscape Key = 256
	KeyRight  Key = 262
	KeyLeft   Key = 263
)

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	// EndFrame swaps buffers and polls for events.
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// RegisterKeyCallback runs f when key is pressed.
	RegisterKeyCallback(key Key, f func())
	// RegisterKeyReleaseCallback runs f when key is released.
	RegisterKeyReleaseCallback(key Key, f func())
}
