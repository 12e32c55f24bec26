package renderer

import (
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

var glInitOnce sync.Once

// Init loads the OpenGL function pointers for the current context. Only the
// first call does any work.
func Init() error {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
		if initErr == nil {
			log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
		}
	})
	if initErr != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	return nil
}

// Clear sets the clear color and clears the color and depth buffers.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport sets the viewport to cover a width x height framebuffer.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

type DrawMode int

const (
	Points DrawMode = iota
	LineStrip
	LineLoop
	Lines
	Triangles
)

func (m DrawMode) glEnum() uint32 {
	switch m {
	case Points:
		return gl.POINTS
	case LineStrip:
		return gl.LINE_STRIP
	case LineLoop:
		return gl.LINE_LOOP
	case Lines:
		return gl.LINES
	default:
		return gl.TRIANGLES
	}
}

// Draw renders count vertices from the bound vertex array starting at first.
func Draw(mode DrawMode, first, count int32) {
	gl.DrawArrays(mode.glEnum(), first, count)
}
