package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// FrameGrabber is an offscreen framebuffer that recorded frames are drawn
// into and read back from. A hidden window's default framebuffer has no
// defined contents, so recording never reads from it.
type FrameGrabber struct {
	fbo               uint32
	textureID         uint32
	depthRenderbuffer uint32
	width, height     int
}

// NewFrameGrabber creates an RGBA8 color texture and a depth renderbuffer of
// width x height attached to a new framebuffer. GL must be initialized.
func NewFrameGrabber(width, height int) (*FrameGrabber, error) {
	g := &FrameGrabber{width: width, height: height}

	gl.GenFramebuffers(1, &g.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, g.fbo)

	gl.GenTextures(1, &g.textureID)
	gl.BindTexture(gl.TEXTURE_2D, g.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, g.textureID, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenRenderbuffers(1, &g.depthRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, g.depthRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, g.depthRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		g.Destroy()
		return nil, fmt.Errorf("offscreen framebuffer is not complete: 0x%x", status)
	}
	return g, nil
}

// FrameSize is the number of bytes Grab returns.
func (g *FrameGrabber) FrameSize() int {
	return g.width * g.height * 4
}

// Begin directs drawing into the offscreen framebuffer.
func (g *FrameGrabber) Begin() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, g.fbo)
}

// Grab reads the offscreen color attachment into a new slice, bottom row
// first as OpenGL stores it, and rebinds the default framebuffer.
func (g *FrameGrabber) Grab() []byte {
	pixels := make([]byte, g.FrameSize())
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, g.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(g.width), int32(g.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return pixels
}

func (g *FrameGrabber) Destroy() {
	gl.DeleteRenderbuffers(1, &g.depthRenderbuffer)
	gl.DeleteTextures(1, &g.textureID)
	gl.DeleteFramebuffers(1, &g.fbo)
}
