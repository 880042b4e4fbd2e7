package graphics

import (
	"fmt"

	"spx-editor/internal/framebuffer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Device is the OpenGL implementation of the texture and framebuffer device
// contracts. All methods must run on the goroutine owning the GL context.
type Device struct{}

// NewDevice returns a device bound to the current GL context.
func NewDevice() *Device {
	return &Device{}
}

// UploadTexture creates a mipmapped RGBA8 texture from pix.
func (d *Device) UploadTexture(pix []byte, width, height int) (uint32, error) {
	if width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return 0, fmt.Errorf("invalid texture data: %dx%d with %d bytes", width, height, len(pix))
	}

	// Drain stale errors so the check below only sees ours.
	for gl.GetError() != gl.NO_ERROR {
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &texture)
		return 0, fmt.Errorf("upload texture %dx%d: gl error 0x%X", width, height, code)
	}
	return texture, nil
}

// UploadMask creates a single-channel texture, e.g. a glyph atlas. Coverage
// is read from the red channel.
func (d *Device) UploadMask(pix []byte, width, height int) (uint32, error) {
	if width <= 0 || height <= 0 || len(pix) < width*height {
		return 0, fmt.Errorf("invalid mask data: %dx%d with %d bytes", width, height, len(pix))
	}
	for gl.GetError() != gl.NO_ERROR {
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &texture)
		return 0, fmt.Errorf("upload mask %dx%d: gl error 0x%X", width, height, code)
	}
	return texture, nil
}

// DestroyTexture frees a texture created by UploadTexture.
func (d *Device) DestroyTexture(handle uint32) {
	if handle == 0 {
		return
	}
	gl.DeleteTextures(1, &handle)
}

// CreateRenderTarget allocates a framebuffer with an RGBA8 color texture and
// a depth24/stencil8 renderbuffer. On an incomplete framebuffer it returns
// the partial target together with the error.
func (d *Device) CreateRenderTarget(width, height int) (framebuffer.Target, error) {
	var t framebuffer.Target

	gl.GenFramebuffers(1, &t.Framebuffer)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.Framebuffer)

	gl.GenTextures(1, &t.Color)
	gl.BindTexture(gl.TEXTURE_2D, t.Color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.Color, 0)

	gl.GenRenderbuffers(1, &t.Depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, t.Depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, t.Depth)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return t, fmt.Errorf("framebuffer incomplete: status 0x%X", status)
	}
	return t, nil
}

// DestroyRenderTarget deletes whichever objects of t exist.
func (d *Device) DestroyRenderTarget(t framebuffer.Target) {
	if t.Framebuffer != 0 {
		gl.DeleteFramebuffers(1, &t.Framebuffer)
	}
	if t.Color != 0 {
		gl.DeleteTextures(1, &t.Color)
	}
	if t.Depth != 0 {
		gl.DeleteRenderbuffers(1, &t.Depth)
	}
}

// BindRenderTarget directs drawing into t with a viewport of width x height.
func (d *Device) BindRenderTarget(t framebuffer.Target, width, height int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.Framebuffer)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BindDefaultRenderTarget restores the window framebuffer and viewport.
func (d *Device) BindDefaultRenderTarget(width, height int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
}
