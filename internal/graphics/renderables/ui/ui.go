package ui

import (
	"fmt"

	"spx-editor/internal/graphics"
	"spx-editor/internal/ui/panel"
	"spx-editor/internal/ui/text"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const fontPixels = 16

const (
	modeFlat int32 = iota
	modeTexture
	modeMask
)

// UI draws window-space rectangles, images and text on top of the default
// framebuffer. Coordinates are window pixels with a top-left origin.
type UI struct {
	vertPath string
	fragPath string
	device   *graphics.Device

	shader  *graphics.Shader
	vao     uint32
	vbo     uint32
	atlas   *text.Atlas
	fontTex uint32

	width  int
	height int
}

// NewUI creates the overlay. Shaders and the glyph atlas are built at Init.
func NewUI(vertPath, fragPath string, dev *graphics.Device) *UI {
	return &UI{vertPath: vertPath, fragPath: fragPath, device: dev, width: 1, height: 1}
}

// Init compiles the shader, allocates the quad buffer and uploads the font.
func (u *UI) Init() error {
	var err error
	u.shader, err = graphics.NewShader(u.vertPath, u.fragPath)
	if err != nil {
		return fmt.Errorf("ui shader: %w", err)
	}

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	u.atlas, err = text.BakeDefault(fontPixels)
	if err != nil {
		u.Dispose()
		return fmt.Errorf("font atlas: %w", err)
	}
	b := u.atlas.Image.Bounds()
	u.fontTex, err = u.device.UploadMask(u.atlas.Image.Pix, b.Dx(), b.Dy())
	if err != nil {
		u.Dispose()
		return fmt.Errorf("font atlas: %w", err)
	}
	return nil
}

// SetViewport sets the window size used to map pixels to clip space.
func (u *UI) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	u.width, u.height = width, height
}

// Begin sets up blending and binds the overlay program. Pair with End.
func (u *UI) Begin() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	u.shader.SetInt("uTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
}

// End restores the state Begin changed.
func (u *UI) End() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawFilledRect draws a solid rectangle.
func (u *UI) DrawFilledRect(r panel.Rect, color mgl32.Vec3, alpha float32) {
	if r.Empty() {
		return
	}
	u.shader.SetInt("uMode", modeFlat)
	u.shader.SetVec4("uColor", color.Vec4(alpha))
	u.draw(u.quad(r, 0, 0, 1, 1))
}

// DrawImage draws texture tex stretched over r. Render-target textures have
// a bottom-left origin, so the top edge of r samples v = 1.
func (u *UI) DrawImage(r panel.Rect, tex uint32) {
	if r.Empty() || tex == 0 {
		return
	}
	u.shader.SetInt("uMode", modeTexture)
	u.shader.SetVec4("uColor", mgl32.Vec4{1, 1, 1, 1})
	gl.BindTexture(gl.TEXTURE_2D, tex)
	u.draw(u.quad(r, 0, 1, 1, 0))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// DrawText draws s with its top-left corner at (x, y).
func (u *UI) DrawText(s string, x, y, scale float32, color mgl32.Vec3) {
	if s == "" || u.atlas == nil {
		return
	}
	verts := u.atlas.Quads(s, x, y, scale)
	if len(verts) == 0 {
		return
	}
	for i := 0; i < len(verts); i += 4 {
		verts[i], verts[i+1] = u.ndc(verts[i], verts[i+1])
	}
	u.shader.SetInt("uMode", modeMask)
	u.shader.SetVec4("uColor", color.Vec4(1))
	gl.BindTexture(gl.TEXTURE_2D, u.fontTex)
	u.draw(verts)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// MeasureText returns width and line height in pixels for s at scale.
func (u *UI) MeasureText(s string, scale float32) (float32, float32) {
	if u.atlas == nil {
		return 0, 0
	}
	return u.atlas.Measure(s, scale)
}

// FitText trims s with an ellipsis so it is no wider than maxW.
func (u *UI) FitText(s string, maxW, scale float32) string {
	if u.atlas == nil {
		return s
	}
	return u.atlas.Fit(s, maxW, scale)
}

func (u *UI) ndc(x, y float32) (float32, float32) {
	return x/float32(u.width)*2 - 1, 1 - y/float32(u.height)*2
}

// quad builds two triangles over r; (u0, v0) maps to the top-left corner.
func (u *UI) quad(r panel.Rect, u0, v0, u1, v1 float32) []float32 {
	x0, y0 := u.ndc(float32(r.X), float32(r.Y))
	x1, y1 := u.ndc(float32(r.X+r.W), float32(r.Y+r.H))
	return []float32{
		x0, y0, u0, v0,
		x1, y0, u1, v0,
		x1, y1, u1, v1,
		x0, y0, u0, v0,
		x1, y1, u1, v1,
		x0, y1, u0, v1,
	}
}

func (u *UI) draw(verts []float32) {
	// Orphan the buffer on every draw so sizes may vary.
	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))
}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.fontTex != 0 {
		u.device.DestroyTexture(u.fontTex)
		u.fontTex = 0
	}
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
		u.vao = 0
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
		u.vbo = 0
	}
	if u.shader != nil {
		u.shader.Delete()
		u.shader = nil
	}
}
