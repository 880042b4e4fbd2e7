package wireframe

import (
	"spx-editor/internal/graphics"
	renderer "spx-editor/internal/graphics/renderer"
	"spx-editor/internal/profiling"
	"spx-editor/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Unit cube edges, two points per line.
var edgeVertices = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// Connecting edges
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

var outlineColor = mgl32.Vec3{1.0, 0.65, 0.1}

// Wireframe outlines the selected entity.
type Wireframe struct {
	vertPath string
	fragPath string
	profiler *profiling.Profiler

	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewWireframe creates a new wireframe renderable
func NewWireframe(vertPath, fragPath string, prof *profiling.Profiler) *Wireframe {
	return &Wireframe{vertPath: vertPath, fragPath: fragPath, profiler: prof}
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(w.vertPath, w.fragPath)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(edgeVertices)*4, gl.Ptr(edgeVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// Render outlines the selected entity, if any
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if ctx.Scene == nil {
		return
	}
	sel := ctx.Scene.Selected()
	if sel == nil || !sel.Visible {
		return
	}
	defer w.profiler.Track("renderer.Wireframe")()

	model := sel.ModelMatrix().Mul4(Bounds(sel.Kind))

	w.shader.Use()
	w.shader.SetMat4("proj", ctx.Proj)
	w.shader.SetMat4("view", ctx.View)
	w.shader.SetMat4("model", model)
	w.shader.SetVec3("color", outlineColor)

	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(edgeVertices)/3))
	gl.BindVertexArray(0)
}

// Bounds maps the unit cube onto the extent of a kind's mesh, slightly
// inflated so the outline does not z-fight with the surface.
func Bounds(kind scene.Kind) mgl32.Mat4 {
	lo, hi := scene.LocalBounds(kind)
	size := hi.Sub(lo).Mul(1.02)
	center := hi.Add(lo).Mul(0.5)
	return mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z()))
}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
		w.vao = 0
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
		w.vbo = 0
	}
	if w.shader != nil {
		w.shader.Delete()
		w.shader = nil
	}
}

// SetViewport is a no-op for the outline.
func (w *Wireframe) SetViewport(width, height int) {}
