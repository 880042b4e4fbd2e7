package entities

import (
	"fmt"

	"spx-editor/internal/graphics"
	renderer "spx-editor/internal/graphics/renderer"
	"spx-editor/internal/profiling"
	"spx-editor/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	lightDir    = mgl32.Vec3{-0.4, -1.0, -0.3}.Normalize()
	defaultTint = mgl32.Vec3{1, 1, 1}
	dangerTint  = mgl32.Vec3{1, 0.45, 0.45}
	healthTint  = mgl32.Vec3{0.5, 1, 0.5}
	whitePixel  = []byte{255, 255, 255, 255}
)

// Entities draws every visible scene entity with its primitive mesh.
type Entities struct {
	vertPath string
	fragPath string
	device   *graphics.Device
	profiler *profiling.Profiler

	shader *graphics.Shader
	meshes map[scene.Kind]*graphics.Mesh
	white  uint32
}

// NewEntities creates the renderable. Shaders are read at Init.
func NewEntities(vertPath, fragPath string, dev *graphics.Device, prof *profiling.Profiler) *Entities {
	return &Entities{
		vertPath: vertPath,
		fragPath: fragPath,
		device:   dev,
		profiler: prof,
		meshes:   make(map[scene.Kind]*graphics.Mesh),
	}
}

// Init compiles the shader, uploads one mesh per kind and the fallback texture.
func (e *Entities) Init() error {
	var err error
	e.shader, err = graphics.NewShader(e.vertPath, e.fragPath)
	if err != nil {
		return fmt.Errorf("entities shader: %w", err)
	}

	for _, kind := range scene.Kinds {
		m, err := graphics.NewKindMesh(kind)
		if err != nil {
			e.Dispose()
			return err
		}
		e.meshes[kind] = m
	}

	e.white, err = e.device.UploadTexture(whitePixel, 1, 1)
	if err != nil {
		e.Dispose()
		return fmt.Errorf("fallback texture: %w", err)
	}
	return nil
}

// Render draws the scene's entities.
func (e *Entities) Render(ctx renderer.RenderContext) {
	if ctx.Scene == nil {
		return
	}
	defer e.profiler.Track("renderer.Entities")()

	gl.Disable(gl.CULL_FACE)
	e.shader.Use()
	e.shader.SetInt("albedo", 0)
	e.shader.SetMat4("view", ctx.View)
	e.shader.SetMat4("projection", ctx.Proj)
	e.shader.SetVec3("lightDir", lightDir)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, ent := range ctx.Scene.Entities() {
		if !ent.Visible || !ent.Active {
			continue
		}
		mesh, ok := e.meshes[ent.Kind]
		if !ok {
			continue
		}

		tint := defaultTint
		switch {
		case ent.Dangerous:
			tint = dangerTint
		case ent.HealthPack:
			tint = healthTint
		}

		tex := ent.Texture
		if tex == 0 {
			tex = e.white
		}
		gl.BindTexture(gl.TEXTURE_2D, tex)
		e.shader.SetVec3("tint", tint)
		e.shader.SetMat4("model", ent.ModelMatrix())
		mesh.Draw()
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Dispose cleans up OpenGL resources
func (e *Entities) Dispose() {
	for kind, m := range e.meshes {
		m.Delete()
		delete(e.meshes, kind)
	}
	if e.white != 0 {
		e.device.DestroyTexture(e.white)
		e.white = 0
	}
	if e.shader != nil {
		e.shader.Delete()
		e.shader = nil
	}
}

// SetViewport is a no-op; the projection comes from the render context.
func (e *Entities) SetViewport(width, height int) {}
