package renderer

import (
	"spx-editor/internal/camera"
	"spx-editor/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *camera.Camera
	Scene  *scene.Scene
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4

	// Size of the target being drawn into, in pixels.
	Width  int
	Height int
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
