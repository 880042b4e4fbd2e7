package renderer

import (
	"fmt"

	"spx-editor/internal/camera"
	"spx-editor/internal/profiling"
	"spx-editor/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates scene rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *camera.Camera
	scene       *scene.Scene
	profiler    *profiling.Profiler
	clearColor  mgl32.Vec4
}

// NewRenderer initializes every renderable in order. If one fails, the ones
// already initialized are disposed.
func NewRenderer(cam *camera.Camera, sc *scene.Scene, prof *profiling.Profiler, clearColor mgl32.Vec4, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		camera:     cam,
		scene:      sc,
		profiler:   prof,
		clearColor: clearColor,
	}

	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}
	r.renderables = rs
	return r, nil
}

// Render draws the scene into whatever target is bound, sized width x height.
func (r *Renderer) Render(width, height int, dt float64) {
	defer r.profiler.Track("renderer.Render")()

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(r.clearColor.X(), r.clearColor.Y(), r.clearColor.Z(), r.clearColor.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		Scene:  r.scene,
		DT:     dt,
		View:   r.camera.ViewMatrix(),
		Proj:   r.camera.ProjectionMatrix(width, height),
		Width:  width,
		Height: height,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// UpdateViewport forwards the target size to every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
