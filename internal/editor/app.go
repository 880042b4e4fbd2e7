package editor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"spx-editor/internal/assets"
	"spx-editor/internal/camera"
	"spx-editor/internal/config"
	"spx-editor/internal/framebuffer"
	"spx-editor/internal/graphics"
	"spx-editor/internal/graphics/renderables/entities"
	"spx-editor/internal/graphics/renderables/ui"
	"spx-editor/internal/graphics/renderables/wireframe"
	renderer "spx-editor/internal/graphics/renderer"
	"spx-editor/internal/input"
	"spx-editor/internal/profiling"
	"spx-editor/internal/scene"
	"spx-editor/internal/texture"
	"spx-editor/internal/ui/menu"
	"spx-editor/internal/ui/panel"
	"spx-editor/internal/ui/widget"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const slowFrame = 16 * time.Millisecond

var (
	windowBg      = mgl32.Vec3{0.08, 0.08, 0.09}
	headerBg      = mgl32.Vec3{0.18, 0.18, 0.2}
	headerText    = mgl32.Vec3{0.85, 0.85, 0.85}
	placeholderBg = mgl32.Vec3{0.25, 0.12, 0.12}
)

// App owns the window and every editor subsystem.
type App struct {
	cfg      config.Config
	logger   *slog.Logger
	settings *config.Settings

	window   *glfw.Window
	input    *input.InputManager
	profiler *profiling.Profiler
	device   *graphics.Device
	textures *texture.Cache
	surface  *framebuffer.Surface
	scene    *scene.Scene
	camera   *camera.Camera
	renderer *renderer.Renderer
	overlay  *ui.UI
	sidebar  *menu.Sidebar
	limiter  *FPSLimiter

	lastTime     time.Time
	viewW, viewH int
	surfaceErr   bool
	shutdownDone bool
}

// New creates the window and GL context and wires the editor together.
// glfw.Init must already have succeeded on the calling (main) thread.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg.Validate()

	a := &App{
		cfg:      cfg,
		logger:   logger,
		settings: config.NewSettings(cfg),
		profiler: profiling.New(),
		input:    input.NewInputManager(),
	}

	var err error
	a.window, err = SetupWindow(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	if err := a.init(); err != nil {
		a.Shutdown()
		return nil, err
	}
	return a, nil
}

func (a *App) init() error {
	res := a.resolver()
	a.logger.Info("editor: assets", "root", res.Root)

	a.device = graphics.NewDevice()
	a.textures = texture.New(texture.NewFileDecoder(), a.device,
		texture.WithLogger(a.logger),
		texture.WithDecodeWorkers(a.cfg.DecodeWorkers),
	)
	a.surface = framebuffer.New(a.device, a.window.GetFramebufferSize, framebuffer.WithLogger(a.logger))

	defaultTex := res.Texture(a.cfg.DefaultTexture)
	floorTex := res.Texture(a.cfg.FloorTexture)
	a.preload(defaultTex, floorTex)

	a.scene = scene.New(a.textures,
		scene.WithLogger(a.logger),
		scene.WithDefaultTexture(scene.KindCube, defaultTex),
		scene.WithDefaultTexture(scene.KindPlane, defaultTex),
		scene.WithDefaultTexture(scene.KindFloor, floorTex),
	)

	a.camera = camera.New(mgl32.Vec3{0, 1, 5})
	a.camera.Speed = a.settings.CameraSpeed()

	cc := a.cfg.ClearColor
	var err error
	a.renderer, err = renderer.NewRenderer(a.camera, a.scene, a.profiler, mgl32.Vec4{cc[0], cc[1], cc[2], cc[3]},
		entities.NewEntities(res.Shader("scene", "scene.vert"), res.Shader("scene", "scene.frag"), a.device, a.profiler),
		wireframe.NewWireframe(res.Shader("wireframe", "wireframe.vert"), res.Shader("wireframe", "wireframe.frag"), a.profiler),
	)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}

	overlay := ui.NewUI(res.Shader("ui", "ui.vert"), res.Shader("ui", "ui.frag"), a.device)
	if err := overlay.Init(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.overlay = overlay

	a.sidebar = menu.NewSidebar(a.settings.SceneCollapsed(), a.settings.CameraSpeed())
	a.limiter = NewFPSLimiter(a.settings)
	a.input.SetCallbacks(a.window)

	floor := a.scene.AddFloor()
	cube := a.scene.AddCube()
	a.scene.Select(cube.ID)
	a.logger.Info("editor: ready", "entities", a.scene.Len(), "floor", floor.ID)

	a.lastTime = time.Now()
	return nil
}

func (a *App) resolver() assets.Resolver {
	root := a.cfg.AssetsDir
	if root == "" {
		cwd, _ := os.Getwd()
		var exeDir string
		if exe, err := os.Executable(); err == nil {
			exeDir = filepath.Dir(exe)
		}
		root = assets.FindRootFrom(cwd, exeDir)
	}
	res := assets.NewResolver(root)
	res.TextureDir = a.cfg.TextureDir
	res.ShaderDir = a.cfg.ShaderDir
	return res
}

// preload decodes the default textures in parallel so the first entities of
// each kind do not stall a frame. The cache keeps the references until
// shutdown.
func (a *App) preload(paths ...string) {
	var want []string
	for _, p := range paths {
		if p != "" {
			want = append(want, p)
		}
	}
	if len(want) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := a.profiler.Track("texture.Preload")
	handles, err := a.textures.Preload(ctx, want)
	done()
	if err != nil {
		a.logger.Warn("editor: preload aborted", "err", err)
		return
	}
	a.logger.Info("editor: textures preloaded", "requested", len(want), "loaded", len(handles))
}

// Run drives frames until the window closes or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	for !a.window.ShouldClose() {
		if ctx.Err() != nil {
			a.logger.Info("editor: stopping", "reason", ctx.Err())
			return
		}
		a.tick()
	}
}

func (a *App) tick() {
	a.profiler.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	winW, winH := a.window.GetSize()
	fbW, fbH := a.window.GetFramebufferSize()
	sceneRect, sidebarRect := a.layout(winW, winH)

	a.update(float32(dt), sceneRect)
	// The sidebar may have toggled the scene panel.
	sceneRect, sidebarRect = a.layout(winW, winH)
	a.render(dt, sceneRect, sidebarRect, winW, winH, fbW, fbH)

	a.window.SwapBuffers()

	processingDuration := time.Since(startTick)
	if processingDuration > slowFrame {
		a.logger.Debug("editor: slow frame", "duration", processingDuration, "top", a.profiler.TopN(5))
	}

	a.input.PostUpdate()
	a.limiter.Wait()
}

func (a *App) layout(winW, winH int) (sceneRect, sidebarRect panel.Rect) {
	sidebarW := a.cfg.SidebarWidth
	if !a.cfg.EnableDocking {
		sidebarW = 0
	}
	sceneRect, sidebarRect = panel.Layout(winW, winH, sidebarW, a.settings.SceneCollapsed())
	a.sidebar.SetBounds(sidebarRect)
	return sceneRect, sidebarRect
}

func (a *App) update(dt float32, sceneRect panel.Rect) {
	defer a.profiler.Track("editor.Update")()

	cx, cy := a.input.CursorPos()
	a.input.SetSceneHovered(sceneRect.Contains(cx, cy))

	ptr := widget.Pointer{
		X:           cx,
		Y:           cy,
		Down:        a.input.IsActive(input.ActionMouseLeft),
		JustPressed: a.input.JustPressed(input.ActionMouseLeft),
	}
	act := a.sidebar.Update(ptr, sidebarItems(a.scene))
	if act == menu.ActionNone {
		act = keyboardAction(a.input)
	}
	applyAction(a.scene, act, a.sidebar.PickedID(), a.logger)

	if ptr.JustPressed && a.input.SceneHovered() {
		if id, ok := pickEntity(a.scene, a.camera, sceneRect, cx, cy, a.profiler); ok {
			a.scene.Select(id)
		} else {
			a.scene.Select(-1)
		}
	}

	if a.input.JustPressed(input.ActionToggleScene) {
		a.sidebar.SetCollapsed(!a.sidebar.Collapsed())
	}
	if c := a.sidebar.Collapsed(); c != a.settings.SceneCollapsed() {
		a.settings.SetSceneCollapsed(c)
		a.logger.Info("editor: scene panel", "hidden", c)
	}
	a.settings.SetCameraSpeed(a.sidebar.Speed())
	a.camera.Speed = a.settings.CameraSpeed()

	if a.input.JustPressed(input.ActionExit) {
		a.window.SetShouldClose(true)
	}

	moveCamera(a.camera, a.input, dt)
}

func (a *App) render(dt float64, sceneRect, sidebarRect panel.Rect, winW, winH, fbW, fbH int) {
	defer a.profiler.Track("editor.Render")()

	pw, ph := pixelSize(sceneRect, winW, winH, fbW, fbH)
	if err := a.surface.EnsureSize(pw, ph); err != nil {
		if !a.surfaceErr {
			a.logger.Warn("editor: scene surface unavailable", "width", pw, "height", ph, "err", err)
		}
		a.surfaceErr = true
	} else {
		a.surfaceErr = false
		if w, h := a.surface.Size(); w != a.viewW || h != a.viewH {
			a.viewW, a.viewH = w, h
			a.renderer.UpdateViewport(w, h)
		}
	}

	// A hidden panel keeps its last target but is not drawn into.
	rendered := false
	if !sceneRect.Empty() {
		rendered = a.surface.RenderInto(func(w, h int) {
			a.renderer.Render(w, h, dt)
		})
	}

	a.device.BindDefaultRenderTarget(fbW, fbH)
	gl.ClearColor(windowBg.X(), windowBg.Y(), windowBg.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	a.overlay.SetViewport(winW, winH)
	a.overlay.Begin()
	if !sceneRect.Empty() {
		header := panel.Header(sceneRect)
		a.overlay.DrawFilledRect(header, headerBg, 1)
		w, h := a.surface.Size()
		title := fmt.Sprintf("Scene  %dx%d", w, h)
		_, th := a.overlay.MeasureText(title, 0.9)
		a.overlay.DrawText(title, float32(header.X+6), float32(header.Y)+(float32(header.H)-th)/2, 0.9, headerText)

		if rendered {
			a.overlay.DrawImage(sceneRect, a.surface.ColorTextureHandle())
		} else {
			a.overlay.DrawFilledRect(sceneRect, placeholderBg, 1)
			msg := a.overlay.FitText("Scene unavailable", float32(sceneRect.W-12), 1)
			a.overlay.DrawText(msg, float32(sceneRect.X+6), float32(sceneRect.Y+6), 1, headerText)
		}
	}
	if !sidebarRect.Empty() {
		a.sidebar.Render(a.overlay)
	}
	a.overlay.End()
}

// Shutdown releases everything in dependency order: scene references first,
// then the cache, the render target, renderables and finally the window. It
// is safe to call more than once and on a partially built App.
func (a *App) Shutdown() {
	if a.shutdownDone {
		return
	}
	a.shutdownDone = true

	if a.scene != nil {
		a.scene.Clear()
	}
	if a.textures != nil {
		a.textures.UnloadAll()
	}
	if a.surface != nil {
		a.surface.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Dispose()
	}
	if a.overlay != nil {
		a.overlay.Dispose()
	}
	if a.window != nil {
		a.window.Destroy()
	}
	a.logger.Info("editor: shut down")
}
