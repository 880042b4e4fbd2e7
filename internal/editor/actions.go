package editor

import (
	"fmt"
	"log/slog"

	"spx-editor/internal/camera"
	"spx-editor/internal/input"
	"spx-editor/internal/physics"
	"spx-editor/internal/profiling"
	"spx-editor/internal/scene"
	"spx-editor/internal/ui/menu"
	"spx-editor/internal/ui/panel"
)

// keyboardAction maps this frame's key presses onto a sidebar action so both
// sources go through applyAction.
func keyboardAction(im *input.InputManager) menu.Action {
	switch {
	case im.JustPressed(input.ActionAddCube):
		return menu.ActionAddCube
	case im.JustPressed(input.ActionAddPlane):
		return menu.ActionAddPlane
	case im.JustPressed(input.ActionAddFloor):
		return menu.ActionAddFloor
	case im.JustPressed(input.ActionDeleteSelected):
		return menu.ActionDeleteSelected
	case im.JustPressed(input.ActionSelectNext):
		return menu.ActionSelectNext
	}
	return menu.ActionNone
}

// applyAction edits the scene. picked is only read for ActionSelect.
func applyAction(sc *scene.Scene, act menu.Action, picked int, logger *slog.Logger) {
	var added *scene.Entity
	switch act {
	case menu.ActionAddCube:
		added = sc.AddCube()
	case menu.ActionAddPlane:
		added = sc.AddPlane()
	case menu.ActionAddFloor:
		added = sc.AddFloor()
	case menu.ActionDeleteSelected:
		if sel := sc.Selected(); sel != nil {
			sc.Remove(sel.ID)
			logger.Info("editor: entity deleted", "id", sel.ID, "kind", sel.Kind)
		}
	case menu.ActionSelectNext:
		sc.SelectNext()
	case menu.ActionSelect:
		sc.Select(picked)
	}
	if added != nil {
		sc.Select(added.ID)
		logger.Info("editor: entity added", "id", added.ID, "kind", added.Kind, "texture", added.TexturePath)
	}
}

var moveBindings = []struct {
	action input.Action
	dir    camera.Direction
}{
	{input.ActionMoveForward, camera.Forward},
	{input.ActionMoveBackward, camera.Backward},
	{input.ActionMoveLeft, camera.Left},
	{input.ActionMoveRight, camera.Right},
	{input.ActionMoveUp, camera.Up},
	{input.ActionMoveDown, camera.Down},
}

// moveCamera flies the camera for held movement keys and turns it while the
// right button is held over the scene panel. The wheel zooms.
func moveCamera(cam *camera.Camera, im *input.InputManager, dt float32) {
	for _, b := range moveBindings {
		if im.IsActive(b.action) {
			cam.Move(b.dir, dt)
		}
	}
	if im.IsActive(input.ActionMouseRight) && im.SceneHovered() {
		dx, dy := im.CursorDelta()
		cam.Look(float32(dx), float32(dy))
	}
	if dy := im.ScrollDelta(); dy != 0 {
		cam.Zoom(float32(dy))
	}
}

// sidebarItems lists the scene for the sidebar.
func sidebarItems(sc *scene.Scene) []menu.Item {
	ents := sc.Entities()
	sel := sc.Selected()
	items := make([]menu.Item, len(ents))
	for i, e := range ents {
		items[i] = menu.Item{
			ID:       e.ID,
			Label:    fmt.Sprintf("#%d %s", e.ID, e.Name),
			Selected: sel != nil && sel.ID == e.ID,
		}
	}
	return items
}

// pixelSize converts a window-space rect into framebuffer pixels for
// displays where the two differ.
func pixelSize(r panel.Rect, winW, winH, fbW, fbH int) (int, int) {
	if r.Empty() || winW <= 0 || winH <= 0 {
		return 0, 0
	}
	return r.W * fbW / winW, r.H * fbH / winH
}

// pickEntity casts a ray from the cursor through the scene panel and returns
// the nearest entity under it.
func pickEntity(sc *scene.Scene, cam *camera.Camera, r panel.Rect, cx, cy float64, prof *profiling.Profiler) (int, bool) {
	if !r.Contains(cx, cy) {
		return 0, false
	}
	ray, ok := physics.ScreenRay(cx-float64(r.X), cy-float64(r.Y), r.W, r.H, cam.ViewMatrix(), cam.ProjectionMatrix(r.W, r.H))
	if !ok {
		return 0, false
	}
	res := physics.Raycast(ray, physics.MinReachDistance, physics.MaxReachDistance, sc.Entities(), prof)
	return res.EntityID, res.Hit
}
