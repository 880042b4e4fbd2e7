package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyC, glfw.Press)
	assert.True(t, im.JustPressed(ActionAddCube))
	assert.True(t, im.IsActive(ActionAddCube))

	// Repeat keeps the key held without a new edge.
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyC, glfw.Repeat)
	assert.False(t, im.JustPressed(ActionAddCube))
	assert.True(t, im.IsActive(ActionAddCube))

	im.HandleKeyEvent(glfw.KeyC, glfw.Release)
	assert.True(t, im.JustReleased(ActionAddCube))
	assert.False(t, im.IsActive(ActionAddCube))

	im.PostUpdate()
	assert.False(t, im.JustReleased(ActionAddCube))
}

func TestDefaultBindings(t *testing.T) {
	tests := []struct {
		key    glfw.Key
		action Action
	}{
		{glfw.KeyW, ActionMoveForward},
		{glfw.KeyUp, ActionMoveForward},
		{glfw.KeyZ, ActionMoveUp},
		{glfw.KeyX, ActionMoveDown},
		{glfw.KeyP, ActionAddPlane},
		{glfw.KeyF, ActionAddFloor},
		{glfw.KeyDelete, ActionDeleteSelected},
		{glfw.KeyTab, ActionSelectNext},
		{glfw.KeyEscape, ActionExit},
	}
	for _, tt := range tests {
		im := NewInputManager()
		im.HandleKeyEvent(tt.key, glfw.Press)
		assert.True(t, im.JustPressed(tt.action), "key %d", tt.key)
	}
}

func TestMouseButtons(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	assert.True(t, im.IsActive(ActionMouseRight))
	assert.False(t, im.IsActive(ActionMouseLeft))

	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Release)
	assert.False(t, im.IsActive(ActionMouseRight))
}

func TestUnboundAndOutOfRange(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeyW)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	assert.False(t, im.IsActive(ActionMoveForward))

	im.BindKey(glfw.KeyQ, ActionCount)
	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	assert.False(t, im.JustPressed(ActionCount))
	assert.False(t, im.IsActive(Action(-1)))
}

func TestCursorDeltaOnlyOverScene(t *testing.T) {
	im := NewInputManager()

	im.HandleCursorPos(10, 10)
	im.HandleCursorPos(50, 50)
	dx, dy := im.CursorDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	x, y := im.CursorPos()
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 50.0, y)

	// Entering the scene: first sample only seeds the position.
	im.SetSceneHovered(true)
	im.HandleCursorPos(100, 100)
	dx, dy = im.CursorDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	im.HandleCursorPos(110, 95)
	im.HandleCursorPos(115, 90)
	dx, dy = im.CursorDelta()
	assert.Equal(t, 15.0, dx)
	assert.Equal(t, 10.0, dy)

	im.PostUpdate()
	dx, dy = im.CursorDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestReenteringSceneResetsTracking(t *testing.T) {
	im := NewInputManager()
	im.SetSceneHovered(true)
	im.HandleCursorPos(0, 0)
	im.HandleCursorPos(5, 0)

	im.SetSceneHovered(false)
	im.HandleCursorPos(500, 500)
	im.SetSceneHovered(true)
	assert.True(t, im.SceneHovered())

	im.HandleCursorPos(505, 500)
	dx, _ := im.CursorDelta()
	assert.Zero(t, dx, "re-entry must not report the jump across the sidebar")

	im.HandleCursorPos(507, 500)
	dx, _ = im.CursorDelta()
	assert.Equal(t, 2.0, dx)
}

func TestScrollOnlyOverScene(t *testing.T) {
	im := NewInputManager()
	im.HandleScroll(2)
	assert.Zero(t, im.ScrollDelta())

	im.SetSceneHovered(true)
	im.HandleScroll(1)
	im.HandleScroll(0.5)
	assert.Equal(t, 1.5, im.ScrollDelta())

	im.PostUpdate()
	assert.Zero(t, im.ScrollDelta())
}
