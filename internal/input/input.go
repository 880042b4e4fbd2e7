package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical editor action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAddCube
	ActionAddPlane
	ActionAddFloor
	ActionDeleteSelected
	ActionSelectNext
	ActionToggleScene
	ActionExit
	ActionMouseLeft
	ActionMouseRight
	ActionModShift
	ActionCount // Sentinel value for array sizing
)

// InputManager manages keyboard and mouse input state and maps physical keys/buttons to logical actions
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Mouse button to action mapping
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// Cursor tracking. Deltas accumulate between PostUpdate calls and are
	// only collected while the cursor is over the scene panel.
	cursorX, cursorY float64
	lastX, lastY     float64
	deltaX, deltaY   float64
	firstMouse       bool
	sceneHovered     bool
	scrollY          float64
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
		firstMouse:           true,
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeyZ, ActionMoveUp)
	im.BindKey(glfw.KeyX, ActionMoveDown)
	im.BindKey(glfw.KeyC, ActionAddCube)
	im.BindKey(glfw.KeyP, ActionAddPlane)
	im.BindKey(glfw.KeyF, ActionAddFloor)
	im.BindKey(glfw.KeyDelete, ActionDeleteSelected)
	im.BindKey(glfw.KeyBackspace, ActionDeleteSelected)
	im.BindKey(glfw.KeyTab, ActionSelectNext)
	im.BindKey(glfw.KeyH, ActionToggleScene)
	im.BindKey(glfw.KeyEscape, ActionExit)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)
	im.BindMouseButton(glfw.MouseButtonRight, ActionMouseRight)

	im.BindKey(glfw.KeyLeftShift, ActionModShift)
	im.BindKey(glfw.KeyRightShift, ActionModShift)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.mouseButtonToActions[button], action == glfw.Press)
}

func (im *InputManager) apply(actions []Action, isPressed bool) {
	for _, act := range actions {
		if act < 0 || act >= ActionCount {
			continue
		}
		// Detect edges immediately when event arrives
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// HandleCursorPos records the cursor position in window coordinates.
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.cursorX, im.cursorY = x, y
	if !im.sceneHovered {
		return
	}
	if im.firstMouse {
		im.lastX, im.lastY = x, y
		im.firstMouse = false
		return
	}
	im.deltaX += x - im.lastX
	im.deltaY += im.lastY - y // screen y grows downward
	im.lastX, im.lastY = x, y
}

// HandleScroll accumulates vertical wheel movement over the scene panel.
func (im *InputManager) HandleScroll(yoff float64) {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.sceneHovered {
		im.scrollY += yoff
	}
}

// ScrollDelta returns the wheel movement over the scene panel since the last
// PostUpdate.
func (im *InputManager) ScrollDelta() float64 {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.scrollY
}

// SetSceneHovered tells the manager whether the cursor is over the scene
// panel. Entering the panel resets tracking so the first movement does not
// produce a jump.
func (im *InputManager) SetSceneHovered(hovered bool) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if hovered && !im.sceneHovered {
		im.firstMouse = true
		im.deltaX, im.deltaY = 0, 0
	}
	im.sceneHovered = hovered
}

// SceneHovered reports the last value given to SetSceneHovered.
func (im *InputManager) SceneHovered() bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.sceneHovered
}

// CursorPos returns the last cursor position in window coordinates.
func (im *InputManager) CursorPos() (float64, float64) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.cursorX, im.cursorY
}

// CursorDelta returns the cursor movement over the scene panel since the
// last PostUpdate. Positive dy means the cursor moved up.
func (im *InputManager) CursorDelta() (float64, float64) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.deltaX, im.deltaY
}

// SetCallbacks installs the GLFW key, mouse button and cursor callbacks.
// This should be called once during initialization
func (im *InputManager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		im.HandleCursorPos(x, y)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(yoff)
	})
}

// PostUpdate must be called at the end of each frame to update edge detection states
// This should be called after all input checks are done
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
	im.deltaX, im.deltaY = 0, 0
	im.scrollY = 0
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}
