package widget

import (
	"spx-editor/internal/ui/panel"

	"github.com/go-gl/mathgl/mgl32"
)

// Painter is the drawing surface widgets render onto. Coordinates are window
// pixels with a top-left origin.
type Painter interface {
	DrawFilledRect(r panel.Rect, color mgl32.Vec3, alpha float32)
	DrawText(s string, x, y, scale float32, color mgl32.Vec3)
	MeasureText(s string, scale float32) (float32, float32)
}

// Pointer is the mouse state for one frame.
type Pointer struct {
	X, Y        float64
	Down        bool // left button held
	JustPressed bool // left button went down this frame
}

type Component interface {
	Render(p Painter)
	HandleInput(ptr Pointer) bool
	SetBounds(r panel.Rect)
	Bounds() panel.Rect
}

type BaseComponent struct {
	Rect panel.Rect
}

func (b *BaseComponent) SetBounds(r panel.Rect) { b.Rect = r }
func (b *BaseComponent) Bounds() panel.Rect     { return b.Rect }

// textScale fits a single line into h pixels of height, shrinking further
// when the text would exceed maxW.
func textScale(p Painter, s string, h, maxW float32) float32 {
	_, rawH := p.MeasureText(s, 1)
	if rawH == 0 {
		rawH = 20
	}
	scale := h / rawH
	if w, _ := p.MeasureText(s, scale); w > maxW && w > 0 {
		scale *= maxW / w
	}
	return scale
}
