package widget

import (
	"spx-editor/internal/ui/panel"

	"github.com/go-gl/mathgl/mgl32"
)

type Toggle struct {
	BaseComponent
	Label     string
	IsOn      bool
	OnToggle  func(isOn bool)
	IsHovered bool
}

func NewToggle(label string, initial bool, onToggle func(isOn bool)) *Toggle {
	return &Toggle{
		Label:    label,
		IsOn:     initial,
		OnToggle: onToggle,
	}
}

func (t *Toggle) Render(p Painter) {
	r := t.Rect
	if r.Empty() {
		return
	}

	// Square switch on the left, label to its right.
	box := panel.Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}
	bgColor := mgl32.Vec3{0.5, 0.2, 0.2}
	if t.IsOn {
		bgColor = mgl32.Vec3{0.2, 0.5, 0.2}
	}
	if t.IsHovered {
		bgColor = bgColor.Mul(1.2)
	}
	p.DrawFilledRect(box, bgColor, 0.85)
	if t.IsOn {
		p.DrawFilledRect(box.Inset(r.H/4), mgl32.Vec3{0.9, 0.9, 0.9}, 1.0)
	}

	labelX := float32(r.X + r.H + 8)
	scale := textScale(p, t.Label, float32(r.H)*0.7, float32(r.W-r.H-8))
	_, th := p.MeasureText(t.Label, scale)
	p.DrawText(t.Label, labelX, float32(r.Y)+(float32(r.H)-th)/2, scale, mgl32.Vec3{0.9, 0.9, 0.9})
}

func (t *Toggle) HandleInput(ptr Pointer) bool {
	t.IsHovered = t.Rect.Contains(ptr.X, ptr.Y)
	if t.IsHovered && ptr.JustPressed {
		t.IsOn = !t.IsOn
		if t.OnToggle != nil {
			t.OnToggle(t.IsOn)
		}
		return true
	}
	return false
}
