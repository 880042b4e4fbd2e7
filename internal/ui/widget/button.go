package widget

import "github.com/go-gl/mathgl/mgl32"

type Button struct {
	BaseComponent
	Text      string
	OnClick   func()
	IsHovered bool
	Disabled  bool

	NormalColor   mgl32.Vec3
	HoverColor    mgl32.Vec3
	DisabledColor mgl32.Vec3
	TextColor     mgl32.Vec3
}

func NewButton(text string, onClick func()) *Button {
	return &Button{
		Text:          text,
		OnClick:       onClick,
		NormalColor:   mgl32.Vec3{0.3, 0.3, 0.3},
		HoverColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		DisabledColor: mgl32.Vec3{0.2, 0.2, 0.2},
		TextColor:     mgl32.Vec3{1, 1, 1},
	}
}

func (b *Button) Render(p Painter) {
	r := b.Rect
	if r.Empty() {
		return
	}
	color := b.NormalColor
	switch {
	case b.Disabled:
		color = b.DisabledColor
	case b.IsHovered:
		color = b.HoverColor
	}
	p.DrawFilledRect(r, color, 1.0)

	// Main text takes ~55% of the button height, capped at 90% of its width.
	scale := textScale(p, b.Text, float32(r.H)*0.55, float32(r.W)*0.9)
	tw, th := p.MeasureText(b.Text, scale)
	x := float32(r.X) + (float32(r.W)-tw)/2
	y := float32(r.Y) + (float32(r.H)-th)/2
	textColor := b.TextColor
	if b.Disabled {
		textColor = textColor.Mul(0.5)
	}
	p.DrawText(b.Text, x, y, scale, textColor)
}

func (b *Button) HandleInput(ptr Pointer) bool {
	b.IsHovered = b.Rect.Contains(ptr.X, ptr.Y)
	if b.Disabled || !b.IsHovered || !ptr.JustPressed {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}
