package widget

import (
	"spx-editor/internal/ui/panel"

	"github.com/go-gl/mathgl/mgl32"
)

const thumbWidth = 12

type Slider struct {
	BaseComponent
	Value    float32 // 0.0 to 1.0
	Steps    int
	Label    string
	OnChange func(val float32)

	dragging bool
}

func NewSlider(label string, initialVal float32, steps int, onChange func(val float32)) *Slider {
	return &Slider{
		Label:    label,
		Value:    clamp01(initialVal),
		Steps:    steps,
		OnChange: onChange,
	}
}

func (s *Slider) Render(p Painter) {
	r := s.Rect
	if r.Empty() {
		return
	}
	p.DrawFilledRect(r, mgl32.Vec3{0.3, 0.3, 0.3}, 0.8)

	// Downsample ticks to about ten so dense sliders stay readable.
	if s.Steps > 1 {
		tickH := r.H * 6 / 10
		spacing := s.Steps / 10
		if spacing < 1 {
			spacing = 1
		}
		for i := 0; i < s.Steps; i++ {
			if i != 0 && i != s.Steps-1 && i%spacing != 0 {
				continue
			}
			ratio := float32(i) / float32(s.Steps-1)
			tx := r.X + int(ratio*float32(r.W)) - 1
			p.DrawFilledRect(panel.Rect{X: tx, Y: r.Y + (r.H-tickH)/2, W: 2, H: tickH}, mgl32.Vec3{0.9, 0.9, 0.9}, 0.18)
		}
	}

	thumbX := r.X + int(float32(r.W-thumbWidth)*s.Value)
	p.DrawFilledRect(panel.Rect{X: thumbX, Y: r.Y, W: thumbWidth, H: r.H}, mgl32.Vec3{0.6, 0.6, 0.6}, 0.9)

	if s.Label != "" {
		scale := textScale(p, s.Label, float32(r.H)*0.6, float32(r.W)*0.9)
		_, th := p.MeasureText(s.Label, scale)
		p.DrawText(s.Label, float32(r.X+4), float32(r.Y)+(float32(r.H)-th)/2, scale, mgl32.Vec3{1, 1, 1})
	}
}

// HandleInput captures the pointer while the left button is held after a
// press inside the track, so drags may leave the slider's bounds.
func (s *Slider) HandleInput(ptr Pointer) bool {
	r := s.Rect
	if r.Empty() {
		s.dragging = false
		return false
	}
	switch {
	case s.dragging && !ptr.Down:
		s.dragging = false
		return false
	case !s.dragging && ptr.JustPressed && r.Contains(ptr.X, ptr.Y):
		s.dragging = true
	case !s.dragging:
		return false
	}

	v := s.snap(clamp01(float32(ptr.X-float64(r.X)) / float32(r.W)))
	if v != s.Value {
		s.Value = v
		if s.OnChange != nil {
			s.OnChange(v)
		}
	}
	return true
}

// Dragging reports whether the slider currently owns the pointer.
func (s *Slider) Dragging() bool { return s.dragging }

func (s *Slider) snap(v float32) float32 {
	if s.Steps <= 1 {
		return v
	}
	denom := float32(s.Steps - 1)
	return float32(int(v*denom+0.5)) / denom
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
