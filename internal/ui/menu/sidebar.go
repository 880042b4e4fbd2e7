package menu

import (
	"fmt"

	"spx-editor/internal/ui/panel"
	"spx-editor/internal/ui/widget"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	rowHeight = 26
	rowGap    = 4
	margin    = 8

	itemHeight = 20
	itemGap    = 2

	// Camera speed range mapped onto the slider's 0..1.
	MinSpeed = 1
	MaxSpeed = 20
)

var (
	sidebarBg     = mgl32.Vec3{0.14, 0.14, 0.16}
	rowColor      = mgl32.Vec3{0.2, 0.2, 0.22}
	selectedColor = mgl32.Vec3{0.25, 0.4, 0.65}
	labelColor    = mgl32.Vec3{0.85, 0.85, 0.85}
)

// Sidebar holds the editor's tool buttons and the entity list.
type Sidebar struct {
	rect panel.Rect

	addCube, addPlane, addFloor *widget.Button
	remove, next                *widget.Button
	collapse                    *widget.Toggle
	speed                       *widget.Slider

	items    []Item
	itemRows []panel.Rect
	header   panel.Rect
	list     panel.Rect

	action Action
	picked int
}

// NewSidebar builds the sidebar with the scene panel shown or hidden and the
// camera speed slider at speed.
func NewSidebar(collapsed bool, speed float32) *Sidebar {
	s := &Sidebar{}
	s.addCube = widget.NewButton("Add Cube", func() { s.action = ActionAddCube })
	s.addPlane = widget.NewButton("Add Plane", func() { s.action = ActionAddPlane })
	s.addFloor = widget.NewButton("Add Floor", func() { s.action = ActionAddFloor })
	s.remove = widget.NewButton("Delete", func() { s.action = ActionDeleteSelected })
	s.remove.NormalColor = mgl32.Vec3{0.45, 0.2, 0.2}
	s.remove.HoverColor = mgl32.Vec3{0.6, 0.25, 0.25}
	s.next = widget.NewButton("Next", func() { s.action = ActionSelectNext })
	s.collapse = widget.NewToggle("Hide scene", collapsed, nil)
	s.speed = widget.NewSlider("Camera speed", SpeedToSlider(speed), 20, nil)
	return s
}

func (s *Sidebar) components() []widget.Component {
	return []widget.Component{s.addCube, s.addPlane, s.addFloor, s.remove, s.next, s.collapse, s.speed}
}

// SetBounds lays the sidebar out inside r.
func (s *Sidebar) SetBounds(r panel.Rect) {
	s.rect = r
	inner := r.Inset(margin)
	s.addCube.SetBounds(panel.Row(inner, 0, rowHeight, rowGap))
	s.addPlane.SetBounds(panel.Row(inner, 1, rowHeight, rowGap))
	s.addFloor.SetBounds(panel.Row(inner, 2, rowHeight, rowGap))

	pair := panel.Row(inner, 3, rowHeight, rowGap)
	half := (pair.W - rowGap) / 2
	if pair.Empty() || half <= 0 {
		s.remove.SetBounds(panel.Rect{})
		s.next.SetBounds(panel.Rect{})
	} else {
		s.remove.SetBounds(panel.Rect{X: pair.X, Y: pair.Y, W: half, H: pair.H})
		s.next.SetBounds(panel.Rect{X: pair.X + half + rowGap, Y: pair.Y, W: pair.W - half - rowGap, H: pair.H})
	}

	toggle := panel.Row(inner, 4, rowHeight, rowGap)
	toggle = toggle.Inset(3)
	s.collapse.SetBounds(toggle)
	s.speed.SetBounds(panel.Row(inner, 5, rowHeight, rowGap))
	s.header = panel.Row(inner, 6, rowHeight, rowGap)
	s.list = panel.Rect{}
	if !s.header.Empty() {
		top := s.header.Y + s.header.H + rowGap
		s.list = panel.Rect{X: inner.X, Y: top, W: inner.W, H: inner.Y + inner.H - top}
	}
}

// Update lays out the entity list for items and feeds the pointer to every
// widget. It returns the action triggered this frame, if any.
func (s *Sidebar) Update(ptr widget.Pointer, items []Item) Action {
	s.action = ActionNone
	s.picked = 0
	s.items = items

	s.itemRows = s.itemRows[:0]
	for i := range items {
		row := panel.Row(s.list, i, itemHeight, itemGap)
		if row.Empty() {
			break
		}
		s.itemRows = append(s.itemRows, row)
	}

	selected := false
	for _, it := range items {
		if it.Selected {
			selected = true
			break
		}
	}
	s.remove.Disabled = !selected
	s.next.Disabled = len(items) == 0

	for _, c := range s.components() {
		if c.HandleInput(ptr) {
			return s.action
		}
	}

	if ptr.JustPressed {
		for i, row := range s.itemRows {
			if row.Contains(ptr.X, ptr.Y) {
				s.picked = items[i].ID
				return ActionSelect
			}
		}
	}
	return ActionNone
}

// Render draws the sidebar with the layout from the last Update.
func (s *Sidebar) Render(p widget.Painter) {
	if s.rect.Empty() {
		return
	}
	p.DrawFilledRect(s.rect, sidebarBg, 1.0)
	for _, c := range s.components() {
		c.Render(p)
	}

	if !s.header.Empty() {
		label := fmt.Sprintf("Entities (%d)", len(s.items))
		_, th := p.MeasureText(label, 0.9)
		p.DrawText(label, float32(s.header.X), float32(s.header.Y)+(float32(s.header.H)-th)/2, 0.9, labelColor)
	}

	for i, row := range s.itemRows {
		it := s.items[i]
		color := rowColor
		if it.Selected {
			color = selectedColor
		}
		p.DrawFilledRect(row, color, 1.0)
		scale := float32(0.8)
		_, th := p.MeasureText(it.Label, scale)
		p.DrawText(it.Label, float32(row.X+6), float32(row.Y)+(float32(row.H)-th)/2, scale, labelColor)
	}
}

// PickedID is the entity clicked in the list when Update returned ActionSelect.
func (s *Sidebar) PickedID() int { return s.picked }

// Collapsed reports whether the scene panel is hidden.
func (s *Sidebar) Collapsed() bool { return s.collapse.IsOn }

// SetCollapsed changes the scene panel toggle without firing callbacks.
func (s *Sidebar) SetCollapsed(v bool) { s.collapse.IsOn = v }

// Speed returns the camera speed selected on the slider.
func (s *Sidebar) Speed() float32 { return SliderToSpeed(s.speed.Value) }

// Capturing reports whether a widget owns the pointer, e.g. during a drag.
func (s *Sidebar) Capturing() bool { return s.speed.Dragging() }

// SpeedToSlider maps a camera speed onto the slider range.
func SpeedToSlider(speed float32) float32 {
	return (speed - MinSpeed) / (MaxSpeed - MinSpeed)
}

// SliderToSpeed maps a slider value back onto a camera speed.
func SliderToSpeed(v float32) float32 {
	return MinSpeed + v*(MaxSpeed-MinSpeed)
}
