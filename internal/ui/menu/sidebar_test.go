package menu

import (
	"testing"

	"spx-editor/internal/ui/panel"
	"spx-editor/internal/ui/widget"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPainter struct{ texts []string }

func (p *nopPainter) DrawFilledRect(panel.Rect, mgl32.Vec3, float32) {}
func (p *nopPainter) DrawText(s string, x, y, scale float32, color mgl32.Vec3) {
	p.texts = append(p.texts, s)
}
func (p *nopPainter) MeasureText(s string, scale float32) (float32, float32) {
	return float32(len(s)) * 7 * scale, 14 * scale
}

func center(r panel.Rect) (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

func click(r panel.Rect) widget.Pointer {
	x, y := center(r)
	return widget.Pointer{X: x, Y: y, Down: true, JustPressed: true}
}

func newSidebar(t *testing.T) *Sidebar {
	t.Helper()
	s := NewSidebar(false, 5)
	s.SetBounds(panel.Rect{X: 600, Y: 0, W: 240, H: 600})
	return s
}

func TestSidebarButtons(t *testing.T) {
	s := newSidebar(t)
	items := []Item{{ID: 1, Label: "Cube 1", Selected: true}}

	assert.Equal(t, ActionAddCube, s.Update(click(s.addCube.Bounds()), items))
	assert.Equal(t, ActionAddPlane, s.Update(click(s.addPlane.Bounds()), items))
	assert.Equal(t, ActionAddFloor, s.Update(click(s.addFloor.Bounds()), items))
	assert.Equal(t, ActionDeleteSelected, s.Update(click(s.remove.Bounds()), items))
	assert.Equal(t, ActionSelectNext, s.Update(click(s.next.Bounds()), items))

	// Hovering is not clicking.
	x, y := center(s.addCube.Bounds())
	assert.Equal(t, ActionNone, s.Update(widget.Pointer{X: x, Y: y}, items))
}

func TestSidebarDeleteNeedsSelection(t *testing.T) {
	s := newSidebar(t)
	items := []Item{{ID: 1, Label: "Cube 1"}}
	assert.Equal(t, ActionNone, s.Update(click(s.remove.Bounds()), items))
	assert.Equal(t, ActionNone, s.Update(click(s.next.Bounds()), nil))
}

func TestSidebarEntityList(t *testing.T) {
	s := newSidebar(t)
	items := []Item{{ID: 4, Label: "Cube 4"}, {ID: 9, Label: "Plane 9"}}

	s.Update(widget.Pointer{}, items)
	require.Len(t, s.itemRows, 2)
	assert.Greater(t, s.itemRows[0].Y, s.header.Y)
	assert.Greater(t, s.itemRows[1].Y, s.itemRows[0].Y)

	assert.Equal(t, ActionSelect, s.Update(click(s.itemRows[1]), items))
	assert.Equal(t, 9, s.PickedID())

	p := &nopPainter{}
	s.Render(p)
	assert.Contains(t, p.texts, "Entities (2)")
	assert.Contains(t, p.texts, "Plane 9")
}

func TestSidebarListClipsToBounds(t *testing.T) {
	s := newSidebar(t)
	items := make([]Item, 100)
	for i := range items {
		items[i] = Item{ID: i + 1, Label: "Cube"}
	}
	s.Update(widget.Pointer{}, items)
	require.NotEmpty(t, s.itemRows)
	assert.Less(t, len(s.itemRows), len(items))
	last := s.itemRows[len(s.itemRows)-1]
	assert.LessOrEqual(t, last.Y+last.H, 600)
}

func TestSidebarCollapseToggle(t *testing.T) {
	s := newSidebar(t)
	assert.False(t, s.Collapsed())
	s.Update(click(s.collapse.Bounds()), nil)
	assert.True(t, s.Collapsed())
	s.SetCollapsed(false)
	assert.False(t, s.Collapsed())
}

func TestSidebarSpeedSlider(t *testing.T) {
	s := newSidebar(t)
	assert.InDelta(t, 5, s.Speed(), 0.01)

	r := s.speed.Bounds()
	s.Update(widget.Pointer{X: float64(r.X + r.W - 1), Y: float64(r.Y + 1), Down: true, JustPressed: true}, nil)
	assert.True(t, s.Capturing())
	assert.InDelta(t, MaxSpeed, s.Speed(), 0.01)

	s.Update(widget.Pointer{}, nil)
	assert.False(t, s.Capturing())
}

func TestZeroSizedSidebar(t *testing.T) {
	s := NewSidebar(false, 5)
	s.SetBounds(panel.Rect{})
	assert.Equal(t, ActionNone, s.Update(widget.Pointer{JustPressed: true}, []Item{{ID: 1}}))
	assert.Empty(t, s.itemRows)
	s.Render(&nopPainter{})
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "add-cube", ActionAddCube.String())
	assert.Equal(t, "none", Action(99).String())
}
