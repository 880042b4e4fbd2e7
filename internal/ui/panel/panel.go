// Package panel computes the editor's window layout: a scene viewport on the
// left and a sidebar on the right. It has no GL dependency.
package panel

// Rect is an axis-aligned rectangle in window pixels, top-left origin.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	if r.Empty() {
		return false
	}
	return x >= float64(r.X) && x < float64(r.X+r.W) &&
		y >= float64(r.Y) && y < float64(r.Y+r.H)
}

// Inset shrinks r by d on every side. The result never has negative size.
func (r Rect) Inset(d int) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// HeaderHeight is the height of the title strip drawn above the scene image.
const HeaderHeight = 22

// Layout splits a winW x winH window into the scene panel and the sidebar.
// When collapsed is true the scene panel is hidden and reported empty; the
// sidebar keeps its width. A sidebar wider than the window takes all of it.
func Layout(winW, winH, sidebarW int, collapsed bool) (scene, sidebar Rect) {
	if winW <= 0 || winH <= 0 {
		return Rect{}, Rect{}
	}
	if sidebarW < 0 {
		sidebarW = 0
	}
	if sidebarW > winW {
		sidebarW = winW
	}
	sidebar = Rect{X: winW - sidebarW, Y: 0, W: sidebarW, H: winH}
	if sidebar.W == 0 {
		sidebar = Rect{}
	}
	if collapsed {
		return Rect{}, sidebar
	}

	scene = Rect{X: 0, Y: HeaderHeight, W: winW - sidebarW, H: winH - HeaderHeight}
	if scene.Empty() {
		return Rect{}, sidebar
	}
	return scene, sidebar
}

// Row returns the i-th row of height h stacked from the top of r with gap
// pixels between rows. The row is empty once it would overflow r.
func Row(r Rect, i, h, gap int) Rect {
	y := r.Y + i*(h+gap)
	if i < 0 || h <= 0 || y+h > r.Y+r.H {
		return Rect{}
	}
	return Rect{X: r.X, Y: y, W: r.W, H: h}
}

// Header returns the title strip above a scene rect, or an empty rect when
// the scene panel is hidden.
func Header(scene Rect) Rect {
	if scene.Empty() {
		return Rect{}
	}
	return Rect{X: scene.X, Y: scene.Y - HeaderHeight, W: scene.W, H: HeaderHeight}
}
