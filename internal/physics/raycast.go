package physics

import (
	"math"

	"spx-editor/internal/profiling"
	"spx-editor/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 100.0
)

// Ray is a half-line; Dir is normalized.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	EntityID int
	Position mgl32.Vec3
	Distance float32
	Hit      bool
}

// ScreenRay builds the world-space ray through pixel (x, y) of a viewport
// of width x height with a top-left origin.
func ScreenRay(x, y float64, width, height int, view, proj mgl32.Mat4) (Ray, bool) {
	if width <= 0 || height <= 0 {
		return Ray{}, false
	}
	// UnProject expects a bottom-left origin.
	wy := float32(height) - float32(y)
	near, err := mgl32.UnProject(mgl32.Vec3{float32(x), wy, 0}, view, proj, 0, 0, width, height)
	if err != nil {
		return Ray{}, false
	}
	far, err := mgl32.UnProject(mgl32.Vec3{float32(x), wy, 1}, view, proj, 0, 0, width, height)
	if err != nil {
		return Ray{}, false
	}
	dir := far.Sub(near)
	if dir.Len() == 0 {
		return Ray{}, false
	}
	return Ray{Origin: near, Dir: dir.Normalize()}, true
}

// Raycast returns the nearest visible, collidable entity hit by ray between
// minDist and maxDist. Each entity is tested as its local bounds under its model matrix.
func Raycast(ray Ray, minDist, maxDist float32, entities []*scene.Entity, prof *profiling.Profiler) RaycastResult {
	defer prof.Track("physics.Raycast")()

	result := RaycastResult{Distance: maxDist}
	for _, e := range entities {
		if e == nil || !e.Visible || !e.Collidable {
			continue
		}
		model := e.ModelMatrix()
		if model.Det() == 0 {
			continue
		}
		inv := model.Inv()

		// Move the ray into model space. The direction is not renormalized,
		// so the slab distance stays in world units.
		o := inv.Mul4x1(ray.Origin.Vec4(1)).Vec3()
		d := inv.Mul4x1(ray.Dir.Vec4(0)).Vec3()
		lo, hi := scene.LocalBounds(e.Kind)

		t, ok := intersectAABB(o, d, lo, hi)
		if !ok || t < minDist || t > result.Distance {
			continue
		}
		result = RaycastResult{EntityID: e.ID, Position: ray.At(t), Distance: t, Hit: true}
	}
	if !result.Hit {
		result.Distance = 0
	}
	return result
}

// intersectAABB is the slab test. It returns the entry distance, or the exit
// distance when the origin is inside the box.
func intersectAABB(o, d, lo, hi mgl32.Vec3) (float32, bool) {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))
	for a := 0; a < 3; a++ {
		if d[a] == 0 {
			if o[a] < lo[a] || o[a] > hi[a] {
				return 0, false
			}
			continue
		}
		t1 := (lo[a] - o[a]) / d[a]
		t2 := (hi[a] - o[a]) / d[a]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
