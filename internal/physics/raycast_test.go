package physics_test

import (
	"testing"

	"spx-editor/internal/camera"
	"spx-editor/internal/physics"
	"spx-editor/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube(id int, pos mgl32.Vec3) *scene.Entity {
	return &scene.Entity{ID: id, Kind: scene.KindCube, Position: pos, Scale: mgl32.Vec3{1, 1, 1}, Visible: true, Collidable: true}
}

func TestRaycastHitsNearest(t *testing.T) {
	ents := []*scene.Entity{
		cube(1, mgl32.Vec3{10, 0, 0}),
		cube(2, mgl32.Vec3{5, 0, 0}),
	}
	ray := physics.Ray{Origin: mgl32.Vec3{0, 0, 0}, Dir: mgl32.Vec3{1, 0, 0}}

	res := physics.Raycast(ray, physics.MinReachDistance, physics.MaxReachDistance, ents, nil)
	require.True(t, res.Hit)
	assert.Equal(t, 2, res.EntityID)
	// Ray starts at X=0 and enters the cube at X=4.5.
	assert.InDelta(t, 4.5, res.Distance, 1e-4)
	assert.InDelta(t, 4.5, res.Position.X(), 1e-4)
}

func TestRaycastMisses(t *testing.T) {
	ents := []*scene.Entity{cube(1, mgl32.Vec3{5, 0, 0})}

	res := physics.Raycast(physics.Ray{Dir: mgl32.Vec3{0, 1, 0}}, 0, 100, ents, nil)
	assert.False(t, res.Hit)
	assert.Zero(t, res.Distance)

	// Out of reach.
	res = physics.Raycast(physics.Ray{Dir: mgl32.Vec3{1, 0, 0}}, 0, 3, ents, nil)
	assert.False(t, res.Hit)

	// Hidden entities are skipped.
	ents[0].Visible = false
	res = physics.Raycast(physics.Ray{Dir: mgl32.Vec3{1, 0, 0}}, 0, 100, ents, nil)
	assert.False(t, res.Hit)
}

func TestRaycastSkipsNonCollidable(t *testing.T) {
	near := cube(1, mgl32.Vec3{5, 0, 0})
	far := cube(2, mgl32.Vec3{10, 0, 0})
	near.Collidable = false
	ray := physics.Ray{Dir: mgl32.Vec3{1, 0, 0}}

	res := physics.Raycast(ray, 0, 100, []*scene.Entity{near, far}, nil)
	require.True(t, res.Hit)
	assert.Equal(t, 2, res.EntityID)

	far.Collidable = false
	res = physics.Raycast(ray, 0, 100, []*scene.Entity{near, far}, nil)
	assert.False(t, res.Hit)
}

func TestRaycastRespectsTransform(t *testing.T) {
	e := cube(7, mgl32.Vec3{0, 0, -5})
	e.Scale = mgl32.Vec3{4, 1, 1}
	ray := physics.Ray{Origin: mgl32.Vec3{1.8, 0, 0}, Dir: mgl32.Vec3{0, 0, -1}}

	res := physics.Raycast(ray, 0, 100, []*scene.Entity{e}, nil)
	require.True(t, res.Hit, "x=1.8 is inside a cube scaled 4x along X")
	assert.InDelta(t, 4.5, res.Distance, 1e-4)

	e.Scale = mgl32.Vec3{1, 1, 1}
	res = physics.Raycast(ray, 0, 100, []*scene.Entity{e}, nil)
	assert.False(t, res.Hit)
}

func TestRaycastFlatKinds(t *testing.T) {
	floor := &scene.Entity{ID: 3, Kind: scene.KindFloor, Position: mgl32.Vec3{0, -1, 0}, Scale: mgl32.Vec3{1, 1, 1}, Visible: true, Collidable: true}
	ray := physics.Ray{Origin: mgl32.Vec3{2, 5, 2}, Dir: mgl32.Vec3{0, -1, 0}}

	res := physics.Raycast(ray, 0, 100, []*scene.Entity{floor}, nil)
	require.True(t, res.Hit)
	assert.Equal(t, 3, res.EntityID)
	assert.InDelta(t, 5.995, res.Distance, 1e-3)
}

func TestRaycastSkipsDegenerateScale(t *testing.T) {
	e := cube(1, mgl32.Vec3{5, 0, 0})
	e.Scale = mgl32.Vec3{0, 1, 1}
	res := physics.Raycast(physics.Ray{Dir: mgl32.Vec3{1, 0, 0}}, 0, 100, []*scene.Entity{e}, nil)
	assert.False(t, res.Hit)
}

func TestScreenRayThroughCenter(t *testing.T) {
	cam := camera.New(mgl32.Vec3{0, 0, 5})
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(800, 600)

	ray, ok := physics.ScreenRay(400, 300, 800, 600, view, proj)
	require.True(t, ok)
	front := cam.Front()
	assert.InDelta(t, front.X(), ray.Dir.X(), 1e-3)
	assert.InDelta(t, front.Y(), ray.Dir.Y(), 1e-3)
	assert.InDelta(t, front.Z(), ray.Dir.Z(), 1e-3)

	// The ray through the center hits a cube at the origin.
	res := physics.Raycast(ray, 0, 100, []*scene.Entity{cube(1, mgl32.Vec3{})}, nil)
	assert.True(t, res.Hit)

	// A point near the top edge looks upward.
	up, ok := physics.ScreenRay(400, 10, 800, 600, view, proj)
	require.True(t, ok)
	assert.Greater(t, up.Dir.Y(), float32(0))

	_, ok = physics.ScreenRay(0, 0, 0, 0, view, proj)
	assert.False(t, ok)
}
