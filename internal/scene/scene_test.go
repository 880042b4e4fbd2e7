package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore is a minimal refcounting texture store.
type countingStore struct {
	next    uint32
	handles map[string]uint32
	refs    map[string]int
	missing map[string]bool
}

func newCountingStore(missing ...string) *countingStore {
	s := &countingStore{
		next:    1,
		handles: make(map[string]uint32),
		refs:    make(map[string]int),
		missing: make(map[string]bool),
	}
	for _, m := range missing {
		s.missing[m] = true
	}
	return s
}

func (s *countingStore) Load(path string) uint32 {
	if s.missing[path] {
		return 0
	}
	if _, ok := s.handles[path]; !ok {
		s.handles[path] = s.next
		s.next++
	}
	s.refs[path]++
	return s.handles[path]
}

func (s *countingStore) Unload(path string) bool {
	if s.refs[path] == 0 {
		return false
	}
	s.refs[path]--
	if s.refs[path] == 0 {
		delete(s.refs, path)
		delete(s.handles, path)
	}
	return true
}

func (s *countingStore) UnloadHandle(h uint32) bool {
	for p, v := range s.handles {
		if v == h {
			return s.Unload(p)
		}
	}
	return false
}

func TestAddUsesSlotsAndDefaultTexture(t *testing.T) {
	store := newCountingStore()
	s := New(store, WithDefaultTexture(KindCube, "crate.png"))

	a := s.AddCube()
	b := s.AddCube()
	c := s.AddCube()
	d := s.AddCube()
	p := s.AddPlane()

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, a.Position)
	assert.Equal(t, mgl32.Vec3{1.1, 0, 0}, b.Position)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, c.Scale)
	assert.Equal(t, mgl32.Vec3{2, 2, 0}, d.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, p.Position)
	assert.Equal(t, 0, p.KindIndex)
	assert.Equal(t, 3, d.KindIndex)

	assert.Equal(t, "crate.png", a.TexturePath)
	assert.Equal(t, a.Texture, d.Texture)
	assert.Zero(t, p.Texture)
	assert.Equal(t, 4, store.refs["crate.png"])
	assert.Equal(t, 5, s.Len())
}

func TestAddInvalidKind(t *testing.T) {
	s := New(nil)
	assert.Nil(t, s.Add(Kind(42)))
	assert.Nil(t, s.AddAt(Kind(-1), mgl32.Vec3{}))
	assert.Equal(t, 0, s.Len())
}

func TestRemoveReleasesTexture(t *testing.T) {
	store := newCountingStore()
	s := New(store, WithDefaultTexture(KindPlane, "wall.png"))

	a := s.AddPlane()
	b := s.AddPlane()
	require.True(t, s.Remove(a.ID))
	assert.Equal(t, 1, store.refs["wall.png"])
	require.True(t, s.Remove(b.ID))
	assert.NotContains(t, store.handles, "wall.png")

	assert.False(t, s.Remove(a.ID))
	assert.Nil(t, s.Get(a.ID))
}

func TestRemoveByHandleWhenPathUnknown(t *testing.T) {
	store := newCountingStore()
	s := New(store)
	e := s.AddCube()

	e.Texture = store.Load("legacy.png")
	require.True(t, s.Remove(e.ID))
	assert.NotContains(t, store.handles, "legacy.png")
}

func TestSetTexture(t *testing.T) {
	store := newCountingStore("missing.png")
	s := New(store)
	e := s.AddCube()

	require.True(t, s.SetTexture(e.ID, "a.png"))
	h := e.Texture
	assert.NotZero(t, h)

	// Same path does not take another reference.
	require.True(t, s.SetTexture(e.ID, "a.png"))
	assert.Equal(t, 1, store.refs["a.png"])

	require.True(t, s.SetTexture(e.ID, "b.png"))
	assert.NotContains(t, store.refs, "a.png")
	assert.Equal(t, "b.png", e.TexturePath)

	assert.False(t, s.SetTexture(e.ID, "missing.png"))
	assert.Zero(t, e.Texture)
	assert.Empty(t, e.TexturePath)
	assert.NotContains(t, store.refs, "b.png")

	require.True(t, s.SetTexture(e.ID, "c.png"))
	require.True(t, s.SetTexture(e.ID, ""))
	assert.Empty(t, store.refs)

	assert.False(t, s.SetTexture(999, "a.png"))
}

func TestClear(t *testing.T) {
	store := newCountingStore()
	s := New(store, WithDefaultTexture(KindCube, "a.png"), WithDefaultTexture(KindFloor, "floor.png"))
	s.AddCube()
	s.AddCube()
	s.AddFloor()
	s.SelectNext()

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, store.refs)
	assert.Nil(t, s.Selected())

	// Slots restart after a clear.
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, s.AddCube().Position)
}

func TestSelection(t *testing.T) {
	s := New(nil)
	assert.Nil(t, s.SelectNext())

	a := s.AddCube()
	b := s.AddPlane()
	c := s.AddFloor()

	assert.Equal(t, a, s.SelectNext())
	assert.Equal(t, b, s.SelectNext())
	assert.Equal(t, c, s.SelectNext())
	assert.Equal(t, a, s.SelectNext())

	require.True(t, s.Select(c.ID))
	assert.Equal(t, c, s.Selected())
	require.True(t, s.Remove(c.ID))
	assert.Nil(t, s.Selected())

	assert.False(t, s.Select(c.ID))
	assert.True(t, s.Select(-1))
	assert.Nil(t, s.Selected())
}

func TestEntitiesReturnsCopy(t *testing.T) {
	s := New(nil)
	a := s.AddCube()
	b := s.AddPlane()

	list := s.Entities()
	list[0] = nil
	require.True(t, s.Remove(b.ID))

	assert.Len(t, list, 2)
	assert.Same(t, b, list[1])
	assert.Equal(t, []*Entity{a}, s.Entities())
}

func TestSetFlags(t *testing.T) {
	s := New(nil)
	e := s.AddPlane()
	assert.Equal(t, Flags{Collidable: true}, e.Flags())

	want := Flags{Points: 25, Dangerous: true}
	require.True(t, s.SetFlags(e.ID, want))
	assert.Equal(t, want, e.Flags())
	assert.False(t, e.Collidable)

	assert.False(t, s.SetFlags(99, want))
}

func TestModelMatrix(t *testing.T) {
	e := &Entity{
		Position: mgl32.Vec3{1, 2, 3},
		Scale:    mgl32.Vec3{2, 2, 2},
	}
	p := e.ModelMatrix().Mul4x1(mgl32.Vec4{0.5, 0, 0, 1})
	assert.InDelta(t, 2.0, p.X(), 1e-5)
	assert.InDelta(t, 2.0, p.Y(), 1e-5)
	assert.InDelta(t, 3.0, p.Z(), 1e-5)

	e.Rotation = mgl32.Vec3{0, 90, 0}
	p = e.ModelMatrix().Mul4x1(mgl32.Vec4{0.5, 0, 0, 1})
	assert.InDelta(t, 1.0, p.X(), 1e-5)
	assert.InDelta(t, 2.0, p.Z(), 1e-5)
}

func TestVertices(t *testing.T) {
	assert.Equal(t, 36, VertexCount(KindCube))
	assert.Equal(t, 6, VertexCount(KindPlane))
	assert.Equal(t, 6, VertexCount(KindFloor))
	assert.Nil(t, Vertices(Kind(9)))
	for _, k := range Kinds {
		assert.Zero(t, len(Vertices(k))%FloatsPerVertex, k.String())
	}
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestLocalBounds(t *testing.T) {
	lo, hi := LocalBounds(KindCube)
	assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -0.5}, lo)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, hi)

	lo, hi = LocalBounds(KindPlane)
	assert.InDelta(t, -0.005, lo.Z(), 1e-6)
	assert.InDelta(t, 0.005, hi.Z(), 1e-6)
	assert.Equal(t, float32(1), hi.X()-lo.X())

	lo, hi = LocalBounds(KindFloor)
	assert.Equal(t, float32(20), hi.X()-lo.X())
	assert.InDelta(t, 0.01, hi.Y()-lo.Y(), 1e-6)

	lo, hi = LocalBounds(Kind(9))
	assert.Equal(t, lo, hi)
}
