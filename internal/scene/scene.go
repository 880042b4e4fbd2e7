package scene

import (
	"log/slog"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// TextureStore is the subset of the texture cache the scene needs. Handles
// returned by Load are borrowed and released with Unload or UnloadHandle.
type TextureStore interface {
	Load(path string) uint32
	Unload(path string) bool
	UnloadHandle(handle uint32) bool
}

// Scene is the editor's flat list of entities. It is owned by the goroutine
// that runs the frame loop; entity pointers it hands out stay valid until the
// entity is removed and must not be mutated concurrently.
type Scene struct {
	store    TextureStore
	logger   *slog.Logger
	defaults map[Kind]string

	entities []*Entity
	nextID   int
	perKind  [kindCount]int
	selected int
}

// Option configures a Scene.
type Option func(*Scene)

// WithLogger sets the scene logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultTexture assigns path to every new entity of kind.
func WithDefaultTexture(kind Kind, path string) Option {
	return func(s *Scene) {
		s.defaults[kind] = path
	}
}

// New creates an empty scene. store may be nil, in which case entities never
// get textures.
func New(store TextureStore, opts ...Option) *Scene {
	s := &Scene{
		store:    store,
		logger:   slog.New(slog.DiscardHandler),
		defaults: make(map[Kind]string),
		selected: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// slot returns the default placement for the n-th entity of kind.
func slot(kind Kind, n int) (pos, scale mgl32.Vec3) {
	if kind == KindFloor {
		return mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 1, 1}
	}
	switch n {
	case 0:
		return mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}
	case 1:
		return mgl32.Vec3{1.1, 0, 0}, mgl32.Vec3{1, 1, 1}
	case 2:
		return mgl32.Vec3{-1, -0.5, 0}, mgl32.Vec3{0.5, 0.5, 0.5}
	default:
		return mgl32.Vec3{2 + 1.5*float32(n-3), 2, 0}, mgl32.Vec3{1, 1, 1}
	}
}

// Add creates an entity of kind at its default slot.
func (s *Scene) Add(kind Kind) *Entity {
	if !kind.Valid() {
		return nil
	}
	pos, scale := slot(kind, s.perKind[kind])
	return s.add(kind, pos, scale)
}

// AddAt creates an entity of kind at pos with unit scale.
func (s *Scene) AddAt(kind Kind, pos mgl32.Vec3) *Entity {
	if !kind.Valid() {
		return nil
	}
	return s.add(kind, pos, mgl32.Vec3{1, 1, 1})
}

// AddCube adds a cube at its default slot.
func (s *Scene) AddCube() *Entity { return s.Add(KindCube) }

// AddPlane adds a plane at its default slot.
func (s *Scene) AddPlane() *Entity { return s.Add(KindPlane) }

// AddFloor adds a floor below the origin.
func (s *Scene) AddFloor() *Entity { return s.Add(KindFloor) }

func (s *Scene) add(kind Kind, pos, scale mgl32.Vec3) *Entity {
	e := &Entity{
		ID:         s.nextID,
		Name:       "Default " + kind.String(),
		Kind:       kind,
		KindIndex:  s.perKind[kind],
		Position:   pos,
		Scale:      scale,
		Active:     true,
		Visible:    true,
		Collidable: true,
	}
	s.nextID++
	s.perKind[kind]++

	if path := s.defaults[kind]; path != "" {
		s.setTexture(e, path)
	}

	s.entities = append(s.entities, e)
	s.logger.Debug("scene: added entity", "id", e.ID, "kind", kind, "texture", e.TexturePath)
	return e
}

// Get returns the entity with id, or nil.
func (s *Scene) Get(id int) *Entity {
	_, e := s.find(id)
	return e
}

func (s *Scene) find(id int) (int, *Entity) {
	i := sort.Search(len(s.entities), func(i int) bool { return s.entities[i].ID >= id })
	if i < len(s.entities) && s.entities[i].ID == id {
		return i, s.entities[i]
	}
	return -1, nil
}

// Entities returns a copy of the entity list in creation order. The
// entities themselves are shared with the scene.
func (s *Scene) Entities() []*Entity {
	out := make([]*Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Remove deletes the entity and releases its texture reference.
func (s *Scene) Remove(id int) bool {

	i, e := s.find(id)
	if e == nil {
		return false
	}
	s.releaseTexture(e)
	s.entities = append(s.entities[:i], s.entities[i+1:]...)
	if s.selected == id {
		s.selected = -1
	}
	s.logger.Debug("scene: removed entity", "id", id)
	return true
}

// Clear removes every entity and releases all texture references.
func (s *Scene) Clear() {
	for _, e := range s.entities {
		s.releaseTexture(e)
	}
	s.entities = nil
	s.selected = -1
	s.perKind = [kindCount]int{}
}

// SetFlags replaces the flags of entity id. It returns false for an unknown id.
func (s *Scene) SetFlags(id int, f Flags) bool {
	_, e := s.find(id)
	if e == nil {
		return false
	}
	e.Points = f.Points
	e.Collidable = f.Collidable
	e.Dangerous = f.Dangerous
	e.HealthPack = f.HealthPack
	s.logger.Debug("scene: flags", "id", id, "collidable", f.Collidable, "dangerous", f.Dangerous, "health", f.HealthPack, "points", f.Points)
	return true
}

// SetTexture points the entity at path. Re-setting the current path is a
// no-op. An empty path clears the texture. It returns false if the entity
// does not exist or the texture fails to load; in the latter case the entity
// is left without a texture.
func (s *Scene) SetTexture(id int, path string) bool {

	_, e := s.find(id)
	if e == nil {
		return false
	}
	if path != "" && path == e.TexturePath {
		return true
	}
	s.releaseTexture(e)
	if path == "" {
		return true
	}
	return s.setTexture(e, path)
}

func (s *Scene) setTexture(e *Entity, path string) bool {
	if s.store == nil {
		return false
	}
	h := s.store.Load(path)
	if h == 0 {
		s.logger.Warn("scene: texture unavailable", "id", e.ID, "path", path)
		return false
	}
	e.Texture = h
	e.TexturePath = path
	return true
}

func (s *Scene) releaseTexture(e *Entity) {
	if s.store != nil {
		switch {
		case e.TexturePath != "":
			s.store.Unload(e.TexturePath)
		case e.Texture != 0:
			s.store.UnloadHandle(e.Texture)
		}
	}
	e.TexturePath = ""
	e.Texture = 0
}

// Select marks id as the selected entity; -1 clears the selection.
func (s *Scene) Select(id int) bool {
	if id == -1 {
		s.selected = -1
		return true
	}
	if _, e := s.find(id); e == nil {
		return false
	}
	s.selected = id
	return true
}

// Selected returns the selected entity, or nil.
func (s *Scene) Selected() *Entity {
	if s.selected < 0 {
		return nil
	}
	_, e := s.find(s.selected)
	return e
}

// SelectNext moves the selection to the next entity, wrapping around.
func (s *Scene) SelectNext() *Entity {
	if len(s.entities) == 0 {
		s.selected = -1
		return nil
	}
	next := 0
	if i, _ := s.find(s.selected); i >= 0 {
		next = (i + 1) % len(s.entities)
	}
	s.selected = s.entities[next].ID
	return s.entities[next]
}
