package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies which primitive an entity draws.
type Kind int

const (
	KindCube Kind = iota
	KindPlane
	KindFloor
	kindCount
)

// Kinds lists every primitive kind in declaration order.
var Kinds = []Kind{KindCube, KindPlane, KindFloor}

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindPlane:
		return "plane"
	case KindFloor:
		return "floor"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Entity is a placed primitive in the scene.
type Entity struct {
	ID   int
	Name string
	Kind Kind

	// KindIndex is the entity's ordinal among entities of the same kind.
	KindIndex int

	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3 // degrees, applied X then Y then Z

	Active  bool
	Visible bool

	// Collidable entities are pickable. Dangerous and HealthPack tint the
	// entity when drawn.
	Points     int
	Collidable bool
	Dangerous  bool
	HealthPack bool

	// TexturePath is the key the texture was loaded under; Texture is a
	// borrowed handle owned by the texture cache.
	TexturePath string
	Texture     uint32
}

// Flags are the gameplay attributes an entity carries besides its geometry.
type Flags struct {
	Points     int
	Collidable bool
	Dangerous  bool
	HealthPack bool
}

// Flags returns the entity's current flags.
func (e *Entity) Flags() Flags {
	return Flags{Points: e.Points, Collidable: e.Collidable, Dangerous: e.Dangerous, HealthPack: e.HealthPack}
}

// ModelMatrix returns translate * rotate * scale.
func (e *Entity) ModelMatrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(mgl32.DegToRad(e.Rotation.X())).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(e.Rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(e.Rotation.Z())))
	return mgl32.Translate3D(e.Position.X(), e.Position.Y(), e.Position.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(e.Scale.X(), e.Scale.Y(), e.Scale.Z()))
}
