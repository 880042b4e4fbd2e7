package scene

import "github.com/go-gl/mathgl/mgl32"

// FloatsPerVertex is the stride of the interleaved vertex data:
// position (3), normal (3), uv (2).
const FloatsPerVertex = 8

var cubeVertices = []float32{
	// back
	-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	-0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	// front
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	// left
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, -0.5, -1, 0, 0, 1, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, 0.5, -1, 0, 0, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	// right
	0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
	0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
	0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	// bottom
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 1,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,
	// top
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
}

// Upright unit quad facing +Z.
var planeVertices = []float32{
	-0.5, -0.5, 0, 0, 0, 1, 0, 0,
	0.5, -0.5, 0, 0, 0, 1, 1, 0,
	0.5, 0.5, 0, 0, 0, 1, 1, 1,
	0.5, 0.5, 0, 0, 0, 1, 1, 1,
	-0.5, 0.5, 0, 0, 0, 1, 0, 1,
	-0.5, -0.5, 0, 0, 0, 1, 0, 0,
}

// Horizontal 20x20 quad facing +Y; uvs repeat once per unit.
var floorVertices = []float32{
	-10, 0, 10, 0, 1, 0, 0, 0,
	10, 0, 10, 0, 1, 0, 20, 0,
	10, 0, -10, 0, 1, 0, 20, 20,
	10, 0, -10, 0, 1, 0, 20, 20,
	-10, 0, -10, 0, 1, 0, 0, 20,
	-10, 0, 10, 0, 1, 0, 0, 0,
}

// Vertices returns the interleaved triangle list for kind, or nil for an
// unknown kind. The slice is shared and must not be modified.
func Vertices(kind Kind) []float32 {
	switch kind {
	case KindCube:
		return cubeVertices
	case KindPlane:
		return planeVertices
	case KindFloor:
		return floorVertices
	default:
		return nil
	}
}

// VertexCount returns the number of vertices drawn for kind.
func VertexCount(kind Kind) int {
	return len(Vertices(kind)) / FloatsPerVertex
}

// flatThickness pads zero-thickness meshes so their bounds have volume.
const flatThickness = 0.01

// LocalBounds returns the axis-aligned box around kind's mesh in model
// space. Flat meshes are padded to flatThickness along their normal.
func LocalBounds(kind Kind) (lo, hi mgl32.Vec3) {
	v := Vertices(kind)
	if len(v) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	lo = mgl32.Vec3{v[0], v[1], v[2]}
	hi = lo
	for i := 0; i+2 < len(v); i += FloatsPerVertex {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], v[i+a])
			hi[a] = max(hi[a], v[i+a])
		}
	}
	for a := 0; a < 3; a++ {
		if hi[a]-lo[a] < flatThickness {
			c := (hi[a] + lo[a]) / 2
			lo[a] = c - flatThickness/2
			hi[a] = c + flatThickness/2
		}
	}
	return lo, hi
}
