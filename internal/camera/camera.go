package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a camera movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a free-flying editor camera.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float32 // degrees
	Pitch       float32 // degrees
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	Speed       float32 // units per second
	Sensitivity float32 // degrees per pixel
}

// New creates a camera at pos looking down -Z.
func New(pos mgl32.Vec3) *Camera {
	return &Camera{
		Position:    pos,
		Yaw:         -90,
		FOV:         45,
		NearPlane:   0.1,
		FarPlane:    100,
		Speed:       2.5,
		Sensitivity: 0.1,
	}
}

// Front returns the normalized view direction.
func (c *Camera) Front() mgl32.Vec3 {
	y := float64(mgl32.DegToRad(c.Yaw))
	p := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}.Normalize()
}

// Right returns the normalized right vector.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

// Move translates the camera along dir for dt seconds. A negative dt moves
// the opposite way.
func (c *Camera) Move(dir Direction, dt float32) {
	step := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front().Mul(step))
	case Backward:
		c.Position = c.Position.Sub(c.Front().Mul(step))
	case Left:
		c.Position = c.Position.Sub(c.Right().Mul(step))
	case Right:
		c.Position = c.Position.Add(c.Right().Mul(step))
	case Up:
		c.Position = c.Position.Add(worldUp.Mul(step))
	case Down:
		c.Position = c.Position.Sub(worldUp.Mul(step))
	}
}

// Look rotates the camera by a cursor delta in pixels. Positive dy looks up.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	// Constrain pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Zoom narrows or widens the field of view, clamped to [1, 90].
func (c *Camera) Zoom(delta float32) {
	c.FOV -= delta
	if c.FOV < 1 {
		c.FOV = 1
	}
	if c.FOV > 90 {
		c.FOV = 90
	}
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// ProjectionMatrix returns a perspective projection for the given pixel size.
// A degenerate size falls back to a square aspect.
func (c *Camera) ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.NearPlane, c.FarPlane)
}
