package sim

import (
	"github.com/Faultbox/crosscut/internal/geometry"
	"github.com/Faultbox/crosscut/pkg/color"
	"github.com/Faultbox/crosscut/pkg/math"
)

// MeshID indexes a prefab mesh owned by the Simulation.
type MeshID int

// Object is a live solid.
type Object struct {
	Position math.Vec3
	// Orientation's direction is the facing; its length is irrelevant.
	Orientation math.Vec3
	// Roll is in radians.
	Roll   float32
	Scale  float32
	Color  color.Color
	Prefab MeshID
}

// NewObject returns an unrotated, unit-scaled white object at position.
func NewObject(position math.Vec3, prefab MeshID) Object {
	return Object{
		Position:    position,
		Orientation: math.UnitX,
		Scale:       1,
		Color:       color.White,
		Prefab:      prefab,
	}
}

// Matrix returns the object's model-to-world transform. Applied to a point,
// the order is: scale, yaw by the orientation's heading about Y, pitch by its
// elevation about Z, roll about X, translate to Position.
func (o *Object) Matrix() math.Mat4 {
	return math.Translate(o.Position).
		Mul(math.RotateX(o.Roll)).
		Mul(math.RotateZ(-o.Orientation.Elevation())).
		Mul(math.RotateY(o.Orientation.Heading())).
		Mul(math.Scale(o.Scale))
}

// RotateY turns the orientation about the vertical axis. The Y component is
// left unchanged.
func (o *Object) RotateY(angle float32) {
	flat := o.Orientation.XZ().Rotate(angle)
	o.Orientation = math.Vec3{X: flat.X, Y: o.Orientation.Y, Z: flat.Y}
}

// Triangles appends the object's world-space triangles to dst.
func (o *Object) Triangles(dst []geometry.Triangle, mesh geometry.Mesh) []geometry.Triangle {
	return mesh.Triangles(dst, o.Matrix())
}
