// Package camera provides the 2D camera that frames the cross-section plane.
package camera

import (
	"github.com/Faultbox/crosscut/pkg/math"
)

// Camera2D looks straight down the plane normal. Width is the horizontal
// field of view in world units; the vertical extent follows the aspect ratio.
type Camera2D struct {
	Center math.Vec2
	Width  float32
}

// New creates a camera centered on the origin.
func New(width float32) *Camera2D {
	return &Camera2D{Width: width}
}

// View returns the visible world rectangle for a surface of w x h pixels.
func (c *Camera2D) View(w, h int) math.Rect {
	half := c.Width / 2
	aspect := float32(1)
	if w > 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	return math.RectAround(c.Center, math.Vec2{X: half, Y: half / aspect})
}

// Projection returns the orthographic matrix mapping View to clip space.
func (c *Camera2D) Projection(w, h int) math.Mat4 {
	v := c.View(w, h)
	return math.Ortho(v.Min.X, v.Max.X, v.Min.Y, v.Max.Y, -1, 1)
}

// ToScreen maps a world point to surface coordinates with y pointing down.
func (c *Camera2D) ToScreen(p math.Vec2, w, h int) math.Vec2 {
	v := c.View(w, h)
	size := v.Size()
	return math.Vec2{
		X: (p.X - v.Min.X) / size.X * float32(w),
		Y: (v.Max.Y - p.Y) / size.Y * float32(h),
	}
}
