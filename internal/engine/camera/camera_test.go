package camera

import (
	"testing"

	"github.com/Faultbox/crosscut/pkg/math"
)

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestView(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		halfW, hfH float32
	}{
		{"landscape", 1600, 800, 8, 4},
		{"square", 500, 500, 8, 8},
		{"portrait", 400, 800, 8, 16},
		{"degenerate", 0, 0, 8, 8},
	}

	cam := New(16)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := cam.View(tt.w, tt.h)
			if !near(v.Max.X, tt.halfW) || !near(v.Min.X, -tt.halfW) {
				t.Errorf("x extent = [%v, %v], want ±%v", v.Min.X, v.Max.X, tt.halfW)
			}
			if !near(v.Max.Y, tt.hfH) || !near(v.Min.Y, -tt.hfH) {
				t.Errorf("y extent = [%v, %v], want ±%v", v.Min.Y, v.Max.Y, tt.hfH)
			}
		})
	}
}

func TestViewFollowsCenter(t *testing.T) {
	cam := New(4)
	cam.Center = math.Vec2{X: 10, Y: -2}
	v := cam.View(100, 100)
	if c := v.Center(); !near(c.X, 10) || !near(c.Y, -2) {
		t.Errorf("center = %v, want (10, -2)", c)
	}
}

func TestProjectionMapsViewToClip(t *testing.T) {
	cam := New(16)
	proj := cam.Projection(1600, 800)

	corners := []struct {
		world math.Vec3
		clipX float32
		clipY float32
	}{
		{math.Vec3{X: -8, Y: -4}, -1, -1},
		{math.Vec3{X: 8, Y: 4}, 1, 1},
		{math.Vec3{}, 0, 0},
	}
	for _, c := range corners {
		got := proj.TransformVec3(c.world)
		if !near(got.X, c.clipX) || !near(got.Y, c.clipY) {
			t.Errorf("Projection(%v) = (%v, %v), want (%v, %v)", c.world, got.X, got.Y, c.clipX, c.clipY)
		}
	}
}

func TestToScreen(t *testing.T) {
	cam := New(16)

	tests := []struct {
		world math.Vec2
		want  math.Vec2
	}{
		{math.Vec2{X: -8, Y: 4}, math.Vec2{X: 0, Y: 0}},
		{math.Vec2{X: 8, Y: -4}, math.Vec2{X: 160, Y: 80}},
		{math.Vec2{X: 0, Y: 0}, math.Vec2{X: 80, Y: 40}},
	}
	for _, tt := range tests {
		got := cam.ToScreen(tt.world, 160, 80)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("ToScreen(%v) = %v, want %v", tt.world, got, tt.want)
		}
	}
}
