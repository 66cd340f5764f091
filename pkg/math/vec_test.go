package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("zero Vec2.Normalize() = %v, want zero", z)
	}
}

func TestVec2Arg(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{Vec2{1, 0}, 0},
		{Vec2{0, 1}, math.Pi / 2},
		{Vec2{-1, 0}, math.Pi},
		{Vec2{0, -1}, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.v.Arg(); abs(got-float32(tt.want)) > 1e-6 {
			t.Errorf("%v.Arg() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec2Rotate(t *testing.T) {
	got := Vec2{1, 0}.Rotate(float32(math.Pi / 2))
	if got.Distance(Vec2{0, 1}) > 1e-6 {
		t.Errorf("Rotate 90 = %v, want (0, 1)", got)
	}
	// Rotating twice by a equals rotating once by 2a.
	v := Vec2{0.3, -0.7}
	twice := v.Rotate(0.4).Rotate(0.4)
	once := v.Rotate(0.8)
	if twice.Distance(once) > 1e-6 {
		t.Errorf("Rotate not additive: %v vs %v", twice, once)
	}
}

func TestVec2Cross(t *testing.T) {
	if c := (Vec2{1, 0}).Cross(Vec2{0, 1}); c != 1 {
		t.Errorf("Cross ccw = %v, want 1", c)
	}
	if p := (Vec2{1, 0}).Perp(); p != (Vec2{0, 1}) {
		t.Errorf("Perp = %v, want (0, 1)", p)
	}
}

func TestVec3Cross(t *testing.T) {
	got := UnitX.Cross(UnitY)
	if got != UnitZ {
		t.Errorf("Vec3.Cross() = %v, want %v", got, UnitZ)
	}
}

func TestVec3HeadingElevation(t *testing.T) {
	v := Vec3{1, 1, 0}
	if h := v.Heading(); h != 0 {
		t.Errorf("Heading = %v, want 0", h)
	}
	if e := v.Elevation(); abs(e-float32(math.Pi/4)) > 1e-6 {
		t.Errorf("Elevation = %v, want pi/4", e)
	}
	if h := UnitZ.Heading(); abs(h-float32(math.Pi/2)) > 1e-6 {
		t.Errorf("UnitZ heading = %v, want pi/2", h)
	}
}

func TestBoundingRect(t *testing.T) {
	if _, ok := BoundingRect(nil); ok {
		t.Error("BoundingRect(nil) should not be ok")
	}
	r, ok := BoundingRect([]Vec2{{1, 2}, {-3, 5}, {0, -1}})
	if !ok {
		t.Fatal("BoundingRect should be ok")
	}
	if want := (Rect{Min: Vec2{-3, -1}, Max: Vec2{1, 5}}); r != want {
		t.Errorf("BoundingRect = %v, want %v", r, want)
	}
	if s := r.Size(); s != (Vec2{4, 6}) {
		t.Errorf("Size = %v, want (4, 6)", s)
	}
	if !r.Contains(Vec2{0, 0}) || r.Contains(Vec2{2, 0}) {
		t.Error("Contains mismatch")
	}
}
