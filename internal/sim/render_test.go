package sim

import (
	"testing"

	"github.com/Faultbox/crosscut/pkg/color"
	"github.com/Faultbox/crosscut/pkg/math"
)

type chainCall struct {
	points   []math.Vec2
	width    float32
	color    color.Color
	segments int
}

type recorder struct {
	calls []chainCall
}

func (r *recorder) DrawChain(points []math.Vec2, width float32, c color.Color, segments int) {
	r.calls = append(r.calls, chainCall{
		points:   append([]math.Vec2(nil), points...),
		width:    width,
		color:    c,
		segments: segments,
	})
}

func TestRenderCube(t *testing.T) {
	s := newTestSim(t, Options{})
	obj := NewObject(math.Vec3{}, 0)
	obj.Color = testPalette[1]
	s.objects = []Object{obj}

	var rec recorder
	s.Render(&rec)

	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 chain, got %d", len(rec.calls))
	}
	call := rec.calls[0]
	if call.color != testPalette[1] || call.segments != chainSegments || call.width != maxChainWidth {
		t.Errorf("unexpected style: %+v", call)
	}

	sections := s.Sections()
	outline := displayChain(sections[0].Outline)
	pts := call.points
	if len(pts) != len(outline)+2 {
		t.Fatalf("chain has %d points, want %d", len(pts), len(outline)+2)
	}
	mid := outline[0].Midpoint(outline[1])
	if pts[0] != mid || pts[len(pts)-1] != mid {
		t.Errorf("chain should start and end at %v, got %v and %v", mid, pts[0], pts[len(pts)-1])
	}
	if pts[len(pts)-2] != outline[0] {
		t.Errorf("second to last point = %v, want first outline point %v", pts[len(pts)-2], outline[0])
	}

	// The unrotated unit cube cut at z = 0 is the square |x|, |y| <= 1.
	for _, p := range pts {
		if m := max(abs32(p.X), abs32(p.Y)); abs32(m-1) > 1e-5 {
			t.Errorf("point %v is not on the unit square", p)
		}
	}
}

func TestRenderMirrorsX(t *testing.T) {
	s := newTestSim(t, Options{})
	obj := NewObject(math.Vec3{X: 3, Y: -2}, 0)
	obj.Scale = 0.5
	s.objects = []Object{obj}

	var rec recorder
	s.Render(&rec)

	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 chain, got %d", len(rec.calls))
	}
	box, _ := math.BoundingRect(rec.calls[0].points)
	if c := box.Center(); c.Distance(math.Vec2{X: 3, Y: -2}) > 1e-5 {
		t.Errorf("outline centered at %v, want the object's world position (3, -2)", c)
	}
}

func TestRenderSkipsObjectsOffPlane(t *testing.T) {
	s := newTestSim(t, Options{})
	s.objects = []Object{
		NewObject(math.Vec3{Z: -5}, 0),
		NewObject(math.Vec3{X: 4, Z: 0.2}, 0),
	}

	if secs := s.Sections(); len(secs) != 1 || secs[0].Object != 1 {
		t.Fatalf("expected only object 1 to be cut, got %+v", secs)
	}

	var rec recorder
	s.Render(&rec)
	if len(rec.calls) != 1 {
		t.Errorf("expected 1 chain, got %d", len(rec.calls))
	}
}

func TestRenderKeepsObjectOrder(t *testing.T) {
	s := newTestSim(t, Options{})
	for i, c := range testPalette {
		obj := NewObject(math.Vec3{X: float32(i) * 4}, 0)
		obj.Color = c
		s.objects = append(s.objects, obj)
	}

	var rec recorder
	s.Render(&rec)

	if len(rec.calls) != len(testPalette) {
		t.Fatalf("expected %d chains, got %d", len(testPalette), len(rec.calls))
	}
	for i, call := range rec.calls {
		if call.color != testPalette[i] {
			t.Errorf("chain %d color = %v, want %v", i, call.color, testPalette[i])
		}
	}
}

func TestRenderThinsSmallSections(t *testing.T) {
	s := newTestSim(t, Options{})
	obj := NewObject(math.Vec3{}, 0)
	obj.Scale = 0.03
	s.objects = []Object{obj}

	var rec recorder
	s.Render(&rec)

	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 chain, got %d", len(rec.calls))
	}
	if w := rec.calls[0].width; abs32(w-0.03) > 1e-5 {
		t.Errorf("width = %v, want 0.03", w)
	}
}

func TestCloseChain(t *testing.T) {
	chain := []math.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}}
	got := closeChain(chain)
	want := []math.Vec2{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 0}, {X: 1, Y: 0}}

	if len(got) != len(want) {
		t.Fatalf("closeChain length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}
