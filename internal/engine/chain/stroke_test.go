package chain

import (
	"testing"

	"github.com/Faultbox/crosscut/pkg/math"
)

const eps = 1e-4

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b math.Vec2) float32 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = max(0, min(1, t))
	return p.Distance(a.Add(ab.Scale(t)))
}

func distToChain(p math.Vec2, points []math.Vec2) float32 {
	best := float32(1e30)
	for i := 0; i+1 < len(points); i++ {
		best = min(best, distToSegment(p, points[i], points[i+1]))
	}
	return best
}

func TestTessellateVertexCounts(t *testing.T) {
	tests := []struct {
		name     string
		points   []math.Vec2
		segments int
		want     int
	}{
		{"empty", nil, 5, 0},
		{"single point", []math.Vec2{{X: 1, Y: 1}}, 5, 0},
		{"one segment", []math.Vec2{{}, {X: 1}}, 5, 6},
		{"collinear", []math.Vec2{{}, {X: 1}, {X: 2}}, 5, 12},
		{"right angle", []math.Vec2{{}, {X: 1}, {X: 1, Y: 1}}, 5, 27},
		{"right angle one wedge", []math.Vec2{{}, {X: 1}, {X: 1, Y: 1}}, 1, 15},
		{"zero segments clamp", []math.Vec2{{}, {X: 1}, {X: 1, Y: 1}}, 0, 15},
		{"repeated point", []math.Vec2{{}, {}, {X: 1}}, 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tessellate(nil, tt.points, 0.2, tt.segments)
			if len(got) != tt.want {
				t.Errorf("got %d vertices, want %d", len(got), tt.want)
			}
			if len(got)%3 != 0 {
				t.Errorf("vertex count %d is not a whole number of triangles", len(got))
			}
		})
	}
}

func TestTessellateZeroWidth(t *testing.T) {
	if got := Tessellate(nil, []math.Vec2{{}, {X: 1}}, 0, 5); len(got) != 0 {
		t.Errorf("expected nothing for zero width, got %d vertices", len(got))
	}
}

func TestTessellateStaysWithinHalfWidth(t *testing.T) {
	chains := [][]math.Vec2{
		{{}, {X: 1}, {X: 1, Y: 1}},
		{{}, {X: 1}, {X: 1, Y: -1}},
		{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 0, Y: -1}},
		{{}, {X: 2}, {}},
	}
	const width = 0.1

	for _, points := range chains {
		verts := Tessellate(nil, points, width, 5)
		for _, v := range verts {
			if d := distToChain(v, points); d > width/2+eps {
				t.Errorf("vertex %v is %v from the chain, want <= %v", v, d, width/2)
			}
		}
	}
}

func TestTessellateJoinFillsOuterCorner(t *testing.T) {
	// Left turn at (1, 0): the outer corner is below-right.
	points := []math.Vec2{{}, {X: 1}, {X: 1, Y: 1}}
	verts := Tessellate(nil, points, 0.2, 5)

	joint := verts[12:]
	first := joint[1]
	last := joint[len(joint)-1]

	if !near(first, math.Vec2{X: 1, Y: -0.1}) {
		t.Errorf("join starts at %v, want (1, -0.1)", first)
	}
	if !near(last, math.Vec2{X: 1.1, Y: 0}) {
		t.Errorf("join ends at %v, want (1.1, 0)", last)
	}
	for i := 0; i < len(joint); i += 3 {
		if joint[i] != points[1] {
			t.Errorf("wedge %d is not centered on the joint: %v", i/3, joint[i])
		}
	}
}

func TestTessellateAppends(t *testing.T) {
	dst := []math.Vec2{{X: 9, Y: 9}}
	dst = Tessellate(dst, []math.Vec2{{}, {X: 1}}, 0.2, 5)
	if len(dst) != 7 || dst[0] != (math.Vec2{X: 9, Y: 9}) {
		t.Errorf("Tessellate did not append to dst: %v", dst)
	}
}

func near(a, b math.Vec2) bool {
	return a.Distance(b) < eps
}
