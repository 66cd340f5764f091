// Package chain turns open point chains into filled triangles.
//
// Each segment becomes a quad of the requested width. Interior joints get a
// round join on the outer side of the turn, built as a fan of wedges.
package chain

import (
	gomath "math"

	"github.com/Faultbox/crosscut/pkg/math"
)

// Turns flatter than this are drawn without a join.
const collinearityThreshold = 1e-6

// Tessellate appends the triangles covering the chain to dst, three vertices
// per triangle, and returns the extended slice. segments is the number of
// wedges per round join. Chains with fewer than two points or a non-positive
// width produce nothing.
func Tessellate(dst []math.Vec2, points []math.Vec2, width float32, segments int) []math.Vec2 {
	if len(points) < 2 || width <= 0 {
		return dst
	}
	segments = max(segments, 1)
	half := width / 2

	for i := 0; i+1 < len(points); i++ {
		p0, p1 := points[i], points[i+1]
		dir := p1.Sub(p0).Normalize()
		if dir == (math.Vec2{}) {
			continue
		}
		n := dir.Perp().Scale(half)
		a, b := p0.Add(n), p0.Sub(n)
		c, d := p1.Add(n), p1.Sub(n)
		dst = append(dst, a, b, c, c, b, d)
	}

	for i := 1; i+1 < len(points); i++ {
		dst = addJoin(dst, points[i-1], points[i], points[i+1], half, segments)
	}
	return dst
}

func addJoin(dst []math.Vec2, prev, p, next math.Vec2, half float32, segments int) []math.Vec2 {
	t1 := p.Sub(prev).Normalize()
	t2 := next.Sub(p).Normalize()
	if t1 == (math.Vec2{}) || t2 == (math.Vec2{}) {
		return dst
	}

	cos := t1.Dot(t2)
	sin := t1.Cross(t2)
	if sin > -collinearityThreshold && sin < collinearityThreshold && cos > 0 {
		return dst
	}

	// The gap opens on the side away from the turn. Sweep from the first
	// segment's edge normal to the second's.
	angle := float32(gomath.Acos(float64(max(-1, min(1, cos)))))
	start := t1.Perp()
	if sin >= 0 {
		start = start.Scale(-1)
	} else {
		angle = -angle
	}

	step := angle / float32(segments)
	from := p.Add(start.Scale(half))
	for k := 1; k <= segments; k++ {
		to := p.Add(start.Rotate(step * float32(k)).Scale(half))
		dst = append(dst, p, from, to)
		from = to
	}
	return dst
}
