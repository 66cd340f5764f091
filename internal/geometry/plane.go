package geometry

import (
	"sort"

	"github.com/Faultbox/crosscut/pkg/math"
)

const (
	// parallelEpsilon is the smallest endpoint distance difference for which a
	// segment is considered to cross the plane.
	parallelEpsilon = 1e-5
	// mergeEpsilon is the squared distance under which two intersection
	// points are the same polygon vertex.
	mergeEpsilon = 1e-5
)

// Plane is the set of points p with dot(normalize(Normal), p) == Offset.
// Normal need not be unit length.
type Plane struct {
	Normal math.Vec3
	Offset float32
}

// CrossSectionVertex is a point of a cross-section polygon.
type CrossSectionVertex struct {
	World     math.Vec3 // on the plane, world space
	Projected math.Vec2 // in the plane's local 2D frame
}

// Distance returns the signed distance of point from the plane, positive on
// the side the normal points to.
func (p Plane) Distance(point math.Vec3) float32 {
	return p.Normal.Normalize().Dot(point) - p.Offset
}

// Project returns the closest point on the plane.
func (p Plane) Project(point math.Vec3) math.Vec3 {
	return point.Sub(p.Normal.Normalize().Scale(p.Distance(point)))
}

// Matrix maps the plane onto x = 0: it moves the plane to the origin, then
// rotates about Y by the normal's heading and about Z by minus its elevation,
// which leaves the normal on +X.
func (p Plane) Matrix() math.Mat4 {
	n := p.Normal.Normalize()
	return math.RotateZ(-p.Normal.Elevation()).
		Mul(math.RotateY(p.Normal.Heading())).
		Mul(math.Translate(n.Scale(-p.Offset)))
}

// Project2D projects point onto the plane and returns its (z, y) coordinates
// in the plane's local frame.
func (p Plane) Project2D(point math.Vec3) math.Vec2 {
	q := p.Matrix().TransformVec3(p.Project(point))
	return math.Vec2{X: q.Z, Y: q.Y}
}

// IntersectSegment returns the point where segment p1-p2 crosses the plane.
// Segments whose endpoints are (nearly) equidistant from the plane never
// intersect, coplanar ones included.
func (p Plane) IntersectSegment(p1, p2 math.Vec3) (math.Vec3, bool) {
	d1 := p.Distance(p1)
	d2 := p.Distance(p2)
	if abs(d1-d2) < parallelEpsilon {
		return math.Vec3{}, false
	}

	t := d1 / (d1 - d2)
	if t < 0 || t > 1 {
		return math.Vec3{}, false
	}
	return p1.Lerp(p2, t), true
}

// IntersectTriangle returns the segment along which the triangle crosses
// the plane. ok is true only when exactly two edges cross.
func (p Plane) IntersectTriangle(tri Triangle) (a, b math.Vec3, ok bool) {
	v := tri.Vertices
	edges := [3][2]math.Vec3{{v[0], v[1]}, {v[0], v[2]}, {v[1], v[2]}}

	var hits [3]math.Vec3
	n := 0
	for _, e := range edges {
		if hit, crosses := p.IntersectSegment(e[0], e[1]); crosses {
			hits[n] = hit
			n++
		}
	}
	if n != 2 {
		return math.Vec3{}, math.Vec3{}, false
	}
	return hits[0], hits[1], true
}

// CrossSection slices a world-space triangle soup and returns the outline
// of the section, sorted by descending angle around its 2D centroid.
// The ordering is only a simple polygon for convex solids.
func (p Plane) CrossSection(tris []Triangle) []CrossSectionVertex {
	var points []CrossSectionVertex
	add := func(w math.Vec3) {
		for _, q := range points {
			if q.World.Sub(w).LengthSqr() < mergeEpsilon {
				return
			}
		}
		points = append(points, CrossSectionVertex{World: w, Projected: p.Project2D(w)})
	}

	for _, tri := range tris {
		if a, b, ok := p.IntersectTriangle(tri); ok {
			add(a)
			add(b)
		}
	}
	if len(points) == 0 {
		return nil
	}

	var center math.Vec2
	for _, q := range points {
		center = center.Add(q.Projected)
	}
	center = center.Scale(1 / float32(len(points)))

	angles := make([]float32, len(points))
	for i, q := range points {
		angles[i] = q.Projected.Sub(center).Arg()
	}
	sort.Stable(byAngleDesc{points, angles})
	return points
}

type byAngleDesc struct {
	points []CrossSectionVertex
	angles []float32
}

func (s byAngleDesc) Len() int           { return len(s.points) }
func (s byAngleDesc) Less(i, j int) bool { return s.angles[i] > s.angles[j] }
func (s byAngleDesc) Swap(i, j int) {
	s.points[i], s.points[j] = s.points[j], s.points[i]
	s.angles[i], s.angles[j] = s.angles[j], s.angles[i]
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
