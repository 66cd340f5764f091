// Package geometry builds triangle meshes and slices them with planes.
package geometry

import (
	"errors"
	"fmt"

	"github.com/Faultbox/crosscut/pkg/math"
)

// ErrMalformedMesh is returned for meshes whose vertex count is not a multiple of 3.
var ErrMalformedMesh = errors.New("mesh vertex count is not a multiple of 3")

// Vertex is a mesh vertex carrying its face normal.
type Vertex struct {
	Pos    math.Vec3
	Normal math.Vec3
}

// Triangle is a value-type triangle with a derived unit normal.
type Triangle struct {
	Vertices [3]math.Vec3
	Normal   math.Vec3
}

// NewTriangle builds a triangle, deriving its normal from the winding a->b->c.
// Degenerate triangles get a zero normal.
func NewTriangle(a, b, c math.Vec3) Triangle {
	return Triangle{
		Vertices: [3]math.Vec3{a, b, c},
		Normal:   b.Sub(a).Cross(c.Sub(a)).Normalize(),
	}
}

// MeshVertices returns the three vertices sharing the face normal.
func (t Triangle) MeshVertices() [3]Vertex {
	var out [3]Vertex
	for i, p := range t.Vertices {
		out[i] = Vertex{Pos: p, Normal: t.Normal}
	}
	return out
}

// Mesh is a flat triangle list: every consecutive triple of vertices is one
// triangle. There is no index buffer.
type Mesh []Vertex

// Validate checks the vertex count.
func (m Mesh) Validate() error {
	if len(m)%3 != 0 {
		return fmt.Errorf("%w: %d vertices", ErrMalformedMesh, len(m))
	}
	return nil
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m) / 3
}

// Triangles transforms every triangle of the mesh by xf and appends the
// result to dst. Normals are recomputed from the transformed positions.
func (m Mesh) Triangles(dst []Triangle, xf math.Mat4) []Triangle {
	for i := 0; i+2 < len(m); i += 3 {
		dst = append(dst, NewTriangle(
			xf.TransformVec3(m[i].Pos),
			xf.TransformVec3(m[i+1].Pos),
			xf.TransformVec3(m[i+2].Pos),
		))
	}
	return dst
}

// meshFromTriangles flattens triangles into a Mesh.
func meshFromTriangles(tris []Triangle) Mesh {
	m := make(Mesh, 0, len(tris)*3)
	for _, t := range tris {
		v := t.MeshVertices()
		m = append(m, v[:]...)
	}
	return m
}
