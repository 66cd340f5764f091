package geometry

import "github.com/Faultbox/crosscut/pkg/math"

// cubeFaces indexes unitCubeCorners. The winding is fixed so every face
// normal points away from the cube center.
var cubeFaces = [12][3]int{
	{0, 3, 1}, {0, 2, 3}, // z = -1
	{0, 5, 4}, {0, 1, 5}, // y = -1
	{1, 7, 5}, {1, 3, 7}, // x = +1
	{2, 4, 6}, {2, 0, 4}, // x = -1
	{3, 6, 7}, {3, 2, 6}, // y = +1
	{4, 7, 6}, {4, 5, 7}, // z = +1
}

// unitCubeCorners returns the 8 corners of [-1, 1]^3; x varies fastest, then y, then z.
func unitCubeCorners() [8]math.Vec3 {
	var corners [8]math.Vec3
	for i := range corners {
		corners[i] = math.Vec3{
			X: float32(i&1)*2 - 1,
			Y: float32(i>>1&1)*2 - 1,
			Z: float32(i>>2&1)*2 - 1,
		}
	}
	return corners
}

// UnitCube returns the triangulated axis-aligned cube spanning -1..1 on
// every axis: 12 triangles, 36 vertices, outward normals.
func UnitCube() Mesh {
	corners := unitCubeCorners()
	tris := make([]Triangle, 0, len(cubeFaces))
	for _, f := range cubeFaces {
		tris = append(tris, NewTriangle(corners[f[0]], corners[f[1]], corners[f[2]]))
	}
	return meshFromTriangles(tris)
}
