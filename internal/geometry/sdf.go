package geometry

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/Faultbox/crosscut/pkg/math"
)

// prefabCells is the marching cubes resolution for SDF prefabs. Every
// triangle is sliced every frame, so this stays coarse.
const prefabCells = 12

// Prefab names accepted by Prefab.
const (
	PrefabCube     = "cube"
	PrefabSphere   = "sphere"
	PrefabCylinder = "cylinder"
)

// PrefabNames lists the prefabs Prefab can build.
var PrefabNames = []string{PrefabCube, PrefabSphere, PrefabCylinder}

// Prefab builds the named unit-sized convex solid.
func Prefab(name string) (Mesh, error) {
	switch name {
	case PrefabCube:
		return UnitCube(), nil
	case PrefabSphere:
		return Sphere()
	case PrefabCylinder:
		return Cylinder()
	default:
		return nil, fmt.Errorf("unknown prefab %q", name)
	}
}

// Sphere returns a tessellated sphere of radius 1.
func Sphere() (Mesh, error) {
	s, err := sdf.Sphere3D(1)
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	return FromSDF(s, prefabCells), nil
}

// Cylinder returns a tessellated cylinder of radius 1 spanning -1..1 on Z.
func Cylinder() (Mesh, error) {
	s, err := sdf.Cylinder3D(2, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("cylinder: %w", err)
	}
	return FromSDF(s, prefabCells), nil
}

// FromSDF tessellates a signed distance field with uniform marching cubes.
// cells is the number of cells along the longest bounding box axis.
func FromSDF(s sdf.SDF3, cells int) Mesh {
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	tris := make([]Triangle, 0, len(triangles))
	for _, tri := range triangles {
		var v [3]math.Vec3
		for j := 0; j < 3; j++ {
			v[j] = math.Vec3{X: float32(tri[j].X), Y: float32(tri[j].Y), Z: float32(tri[j].Z)}
		}
		t := NewTriangle(v[0], v[1], v[2])
		if t.Normal == (math.Vec3{}) {
			continue
		}
		tris = append(tris, t)
	}
	return meshFromTriangles(tris)
}
