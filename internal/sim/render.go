package sim

import (
	"github.com/Faultbox/crosscut/internal/geometry"
	"github.com/Faultbox/crosscut/pkg/color"
	"github.com/Faultbox/crosscut/pkg/math"
)

const (
	// maxChainWidth is the outline stroke width; small sections get thinner.
	maxChainWidth = 0.1
	// chainSegments is passed to the drawer for rounding joins.
	chainSegments = 5
)

// ChainDrawer strokes an open polyline. Points are in world units on the
// cutting plane, X to the right and Y up.
type ChainDrawer interface {
	DrawChain(points []math.Vec2, width float32, c color.Color, segments int)
}

// Section is one object's cut through the plane.
type Section struct {
	Object  int
	Color   color.Color
	Outline []geometry.CrossSectionVertex
}

// Sections slices every live object with the cutting plane and returns the
// outlines with at least 3 points, in object order.
func (s *Simulation) Sections() []Section {
	var out []Section
	for i := range s.objects {
		obj := &s.objects[i]
		s.scratch = obj.Triangles(s.scratch[:0], s.prefabs[obj.Prefab])
		outline := s.plane.CrossSection(s.scratch)
		if len(outline) < 3 {
			continue
		}
		out = append(out, Section{Object: i, Color: obj.Color, Outline: outline})
	}
	return out
}

// Render draws every section as a closed outline.
func (s *Simulation) Render(dst ChainDrawer) {
	for _, sec := range s.Sections() {
		chain := displayChain(sec.Outline)
		width := chainWidth(chain)
		dst.DrawChain(closeChain(chain), width, sec.Color, chainSegments)
	}
}

// displayChain converts plane coordinates to display coordinates. The plane
// frame is mirrored in X relative to the screen.
func displayChain(outline []geometry.CrossSectionVertex) []math.Vec2 {
	chain := make([]math.Vec2, len(outline), len(outline)+2)
	for i, v := range outline {
		chain[i] = math.Vec2{X: -v.Projected.X, Y: v.Projected.Y}
	}
	return chain
}

// chainWidth keeps the stroke no wider than half the outline's extent.
func chainWidth(chain []math.Vec2) float32 {
	width := float32(maxChainWidth)
	if box, ok := math.BoundingRect(chain); ok {
		half := box.Size().Scale(0.5)
		width = min(width, half.X, half.Y)
	}
	return width
}

// closeChain turns a loop into an open chain that looks closed when stroked:
// it starts and ends at the midpoint of the first edge and passes through the
// first point near the end. chain needs at least 2 points.
func closeChain(chain []math.Vec2) []math.Vec2 {
	mid := chain[0].Midpoint(chain[1])
	chain = append(chain, chain[0], mid)
	chain[0] = mid
	return chain
}
