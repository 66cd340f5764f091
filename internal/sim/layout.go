package sim

import "github.com/Faultbox/crosscut/pkg/math"

// Layout decides when and where objects spawn and when they leave.
type Layout interface {
	Name() string
	// SpawnInterval returns the time until the next spawn attempt. Must be positive.
	SpawnInterval(r Rand) float32
	// SpawnPosition draws one placement candidate for an object of the given scale.
	SpawnPosition(r Rand, scale float32, view math.Rect) math.Vec3
	// CullDepth is the Z at which an object of the given scale is removed.
	CullDepth(scale float32) float32
}

// Layout names.
const (
	LayoutViewport = "viewport"
	LayoutBox      = "box"
)

// LayoutByName returns the named layout.
func LayoutByName(name string) (Layout, bool) {
	switch name {
	case LayoutViewport:
		return ViewportLayout{}, true
	case LayoutBox:
		return BoxLayout{}, true
	}
	return nil, false
}

// ViewportLayout spawns every 0.1s anywhere inside the visible view, just
// far enough behind the cutting plane that the object starts unseen, and
// removes it once it has passed through.
type ViewportLayout struct{}

func (ViewportLayout) Name() string { return LayoutViewport }

func (ViewportLayout) SpawnInterval(Rand) float32 { return 0.1 }

func (ViewportLayout) SpawnPosition(r Rand, scale float32, view math.Rect) math.Vec3 {
	return math.Vec3{
		X: uniform(r, view.Min.X, view.Max.X),
		Y: uniform(r, view.Min.Y, view.Max.Y),
		Z: -2 * scale,
	}
}

func (ViewportLayout) CullDepth(scale float32) float32 { return 2 * scale }

// BoxLayout spawns in a fixed 14x14 square at z = -5, with intervals between
// 0.1s and 0.5s skewed towards the short end. Objects live until z = 5.
type BoxLayout struct{}

const (
	boxRadius = 7
	boxDepth  = 5
)

func (BoxLayout) Name() string { return LayoutBox }

func (BoxLayout) SpawnInterval(r Rand) float32 {
	u := r.Float32()
	return u*u*0.4 + 0.1
}

func (BoxLayout) SpawnPosition(r Rand, _ float32, _ math.Rect) math.Vec3 {
	return math.Vec3{
		X: uniform(r, -boxRadius, boxRadius),
		Y: uniform(r, -boxRadius, boxRadius),
		Z: -boxDepth,
	}
}

func (BoxLayout) CullDepth(float32) float32 { return boxDepth }
