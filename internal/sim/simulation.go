// Package sim runs the background: it spawns solids, drifts and spins them
// towards the viewer and slices each one with the plane z = 0.
//
// The package is single-threaded. A host calls Advance then Render once per
// frame, never concurrently.
package sim

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/crosscut/internal/geometry"
	"github.com/Faultbox/crosscut/pkg/color"
	"github.com/Faultbox/crosscut/pkg/math"
)

const (
	// travelSpeed is the drift along +Z in units per second.
	travelSpeed = 0.5
	// spinRate is the turn about Y in radians per second (45 degrees).
	spinRate = gomath.Pi / 4

	minScale = 0.3
	maxScale = 1.0

	// separation scales the sum of two objects' scales into their minimum
	// spawn distance. A unit cube's circumradius is sqrt(3).
	separation = 1.74
	// placementAttempts bounds the rejection sampling per spawn.
	placementAttempts = 5

	// fallbackInterval replaces non-positive layout intervals so the spawn
	// countdown always drains.
	fallbackInterval = 0.1
)

// Options configures a Simulation.
type Options struct {
	// Layout defaults to ViewportLayout.
	Layout Layout
	// Prefabs are the meshes objects are built from. With none, nothing spawns.
	Prefabs []geometry.Mesh
	// Palette colors are picked uniformly. Empty means white.
	Palette []color.Color
	// View is the visible area at the cutting plane; see SetView.
	View math.Rect
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Simulation owns the prefab arena and the live objects.
type Simulation struct {
	layout  Layout
	prefabs []geometry.Mesh
	palette []color.Color
	view    math.Rect
	plane   geometry.Plane
	log     *zap.Logger

	objects   []Object
	time      float32
	nextSpawn float32
	paused    bool

	scratch []geometry.Triangle
}

// New validates the prefabs and returns an empty simulation.
func New(opts Options) (*Simulation, error) {
	for i, m := range opts.Prefabs {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("prefab %d: %w", i, err)
		}
	}

	s := &Simulation{
		layout:  opts.Layout,
		prefabs: opts.Prefabs,
		palette: opts.Palette,
		view:    opts.View,
		plane:   geometry.Plane{Normal: math.UnitZ},
		log:     opts.Logger,
	}
	if s.layout == nil {
		s.layout = ViewportLayout{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}

	s.log.Info("simulation created",
		zap.String("layout", s.layout.Name()),
		zap.Int("prefabs", len(s.prefabs)),
		zap.Int("colors", len(s.palette)),
	)
	return s, nil
}

// SetView updates the area new objects may spawn in under ViewportLayout.
func (s *Simulation) SetView(view math.Rect) {
	s.view = view
}

// SetPaused freezes or resumes the simulation.
func (s *Simulation) SetPaused(paused bool) {
	s.paused = paused
}

// Paused reports whether the simulation is frozen.
func (s *Simulation) Paused() bool {
	return s.paused
}

// Time returns the accumulated simulation time in seconds.
func (s *Simulation) Time() float32 {
	return s.time
}

// Objects returns the live objects. The slice is owned by the simulation.
func (s *Simulation) Objects() []Object {
	return s.objects
}

// Advance steps the simulation by dt seconds: it drains the spawn countdown,
// then moves, spins and culls every object. All effects scale linearly with dt.
func (s *Simulation) Advance(dt float32, rng Rand) {
	if s.paused {
		return
	}

	s.time += dt
	s.nextSpawn -= dt
	for s.nextSpawn < 0 {
		interval := s.layout.SpawnInterval(rng)
		if interval <= 0 {
			interval = fallbackInterval
		}
		s.nextSpawn += interval
		s.spawn(rng)
	}

	s.integrate(dt)
	s.cull()
}

// spawn attempts to create one object. It is best-effort: if no clear spot
// is found the attempt is dropped.
func (s *Simulation) spawn(rng Rand) {
	if len(s.prefabs) == 0 {
		return
	}

	prefab := MeshID(rng.Intn(len(s.prefabs)))
	scale := uniform(rng, minScale, maxScale)

	pos, ok := s.place(rng, scale)
	if !ok {
		s.log.Debug("spawn skipped, no free spot",
			zap.Float32("scale", scale),
			zap.Int("objects", len(s.objects)),
		)
		return
	}

	obj := NewObject(pos, prefab)
	obj.Orientation = math.Vec3{
		X: uniform(rng, -1, 1),
		Y: uniform(rng, -1, 1),
		Z: uniform(rng, -1, 1),
	}
	obj.Roll = uniform(rng, 0, 360) * gomath.Pi / 180
	obj.Scale = scale
	if len(s.palette) > 0 {
		obj.Color = s.palette[rng.Intn(len(s.palette))]
	}
	s.objects = append(s.objects, obj)
}

// place draws candidates until one keeps its distance from every live object.
func (s *Simulation) place(rng Rand, scale float32) (math.Vec3, bool) {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		pos := s.layout.SpawnPosition(rng, scale, s.view)
		if s.isClear(pos, scale) {
			return pos, true
		}
	}
	return math.Vec3{}, false
}

func (s *Simulation) isClear(pos math.Vec3, scale float32) bool {
	for i := range s.objects {
		other := &s.objects[i]
		if pos.Distance(other.Position) < (scale+other.Scale)*separation {
			return false
		}
	}
	return true
}

func (s *Simulation) integrate(dt float32) {
	step := math.UnitZ.Scale(travelSpeed * dt)
	for i := range s.objects {
		obj := &s.objects[i]
		obj.Position = obj.Position.Add(step)
		obj.RotateY(spinRate * dt)
	}
}

func (s *Simulation) cull() {
	kept := s.objects[:0]
	for _, obj := range s.objects {
		if obj.Position.Z < s.layout.CullDepth(obj.Scale) {
			kept = append(kept, obj)
		}
	}
	if removed := len(s.objects) - len(kept); removed > 0 {
		s.log.Debug("objects culled", zap.Int("count", removed), zap.Int("live", len(kept)))
	}
	clear(s.objects[len(kept):])
	s.objects = kept
}
