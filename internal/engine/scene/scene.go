// Package scene assembles a simulation from the scene configuration. Both
// frontends build their world through here.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/crosscut/internal/config"
	"github.com/Faultbox/crosscut/internal/geometry"
	"github.com/Faultbox/crosscut/internal/sim"
	"github.com/Faultbox/crosscut/pkg/math"
)

// New resolves the configured layout and prefabs and creates the simulation.
func New(cfg config.SceneConfig, view math.Rect, log *zap.Logger) (*sim.Simulation, error) {
	layout, ok := sim.LayoutByName(cfg.Layout)
	if !ok {
		return nil, fmt.Errorf("%w %q", config.ErrUnknownLayout, cfg.Layout)
	}

	prefabs, err := Prefabs(cfg.Prefabs)
	if err != nil {
		return nil, err
	}

	return sim.New(sim.Options{
		Layout:  layout,
		Prefabs: prefabs,
		Palette: cfg.ObjectColors,
		View:    view,
		Logger:  log,
	})
}

// Prefabs builds the named meshes in order. Index i of the result is the
// sim.MeshID of names[i].
func Prefabs(names []string) ([]geometry.Mesh, error) {
	meshes := make([]geometry.Mesh, 0, len(names))
	for _, name := range names {
		m, err := geometry.Prefab(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", config.ErrUnknownPrefab, err)
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}
