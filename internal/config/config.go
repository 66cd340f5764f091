// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Faultbox/crosscut/internal/geometry"
	"github.com/Faultbox/crosscut/internal/sim"
	"github.com/Faultbox/crosscut/pkg/color"
)

var (
	// ErrUnknownLayout is returned by Validate for an unsupported scene layout.
	ErrUnknownLayout = errors.New("unknown layout")
	// ErrUnknownPrefab is returned by Validate for an unsupported prefab name.
	ErrUnknownPrefab = errors.New("unknown prefab")
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds what the background looks like.
type SceneConfig struct {
	BackgroundColor color.Color   `yaml:"background_color"`
	ObjectColors    []color.Color `yaml:"object_colors"`
	Layout          string        `yaml:"layout"`     // viewport or box
	Prefabs         []string      `yaml:"prefabs"`    // cube, sphere, cylinder
	ViewWidth       float32       `yaml:"view_width"` // world units across the screen
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			BackgroundColor: color.RGB(0x14, 0x14, 0x1f),
			ObjectColors: []color.Color{
				color.RGB(0xe0, 0x6c, 0x75),
				color.RGB(0x98, 0xc3, 0x79),
				color.RGB(0x61, 0xaf, 0xef),
				color.RGB(0xc6, 0x78, 0xdd),
				color.RGB(0xe5, 0xc0, 0x7b),
			},
			Layout:    sim.LayoutViewport,
			Prefabs:   []string{geometry.PrefabCube},
			ViewWidth: 17,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if _, ok := sim.LayoutByName(c.Scene.Layout); !ok {
		return fmt.Errorf("%w %q", ErrUnknownLayout, c.Scene.Layout)
	}
	for _, name := range c.Scene.Prefabs {
		if !slices.Contains(geometry.PrefabNames, name) {
			return fmt.Errorf("%w %q", ErrUnknownPrefab, name)
		}
	}
	if c.Scene.ViewWidth <= 0 {
		return fmt.Errorf("view_width must be positive, got %v", c.Scene.ViewWidth)
	}
	return nil
}
