// Package app runs the simulation in an SDL2 window with OpenGL rendering.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/crosscut/internal/config"
	"github.com/Faultbox/crosscut/internal/engine/camera"
	"github.com/Faultbox/crosscut/internal/engine/input"
	"github.com/Faultbox/crosscut/internal/engine/renderer"
	"github.com/Faultbox/crosscut/internal/engine/scene"
	"github.com/Faultbox/crosscut/internal/engine/window"
	"github.com/Faultbox/crosscut/internal/sim"
)

// Title is the window title.
const Title = "Crosscut"

// maxFrameTime caps a single step so a stalled frame does not release a
// burst of spawns.
const maxFrameTime = 0.25

// App is the windowed frontend.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Camera2D
	sim      *sim.Simulation
	rng      *rand.Rand
}

// New creates the window, renderer and simulation.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	log.Info("initializing app",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("layout", cfg.Scene.Layout),
	)

	a := &App{
		cfg:    cfg,
		log:    log,
		input:  input.New(),
		camera: camera.New(cfg.Scene.ViewWidth),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the OpenGL context from the window
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: w, Height: h}, log.Named("renderer"))
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.sim, err = scene.New(cfg.Scene, a.camera.View(w, h), log.Named("sim"))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	log.Info("app initialized successfully")
	return a, nil
}

// Run drives the loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxFrameTime)
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		a.sim.Advance(float32(dt), a.rng)
		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("objects", len(a.sim.Objects())),
				zap.Float64("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		if event.Type == input.EventWindowResize {
			w, h := a.window.DrawableSize()
			a.renderer.Resize(w, h)
			a.sim.SetView(a.camera.View(w, h))
		}
	}

	if a.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		a.running = false
	}
	if a.input.IsKeyPressed(sdl.SCANCODE_P) || a.input.IsKeyPressed(sdl.SCANCODE_SPACE) {
		a.sim.SetPaused(!a.sim.Paused())
		a.log.Info("pause toggled", zap.Bool("paused", a.sim.Paused()))
	}
}

func (a *App) render() {
	w, h := a.window.DrawableSize()
	a.renderer.Begin(a.cfg.Scene.BackgroundColor)
	a.sim.Render(a.renderer)
	a.renderer.End(a.camera.Projection(w, h))
}

// Close cleans up app resources.
func (a *App) Close() {
	a.log.Info("closing app")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
