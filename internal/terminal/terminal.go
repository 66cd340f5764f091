// Package terminal runs the simulation inside a terminal using tcell.
package terminal

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/crosscut/internal/config"
	"github.com/Faultbox/crosscut/internal/engine/camera"
	"github.com/Faultbox/crosscut/internal/engine/scene"
	"github.com/Faultbox/crosscut/internal/sim"
)

// frameInterval paces the terminal at roughly 30 frames per second.
const frameInterval = 33 * time.Millisecond

type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
)

// Terminal is the text-mode frontend.
type Terminal struct {
	screen tcell.Screen
	log    *zap.Logger
	canvas *Canvas
	sim    *sim.Simulation
	rng    *rand.Rand
}

// New initializes screen and builds the simulation for its current size.
func New(screen tcell.Screen, cfg *config.Config, log *zap.Logger) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	cam := camera.New(cfg.Scene.ViewWidth)
	t := &Terminal{
		screen: screen,
		log:    log,
		canvas: NewCanvas(screen, cam, cfg.Scene.BackgroundColor),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	var err error
	t.sim, err = scene.New(cfg.Scene, t.canvas.View(), log.Named("sim"))
	if err != nil {
		screen.Fini()
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	cols, rows := screen.Size()
	log.Info("terminal initialized", zap.Int("cols", cols), zap.Int("rows", rows))
	return t, nil
}

// Run drives the loop until ctx is cancelled or the user quits.
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if t.handleEvent(ev) == actionQuit {
				t.log.Info("quit requested")
				return nil
			}

		case now := <-ticker.C:
			t.Step(float32(now.Sub(last).Seconds()))
			last = now
		}
	}
}

// Step advances the simulation by dt seconds and draws a frame.
func (t *Terminal) Step(dt float32) {
	t.sim.Advance(dt, t.rng)

	t.canvas.Begin()
	t.sim.Render(t.canvas)
	t.drawStatus()
	t.screen.Show()
}

func (t *Terminal) drawStatus() {
	status := fmt.Sprintf(" objects %d  sections %d ", len(t.sim.Objects()), t.canvas.Chains())
	if t.sim.Paused() {
		status += " paused "
	}
	status += " [p]ause [q]uit "
	t.canvas.DrawText(0, 0, status, tcell.StyleDefault.Reverse(true))
}

func (t *Terminal) handleEvent(ev tcell.Event) action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return actionNone
}

func (t *Terminal) handleKey(key tcell.Key, r rune) action {
	a := keyAction(key, r)
	if a == actionPause {
		t.sim.SetPaused(!t.sim.Paused())
		t.log.Info("pause toggled", zap.Bool("paused", t.sim.Paused()))
	}
	return a
}

func (t *Terminal) resize() {
	t.sim.SetView(t.canvas.View())
	cols, rows := t.screen.Size()
	t.log.Debug("terminal resized", zap.Int("cols", cols), zap.Int("rows", rows))
}

func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actionQuit
		case 'p', 'P', ' ':
			return actionPause
		}
	}
	return actionNone
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.log.Info("closing terminal")
	t.screen.Fini()
}
