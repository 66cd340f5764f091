package terminal

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/crosscut/internal/config"
	"github.com/Faultbox/crosscut/internal/engine/camera"
	"github.com/Faultbox/crosscut/pkg/color"
	"github.com/Faultbox/crosscut/pkg/math"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestCanvasDrawsHorizontalLine(t *testing.T) {
	screen := newScreen(t)
	// 16 units across 80 columns; 48 half-rows give a view of ±8 x ±4.8.
	canvas := NewCanvas(screen, camera.New(16), color.Black)
	red := color.RGB(255, 0, 0)

	canvas.Begin()
	// y = 1 maps to half-row 19, cell row 9.
	canvas.DrawChain([]math.Vec2{{X: -4, Y: 1}, {X: 4, Y: 1}}, 0.1, red, 5)

	want := canvas.Style(red)
	for x := 20; x < 60; x++ {
		r, _, style, _ := screen.GetContent(x, 9)
		if r != fullBlock || style != want {
			t.Fatalf("cell (%d, 9) = %q %v, want %q %v", x, r, style, fullBlock, want)
		}
	}
	for _, x := range []int{10, 70} {
		if r, _, _, _ := screen.GetContent(x, 9); r != ' ' {
			t.Errorf("cell (%d, 9) = %q, want blank", x, r)
		}
	}
	if canvas.Chains() != 1 {
		t.Errorf("Chains() = %d, want 1", canvas.Chains())
	}
}

func TestCanvasYPointsUp(t *testing.T) {
	screen := newScreen(t)
	canvas := NewCanvas(screen, camera.New(16), color.Black)

	canvas.Begin()
	canvas.DrawChain([]math.Vec2{{X: 0.1, Y: 3.5}, {X: 0.1, Y: 3.5}}, 0.1, color.White, 5)

	// y = 3.5 is 1.3 units below the top edge: half-row 6.5, row 3.
	if r, _, _, _ := screen.GetContent(40, 3); r != fullBlock {
		t.Errorf("expected the point near the top of the screen, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(40, 21); r != ' ' {
		t.Errorf("expected nothing near the bottom, got %q", r)
	}
}

func TestCanvasClipsOffscreen(t *testing.T) {
	screen := newScreen(t)
	canvas := NewCanvas(screen, camera.New(16), color.Black)

	canvas.Begin()
	// Must not panic on points far outside the view.
	canvas.DrawChain([]math.Vec2{{X: -100, Y: -100}, {X: 100, Y: 100}}, 0.1, color.White, 5)
	canvas.DrawChain(nil, 0.1, color.White, 5)

	if canvas.Chains() != 2 {
		t.Errorf("Chains() = %d, want 2", canvas.Chains())
	}
}

func TestCanvasBeginClears(t *testing.T) {
	screen := newScreen(t)
	canvas := NewCanvas(screen, camera.New(16), color.Black)

	canvas.DrawChain([]math.Vec2{{X: -4, Y: 1}, {X: 4, Y: 1}}, 0.1, color.White, 5)
	canvas.Begin()

	if r, _, _, _ := screen.GetContent(40, 9); r != ' ' {
		t.Errorf("cell after Begin = %q, want blank", r)
	}
	if canvas.Chains() != 0 {
		t.Errorf("Chains() = %d after Begin, want 0", canvas.Chains())
	}
}

func TestTerminalStepDrawsSections(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := New(screen, config.Default(), zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer term.Close()
	screen.SetSize(80, 24)
	term.resize()
	term.rng = rand.New(rand.NewSource(7))

	for i := 0; i < 80; i++ {
		term.Step(0.05)
	}

	filled := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == fullBlock {
				filled++
			}
		}
	}
	if filled == 0 {
		t.Error("expected some cross-sections on screen after 4 seconds")
	}
	if len(term.sim.Objects()) == 0 {
		t.Error("expected live objects")
	}
}

func TestTerminalPauseKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := New(screen, config.Default(), zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer term.Close()

	if a := term.handleKey(tcell.KeyRune, 'p'); a != actionPause {
		t.Fatalf("handleKey(p) = %v, want actionPause", a)
	}
	if !term.sim.Paused() {
		t.Fatal("expected simulation to be paused")
	}

	before := term.sim.Time()
	term.Step(1)
	if term.sim.Time() != before {
		t.Error("paused simulation advanced")
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want action
	}{
		{"escape", tcell.KeyEscape, 0, actionQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, actionQuit},
		{"q", tcell.KeyRune, 'q', actionQuit},
		{"p", tcell.KeyRune, 'p', actionPause},
		{"space", tcell.KeyRune, ' ', actionPause},
		{"other rune", tcell.KeyRune, 'x', actionNone},
		{"enter", tcell.KeyEnter, 0, actionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyAction(tt.key, tt.r); got != tt.want {
				t.Errorf("keyAction() = %v, want %v", got, tt.want)
			}
		})
	}
}
