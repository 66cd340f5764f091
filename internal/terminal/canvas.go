package terminal

import (
	gomath "math"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/crosscut/internal/engine/camera"
	"github.com/Faultbox/crosscut/pkg/color"
	"github.com/Faultbox/crosscut/pkg/math"
)

// fullBlock fills a whole cell.
const fullBlock = '█'

// Canvas rasterises chains into terminal cells. A cell is treated as two
// square pixels stacked vertically, so the camera sees a surface of
// cols x 2*rows.
type Canvas struct {
	screen tcell.Screen
	cam    *camera.Camera2D
	bg     tcell.Style
	chains int
}

// NewCanvas creates a canvas drawing to screen through cam.
func NewCanvas(screen tcell.Screen, cam *camera.Camera2D, bg color.Color) *Canvas {
	return &Canvas{
		screen: screen,
		cam:    cam,
		bg:     tcell.StyleDefault.Background(toTcell(bg)),
	}
}

// View returns the world rectangle currently visible.
func (c *Canvas) View() math.Rect {
	cols, rows := c.screen.Size()
	return c.cam.View(cols, rows*2)
}

// Begin clears the screen to the background.
func (c *Canvas) Begin() {
	c.screen.Fill(' ', c.bg)
	c.chains = 0
}

// Chains returns the number of chains drawn since Begin.
func (c *Canvas) Chains() int {
	return c.chains
}

// DrawChain plots every segment of the chain. Stroke width and join
// rounding are below cell resolution and ignored.
func (c *Canvas) DrawChain(points []math.Vec2, _ float32, col color.Color, _ int) {
	c.chains++
	if len(points) == 0 {
		return
	}
	cols, rows := c.screen.Size()
	style := c.Style(col)

	prev := c.cam.ToScreen(points[0], cols, rows*2)
	c.plot(prev, cols, rows, style)
	for _, p := range points[1:] {
		next := c.cam.ToScreen(p, cols, rows*2)
		c.line(prev, next, cols, rows, style)
		prev = next
	}
}

// Style returns the cell style used for a chain of the given color.
func (c *Canvas) Style(col color.Color) tcell.Style {
	return c.bg.Foreground(toTcell(col))
}

// line steps from a to b one pixel at a time.
func (c *Canvas) line(a, b math.Vec2, cols, rows int, style tcell.Style) {
	d := b.Sub(a)
	steps := int(gomath.Ceil(float64(max(abs(d.X), abs(d.Y)))))
	if steps < 1 {
		c.plot(b, cols, rows, style)
		return
	}
	for i := 1; i <= steps; i++ {
		c.plot(a.Add(d.Scale(float32(i)/float32(steps))), cols, rows, style)
	}
}

func (c *Canvas) plot(p math.Vec2, cols, rows int, style tcell.Style) {
	x := int(gomath.Floor(float64(p.X)))
	y := int(gomath.Floor(float64(p.Y / 2)))
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	c.screen.SetContent(x, y, fullBlock, nil, style)
}

// DrawText writes s starting at cell (x, y).
func (c *Canvas) DrawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func toTcell(col color.Color) tcell.Color {
	r, g, b, _ := col.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
