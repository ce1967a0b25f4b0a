package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-sketches/internal/core"
	"github.com/vovakirdan/arcade-sketches/internal/physics"
)

// Visual characters for rendering
const (
	BodyChar  = '█'
	BlockChar = '▓'
)

// hudRows is the number of status lines above the field.
const hudRows = 2

// viewport maps world pixels (y up) onto terminal cells (y down).
type viewport struct {
	left, top  float64 // World coordinates of the view's top-left corner
	ppc, ppr   float64 // Pixels per column / row
	cols, rows int     // Field size in cells
	originX    int     // Screen column of the field's first cell
	originY    int     // Screen row of the field's first cell
}

func (g *Game) layout(dst *core.Screen) (viewport, bool) {
	v := g.cfg.View
	vp := viewport{
		left: v.CenterX - v.Width/2,
		top:  v.CenterY + v.Height/2,
		ppc:  v.PixelsPerCol,
		ppr:  v.PixelsPerRow,
		cols: int(math.Ceil(v.Width / v.PixelsPerCol)),
		rows: int(math.Ceil(v.Height / v.PixelsPerRow)),
	}

	// Field plus its border, below the HUD.
	needW, needH := vp.cols+2, vp.rows+2+hudRows
	if dst.Width() < needW || dst.Height() < needH {
		return vp, false
	}
	vp.originX = (dst.Width()-needW)/2 + 1
	vp.originY = hudRows + 1
	return vp, true
}

// cellSpan returns the inclusive cell range covered by box, clipped to the field.
func (vp viewport) cellSpan(b physics.Box) (c0, r0, c1, r1 int, ok bool) {
	lo, hi := b.Min(), b.Max()
	c0 = int(math.Floor((lo.X() - vp.left) / vp.ppc))
	c1 = int(math.Ceil((hi.X()-vp.left)/vp.ppc)) - 1
	r0 = int(math.Floor((vp.top - hi.Y()) / vp.ppr))
	r1 = int(math.Ceil((vp.top-lo.Y())/vp.ppr)) - 1

	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, vp.cols-1), min(r1, vp.rows-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}

func (vp viewport) fill(dst *core.Screen, b physics.Box, ch rune, color core.Color) {
	c0, r0, c1, r1, ok := vp.cellSpan(b)
	if !ok {
		return
	}
	dst.DrawRectColor(core.NewRect(vp.originX+c0, vp.originY+r0, c1-c0+1, r1-r0+1), ch, color)
}

// Render draws the field, the body and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	vp, ok := g.layout(dst)
	if !ok {
		dst.DrawMessageBox("Window too small", fmt.Sprintf("Need at least %dx%d", vp.cols+2, vp.rows+2+hudRows))
		return
	}

	dst.DrawBox(core.NewRect(vp.originX-1, vp.originY-1, vp.cols+2, vp.rows+2))

	for _, o := range g.world.Obstacles() {
		vp.fill(dst, o.Box(), BlockChar, core.ColorGreen)
	}
	body := g.world.Body()
	vp.fill(dst, body.Box(), BodyChar, core.ColorBrightCyan)

	g.drawHUD(dst)

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
	if g.gameOver {
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.bestColumn))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	pos, vel := g.world.Position(), g.world.Velocity()

	seconds := 0.0
	if g.runtime.TickRate > 0 {
		seconds = float64(g.world.Tick()) / float64(g.runtime.TickRate)
	}
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.bestColumn), core.ColorBrightYellow)
	dst.DrawText(14, 0, fmt.Sprintf("Time: %.1fs", seconds))

	state := "airborne"
	if g.world.Grounded() {
		state = "grounded"
	}
	last := "-"
	if c, ok := g.world.LastContact(); ok {
		last = c.Side.String()
	}
	dst.DrawText(1, 1, fmt.Sprintf("pos %6.1f,%6.1f  vel %5.2f,%5.2f  %-8s  last %-6s  contacts %d",
		pos.X(), pos.Y(), vel.X(), vel.Y(), state, last, len(g.world.Contacts())))
}
