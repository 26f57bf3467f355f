package skyhop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlayerHead   = '▲'
	PlatformTop  = '▀'
	PlatformBody = '█'
)

// Render draws the current game state to the screen, scaling world pixels to cells.
func (g *Game) Render(dst *core.Screen) {
	f := g.Frame()
	dst.Fill(' ', g.palette.Background)

	switch f.Phase {
	case PhaseNotStarted:
		g.renderStart(dst, f)
	case PhaseGameOver:
		g.renderGameOver(dst, f)
	default:
		g.renderField(dst, f)
		g.renderHUD(dst, f)
		if f.Paused {
			g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
		}
	}
}

// cellScale returns the cells-per-pixel factors for dst.
func cellScale(dst *core.Screen, f Frame) (float64, float64) {
	return float64(dst.Width()) / f.Width, float64(dst.Height()) / f.Height
}

// toCells maps a world rectangle to a cell rectangle at least one cell in size.
func toCells(r core.RectF, sx, sy float64) core.Rect {
	x0 := int(math.Floor(r.Left() * sx))
	y0 := int(math.Floor(r.Top() * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (g *Game) renderField(dst *core.Screen, f Frame) {
	sx, sy := cellScale(dst, f)

	for _, p := range f.Platforms {
		cr := toCells(p, sx, sy)
		dst.DrawRect(cr, PlatformBody, g.palette.Platform)
		dst.DrawHLine(cr.X, cr.Y, cr.W, PlatformTop, g.palette.Platform)
	}

	g.drawPlayer(dst, toCells(f.Player, sx, sy))
	// The field wraps horizontally, so a player straddling an edge shows on both sides
	if f.Player.Right() > f.Width {
		g.drawPlayer(dst, toCells(f.Player.Shift(-f.Width, 0), sx, sy))
	}
	if f.Player.Left() < 0 {
		g.drawPlayer(dst, toCells(f.Player.Shift(f.Width, 0), sx, sy))
	}
}

func (g *Game) drawPlayer(dst *core.Screen, cr core.Rect) {
	dst.DrawRect(cr, PlayerChar, g.palette.Player)
	if cr.H > 1 {
		dst.DrawHLine(cr.X, cr.Y, cr.W, PlayerHead, g.palette.Player)
	}
}

func (g *Game) renderHUD(dst *core.Screen, f Frame) {
	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", f.Score), g.palette.Text)
}

func (g *Game) renderStart(dst *core.Screen, f Frame) {
	h := dst.Height()
	dst.DrawTextCentered(0, fmt.Sprintf("High score: %d", f.Best), g.palette.Text)
	dst.DrawTextCentered(h/4, f.Title, g.palette.Player)
	dst.DrawTextCentered(h/2, "ARROWS to move, SPACE to jump", g.palette.Text)
	dst.DrawTextCentered(h*3/4, "Press a key to play", g.palette.Text)
}

func (g *Game) renderGameOver(dst *core.Screen, f Frame) {
	h := dst.Height()
	dst.DrawTextCentered(h/4, "GAME OVER", g.palette.Player)
	dst.DrawTextCentered(h/2, fmt.Sprintf("Score: %d", f.Score), g.palette.Text)
	if f.NewBest {
		dst.DrawTextCentered(h/2+2, "NEW HIGH SCORE!", g.palette.Player)
	} else {
		dst.DrawTextCentered(h/2+2, fmt.Sprintf("High score: %d", f.Best), g.palette.Text)
	}
	dst.DrawTextCentered(h*3/4, "Press a key to play again", g.palette.Text)
}

// drawCenteredBox draws a message box in the center of the screen.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', g.palette.Text)
	dst.DrawBox(box, g.palette.Text)
	dst.DrawTextCentered(boxY+1, title, g.palette.Text)
	dst.DrawTextCentered(boxY+3, subtitle, g.palette.Text)
}
