package letters

import (
	"fmt"
	"math"

	"github.com/vovakirdan/letter-workshop/internal/core"
)

// viewport maps world units onto the screen area below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	rows := dst.Height() - hudHeight
	return viewport{
		sx:  float64(dst.Width()) / float64(g.cfg.World.Width),
		sy:  float64(rows) / float64(g.cfg.World.Height),
		top: hudHeight,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), v.top + int(math.Floor(p.Y*v.sy))
}

// rect maps a world rectangle to cells. Anything visible in world space
// keeps at least one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0 := int(math.Floor(float64(r.X) * v.sx))
	y0 := int(math.Floor(float64(r.Y) * v.sy))
	x1 := int(math.Ceil(float64(r.Right()) * v.sx))
	y1 := int(math.Ceil(float64(r.Bottom()) * v.sy))
	w := max(x1-x0, 1)
	h := max(y1-y0, 1)
	return core.NewRect(x0, v.top+y0, w, h)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)

	vp := g.viewport(dst)
	g.renderPlatforms(dst, vp)
	g.renderPickups(dst, vp)
	g.renderPlayer(dst, vp)

	switch {
	case g.won:
		g.renderOverlay(dst, fmt.Sprintf("You are %s!", g.state.Name()), fmt.Sprintf("Score: %d  R to restart", g.state.Player.Score))
	case g.fell:
		g.renderOverlay(dst, "You fell", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Letter Collector | Score: %d  Name: %s  Letters left: %d  Level: %s",
		g.state.Player.Score, g.state.Name(), g.state.TargetRemaining(), g.level.Name)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderPlatforms(dst *core.Screen, vp viewport) {
	play := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	for _, p := range g.state.Platforms {
		// The conveyor slides under the HUD
		r := vp.rect(p.Rect).Intersect(play)
		if r.Empty() {
			continue
		}
		dst.FillRect(r, PlatformChar, p.Color)
	}
}

func (g *Game) renderPickups(dst *core.Screen, vp viewport) {
	for _, p := range g.state.Pickups.All() {
		if !p.Visual.OK() {
			continue
		}
		x, y := vp.cell(p.Pos)
		if y < hudHeight {
			continue
		}
		color := core.ColorCyan
		if g.state.IsTarget(p.Letter) {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, y, p.Visual.Glyph.Text, color)
	}
}

// renderPlayer draws the name at the player's position. Off-screen players
// are marked at the nearest edge so a fall stays visible.
func (g *Game) renderPlayer(dst *core.Screen, vp viewport) {
	pl := g.state.Player
	x, y := vp.cell(pl.Pos)
	bottom := dst.Height() - 1

	switch {
	case y > bottom:
		dst.SetColored(core.Clamp(x, 0, dst.Width()-1), bottom, 'v', core.ColorBrightRed)
	case y < hudHeight:
		dst.SetColored(core.Clamp(x, 0, dst.Width()-1), hudHeight, '^', core.ColorBrightRed)
	default:
		dst.DrawTextColored(x, y, g.state.Name(), core.ColorBrightWhite)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
