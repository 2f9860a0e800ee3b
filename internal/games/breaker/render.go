package breaker

import (
	"fmt"
	"math"
	"strings"

	"github.com/rayraychen2011/tui-breaker/internal/core"
)

// brickRowColors cycles through the wall rows, top to bottom.
var brickRowColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Need at least 40x16")
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderTrail(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderParticles(dst)

	switch g.mode {
	case StateServe:
		if g.serveDelay == 0 {
			dst.DrawTextCentered(g.paddleTopRow()-2, "Press SPACE to launch")
		}
	case StatePaused:
		drawCenteredBox(dst, []string{
			"PAUSED",
			"",
			"P resume   Q quit",
		})
	case StateGameOver:
		drawCenteredBox(dst, []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.score),
			"",
			"R restart   Q quit",
		})
	case StateWin:
		drawCenteredBox(dst, []string{
			"YOU WIN!",
			fmt.Sprintf("Score: %d", g.score),
			"",
			"R restart   Q quit",
		})
	}
}

// renderHUD draws the status line on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %05d", g.score), core.ColorBrightWhite)
	dst.DrawTextColored(14, 0, "LIVES "+strings.Repeat("♥", core.Max(g.lives, 0)), core.ColorBrightRed)
	dst.DrawTextColored(27, 0, fmt.Sprintf("LV %d/%d", g.stage, g.cfg.Gameplay.Levels), core.ColorBrightCyan)

	flags := ""
	if g.boosting {
		flags += "[BOOST]"
	}
	if g.autoMode {
		flags += "[AUTO]"
	}
	if g.preview {
		flags += "[PRE]"
	}
	if flags != "" {
		dst.DrawTextColored(dst.Width()-len(flags)-1, 0, flags, core.ColorBrightMagenta)
	}
}

// renderBricks draws the live bricks, colored by row. Burst bricks use a
// distinct texture so the player can aim for them.
func (g *Game) renderBricks(dst *core.Screen) {
	for i := range g.level.Bricks {
		b := &g.level.Bricks[i]
		if b.Hit {
			continue
		}
		x := int(b.Bounds.Left)
		w := int(b.Bounds.Width())
		row := int(b.Bounds.Top / worldPerRow)

		ch := '█'
		color := brickRowColors[b.Row%len(brickRowColors)]
		if b.Special {
			ch = '▓'
			color = core.ColorBrightWhite
		}
		dst.DrawRectColored(core.NewRect(x, row, w, 1), ch, color)
	}
}

// renderTrail draws the trajectory preview as faint dots, skipping the
// delayed stretch right in front of the ball.
func (g *Game) renderTrail(dst *core.Screen) {
	for _, pt := range g.trail {
		if pt.Delayed {
			continue
		}
		x := int(math.Round(pt.Pos.X))
		row := int(pt.Pos.Y / worldPerRow)
		if row < 1 {
			continue
		}
		if dst.Get(x, row) == ' ' {
			dst.SetCell(x, row, '·', core.ColorGray)
		}
	}
}

// renderPaddle draws the horseshoe: both legs as solid columns and the
// lower arc as a curve sampled per column.
func (g *Game) renderPaddle(dst *core.Screen) {
	shape := g.paddle.Shape()

	for _, leg := range []struct{ left, width float64 }{
		{shape.LeftLeg.Left, shape.LeftLeg.Width()},
		{shape.RightLeg.Left, shape.RightLeg.Width()},
	} {
		x := int(math.Round(leg.left))
		w := int(math.Round(leg.width))
		top := int(shape.LeftLeg.Top / worldPerRow)
		bottom := int(shape.LeftLeg.Bottom/worldPerRow) - 1
		for row := top; row <= bottom; row++ {
			for dx := 0; dx < w; dx++ {
				dst.SetCell(x+dx, row, '█', core.ColorBrightYellow)
			}
		}
	}

	// Arc: plot the lower circle boundary for each interior column.
	cx := shape.ArcCenter.X
	cy := shape.ArcCenter.Y
	r := shape.ArcRadius
	x0 := int(math.Round(cx - r))
	x1 := int(math.Round(cx + r))
	for sx := x0; sx <= x1; sx++ {
		dx := float64(sx) + 0.5 - cx
		if math.Abs(dx) > r {
			continue
		}
		yw := cy + math.Sqrt(r*r-dx*dx)
		row := int(yw / worldPerRow)
		if row >= dst.Height() {
			row = dst.Height() - 1
		}
		dst.SetCell(sx, row, '█', core.ColorBrightYellow)
	}
}

// renderBall draws the ball, bright red while boosting.
func (g *Game) renderBall(dst *core.Screen) {
	x := int(math.Round(g.ball.Pos.X))
	row := int(g.ball.Pos.Y / worldPerRow)
	color := core.ColorBrightWhite
	if g.boosting {
		color = core.ColorBrightRed
	}
	dst.SetCell(x, row, '●', color)
}

// renderParticles draws the live sparks.
func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles {
		x := int(math.Round(p.Pos.X))
		row := int(p.Pos.Y / worldPerRow)
		if row < 1 || row >= dst.Height() {
			continue
		}
		if dst.Get(x, row) == ' ' {
			dst.SetCell(x, row, p.glyph(), p.Color)
		}
	}
}

// paddleTopRow is the screen row of the paddle's leg tops.
func (g *Game) paddleTopRow() int {
	return int(g.paddle.Y / worldPerRow)
}

// drawCenteredBox draws a bordered overlay with the given lines centered
// on screen.
func drawCenteredBox(dst *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 6
	h := len(lines) + 4
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	r := core.NewRect(x, y, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	for i, l := range lines {
		dst.DrawTextCentered(y+2+i, l)
	}
}
