package game

import (
	"fmt"

	"github.com/handwave/catchball/internal/core"
)

// Visual characters for terminal rendering.
const (
	BallChar       = '●'
	HeldBallChar   = '◉'
	HandChar       = '╳'
	AbsentHandChar = '·'
	hudRows        = 1
)

// Render draws the playfield into the screen buffer: border, balls, hand
// markers, and a one-line HUD. The browser client renders from the same
// views over the wire; this path serves the terminal simulator.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	dst.DrawBox(0, hudRows, w, h-hudRows)

	// HUD
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	stateText := fmt.Sprintf("[%s]", g.state)
	dst.DrawText(w-len(stateText)-1, 0, stateText)
	dst.DrawTextCentered(0, fmt.Sprintf("Balls: %d/%d", len(g.balls), g.targetBalls))

	for _, b := range g.balls {
		ch := BallChar
		if b.Held() {
			ch = HeldBallChar
		}
		dst.SetNorm(fieldPos(b.Pos), ch, b.Color)
	}

	for side := range g.hands {
		hand := &g.hands[side]
		if !hand.tracked {
			continue
		}
		ch, color := HandChar, core.ColorWhite
		if !hand.Present {
			ch, color = AbsentHandChar, core.ColorGray
		}
		dst.SetNorm(fieldPos(hand.Pos), ch, color)
	}

	if g.state == StateIdle {
		dst.DrawTextCentered(h/2, "Press ENTER to start")
	}
}

// fieldPos squeezes a normalized position into the bordered field area,
// leaving the HUD row and border cells untouched.
func fieldPos(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: 0.02 + core.ClampF(p.X, 0, 1)*0.96,
		Y: 0.1 + core.ClampF(p.Y, 0, 1)*0.85,
	}
}
