package game

import "github.com/handwave/catchball/internal/core"

// Ball is one ball in the registry. Balls are created by spawns and never
// removed: crossing the bottom boundary recycles them to a fresh spawn
// point so the population stays constant during play.
type Ball struct {
	ID     int
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Color  core.Color
	HeldBy core.HandSide // core.HandNone while free-falling
}

// Held reports whether the ball is currently attached to a hand.
func (b *Ball) Held() bool {
	return b.HeldBy != core.HandNone
}

// spawnBall appends a new ball to the registry at a fresh spawn point.
func (g *Game) spawnBall() *Ball {
	id := len(g.balls)
	b := &Ball{
		ID:     id,
		Radius: g.cfg.Physics.BallRadius,
		Color:  core.BallPalette[id%len(core.BallPalette)],
		HeldBy: core.HandNone,
	}
	g.placeAtSpawn(b)
	g.balls = append(g.balls, b)
	return b
}

// placeAtSpawn repositions a ball to a fresh spawn point: random x in the
// mid-band, above the visible area, with a small random horizontal drift.
func (g *Game) placeAtSpawn(b *Ball) {
	b.Pos = core.Vec2{X: g.rng.Range(SpawnBandMin, SpawnBandMax), Y: SpawnY}
	b.Vel = core.Vec2{X: g.rng.Range(-SpawnMaxVX, SpawnMaxVX), Y: 0}
	b.HeldBy = core.HandNone
}

// ball returns the registry entry for an ID. IDs are dense slice indices;
// an unknown ID returns nil and callers treat it as a no-op.
func (g *Game) ball(id int) *Ball {
	if id < 0 || id >= len(g.balls) {
		return nil
	}
	return g.balls[id]
}
