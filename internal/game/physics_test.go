package game

import (
	"testing"
	"time"

	"github.com/handwave/catchball/internal/core"
)

func TestIntegrateGravityAndEuler(t *testing.T) {
	g := newTestGame(t)
	startBare(g)

	b := g.spawnBall()
	b.Pos = core.Vec2{X: 0.5, Y: 0.5}
	b.Vel = core.Vec2{X: 0.002, Y: 0}

	g.Step(core.Frame{}, t0)

	gravity := g.Config().Physics.Gravity
	if !approx(b.Vel.Y, gravity) {
		t.Errorf("vy = %v, expected %v", b.Vel.Y, gravity)
	}
	if !approx(b.Pos.X, 0.502) || !approx(b.Pos.Y, 0.5+gravity) {
		t.Errorf("pos = %+v, expected {0.502 %v}", b.Pos, 0.5+gravity)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec2
		vel    core.Vec2
		wantX  float64
		wantVX float64
	}{
		{"left wall", core.Vec2{X: 0.02, Y: 0.5}, core.Vec2{X: -0.02}, 0.035, 0.016},
		{"right wall", core.Vec2{X: 0.98, Y: 0.5}, core.Vec2{X: 0.02}, 0.965, -0.016},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			startBare(g)

			b := g.spawnBall()
			b.Pos = tt.pos
			b.Vel = tt.vel

			g.Step(core.Frame{}, t0)

			if !approx(b.Pos.X, tt.wantX) {
				t.Errorf("x = %v, expected clamp to %v", b.Pos.X, tt.wantX)
			}
			if !approx(b.Vel.X, tt.wantVX) {
				t.Errorf("vx = %v, expected reflection to %v", b.Vel.X, tt.wantVX)
			}
			if b.Pos.X < b.Radius || b.Pos.X > 1-b.Radius {
				t.Errorf("x = %v escaped the playfield", b.Pos.X)
			}
		})
	}
}

func TestRespawnRecyclesBelowFloor(t *testing.T) {
	g := newTestGame(t)
	startBare(g)

	b := g.spawnBall()
	b.Pos = core.Vec2{X: 0.5, Y: 1.25}
	b.Vel = core.Vec2{Y: 0.01}

	res := g.Step(core.Frame{}, t0)

	if b.Pos.Y >= 0 {
		t.Errorf("y = %v, expected respawn above the visible area", b.Pos.Y)
	}
	if b.Pos.X < SpawnBandMin || b.Pos.X > SpawnBandMax {
		t.Errorf("x = %v, expected within spawn band [%v,%v]", b.Pos.X, SpawnBandMin, SpawnBandMax)
	}
	if b.Held() {
		t.Error("respawned ball must be free")
	}
	if countEvents(res.Events, EventRespawned) != 1 {
		t.Errorf("expected one respawn event, got %+v", res.Events)
	}
	if len(g.balls) != 1 {
		t.Errorf("ball count = %d, recycling must not change the population", len(g.balls))
	}
}

func TestHeldBallSkipsPhysics(t *testing.T) {
	g := newTestGame(t)
	startBare(g)

	g.Step(core.HandFrame(core.HandLeft, core.Vec2{X: 0.5, Y: 0.5}), t0)
	b := attachBall(g, core.HandLeft)

	// Ten frames with a stationary hand: the held ball never drifts
	now := t0
	for i := 0; i < 10; i++ {
		now = now.Add(33 * time.Millisecond)
		g.Step(core.HandFrame(core.HandLeft, core.Vec2{X: 0.5, Y: 0.5}), now)
		if !approx(b.Pos.X, 0.5) || !approx(b.Pos.Y, 0.5) {
			t.Fatalf("frame %d: held ball pos = %+v, expected {0.5 0.5}", i, b.Pos)
		}
		if b.Vel.X != 0 || b.Vel.Y != 0 {
			t.Fatalf("frame %d: held ball vel = %+v, expected zero", i, b.Vel)
		}
	}
}

func TestFallingBallCaughtByStationaryHand(t *testing.T) {
	g := newTestGame(t)
	startBare(g)

	hand := core.Vec2{X: 0.5, Y: 0.6}
	g.Step(core.HandFrame(core.HandLeft, hand), t0)

	b := g.spawnBall()
	b.Pos = core.Vec2{X: 0.5, Y: 0.3}
	b.Vel = core.Vec2{}

	now := t0
	for i := 0; i < 60; i++ {
		now = now.Add(33 * time.Millisecond)
		res := g.Step(core.HandFrame(core.HandLeft, hand), now)
		if countEvents(res.Events, EventCaught) == 1 {
			if b.HeldBy != core.HandLeft {
				t.Fatalf("holder = %v, expected left", b.HeldBy)
			}
			if b.Vel.X != 0 || b.Vel.Y != 0 {
				t.Fatalf("caught ball vel = %+v, expected zero", b.Vel)
			}
			// Catch happens within one frame of entering reach
			reach := b.Radius + g.Config().Physics.HandRadius/2
			if d := core.EllipticalDist(b.Pos, hand, CatchYScale); d >= reach {
				t.Fatalf("caught at distance %v, outside reach %v", d, reach)
			}
			return
		}
	}
	t.Fatal("ball falling through a stationary hand was never caught")
}
