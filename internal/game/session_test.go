package game

import (
	"math"
	"testing"
	"time"

	"github.com/handwave/catchball/internal/core"
)

func TestStartResetsScoreAndLocksTarget(t *testing.T) {
	g := newTestGame(t)

	if err := g.SetTargetBalls(5); err != nil {
		t.Fatalf("SetTargetBalls while idle: %v", err)
	}

	events := g.Start(t0)
	if g.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing", g.State())
	}
	if countEvents(events, EventStateChanged) != 1 || countEvents(events, EventScore) != 1 {
		t.Errorf("start events = %+v, expected state change and score reset", events)
	}

	if err := g.SetTargetBalls(7); err == nil {
		t.Error("SetTargetBalls while playing should fail")
	}
	if g.TargetBalls() != 5 {
		t.Errorf("target = %d, rejected change must not apply", g.TargetBalls())
	}

	// Starting again while playing is a no-op
	if events := g.Start(t0.Add(time.Second)); events != nil {
		t.Errorf("second Start returned %+v, expected nil", events)
	}

	g.Stop()
	if err := g.SetTargetBalls(7); err != nil {
		t.Errorf("SetTargetBalls after stop: %v", err)
	}
}

func TestSetTargetBallsRange(t *testing.T) {
	g := newTestGame(t)

	for _, n := range []int{MinTargetBalls, MaxTargetBalls} {
		if err := g.SetTargetBalls(n); err != nil {
			t.Errorf("SetTargetBalls(%d): %v", n, err)
		}
	}
	for _, n := range []int{0, -3, MaxTargetBalls + 1} {
		if err := g.SetTargetBalls(n); err == nil {
			t.Errorf("SetTargetBalls(%d) should fail", n)
		}
	}
}

func TestIdleStepDoesNotSimulate(t *testing.T) {
	g := newTestGame(t)

	b := g.spawnBall()
	b.Pos = core.Vec2{X: 0.5, Y: 0.5}
	b.Vel = core.Vec2{Y: 0.01}

	res := g.Step(core.HandFrame(core.HandLeft, core.Vec2{X: 0.5, Y: 0.5}), t0)

	if len(res.Events) != 0 {
		t.Errorf("idle step emitted %+v", res.Events)
	}
	if !approx(b.Pos.Y, 0.5) {
		t.Errorf("ball moved while idle: %+v", b.Pos)
	}
	// The hand tracker still consumes frames while idle
	if !g.Hands()[core.HandLeft].Present {
		t.Error("hand tracking should stay live while idle")
	}
}

func TestSpawnThrottle(t *testing.T) {
	g := newTestGame(t)
	g.Start(t0) // default target is 3

	var spawnTimes []time.Time
	now := t0
	for i := 0; i < 15; i++ {
		now = now.Add(100 * time.Millisecond)
		res := g.Step(core.Frame{}, now)
		if countEvents(res.Events, EventSpawned) > 0 {
			spawnTimes = append(spawnTimes, now)
		}
	}

	if len(spawnTimes) != 3 {
		t.Fatalf("spawned %d balls, expected 3", len(spawnTimes))
	}
	for i := 1; i < len(spawnTimes); i++ {
		if gap := spawnTimes[i].Sub(spawnTimes[i-1]); gap < SpawnIntervalMS*time.Millisecond {
			t.Errorf("spawns %d and %d only %v apart", i-1, i, gap)
		}
	}
	if len(g.Balls()) != 3 {
		t.Errorf("ball count = %d, expected locked target 3", len(g.Balls()))
	}
}

func TestStopReleasesHeldBalls(t *testing.T) {
	g := newTestGame(t)
	startBare(g)

	g.Step(core.HandFrame(core.HandLeft, core.Vec2{X: 0.5, Y: 0.5}), t0)
	b := attachBall(g, core.HandLeft)

	events := g.Stop()

	if g.State() != StateIdle {
		t.Fatalf("state = %v, expected idle", g.State())
	}
	if b.Held() {
		t.Error("held ball should be released on stop")
	}
	if len(g.Hands()[core.HandLeft].HeldIDs) != 0 {
		t.Error("held stack should be empty after stop")
	}
	if countEvents(events, EventStateChanged) != 1 {
		t.Errorf("stop events = %+v", events)
	}
}

func TestInjectGameOver(t *testing.T) {
	g := newTestGame(t)
	g.Start(t0)
	g.score = 30

	events := g.InjectGameOver("time limit")

	if len(events) != 2 {
		t.Fatalf("events = %+v, expected game over then state change", events)
	}
	if events[0].Kind != EventGameOver || events[0].Reason != "time limit" || events[0].Score != 30 {
		t.Errorf("game over event = %+v", events[0])
	}
	if events[1].Kind != EventStateChanged || events[1].State != StateIdle {
		t.Errorf("state event = %+v", events[1])
	}
	if g.State() != StateIdle {
		t.Errorf("state = %v, expected idle", g.State())
	}

	// Idle injection still reports the score but has no transition to make
	events = g.InjectGameOver("shutdown")
	if len(events) != 1 || events[0].Kind != EventGameOver {
		t.Errorf("idle injection events = %+v", events)
	}
}

// scriptFrame produces a deterministic hand path that sweeps the playfield
// with periodic upward flicks and short tracking dropouts, so a full run
// exercises spawns, catches, throws, and drops.
func scriptFrame(i int) core.Frame {
	if i%17 == 0 {
		return core.Frame{} // tracking dropout
	}
	x := 0.5 + 0.35*math.Sin(float64(i)/9)
	y := 0.65
	if i%13 < 2 {
		y -= 0.12 * float64(i%13+1) // two-frame upward flick
	}
	return core.HandFrame(core.HandLeft, core.Vec2{X: x, Y: y})
}

func runScript(seed int64) Snapshot {
	g := New()
	g.Reset(core.RuntimeConfig{TickRate: 30, Seed: seed})
	g.Start(t0)

	now := t0
	for i := 0; i < 300; i++ {
		now = now.Add(33 * time.Millisecond)
		g.Step(scriptFrame(i), now)
	}
	return g.Snapshot()
}

func TestDeterminism(t *testing.T) {
	SetConfigPath("")
	SetDifficultyPreset("")

	a := runScript(42)
	b := runScript(42)
	if a.Hash() != b.Hash() {
		t.Errorf("same seed diverged: %d != %d", a.Hash(), b.Hash())
	}

	c := runScript(43)
	if a.Hash() == c.Hash() {
		t.Error("different seeds produced identical runs")
	}
}

func TestStepNeverPanics(t *testing.T) {
	g := newTestGame(t)
	g.Start(t0)

	frames := []core.Frame{
		{},
		{Hands: []core.DetectedHand{{Side: core.HandSide(9)}}},
		{Hands: []core.DetectedHand{{Side: core.HandLeft, Landmarks: nil}}},
		core.HandFrame(core.HandLeft, core.Vec2{X: -5, Y: 20}),
		core.HandFrame(core.HandRight, core.Vec2{X: math.Inf(1), Y: 0.5}),
	}

	now := t0
	for i := 0; i < 50; i++ {
		now = now.Add(33 * time.Millisecond)
		g.Step(frames[i%len(frames)], now)
	}
}
