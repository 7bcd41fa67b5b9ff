package game

import (
	"math"
	"testing"
	"time"

	"github.com/handwave/catchball/internal/core"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestGame returns a reset game with a fixed seed and default config.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New()
	g.Reset(core.RuntimeConfig{TickRate: 30, Seed: 42})
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestObserveFirstFrameZeroVelocity(t *testing.T) {
	g := newTestGame(t)

	g.Step(core.HandFrame(core.HandLeft, core.Vec2{X: 0.5, Y: 0.5}), t0)

	h := g.Hands()[core.HandLeft]
	if !h.Present {
		t.Fatal("hand should be present after first detection")
	}
	if h.Vel.X != 0 || h.Vel.Y != 0 {
		t.Errorf("first-frame velocity = %+v, expected zero", h.Vel)
	}
	if !approx(h.Pos.X, 0.5) || !approx(h.Pos.Y, 0.5) {
		t.Errorf("position = %+v, expected {0.5 0.5}", h.Pos)
	}
}

func TestObserveOneFrameVelocity(t *testing.T) {
	g := newTestGame(t)

	g.Step(core.HandFrame(core.HandLeft, core.Vec2{X: 0.5, Y: 0.5}), t0)
	g.Step(core.HandFrame(core.HandLeft, core.Vec2{X: 0.52, Y: 0.46}), t0.Add(33*time.Millisecond))

	h := g.Hands()[core.HandLeft]
	if !approx(h.Vel.X, 0.02) || !approx(h.Vel.Y, -0.04) {
		t.Errorf("velocity = %+v, expected {0.02 -0.04}", h.Vel)
	}
}

func TestObserveStaleRetentionOnLoss(t *testing.T) {
	g := newTestGame(t)

	g.Step(core.HandFrame(core.HandRight, core.Vec2{X: 0.3, Y: 0.7}), t0)
	g.Step(core.Frame{}, t0.Add(33*time.Millisecond)) // hand lost

	h := g.Hands()[core.HandRight]
	if h.Present {
		t.Error("hand should not be present after an empty frame")
	}
	if !approx(h.Pos.X, 0.3) || !approx(h.Pos.Y, 0.7) {
		t.Errorf("stale position = %+v, expected {0.3 0.7}", h.Pos)
	}

	// Re-detection computes velocity against the stale position
	g.Step(core.HandFrame(core.HandRight, core.Vec2{X: 0.35, Y: 0.7}), t0.Add(66*time.Millisecond))
	h = g.Hands()[core.HandRight]
	if !h.Present {
		t.Fatal("hand should be present after re-detection")
	}
	if !approx(h.Vel.X, 0.05) || !approx(h.Vel.Y, 0) {
		t.Errorf("re-detection velocity = %+v, expected {0.05 0}", h.Vel)
	}
}

func TestObserveTracksBothHandsIndependently(t *testing.T) {
	g := newTestGame(t)

	left := core.HandFrame(core.HandLeft, core.Vec2{X: 0.2, Y: 0.5}).Hands[0]
	right := core.HandFrame(core.HandRight, core.Vec2{X: 0.8, Y: 0.6}).Hands[0]
	g.Step(core.Frame{Hands: []core.DetectedHand{left, right}}, t0)

	hands := g.Hands()
	if !hands[core.HandLeft].Present || !hands[core.HandRight].Present {
		t.Fatal("both hands should be present")
	}
	if !approx(hands[core.HandLeft].Pos.X, 0.2) {
		t.Errorf("left pos = %+v", hands[core.HandLeft].Pos)
	}
	if !approx(hands[core.HandRight].Pos.X, 0.8) {
		t.Errorf("right pos = %+v", hands[core.HandRight].Pos)
	}

	// Losing one hand does not disturb the other
	g.Step(core.Frame{Hands: []core.DetectedHand{left}}, t0.Add(33*time.Millisecond))
	hands = g.Hands()
	if !hands[core.HandLeft].Present {
		t.Error("left hand should remain present")
	}
	if hands[core.HandRight].Present {
		t.Error("right hand should be absent")
	}
}

func TestObserveIgnoresDetectionsBeyondTwo(t *testing.T) {
	g := newTestGame(t)

	first := core.HandFrame(core.HandLeft, core.Vec2{X: 0.2, Y: 0.5}).Hands[0]
	second := core.HandFrame(core.HandRight, core.Vec2{X: 0.8, Y: 0.5}).Hands[0]
	// A third detection relabeled left at a different spot must be ignored
	third := core.HandFrame(core.HandLeft, core.Vec2{X: 0.9, Y: 0.9}).Hands[0]

	g.Step(core.Frame{Hands: []core.DetectedHand{first, second, third}}, t0)

	h := g.Hands()[core.HandLeft]
	if !approx(h.Pos.X, 0.2) || !approx(h.Pos.Y, 0.5) {
		t.Errorf("left pos = %+v, expected first detection {0.2 0.5}", h.Pos)
	}
}

func TestObserveShortLandmarkListTreatedAsAbsent(t *testing.T) {
	g := newTestGame(t)

	g.Step(core.Frame{Hands: []core.DetectedHand{{
		Side:      core.HandLeft,
		Landmarks: make([]core.Vec2, 3), // too short to contain the palm anchor
	}}}, t0)

	if g.Hands()[core.HandLeft].Present {
		t.Error("truncated landmark list should not mark the hand present")
	}
}
