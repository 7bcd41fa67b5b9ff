package game

import (
	"time"

	"github.com/handwave/catchball/internal/core"
)

// Hand is the tracked state for one hand side.
//
// Velocity is a raw one-frame finite difference of the palm anchor, in
// normalized units per frame. It is deliberately unfiltered: the effective
// magnitude scales with the camera frame rate, and smoothing it here would
// change the feel of the throw gesture the thresholds were tuned against.
type Hand struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Present   bool
	LastThrow time.Time

	// Held lists ball IDs in catch order; the last element is the top of
	// the stack and the first to be released by a throw.
	Held []int

	tracked bool // whether this side has ever been observed
}

// observe consumes one frame of detections and updates hand state.
// Only the first core.NumHands detections are processed, in source order.
// A side absent from the frame keeps its last-known position and velocity
// (stale retention) but loses presence. This never touches balls; the
// resolver reacts to presence changes.
func (g *Game) observe(frame core.Frame) {
	var seen [core.NumHands]bool

	processed := 0
	for _, det := range frame.Hands {
		if processed >= core.NumHands {
			break
		}
		processed++

		if det.Side != core.HandLeft && det.Side != core.HandRight {
			continue
		}
		anchor, ok := core.Anchor(det.Landmarks)
		if !ok {
			continue
		}

		h := &g.hands[det.Side]
		if h.tracked {
			h.Vel = anchor.Sub(h.Pos)
		} else {
			h.Vel = core.Vec2{}
			h.tracked = true
		}
		h.Pos = anchor
		h.Present = true
		seen[det.Side] = true
	}

	for side := range g.hands {
		if !seen[side] {
			g.hands[side].Present = false
		}
	}
}
