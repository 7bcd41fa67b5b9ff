package game

import (
	"time"

	"github.com/handwave/catchball/internal/core"
)

// resolveHands runs the per-hand catch/throw decisions for one frame, in
// deterministic left-then-right order:
//
//  1. throw evaluation: release the top of the stack when the hand flicks
//     upward past the threshold and the cooldown has elapsed
//  2. held-ball repositioning: held balls track the palm rigidly with a
//     per-slot vertical offset
//  3. drop-on-loss: a hand absent this frame releases everything it holds
//     with no velocity change
func (g *Game) resolveHands(now time.Time, events []Event) []Event {
	cooldown := time.Duration(g.cfg.Throw.CooldownMS) * time.Millisecond

	for side := core.HandLeft; side <= core.HandRight; side++ {
		h := &g.hands[side]

		// 1. Throw evaluation
		if h.Present && len(h.Held) > 0 &&
			h.Vel.Y < g.cfg.Throw.Threshold &&
			now.Sub(h.LastThrow) > cooldown {

			id := h.Held[len(h.Held)-1]
			h.Held = h.Held[:len(h.Held)-1]

			if b := g.ball(id); b != nil {
				b.HeldBy = core.HandNone
				jitter := g.rng.Range(-g.cfg.Throw.Jitter, g.cfg.Throw.Jitter)
				b.Vel = core.Vec2{
					X: h.Vel.X*g.cfg.Throw.Damping + jitter,
					Y: h.Vel.Y*g.cfg.Throw.Damping + g.cfg.Throw.Pop,
				}
			}

			h.LastThrow = now
			g.score += ScorePerThrow
			events = append(events,
				Event{Kind: EventThrown, Side: side, BallID: id},
				Event{Kind: EventScore, Score: g.score, Delta: ScorePerThrow},
			)
		}

		// 2. Held-ball repositioning
		for i, id := range h.Held {
			b := g.ball(id)
			if b == nil {
				continue
			}
			slot := core.Min(i, MaxStackDepth-1)
			b.Pos = core.Vec2{X: h.Pos.X, Y: h.Pos.Y - StackOffset*float64(slot)}
			b.Vel = core.Vec2{}
		}

		// 3. Drop-on-loss
		if !h.Present && len(h.Held) > 0 {
			for _, id := range h.Held {
				if b := g.ball(id); b != nil {
					b.HeldBy = core.HandNone
				}
				events = append(events, Event{Kind: EventDropped, Side: side, BallID: id})
			}
			h.Held = h.Held[:0]
		}
	}

	return events
}

// tryCatch tests a free ball against both hands, left first. A caught ball
// is attached immediately, so it is excluded from the right hand's test in
// the same frame and can never be held by two hands. Catches are not gated
// by the throw cooldown.
func (g *Game) tryCatch(b *Ball, events []Event) ([]Event, bool) {
	// Strongly rising balls (just thrown) are uncatchable.
	if b.Vel.Y <= CatchMaxRiseVY {
		return events, false
	}

	for side := core.HandLeft; side <= core.HandRight; side++ {
		h := &g.hands[side]
		if !h.Present {
			continue
		}
		reach := b.Radius + g.cfg.Physics.HandRadius/2
		if core.EllipticalDist(b.Pos, h.Pos, CatchYScale) < reach {
			b.HeldBy = side
			b.Vel = core.Vec2{}
			h.Held = append(h.Held, b.ID)
			events = append(events, Event{Kind: EventCaught, Side: side, BallID: b.ID})
			return events, true
		}
	}

	return events, false
}
