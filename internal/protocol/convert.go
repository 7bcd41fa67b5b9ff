package protocol

import (
	"github.com/handwave/catchball/internal/core"
	"github.com/handwave/catchball/internal/game"
)

// ToFrame converts a wire tracking frame to an engine frame. Detections
// with an unknown side label are dropped here; short landmark lists pass
// through, the engine treats them as absent.
func ToFrame(msg FrameMsg) core.Frame {
	frame := core.Frame{Hands: make([]core.DetectedHand, 0, len(msg.Hands))}
	for _, sample := range msg.Hands {
		side, ok := core.ParseHandSide(sample.Side)
		if !ok {
			continue
		}
		landmarks := make([]core.Vec2, len(sample.Landmarks))
		for i, p := range sample.Landmarks {
			landmarks[i] = core.Vec2{X: p[0], Y: p[1]}
		}
		frame.Hands = append(frame.Hands, core.DetectedHand{Side: side, Landmarks: landmarks})
	}
	return frame
}

// StateOf builds a full state broadcast from the engine's views.
func StateOf(g *game.Game) State {
	balls := g.Balls()
	hands := g.Hands()

	st := State{
		State:       g.State().String(),
		Score:       g.Score(),
		TargetBalls: g.TargetBalls(),
		Balls:       make([]BallState, len(balls)),
		Hands:       make([]HandState, 0, len(hands)),
	}

	for i, b := range balls {
		heldBy := ""
		if b.HeldBy != core.HandNone {
			heldBy = b.HeldBy.String()
		}
		st.Balls[i] = BallState{
			ID:     b.ID,
			X:      b.Pos.X,
			Y:      b.Pos.Y,
			VX:     b.Vel.X,
			VY:     b.Vel.Y,
			Radius: b.Radius,
			Color:  int(b.Color),
			HeldBy: heldBy,
		}
	}

	for _, h := range hands {
		st.Hands = append(st.Hands, HandState{
			Side:    h.Side.String(),
			X:       h.Pos.X,
			Y:       h.Pos.Y,
			VX:      h.Vel.X,
			VY:      h.Vel.Y,
			Present: h.Present,
			HeldIDs: h.HeldIDs,
		})
	}

	return st
}

// EventsOf converts engine events to their wire form.
func EventsOf(events []game.Event) []WireEvent {
	out := make([]WireEvent, len(events))
	for i, ev := range events {
		w := WireEvent{BallID: ev.BallID}
		switch ev.Kind {
		case game.EventStateChanged:
			w.Kind = EvStateChanged
			w.State = ev.State.String()
		case game.EventScore:
			w.Kind = EvScore
			w.Score = ev.Score
			w.Delta = ev.Delta
		case game.EventSpawned:
			w.Kind = EvSpawned
		case game.EventRespawned:
			w.Kind = EvRespawned
		case game.EventThrown:
			w.Kind = EvThrown
			w.Side = ev.Side.String()
		case game.EventCaught:
			w.Kind = EvCaught
			w.Side = ev.Side.String()
		case game.EventDropped:
			w.Kind = EvDropped
			w.Side = ev.Side.String()
		case game.EventGameOver:
			w.Kind = EvGameOver
			w.Reason = ev.Reason
			w.Score = ev.Score
		}
		out[i] = w
	}
	return out
}
