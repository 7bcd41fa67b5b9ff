package game

import (
	"math"

	"github.com/handwave/catchball/internal/core"
)

// Snapshot contains the complete engine state for determinism testing and
// debugging. Uses primitive types only for stable serialization.
type Snapshot struct {
	Frames      int
	State       int
	Score       int
	TargetBalls int

	// Ball state (each ball is 6 values: X, Y, VX, VY, Radius, HeldBy)
	BallCount int
	BallData  []float64

	// Hand state (each hand is 5 values: X, Y, VX, VY, Present)
	HandData []float64

	// Held stacks, flattened per hand with a -1 separator
	HeldData []int

	// RNG state
	RNGState uint64
}

// Snapshot returns the current engine state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(g.balls)*6)
	for _, b := range g.balls {
		ballData = append(ballData,
			b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Radius, float64(b.HeldBy))
	}

	handData := make([]float64, 0, core.NumHands*5)
	heldData := make([]int, 0, 8)
	for side := range g.hands {
		h := &g.hands[side]
		present := 0.0
		if h.Present {
			present = 1.0
		}
		handData = append(handData, h.Pos.X, h.Pos.Y, h.Vel.X, h.Vel.Y, present)
		heldData = append(heldData, h.Held...)
		heldData = append(heldData, -1)
	}

	return Snapshot{
		Frames:      g.frames,
		State:       int(g.state),
		Score:       g.score,
		TargetBalls: g.targetBalls,
		BallCount:   len(g.balls),
		BallData:    ballData,
		HandData:    handData,
		HeldData:    heldData,
		RNGState:    g.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frames)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TargetBalls) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)   //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.HandData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.HeldData {
		h = h*31 + uint64(v+2) //#nosec G115 -- offset keeps the separator positive
	}

	h = h*31 + snap.RNGState
	return h
}
