package game

import "github.com/handwave/catchball/internal/core"

// SessionState is the lifecycle state of a game session.
// Game over is not a state: it is a transient outward event after which
// the session returns to idle.
type SessionState int

const (
	StateIdle    SessionState = iota // not simulating, shown as setup/paused
	StatePlaying                     // simulation and scoring active
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// EventKind identifies an outward event emitted by a simulation step.
type EventKind int

const (
	EventStateChanged EventKind = iota // session transitioned; State is set
	EventScore                        // score changed; Score and Delta are set
	EventSpawned                      // a new ball entered play; BallID is set
	EventRespawned                    // a ball was recycled to a spawn point; BallID is set
	EventThrown                       // a held ball was released by a throw; Side, BallID set
	EventCaught                       // a free ball was caught; Side, BallID set
	EventDropped                      // a held ball fell due to tracking loss; Side, BallID set
	EventGameOver                     // externally injected terminal condition; Reason, Score set
)

// Event is a single outward notification. The step function returns events
// instead of invoking callbacks, so the render, scoring, and coach
// collaborators observe the engine without reaching into it.
type Event struct {
	Kind   EventKind
	State  SessionState
	Score  int
	Delta  int
	Side   core.HandSide
	BallID int
	Reason string
}

// StepResult is returned by Game.Step after each simulated frame.
type StepResult struct {
	Events []Event
}
