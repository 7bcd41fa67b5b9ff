// Package protocol defines the JSON wire format between the browser
// tracking client and the game server. Every message is an envelope with
// a type tag and a raw payload, so the dispatch layer never decodes a
// payload it does not recognize.
package protocol

import "encoding/json"

// Version is bumped on any incompatible wire change. The server rejects
// hello messages from a different major version.
const Version = 1

// Client -> server message types.
const (
	MsgHello     = "hello"
	MsgFrame     = "frame"
	MsgStart     = "start"
	MsgStop      = "stop"
	MsgSetTarget = "set_target"
	MsgGameOver  = "game_over"
	MsgCoachAsk  = "coach_ask"
)

// Server -> client message types.
const (
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgEvents  = "events"
	MsgCoach   = "coach"
	MsgError   = "error"
)

// Envelope wraps every wire message.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"`
}

// Hello identifies the client and its protocol version.
type Hello struct {
	Client  string `json:"client"`
	Version int    `json:"version"`
}

// HandSample is one detected hand in a tracking frame. Landmarks are
// normalized [x, y] pairs in tracker order; the palm anchor index is
// fixed by the landmark model, not by the wire format.
type HandSample struct {
	Side      string       `json:"side"` // "Left" or "Right"
	Landmarks [][2]float64 `json:"landmarks"`
}

// FrameMsg carries one tracking frame. Clients send these at camera
// rate; each one advances the simulation exactly one step.
type FrameMsg struct {
	Hands []HandSample `json:"hands"`
}

// SetTarget adjusts the ball population target. Rejected while playing.
type SetTarget struct {
	Count int `json:"count"`
}

// GameOverMsg injects an externally decided terminal condition; the
// engine itself never ends a session.
type GameOverMsg struct {
	Reason string `json:"reason"`
}

// CoachAsk requests a coaching tip for the current session.
type CoachAsk struct {
	Prompt string `json:"prompt,omitempty"`
}

// Welcome is the server's reply to a valid hello.
type Welcome struct {
	Version     int `json:"version"`
	TickRate    int `json:"tickRate"`
	TargetBalls int `json:"targetBalls"`
}

// BallState is one ball in a state broadcast.
type BallState struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Radius float64 `json:"radius"`
	Color  int     `json:"color"`
	HeldBy string  `json:"heldBy,omitempty"` // empty while free
}

// HandState is one tracked hand in a state broadcast.
type HandState struct {
	Side    string  `json:"side"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	Present bool    `json:"present"`
	HeldIDs []int   `json:"heldIds,omitempty"`
}

// State is the full authoritative game state sent after each step.
type State struct {
	State       string      `json:"state"` // "idle" or "playing"
	Score       int         `json:"score"`
	TargetBalls int         `json:"targetBalls"`
	Balls       []BallState `json:"balls"`
	Hands       []HandState `json:"hands"`
}

// Event kind strings used on the wire.
const (
	EvStateChanged = "state_changed"
	EvScore        = "score"
	EvSpawned      = "spawned"
	EvRespawned    = "respawned"
	EvThrown       = "thrown"
	EvCaught       = "caught"
	EvDropped      = "dropped"
	EvGameOver     = "game_over"
)

// WireEvent is one outward simulation event.
type WireEvent struct {
	Kind   string `json:"kind"`
	State  string `json:"state,omitempty"`
	Score  int    `json:"score,omitempty"`
	Delta  int    `json:"delta,omitempty"`
	Side   string `json:"side,omitempty"`
	BallID int    `json:"ballId"`
	Reason string `json:"reason,omitempty"`
}

// Events batches the events produced by one simulation step.
type Events struct {
	Events []WireEvent `json:"events"`
}

// Coach carries a coaching tip back to the client.
type Coach struct {
	Text string `json:"text"`
}

// Error reports a rejected message or server-side failure.
type Error struct {
	Message string `json:"message"`
}
