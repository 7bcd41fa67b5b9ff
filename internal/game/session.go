// Package game implements the catchball engine: it converts noisy
// per-frame hand-landmark samples into catch/throw decisions and ball
// trajectories. The engine is purely reactive: each delivered frame runs
// one synchronous pass of {hand update, resolver, physics, spawn} and
// returns an outward event list. There is no internal concurrency.
package game

import (
	"fmt"
	"time"

	"github.com/handwave/catchball/internal/config"
	"github.com/handwave/catchball/internal/core"
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game owns all mutable simulation state: the ball registry, both hand
// states, the session machine, and the spawn scheduler. It is not safe
// for concurrent use; callers serialize access (one session per
// connection, one step per frame).
type Game struct {
	state        SessionState
	score        int
	frames       int // frames since session start
	targetBalls  int // configured target, settable while idle
	lockedTarget int // target locked in at the idle->playing transition
	lastSpawn    time.Time

	balls []*Ball
	hands [core.NumHands]Hand

	rng        *SimpleRNG
	runtime    core.RuntimeConfig
	cfg        config.CatchballConfig
	difficulty *config.DifficultyManager
}

// New creates a new game instance. Reset must be called before stepping.
func New() *Game {
	return &Game{}
}

// Reset initializes or restarts the engine: loads configuration, seeds the
// RNG, empties the ball registry, and returns to idle.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCatchball(configPath)
	if err != nil {
		cfg = config.DefaultCatchballConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCatchballPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.state = StateIdle
	g.score = 0
	g.frames = 0
	g.targetBalls = core.Clamp(cfg.Session.TargetBalls, MinTargetBalls, MaxTargetBalls)
	g.lockedTarget = g.targetBalls
	g.lastSpawn = time.Time{}
	g.balls = g.balls[:0]
	g.hands = [core.NumHands]Hand{}
	g.rng = NewSimpleRNG(runtime.Seed)
}

// Config returns the loaded game configuration.
func (g *Game) Config() config.CatchballConfig {
	return g.cfg
}

// State returns the current session state.
func (g *Game) State() SessionState {
	return g.state
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.score
}

// TargetBalls returns the configured target ball count.
func (g *Game) TargetBalls() int {
	return g.targetBalls
}

// SetTargetBalls configures the ball population target.
// Only allowed while not playing; the value locks in at session start.
func (g *Game) SetTargetBalls(n int) error {
	if g.state == StatePlaying {
		return fmt.Errorf("game: target ball count is locked while playing")
	}
	if n < MinTargetBalls || n > MaxTargetBalls {
		return fmt.Errorf("game: target ball count %d out of range [%d,%d]", n, MinTargetBalls, MaxTargetBalls)
	}
	g.targetBalls = n
	return nil
}

// Start transitions idle -> playing: resets the score, recycles any
// out-of-bounds balls so play begins clean, and locks in the target ball
// count. Starting an already-playing session is a no-op.
func (g *Game) Start(now time.Time) []Event {
	if g.state == StatePlaying {
		return nil
	}

	g.state = StatePlaying
	g.score = 0
	g.frames = 0
	g.lockedTarget = g.targetBalls
	g.lastSpawn = time.Time{}

	for _, b := range g.balls {
		if b.Held() {
			continue
		}
		if b.Pos.Y > RespawnY || b.Pos.X < 0 || b.Pos.X > 1 {
			g.placeAtSpawn(b)
		}
	}

	return []Event{
		{Kind: EventStateChanged, State: StatePlaying},
		{Kind: EventScore, Score: 0},
	}
}

// Stop transitions playing -> idle. Held balls are released in place so
// the idle state has no hidden hand attachments. Stopping an idle session
// is a no-op.
func (g *Game) Stop() []Event {
	if g.state != StatePlaying {
		return nil
	}

	for side := range g.hands {
		h := &g.hands[side]
		for _, id := range h.Held {
			if b := g.ball(id); b != nil {
				b.HeldBy = core.HandNone
			}
		}
		h.Held = h.Held[:0]
	}

	g.state = StateIdle
	return []Event{{Kind: EventStateChanged, State: StateIdle}}
}

// InjectGameOver signals an externally decided terminal condition. The
// engine has no termination rule of its own; surrounding product logic
// decides when a session ends. Emits the game-over event with the final
// score, then returns to idle.
func (g *Game) InjectGameOver(reason string) []Event {
	events := []Event{{Kind: EventGameOver, Reason: reason, Score: g.score}}
	return append(events, g.Stop()...)
}

// Step advances the simulation by one frame. The hand tracker always
// consumes the frame so positions stay current across idle periods, but
// the resolver, integrator, and spawn scheduler only run while playing.
// now is wall-clock time, used solely for cooldown and spawn gating.
func (g *Game) Step(frame core.Frame, now time.Time) StepResult {
	g.observe(frame)

	if g.state != StatePlaying {
		return StepResult{}
	}
	g.frames++

	var events []Event
	events = g.resolveHands(now, events)
	events = g.integrate(events)
	events = g.maybeSpawn(now, events)

	return StepResult{Events: events}
}

// maybeSpawn adds one ball per interval while the live count is below the
// locked target. The throttle lets players adjust to each new ball.
func (g *Game) maybeSpawn(now time.Time, events []Event) []Event {
	if len(g.balls) >= g.lockedTarget {
		return events
	}

	intervalMS := SpawnIntervalMS
	if g.difficulty != nil {
		intervalMS = g.difficulty.SpawnIntervalMS(SpawnIntervalMS, g.score, g.frames)
	}
	if !g.lastSpawn.IsZero() && now.Sub(g.lastSpawn) < time.Duration(intervalMS)*time.Millisecond {
		return events
	}

	b := g.spawnBall()
	g.lastSpawn = now
	return append(events, Event{Kind: EventSpawned, BallID: b.ID})
}

// BallView is a read-only copy of one ball for render and transport.
type BallView struct {
	ID     int
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Color  core.Color
	HeldBy core.HandSide
}

// HandView is a read-only copy of one hand for render and transport.
type HandView struct {
	Side    core.HandSide
	Pos     core.Vec2
	Vel     core.Vec2
	Present bool
	HeldIDs []int
}

// Balls returns a copy of the current ball list.
func (g *Game) Balls() []BallView {
	views := make([]BallView, len(g.balls))
	for i, b := range g.balls {
		views[i] = BallView{
			ID:     b.ID,
			Pos:    b.Pos,
			Vel:    b.Vel,
			Radius: b.Radius,
			Color:  b.Color,
			HeldBy: b.HeldBy,
		}
	}
	return views
}

// Hands returns a copy of both hand states, left then right.
func (g *Game) Hands() [core.NumHands]HandView {
	var views [core.NumHands]HandView
	for side := range g.hands {
		h := &g.hands[side]
		held := make([]int, len(h.Held))
		copy(held, h.Held)
		views[side] = HandView{
			Side:    core.HandSide(side),
			Pos:     h.Pos,
			Vel:     h.Vel,
			Present: h.Present,
			HeldIDs: held,
		}
	}
	return views
}
