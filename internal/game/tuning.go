package game

// Gameplay contract constants. Positions and velocities are in normalized
// playfield units; velocities are per tracking frame, so the effective
// speed scales with the camera frame rate (see Hand velocity notes in
// hand.go). Configurable parameters live in internal/config.
const (
	// ScorePerThrow is awarded for every successful throw.
	ScorePerThrow = 10

	// Target ball count bounds, player-configurable while idle.
	MinTargetBalls = 1
	MaxTargetBalls = 15

	// WallRestitution scales horizontal velocity on wall bounce.
	WallRestitution = 0.8

	// CatchYScale weights the vertical delta in the elliptical catch test.
	CatchYScale = 0.75

	// CatchMaxRiseVY: balls rising faster than this cannot be caught,
	// so a just-thrown ball does not snap straight back into the hand.
	CatchMaxRiseVY = -0.01

	// RespawnY is the off-screen boundary below which a free ball is
	// recycled to a fresh spawn point. Margin past 1.0 keeps balls from
	// vanishing while still partially visible.
	RespawnY = 1.2

	// StackOffset is the vertical gap per held slot; slot 0 sits on the
	// palm anchor. MaxStackDepth caps the visual stack; balls past the
	// cap overlap instead of extending further.
	StackOffset   = 0.06
	MaxStackDepth = 5

	// SpawnIntervalMS throttles consecutive spawns.
	SpawnIntervalMS = 500

	// Fresh spawn placement: random x in a mid-band, y above the visible
	// area, small random horizontal drift.
	SpawnBandMin = 0.3
	SpawnBandMax = 0.7
	SpawnY       = -0.1
	SpawnMaxVX   = 0.005
)
