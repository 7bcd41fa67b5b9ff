package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The seed drives spawn randomness for deterministic, replayable sessions.
type RuntimeConfig struct {
	TickRate int   // Expected frames per second from the tracking source
	Seed     int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 30,
		Seed:     0,
	}
}
