package core

// HandSide identifies which hand a detection or game entity belongs to.
type HandSide int

const (
	// HandNone is the sentinel for "no hand", used by balls that are
	// free-falling rather than held.
	HandNone HandSide = -1

	HandLeft  HandSide = 0
	HandRight HandSide = 1

	// NumHands is the number of hands tracked simultaneously. Detections
	// beyond this count are ignored.
	NumHands = 2
)

// String returns a human-readable name for the side.
func (s HandSide) String() string {
	switch s {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	case HandNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseHandSide maps the side label reported by the tracking source
// ("Left"/"Right" in the MediaPipe handedness convention) to a HandSide.
func ParseHandSide(label string) (HandSide, bool) {
	switch label {
	case "Left", "left":
		return HandLeft, true
	case "Right", "right":
		return HandRight, true
	default:
		return HandNone, false
	}
}

// DetectedHand is a single hand detection from the tracking source.
type DetectedHand struct {
	Side      HandSide
	Landmarks []Vec2 // normalized image coordinates, MediaPipe landmark order
}

// Frame is one tick of external input: zero or more hand detections as
// delivered by the tracking source. The video pixels themselves never
// reach the engine; they stay with the render collaborator.
type Frame struct {
	Hands []DetectedHand
}

// HandFrame is a convenience constructor for a frame with a single hand
// whose anchor is at the given position. Used heavily in tests and by the
// virtual-hand simulator.
func HandFrame(side HandSide, anchor Vec2) Frame {
	landmarks := make([]Vec2, NumLandmarks)
	for i := range landmarks {
		landmarks[i] = anchor
	}
	return Frame{Hands: []DetectedHand{{Side: side, Landmarks: landmarks}}}
}
