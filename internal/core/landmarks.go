package core

// Hand landmark indices following the MediaPipe 21-point convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// PalmAnchor is the landmark used as a hand's representative point.
// The middle-finger MCP sits at the center of the palm and is far more
// stable across finger poses than the wrist or any fingertip.
const PalmAnchor = MiddleMCP

// Anchor extracts the palm anchor from a landmark list. Returns false if
// the list is too short to contain it, which callers treat the same as
// the hand being absent from the frame.
func Anchor(landmarks []Vec2) (Vec2, bool) {
	if len(landmarks) <= PalmAnchor {
		return Vec2{}, false
	}
	return landmarks[PalmAnchor], true
}
