package core

// Color represents a foreground color for rendering.
// Uses ANSI 256-color codes for terminal compatibility; the browser client
// maps the same values to its own palette.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// BallPalette is the cycle of cosmetic ball colors, in spawn order.
var BallPalette = []Color{
	ColorRed,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorMagenta,
	ColorOrange,
}
