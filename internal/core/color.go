package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

// Palette used by the demos.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	colorCount
)

// ColorCount is the number of palette entries.
const ColorCount = int(colorCount)

// PlayerColor returns the color identifying a player on screen.
func PlayerColor(id PlayerID) Color {
	switch id {
	case Player1:
		return ColorBrightCyan
	case Player2:
		return ColorBrightRed
	default:
		return ColorWhite
	}
}
