package core

// Color is the foreground color of a screen cell. The terminal front end
// maps each value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorOrange
	ColorGray
)
