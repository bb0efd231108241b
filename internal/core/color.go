package core

// Color represents a foreground color for a screen cell.
// Values are palette indices; the platform maps them to ANSI 256-color codes.
type Color uint8

// Basic terminal colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Neon palette used by the block pieces and the invaders sprites.
const (
	ColorRose Color = iota + 32
	ColorGold
	ColorAqua
	ColorLavender
	ColorRoyalBlue
	ColorMint
	ColorPink
	ColorViolet
)
