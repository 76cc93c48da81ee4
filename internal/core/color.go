package core

// Color is a terminal color understood by lipgloss: a hex string such as
// "#87CEEB" or an ANSI 256-color code such as "208".
// The zero value means the terminal's default color.
type Color string

// ColorDefault leaves the terminal color unchanged.
const ColorDefault Color = ""

// Colors used by HUD overlays. Game palettes come from their theme profiles.
const (
	ColorWhite  Color = "#FFFFFF"
	ColorBlack  Color = "#000000"
	ColorYellow Color = "#FFD700"
	ColorRed    Color = "#FF4136"
	ColorGray   Color = "245"
)
