package core

// Color is a foreground color for a screen cell.
// It holds anything lipgloss accepts as a color: an ANSI index ("1", "208")
// or a hex string ("#E84855"). The empty Color means terminal default.
type Color string

// Predefined colors for HUD and overlay elements.
const (
	ColorDefault     Color = ""
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorBlue        Color = "4"
	ColorMagenta     Color = "5"
	ColorCyan        Color = "6"
	ColorWhite       Color = "7"
	ColorBrightRed   Color = "9"
	ColorBrightWhite Color = "15"
	ColorOrange      Color = "208"
	ColorGray        Color = "245"
)
