package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorSkyBlue
	ColorLimeGreen
	ColorOrange
	ColorGray
	ColorDarkGray
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "violet"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorSkyBlue:
		return "skyblue"
	case ColorLimeGreen:
		return "limegreen"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "darkgray"
	default:
		return "unknown"
	}
}

// ParseColor maps a color name to a Color.
// Unknown names return ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	for c := ColorDefault; c <= ColorDarkGray; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return ColorDefault, false
}
