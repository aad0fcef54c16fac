package blocks

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Swatch is one named entry of the color table.
type Swatch struct {
	Name  string
	Color core.Color
}

// Palette is the ordered color table indexed by piece color index.
type Palette []Swatch

// DefaultPalette returns the eight-color table.
func DefaultPalette() Palette {
	return Palette{
		{"white", core.ColorWhite},
		{"red", core.ColorRed},
		{"yellow", core.ColorYellow},
		{"violet", core.ColorMagenta},
		{"cyan", core.ColorCyan},
		{"skyblue", core.ColorSkyBlue},
		{"limegreen", core.ColorLimeGreen},
		{"orange", core.ColorOrange},
	}
}

// PaletteFromNames builds a palette from color names.
func PaletteFromNames(names []string) (Palette, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	p := make(Palette, 0, len(names))
	for _, name := range names {
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", name)
		}
		p = append(p, Swatch{Name: name, Color: c})
	}
	return p, nil
}

// Color maps a color index to a display color.
// Out-of-range indices fall back to ColorDefault.
func (p Palette) Color(index int) core.Color {
	if index < 0 || index >= len(p) {
		return core.ColorDefault
	}
	return p[index].Color
}
