package terminal

import "github.com/gdamore/tcell/v2"

// palette maps IRGB indices to the 16 standard terminal colors
var palette = [16]tcell.Color{
	tcell.ColorBlack,   // 0
	tcell.ColorNavy,    // 1 blue
	tcell.ColorGreen,   // 2 green
	tcell.ColorTeal,    // 3 green|blue
	tcell.ColorMaroon,  // 4 red
	tcell.ColorPurple,  // 5 red|blue
	tcell.ColorOlive,   // 6 red|green
	tcell.ColorSilver,  // 7
	tcell.ColorGray,    // 8 intensity
	tcell.ColorBlue,    // 9
	tcell.ColorLime,    // 10
	tcell.ColorAqua,    // 11
	tcell.ColorRed,     // 12
	tcell.ColorFuchsia, // 13
	tcell.ColorYellow,  // 14
	tcell.ColorWhite,   // 15
}

// styles caches one tcell style per low attribute byte
var styles [256]tcell.Style

func init() {
	for i := range styles {
		a := Attr(i)
		styles[i] = tcell.StyleDefault.
			Foreground(palette[a.Fg()]).
			Background(palette[a.Bg()])
	}
}

// PaletteColor returns the terminal color for an IRGB index
func PaletteColor(index uint8) tcell.Color {
	return palette[index&0x0F]
}

// Style converts a console attribute to a tcell style
// Bits above the low byte carry no color and are ignored
func Style(a Attr) tcell.Style {
	return styles[a&0xFF]
}
