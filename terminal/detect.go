package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback glyph cell size in device pixels when the tty does not report one
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// IsTerminal reports whether stdout is attached to a tty
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Size returns the terminal dimensions in cells
func Size() (cols, rows int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// CellSize returns the glyph cell size in device pixels
// Falls back to DefaultCellWidth x DefaultCellHeight when the tty reports no pixel size
func CellSize() (width, height int) {
	if w, h, ok := cellPixels(); ok {
		return w, h
	}
	return DefaultCellWidth, DefaultCellHeight
}
