// Package terminal bridges the engine's cell grid to a real terminal.
//
// Features:
//   - Console attribute cells (IRGB foreground/background nibbles, 16-color palette)
//   - tcell-backed display sink with an optional framed border around the grid
//   - Raw key-down emulation over terminal key events, real mouse button state
//   - tty and pixel-size detection for sizing the grid
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
