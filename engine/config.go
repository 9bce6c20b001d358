package engine

import (
	"fmt"

	"github.com/lixenwraith/console-caster/input"
)

// Config is the engine entry-point configuration
// Width/Height are device pixels; the grid is Width/CellWidth x Height/CellHeight cells
type Config struct {
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
	TargetRate int // frames per second, 0 for uncapped
	Borderless bool
	ExitKey    input.Key
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Width:      1280,
		Height:     720,
		CellWidth:  8,
		CellHeight: 16,
		TargetRate: 30,
		Borderless: false,
		ExitKey:    input.KeyEscape,
	}
}

// ScreenSize returns the grid dimensions in cells
func (c Config) ScreenSize() (int, int) {
	return c.Width / c.CellWidth, c.Height / c.CellHeight
}

// Validate rejects configurations that cannot produce a grid
func (c Config) Validate() error {
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", c.CellWidth, c.CellHeight)
	}
	if c.Width < c.CellWidth || c.Height < c.CellHeight {
		return fmt.Errorf("resolution %dx%d smaller than one %dx%d cell", c.Width, c.Height, c.CellWidth, c.CellHeight)
	}
	if c.TargetRate < 0 {
		return fmt.Errorf("target rate must not be negative, got %d", c.TargetRate)
	}
	return nil
}
