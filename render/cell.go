package render

import "github.com/lixenwraith/console-caster/terminal"

// Cell is an alias to terminal.Cell to avoid copying on flush
type Cell = terminal.Cell
type Attr = terminal.Attr

// Transparent is the sentinel attribute; cells carrying it are never drawn
const Transparent = terminal.AttrTransparent

// TransparentCell is returned by the sampler for anything that must not be drawn
var TransparentCell = Cell{Glyph: ' ', Attr: Transparent}

// BlankCell is the cleared state of a framebuffer cell
var BlankCell = Cell{Glyph: ' ', Attr: 0x00}

// Sink receives a finished frame
// Cells are row-major: cells[y*width + x]
type Sink interface {
	Flush(cells []Cell, width, height int)
}
