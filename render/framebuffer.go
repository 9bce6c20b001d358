package render

// FrameBuffer is the fixed-size cell grid every draw call writes into
// Dimensions are set once at construction and never change
type FrameBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewFrameBuffer allocates a cleared buffer; negative dimensions are treated as zero
func NewFrameBuffer(width, height int) *FrameBuffer {
	width, height = max(width, 0), max(height, 0)
	fb := &FrameBuffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	fb.Clear()
	return fb
}

// Width returns the buffer width in cells
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the buffer height in cells
func (fb *FrameBuffer) Height() int { return fb.height }

// inBounds returns true if in buffer bounds
func (fb *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// SetCell overwrites one cell; out-of-bounds writes are ignored
// This is the only write primitive, every draw helper decomposes into SetCell calls
func (fb *FrameBuffer) SetCell(x, y int, glyph rune, attr Attr) {
	if !fb.inBounds(x, y) {
		return
	}
	c := &fb.cells[y*fb.width+x]
	c.Glyph = glyph
	c.Attr = attr
}

// Cell returns the cell at (x, y)
func (fb *FrameBuffer) Cell(x, y int) (Cell, bool) {
	if !fb.inBounds(x, y) {
		return Cell{}, false
	}
	return fb.cells[y*fb.width+x], true
}

// Clear resets all cells to BlankCell using exponential copy
func (fb *FrameBuffer) Clear() {
	if len(fb.cells) == 0 {
		return
	}
	fb.cells[0] = BlankCell
	for filled := 1; filled < len(fb.cells); filled *= 2 {
		copy(fb.cells[filled:], fb.cells[:filled])
	}
}

// Snapshot returns a copy of the grid, row-major
func (fb *FrameBuffer) Snapshot() []Cell {
	out := make([]Cell, len(fb.cells))
	copy(out, fb.cells)
	return out
}

// FlushTo hands the grid to the sink without copying
// The sink must not retain or modify the slice past the call
func (fb *FrameBuffer) FlushTo(sink Sink) {
	sink.Flush(fb.cells, fb.width, fb.height)
}
