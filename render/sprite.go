package render

// Sprite is an immutable grid of cells shared by reference between users
type Sprite struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewSprite creates a sprite filled with the given cell
func NewSprite(width, height int, fill Cell) *Sprite {
	width, height = max(width, 0), max(height, 0)
	s := &Sprite{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
	for i := range s.Cells {
		s.Cells[i] = fill
	}
	return s
}

// NewTextSprite builds a sprite from text art rows, one glyph per cell
// Rows shorter than the widest row are padded with transparent cells
func NewTextSprite(rows []string, attr Attr) *Sprite {
	width := 0
	for _, r := range rows {
		width = max(width, len([]rune(r)))
	}
	s := NewSprite(width, len(rows), TransparentCell)
	for y, r := range rows {
		for x, g := range []rune(r) {
			s.Cells[y*width+x] = Cell{Glyph: g, Attr: attr}
		}
	}
	return s
}

// At returns the cell at (x, y) without bounds checking
func (s *Sprite) At(x, y int) Cell {
	return s.Cells[y*s.Width+x]
}
