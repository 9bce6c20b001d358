package raycast

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/console-caster/render"
	"github.com/lixenwraith/console-caster/vmath"
)

// Map cell glyphs
const (
	GlyphWall   = '#'
	GlyphFloor  = '.'
	GlyphTarget = '@'
)

// minimapAttr is white on black
const minimapAttr render.Attr = 0x0F

var (
	ErrEmptyMap  = errors.New("map has no rows")
	ErrRaggedMap = errors.New("map rows differ in width")
)

// Map is an immutable grid of wall and floor cells
type Map struct {
	rows   int
	cols   int
	walls  []bool
	spawns []vmath.Vec2
	text   []string
}

// ParseMap reads rows of '#', '.' and '@'; any other glyph is floor
// Blank trailing lines and carriage returns are ignored
func ParseMap(text string) (*Map, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	m := &Map{rows: len(lines), cols: len(lines[0])}
	if m.cols == 0 {
		return nil, ErrEmptyMap
	}
	m.walls = make([]bool, m.rows*m.cols)
	m.text = make([]string, m.rows)

	for r, line := range lines {
		if len(line) != m.cols {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", r, len(line), m.cols, ErrRaggedMap)
		}
		for c := 0; c < m.cols; c++ {
			switch line[c] {
			case GlyphWall:
				m.walls[r*m.cols+c] = true
			case GlyphTarget:
				m.spawns = append(m.spawns, vmath.Vec2{X: float64(r) + 0.5, Y: float64(c) + 0.5})
			}
		}
		m.text[r] = strings.ReplaceAll(line, string(GlyphTarget), string(GlyphFloor))
	}
	return m, nil
}

// Rows returns the map extent along X
func (m *Map) Rows() int { return m.rows }

// Cols returns the map extent along Y
func (m *Map) Cols() int { return m.cols }

// Cell returns the cell containing a map-space point
func Cell(x, y float64) (int, int) {
	return int(math.Floor(x)), int(math.Floor(y))
}

// InBounds reports whether the cell exists
func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// WallAt reports whether a cell is solid; cells outside the map are solid
func (m *Map) WallAt(row, col int) bool {
	if !m.InBounds(row, col) {
		return true
	}
	return m.walls[row*m.cols+col]
}

// Solid reports whether a map-space point lies in a wall or outside the map
func (m *Map) Solid(p vmath.Vec2) bool {
	return m.WallAt(Cell(p.X, p.Y))
}

// Spawns returns the target positions, at cell centres
func (m *Map) Spawns() []vmath.Vec2 {
	out := make([]vmath.Vec2, len(m.spawns))
	copy(out, m.spawns)
	return out
}

// Text returns the rows with spawn markers shown as floor
func (m *Map) Text() []string {
	out := make([]string, len(m.text))
	copy(out, m.text)
	return out
}

// Sprite returns the map as text art for the minimap
func (m *Map) Sprite() *render.Sprite {
	return render.NewTextSprite(m.text, minimapAttr)
}

// FirstFloor returns the centre of the first open cell in row-major order
func (m *Map) FirstFloor() (vmath.Vec2, bool) {
	for i, w := range m.walls {
		if !w {
			return vmath.Vec2{X: float64(i/m.cols) + 0.5, Y: float64(i%m.cols) + 0.5}, true
		}
	}
	return vmath.Vec2{}, false
}
