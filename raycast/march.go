package raycast

import (
	"math"

	"github.com/lixenwraith/console-caster/vmath"
)

// MarchStep is the fixed ray increment in map units
const MarchStep = 0.01

// Hit is the result of marching one ray
type Hit struct {
	Distance float64
	SampleX  float64 // horizontal texture coordinate on the struck face, in [0,1)
	Wall     bool    // false when the ray left the map or ran out of range
}

// March advances a ray from origin along angle until it enters a wall cell,
// leaves the map, or reaches maxDist; leaving the map reports maxDist
func March(m *Map, origin vmath.Vec2, angle, maxDist float64) Hit {
	dir := vmath.Heading(angle)
	d := 0.0
	for d < maxDist {
		d += MarchStep
		p := origin.Add(dir.Scale(d))
		row, col := Cell(p.X, p.Y)

		if !m.InBounds(row, col) {
			return Hit{Distance: maxDist}
		}
		if m.WallAt(row, col) {
			return Hit{Distance: d, SampleX: faceOffset(p, row, col), Wall: true}
		}
	}
	return Hit{Distance: d}
}

// faceOffset picks the struck face from the angle between the cell centre and the hit point
// and returns the offset along that face
func faceOffset(p vmath.Vec2, row, col int) float64 {
	midX := float64(row) + 0.5
	midY := float64(col) + 0.5
	a := math.Atan2(p.Y-midY, p.X-midX)

	switch {
	case a >= -math.Pi*0.25 && a < math.Pi*0.25:
		return p.Y - float64(col)
	case a >= math.Pi*0.25 && a < math.Pi*0.75:
		return p.X - float64(row)
	case a >= -math.Pi*0.75 && a < -math.Pi*0.25:
		return p.X - float64(row)
	default:
		return p.Y - float64(col)
	}
}

// Project returns the last sky row and the last wall row for a column at distance d
func Project(height int, d float64) (ceiling, floor int) {
	h := float64(height)
	ceiling = int(h/2 - h/d)
	return ceiling, height - ceiling
}
