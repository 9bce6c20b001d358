package render

import "math"

// SampleUV returns the nearest source cell for normalized coordinates
// Horizontal maps across W, vertical across H-1: the last row is only reached at v=1
// Out-of-range coordinates and transparent pixels yield TransparentCell
func SampleUV(src *Sprite, u, v float64) Cell {
	if src == nil || src.Width == 0 || src.Height == 0 {
		return TransparentCell
	}
	sx := int(math.Floor(u * float64(src.Width)))
	sy := int(math.Floor(v * float64(src.Height-1)))

	if sx < 0 || sx >= src.Width || sy < 0 || sy >= src.Height {
		return TransparentCell
	}
	c := src.At(sx, sy)
	if c.Attr == Transparent {
		return TransparentCell
	}
	return c
}

// Sample maps target cell (i, j) of a targetW x targetH rectangle onto the source
func Sample(src *Sprite, targetW, targetH float64, i, j int) Cell {
	if targetW <= 0 || targetH <= 0 {
		return TransparentCell
	}
	return SampleUV(src, float64(i)/targetW, float64(j)/targetH)
}

// DrawImage scales src into a targetW x targetH cell rectangle at (x, y)
// Transparent samples are skipped; xOffset shifts columns for off-centre art
func DrawImage(fb *FrameBuffer, x, y int, src *Sprite, targetW, targetH, xOffset float64) {
	for j := 0; float64(j) < targetH; j++ {
		for i := 0; float64(i) < targetW; i++ {
			c := Sample(src, targetW, targetH, i, j)
			if c.Attr == Transparent {
				continue
			}
			fb.SetCell(int(float64(x)+float64(i)+xOffset), y+j, c.Glyph, c.Attr)
		}
	}
}

// DrawText writes a string left to right, one rune per cell
func DrawText(fb *FrameBuffer, x, y int, text string, attr Attr) {
	i := 0
	for _, r := range text {
		fb.SetCell(x+i, y, r, attr)
		i++
	}
}
