package main

import (
	"bufio"
	"strconv"

	"github.com/lixenwraith/console-caster/render"
)

const ansiReset = "\x1b[0m"

// ansiColor converts an IRGB palette index to the SGR color offset (0-7, +60 for bright)
// SGR orders bits red, green, blue where IRGB orders them blue, green, red
func ansiColor(index uint8) int {
	c := 0
	if index&0x04 != 0 {
		c |= 1
	}
	if index&0x02 != 0 {
		c |= 2
	}
	if index&0x01 != 0 {
		c |= 4
	}
	if index&0x08 != 0 {
		c += 60
	}
	return c
}

// writeANSI emits the framebuffer as 16-color escape sequences, one line per row
// Style changes are only emitted when the attribute differs from the previous cell
func writeANSI(w *bufio.Writer, fb *render.FrameBuffer) {
	for y := 0; y < fb.Height(); y++ {
		last := render.Attr(0xFFFF)
		for x := 0; x < fb.Width(); x++ {
			c, _ := fb.Cell(x, y)
			if c.Attr != last {
				w.WriteString("\x1b[")
				w.WriteString(strconv.Itoa(30 + ansiColor(c.Attr.Fg())))
				w.WriteByte(';')
				w.WriteString(strconv.Itoa(40 + ansiColor(c.Attr.Bg())))
				w.WriteByte('m')
				last = c.Attr
			}
			w.WriteRune(c.Glyph)
		}
		w.WriteString(ansiReset)
		w.WriteByte('\n')
	}
}
