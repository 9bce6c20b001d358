package asset

import (
	"fmt"

	"github.com/lixenwraith/console-caster/render"
	"github.com/lixenwraith/console-caster/terminal"
)

// Built-in sprite names, also the file stems looked up in the assets directory
const (
	NameWall   = "fullWall"
	NameBullet = "bullet"
	NameTarget = "target"
	NamePistol = "pistol"
)

// MaxScore is the largest count the scoreboard can show
const MaxScore = 99

// ScoreName returns the asset name of the scoreboard for n remaining targets
func ScoreName(n int) string {
	return fmt.Sprintf("scoreBoard%d", n)
}

// artPalette maps text-art pixels to background attributes, '.' is transparent
var artPalette = map[byte]terminal.Attr{
	'.': terminal.AttrTransparent,
	'K': 0x00,
	'b': 0x10,
	'g': 0x20,
	'c': 0x30,
	'r': 0x40,
	'm': 0x50,
	'y': 0x60,
	'w': 0x70,
	'd': 0x80,
	'B': 0x90,
	'G': 0xA0,
	'C': 0xB0,
	'R': 0xC0,
	'M': 0xD0,
	'Y': 0xE0,
	'W': 0xF0,
}

// Art builds a sprite from palette-coded rows
// Unknown pixels and short rows are transparent
func Art(rows []string) *render.Sprite {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	s := render.NewSprite(width, len(rows), render.TransparentCell)
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if a, ok := artPalette[r[x]]; ok {
				s.Cells[y*width+x] = render.Cell{Glyph: ' ', Attr: a}
			}
		}
	}
	return s
}

var wallArt = []string{
	"wwwwwwwwwwwwwwww",
	"rrrrrrrwrrrrrrrw",
	"rRrrrrrwrRrrrrrw",
	"wwwwwwwwwwwwwwww",
	"rrrwrrrrrrrwrrrr",
	"rrrwrRrrrrrwrRrr",
	"wwwwwwwwwwwwwwww",
	"rrrrrrrwrrrrrrrw",
}

var targetArt = []string{
	"...RRRRRR...",
	"..RWWWWWWR..",
	".RWRRRRRRWR.",
	"RWRWWWWWWRWR",
	"RWRWRRRRWRWR",
	"RWRWRYYRWRWR",
	"RWRWRYYRWRWR",
	"RWRWRRRRWRWR",
	"RWRWWWWWWRWR",
	".RWRRRRRRWR.",
	"..RWWWWWWR..",
	"...RRRRRR...",
}

var bulletArt = []string{
	".YY.",
	"YWWY",
	"YWWY",
	".YY.",
}

var pistolArt = []string{
	".....KK.....",
	"....KwwK....",
	"....KwwK....",
	"....KwwK....",
	"...KdwwdK...",
	"...KdwwdK...",
	"...KddddK...",
	"..yyKddKyy..",
	".yyyyKKyyyy.",
	".yyyyyyyyyy.",
	"yyyyyyyyyyyy",
	"yyyyyyyyyyyy",
}

var scoreIcon = []string{
	".RRR.",
	"RWWWR",
	"RWRWR",
	"RWWWR",
	".RRR.",
}

var digitFont = [10][5]string{
	{"###", "#.#", "#.#", "#.#", "###"},
	{".#.", "##.", ".#.", ".#.", "###"},
	{"###", "..#", "###", "#..", "###"},
	{"###", "..#", "###", "..#", "###"},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "###", "..#", "###"},
	{"###", "#..", "###", "#.#", "###"},
	{"###", "..#", "..#", "..#", "..#"},
	{"###", "#.#", "###", "#.#", "###"},
	{"###", "#.#", "###", "..#", "###"},
}

const (
	scoreWidth  = 15
	scoreHeight = 7
	scoreFrame  = terminal.Attr(0x70)
	scoreDigit  = terminal.Attr(0xE0)
)

// Scoreboard renders a framed target icon followed by n as two digits
func Scoreboard(n int) *render.Sprite {
	n = min(max(n, 0), MaxScore)
	s := render.NewSprite(scoreWidth, scoreHeight, render.BlankCell)

	for x := 0; x < scoreWidth; x++ {
		s.Cells[x].Attr = scoreFrame
		s.Cells[(scoreHeight-1)*scoreWidth+x].Attr = scoreFrame
	}
	for y := 0; y < scoreHeight; y++ {
		s.Cells[y*scoreWidth].Attr = scoreFrame
		s.Cells[y*scoreWidth+scoreWidth-1].Attr = scoreFrame
	}

	for y, row := range scoreIcon {
		for x := 0; x < len(row); x++ {
			if a := artPalette[row[x]]; a.Opaque() {
				s.Cells[(y+1)*scoreWidth+x+1].Attr = a
			}
		}
	}

	blit := func(d, ox int) {
		for y, row := range digitFont[d] {
			for x := 0; x < len(row); x++ {
				if row[x] == '#' {
					s.Cells[(y+1)*scoreWidth+ox+x].Attr = scoreDigit
				}
			}
		}
	}
	blit(n/10, 7)
	blit(n%10, 11)
	return s
}

var builtinArt = map[string][]string{
	NameWall:   wallArt,
	NameTarget: targetArt,
	NameBullet: bulletArt,
	NamePistol: pistolArt,
}

// Builtin returns the compiled-in sprite for name
func Builtin(name string) (*render.Sprite, bool) {
	if rows, ok := builtinArt[name]; ok {
		return Art(rows), true
	}
	var n int
	if _, err := fmt.Sscanf(name, "scoreBoard%d", &n); err == nil && n >= 0 && n <= MaxScore {
		return Scoreboard(n), true
	}
	return nil, false
}
