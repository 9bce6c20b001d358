package asset

import (
	"image"
	"image/color"

	"github.com/lixenwraith/console-caster/render"
	"github.com/lixenwraith/console-caster/terminal"
)

// Quantize maps an RGB sample to a background console attribute
// Pure white and mostly transparent pixels become the transparency sentinel
func Quantize(c color.Color) terminal.Attr {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < 0x80 {
		return terminal.AttrTransparent
	}
	return quantizeRGB(n.R, n.G, n.B)
}

func quantizeRGB(r, g, b uint8) terminal.Attr {
	if r == 255 && g == 255 && b == 255 {
		return terminal.AttrTransparent
	}

	var a terminal.Attr
	if r > 128 || g > 128 || b > 128 {
		a |= terminal.BgIntensity
	}
	if r > 64 {
		a |= terminal.BgRed
	}
	if g > 64 {
		a |= terminal.BgGreen
	}
	if b > 64 {
		a |= terminal.BgBlue
	}
	return a
}

// FromImage converts every pixel to a blank glyph on its quantized background
func FromImage(img image.Image) *render.Sprite {
	b := img.Bounds()
	s := render.NewSprite(b.Dx(), b.Dy(), render.BlankCell)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			s.Cells[y*s.Width+x] = render.Cell{
				Glyph: ' ',
				Attr:  Quantize(img.At(b.Min.X+x, b.Min.Y+y)),
			}
		}
	}
	return s
}
