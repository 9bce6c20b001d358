package terminal

// Attr is a console color attribute
// Low nibble is the foreground, high nibble the background
// Each nibble is an IRGB palette index: bit0 blue, bit1 green, bit2 red, bit3 intensity
type Attr uint16

const (
	FgBlue      Attr = 0x01
	FgGreen     Attr = 0x02
	FgRed       Attr = 0x04
	FgIntensity Attr = 0x08
	BgBlue      Attr = 0x10
	BgGreen     Attr = 0x20
	BgRed       Attr = 0x40
	BgIntensity Attr = 0x80
)

// AttrTransparent is reserved as "do not draw"
// White-on-white is never produced by the asset quantizer, which only sets the high nibble
const AttrTransparent Attr = 0xFF

// Cell represents a single display cell
type Cell struct {
	Glyph rune
	Attr  Attr
}

// Fg returns the foreground palette index
func (a Attr) Fg() uint8 { return uint8(a & 0x0F) }

// Bg returns the background palette index
func (a Attr) Bg() uint8 { return uint8(a>>4) & 0x0F }

// Opaque reports whether the attribute is a drawable color
func (a Attr) Opaque() bool { return a != AttrTransparent }
