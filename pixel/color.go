package pixel

import "image/color"

// Models for the standard color types.
var (
	RGBAModel   color.Model = color.ModelFunc(rgbaModel)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
	CBGR16Model color.Model = color.ModelFunc(cbgr16Model)
)

// Transparent is the zero pixel, fully transparent black.
var Transparent = RGBA{}

// RGBA represents a 32-bit color with 8 bits per channel and straight (non-premultiplied) alpha.
type RGBA struct {
	R, G, B, A uint8
}

// RGBA implements [color.Color] and returns alpha-premultiplied values.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

func rgbaModel(c color.Color) color.Color {
	switch c := c.(type) {
	case RGBA:
		return c
	case color.NRGBA:
		return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	return expand565(c.V>>11, c.V>>5, c.V)
}

func crgb16Model(c color.Color) color.Color {
	if c, ok := c.(CRGB16); ok {
		return c
	}
	r, g, b := pack565(c)
	return CRGB16{r<<11 | g<<5 | b}
}

// CBGR16 represents a 16-bit 5-6-5 BGR color.
type CBGR16 struct {
	// CBlue, 5, CGreen, 6, CRed, 5
	V uint16
}

func (c CBGR16) RGBA() (r, g, b, a uint32) {
	return expand565(c.V, c.V>>5, c.V>>11)
}

func cbgr16Model(c color.Color) color.Color {
	if c, ok := c.(CBGR16); ok {
		return c
	}
	r, g, b := pack565(c)
	return CBGR16{b<<11 | g<<5 | r}
}

// pack565 reduces c to 5-bit red, 6-bit green and 5-bit blue components.
func pack565(c color.Color) (r, g, b uint16) {
	cr, cg, cb, _ := c.RGBA()
	return uint16(cr >> 11), uint16(cg >> 10), uint16(cb >> 11)
}

// expand565 widens packed components to 16 bits by duplicating the high bits in the low bits.
// Only the low 5, 6 and 5 bits of red, green and blue are used.
func expand565(red, grn, blu uint16) (r, g, b, a uint32) {
	red &= 0x1f
	grn &= 0x3f
	blu &= 0x1f
	red = red<<3 | red>>2
	grn = grn<<2 | grn>>4
	blu = blu<<3 | blu>>2
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}
