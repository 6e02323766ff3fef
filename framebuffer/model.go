package framebuffer

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/BeatGlow/pixelsort/pixel"
)

// bitField describes the position of one color component in a pixel.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// fixScreenInfo is struct fb_fix_screeninfo from <linux/fb.h>.
type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// varScreenInfo is struct fb_var_screeninfo from <linux/fb.h>.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func (info *varScreenInfo) is(bpp uint32, r, g, b bitField) bool {
	return info.BitsPerPixel == bpp &&
		info.Red.Offset == r.Offset && info.Red.Length == r.Length &&
		info.Green.Offset == g.Offset && info.Green.Length == g.Length &&
		info.Blue.Offset == b.Offset && info.Blue.Length == b.Length
}

// newImage wraps the mapped pixel memory in an image matching the screen's pixel layout.
func newImage(buf pixel.Buffer, info *varScreenInfo) (pixel.Image, error) {
	switch {
	case info.is(16, bitField{Offset: 11, Length: 5}, bitField{Offset: 5, Length: 6}, bitField{Offset: 0, Length: 5}):
		return &pixel.CRGB16Image{Buffer: buf, Order: binary.LittleEndian}, nil
	case info.is(16, bitField{Offset: 0, Length: 5}, bitField{Offset: 5, Length: 6}, bitField{Offset: 11, Length: 5}):
		return &pixel.CBGR16Image{Buffer: buf, Order: binary.LittleEndian}, nil
	case info.is(32, bitField{Offset: 16, Length: 8}, bitField{Offset: 8, Length: 8}, bitField{Offset: 0, Length: 8}):
		return &bgrxImage{Buffer: buf}, nil
	case info.is(32, bitField{Offset: 0, Length: 8}, bitField{Offset: 8, Length: 8}, bitField{Offset: 16, Length: 8}):
		return &rgbxImage{Buffer: buf}, nil
	}
	return nil, ErrColorModel
}

// bgrxImage is a 32-bit image with blue in the lowest byte and the top byte unused.
type bgrxImage struct {
	pixel.Buffer
}

func (p *bgrxImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *bgrxImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	s := p.Pix[p.offset(x, y):]
	return color.RGBA{R: s[2], G: s[1], B: s[0], A: 0xff}
}

func (p *bgrxImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	r, g, b, _ := c.RGBA()
	s := p.Pix[p.offset(x, y):]
	s[0], s[1], s[2], s[3] = byte(b>>8), byte(g>>8), byte(r>>8), 0xff
}

func (p *bgrxImage) Fill(c color.Color) {
	r, g, b, _ := c.RGBA()
	fill32(p.Pix, []byte{byte(b >> 8), byte(g >> 8), byte(r >> 8), 0xff})
}

func (p *bgrxImage) offset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

// rgbxImage is a 32-bit image with red in the lowest byte and the top byte unused.
type rgbxImage struct {
	pixel.Buffer
}

func (p *rgbxImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *rgbxImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	s := p.Pix[p.offset(x, y):]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: 0xff}
}

func (p *rgbxImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	r, g, b, _ := c.RGBA()
	s := p.Pix[p.offset(x, y):]
	s[0], s[1], s[2], s[3] = byte(r>>8), byte(g>>8), byte(b>>8), 0xff
}

func (p *rgbxImage) Fill(c color.Color) {
	r, g, b, _ := c.RGBA()
	fill32(p.Pix, []byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), 0xff})
}

func (p *rgbxImage) offset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func fill32(pix, value []byte) {
	for i, l := 0, len(pix); i+4 <= l; i += 4 {
		copy(pix[i:], value)
	}
}
