package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by all image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	if w < 0 || h < 0 {
		w, h, stride, size = 0, 0, 0, 0
	}
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// Grid is a width × height array of RGBA pixels with its origin at the top-left corner.
//
// A new Grid is fully transparent black. The zero Grid is an empty 0 × 0 grid.
type Grid struct {
	Buffer
}

// NewGrid returns a transparent black grid of the given dimensions. Negative dimensions yield an
// empty grid.
func NewGrid(w, h int) *Grid {
	return &Grid{
		Buffer: makeBuffer(w, h, w*4, w*4*h),
	}
}

// FromImage copies src into a new Grid. The result always has its origin at (0, 0), whatever the
// bounds of src.
func FromImage(src image.Image) *Grid {
	b := src.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			i := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Pix[y*g.Stride:(y+1)*g.Stride], n.Pix[i:i+g.Stride])
		}
		return g
	}
	draw.Draw(g, g.Rect, src, b.Min, draw.Src)
	return g
}

// Width of the grid in pixels.
func (p *Grid) Width() int {
	return p.Rect.Dx()
}

// Height of the grid in pixels.
func (p *Grid) Height() int {
	return p.Rect.Dy()
}

func (p *Grid) ColorModel() color.Model {
	return RGBAModel
}

func (p *Grid) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *Grid) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.RGBAAt(x, y)
}

// RGBAAt returns the pixel at (x, y), or [Transparent] when outside the grid.
func (p *Grid) RGBAAt(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Transparent
	}
	s := p.Pix[p.PixOffset(x, y):]
	return RGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

func (p *Grid) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.SetRGBA(x, y, rgbaModel(c).(RGBA))
}

// SetRGBA stores the pixel at (x, y). Writes outside the grid are ignored.
func (p *Grid) SetRGBA(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	s := p.Pix[p.PixOffset(x, y):]
	s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
}

func (p *Grid) Fill(c color.Color) {
	v := rgbaModel(c).(RGBA)
	pix := []byte{v.R, v.G, v.B, v.A}
	for i, l := 0, len(p.Pix); i < l; i += 4 {
		copy(p.Pix[i:], pix)
	}
}

// Clone returns a deep copy of the grid.
func (p *Grid) Clone() *Grid {
	c := &Grid{Buffer: p.Buffer}
	c.Pix = make([]byte, len(p.Pix))
	copy(c.Pix, p.Pix)
	return c
}

// NRGBA returns an [image.NRGBA] that shares the grid's pixel memory, for use with encoders that
// have fast paths for the standard image types.
func (p *Grid) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.Pix,
		Stride: p.Stride,
		Rect:   p.Rect,
	}
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.LittleEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return CRGB16{v}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := crgb16Model(c).(CRGB16).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *CRGB16Image) Fill(c color.Color) {
	fill16(p.Pix, p.Order, crgb16Model(c).(CRGB16).V)
}

// CBGR16Image is a 16-bits per pixel 5-6-5-bit BGR image.
type CBGR16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCBGR16Image(w, h int) *CBGR16Image {
	return &CBGR16Image{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.LittleEndian,
	}
}

func (p *CBGR16Image) ColorModel() color.Model {
	return CBGR16Model
}

func (p *CBGR16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return CBGR16{v}
}

func (p *CBGR16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := cbgr16Model(c).(CBGR16).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *CBGR16Image) Fill(c color.Color) {
	fill16(p.Pix, p.Order, cbgr16Model(c).(CBGR16).V)
}

func fill16(pix []byte, order binary.ByteOrder, value uint16) {
	bytes := make([]byte, 2)
	order.PutUint16(bytes, value)
	for i, l := 0, len(pix); i < l; i += 2 {
		copy(pix[i:], bytes)
	}
}

// Interface checks.
var (
	_ Image = (*Grid)(nil)
	_ Image = (*CRGB16Image)(nil)
	_ Image = (*CBGR16Image)(nil)
)
