package framebuffer

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/pixelsort/pixel"
)

func testScreen(bpp uint32, r, g, b uint32, length uint32) *varScreenInfo {
	return &varScreenInfo{
		BitsPerPixel: bpp,
		Red:          bitField{Offset: r, Length: length},
		Green:        bitField{Offset: g, Length: length},
		Blue:         bitField{Offset: b, Length: length},
	}
}

func TestNewImage(t *testing.T) {
	rgb565 := testScreen(16, 11, 5, 0, 5)
	rgb565.Green.Length = 6
	bgr565 := testScreen(16, 0, 5, 11, 5)
	bgr565.Green.Length = 6

	tests := []struct {
		name  string
		info  *varScreenInfo
		bpp   int
		model color.Model
	}{
		{"rgb565", rgb565, 2, pixel.CRGB16Model},
		{"bgr565", bgr565, 2, pixel.CBGR16Model},
		{"bgrx", testScreen(32, 16, 8, 0, 8), 4, color.RGBAModel},
		{"rgbx", testScreen(32, 0, 8, 16, 8), 4, color.RGBAModel},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			buf := pixel.Buffer{
				Rect:   image.Rect(0, 0, 4, 3),
				Pix:    make([]byte, 4*3*test.bpp),
				Stride: 4 * test.bpp,
			}
			img, err := newImage(buf, test.info)
			if err != nil {
				it.Fatal(err)
			}
			if v := img.ColorModel(); v != test.model {
				it.Errorf("expected color model %T, got %T", test.model, v)
			}

			c := color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
			img.Set(3, 2, c)
			if v := img.ColorModel().Convert(c); img.At(3, 2) != v {
				it.Errorf("pixel (3,2) is %#+v, expected %#+v", img.At(3, 2), v)
			}
			img.Fill(color.White)
			if r, g, b, _ := img.At(0, 0).RGBA(); r&g&b != 0xffff {
				it.Errorf("expected white after fill, got %#04x %#04x %#04x", r, g, b)
			}
			img.Clear()
			if r, g, b, _ := img.At(1, 1).RGBA(); r|g|b != 0 {
				it.Errorf("expected black after clear, got %#04x %#04x %#04x", r, g, b)
			}
		})
	}

	if _, err := newImage(pixel.Buffer{}, testScreen(24, 0, 8, 16, 8)); !errors.Is(err, ErrColorModel) {
		t.Errorf("expected ErrColorModel for 24-bit screens, got %v", err)
	}
}

func TestBGRXLayout(t *testing.T) {
	img := &bgrxImage{Buffer: pixel.Buffer{Rect: image.Rect(0, 0, 1, 1), Pix: make([]byte, 4), Stride: 4}}
	img.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 0xff})
	if v := img.Pix; v[0] != 3 || v[1] != 2 || v[2] != 1 {
		t.Errorf("expected B, G, R byte order, got %v", v)
	}
}

func TestShow(t *testing.T) {
	dst := pixel.NewGrid(8, 8)
	dst.Fill(color.White)

	src := pixel.NewGrid(4, 2)
	src.Fill(pixel.RGBA{R: 0xff, A: 0xff})
	Show(dst, src, NoRotation)

	// Centered: rows 3 and 4, columns 2 to 5.
	if v := dst.RGBAAt(2, 3); v != (pixel.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("expected red inside the preview, got %#+v", v)
	}
	if v := dst.RGBAAt(0, 0); v != pixel.Transparent {
		t.Errorf("expected cleared border, got %#+v", v)
	}
}

func TestShowRotated(t *testing.T) {
	dst := pixel.NewGrid(8, 8)

	src := pixel.NewGrid(4, 2)
	src.SetRGBA(0, 0, pixel.RGBA{G: 0xff, A: 0xff})
	Show(dst, src, Rotate90)

	// The 2x4 result sits at columns 3 and 4, rows 2 to 5; the top-left pixel moved top-right.
	if v := dst.RGBAAt(4, 2); v != (pixel.RGBA{G: 0xff, A: 0xff}) {
		t.Errorf("expected green at the top-right of the preview, got %#+v", v)
	}
	if v := dst.RGBAAt(3, 2); v != pixel.Transparent {
		t.Errorf("expected transparent next to it, got %#+v", v)
	}
}
