package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestGrid(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewGrid(size.X, size.Y)
	}, RGBAModel)
}

func TestCRGB16Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewCRGB16Image(size.X, size.Y)
	}, CRGB16Model)
}

func TestCBGR16Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewCBGR16Image(size.X, size.Y)
	}, CBGR16Model)
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(3, 1),
		image.Pt(256, 32),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("in-bounds-matching-model", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := model.Convert(testRandomColor())
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 || x >= test.X || y >= test.Y {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if r, g, b, _ := i.At(x, y).RGBA(); r|g|b != 0 {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func TestNewGridIsTransparent(t *testing.T) {
	g := NewGrid(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if v := g.RGBAAt(x, y); v != Transparent {
				t.Fatalf("pixel (%d,%d) is %#+v, expected transparent black", x, y, v)
			}
		}
	}
	if g := NewGrid(-1, 4); g.Width() != 0 || g.Height() != 0 {
		t.Errorf("expected empty grid for negative size, got %dx%d", g.Width(), g.Height())
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	want := map[image.Point]RGBA{}
	for y := 20; y < 22; y++ {
		for x := 10; x < 13; x++ {
			c := color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: uint8(0x80 + x)}
			src.SetNRGBA(x, y, c)
			want[image.Pt(x-10, y-20)] = RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}

	t.Run("nrgba", func(it *testing.T) {
		g := FromImage(src)
		if v := g.Bounds(); v != image.Rect(0, 0, 3, 2) {
			it.Fatalf("expected bounds normalized to origin, got %s", v)
		}
		for p, c := range want {
			if v := g.RGBAAt(p.X, p.Y); v != c {
				it.Errorf("pixel %s is %#+v, expected %#+v", p, v, c)
			}
		}
	})

	t.Run("rgba", func(it *testing.T) {
		opaque := image.NewRGBA(image.Rect(-1, -1, 1, 1))
		opaque.SetRGBA(-1, -1, color.RGBA{R: 10, G: 20, B: 30, A: 0xff})
		opaque.SetRGBA(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 0xff})
		g := FromImage(opaque)
		if v := g.RGBAAt(0, 0); v != (RGBA{R: 10, G: 20, B: 30, A: 0xff}) {
			it.Errorf("pixel (0,0) is %#+v", v)
		}
		if v := g.RGBAAt(1, 1); v != (RGBA{R: 200, G: 100, B: 50, A: 0xff}) {
			it.Errorf("pixel (1,1) is %#+v", v)
		}
	})
}

func TestGridClone(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetRGBA(1, 1, RGBA{R: 1, G: 2, B: 3, A: 4})
	c := g.Clone()
	c.SetRGBA(1, 1, RGBA{R: 5, G: 6, B: 7, A: 8})
	if v := g.RGBAAt(1, 1); v != (RGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("clone shares pixel memory with original: %#+v", v)
	}
	if v := c.NRGBA().NRGBAAt(1, 1); v != (color.NRGBA{R: 5, G: 6, B: 7, A: 8}) {
		t.Errorf("NRGBA view pixel is %#+v", v)
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
