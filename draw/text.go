package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	labelFont     *truetype.Font
	labelFontErr  error
	labelFontOnce sync.Once
)

func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = freetype.ParseFont(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// Label draws text in Go Regular at size points (72 DPI), with the baseline starting at pt.
// Text outside dst is clipped.
func Label(dst Image, pt image.Point, size float64, c color.Color, text string) error {
	f, err := loadLabelFont()
	if err != nil {
		return err
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))

	_, err = ctx.DrawString(text, freetype.Pt(pt.X, pt.Y))
	return err
}

// LabelHeight returns the line height in pixels of a label drawn at size points.
func LabelHeight(size float64) int {
	return int(size*1.25 + 0.5)
}
