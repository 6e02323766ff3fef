package scalar

import (
	"math"

	"github.com/BeatGlow/pixelsort/pixel"
)

// Rec. 709 luma coefficients.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luminance of the pixel, in [0, 255]. It gates pixels into runs and is not a sort method.
func Luminance(p pixel.RGBA) float64 {
	return lumaR*float64(p.R) + lumaG*float64(p.G) + lumaB*float64(p.B)
}

// Sum of the red, green and blue channels, in [0, 765].
func Sum(p pixel.RGBA) float64 {
	return float64(p.R) + float64(p.G) + float64(p.B)
}

func RedOf(p pixel.RGBA) float64   { return float64(p.R) }
func GreenOf(p pixel.RGBA) float64 { return float64(p.G) }
func BlueOf(p pixel.RGBA) float64  { return float64(p.B) }
func AlphaOf(p pixel.RGBA) float64 { return float64(p.A) }

// HueOf returns the angle, in degrees, of the pixel around the RGB cube diagonal:
//
//	acos((R - G/2 - B/2) / sqrt(R² + G² + B² - RG - RB - GB))
//
// mirrored to 360 - angle when blue exceeds green. Channels are used unnormalized. Achromatic
// pixels (R = G = B) divide zero by zero and yield NaN.
func HueOf(p pixel.RGBA) float64 {
	r, g, b := float64(p.R), float64(p.G), float64(p.B)

	num := r - 0.5*g - 0.5*b
	den := math.Sqrt(r*r + g*g + b*b - r*g - r*b - g*b)
	deg := math.Acos(num/den) * 180 / math.Pi

	if g >= b {
		return deg
	}
	return 360 - deg
}

// SaturationOf returns d / (1 - (2L - 1)) where d is the channel spread in [0, 1] and L the
// lightness. The (2L - 1) term is not taken absolute, so for L < 0.5 this is lower than HSL
// saturation. Black is 0, white is NaN.
func SaturationOf(p pixel.RGBA) float64 {
	max, min := bounds(p)
	l := lightness(max, min)
	if l > 0 {
		d := (max - min) / 255
		return d / (1 - (2*l - 1))
	}
	return 0
}

// LightnessOf returns the HSL lightness, in [0, 1].
func LightnessOf(p pixel.RGBA) float64 {
	return lightness(bounds(p))
}

func lightness(max, min float64) float64 {
	return (max + min) / 510
}

func bounds(p pixel.RGBA) (max, min float64) {
	hi, lo := p.R, p.R
	for _, c := range [...]uint8{p.G, p.B} {
		if c > hi {
			hi = c
		}
		if c < lo {
			lo = c
		}
	}
	return float64(hi), float64(lo)
}
