// Package scalar maps a pixel to the single value it is ordered by.
package scalar

import (
	"fmt"
	"strings"

	"github.com/BeatGlow/pixelsort/pixel"
)

// Func returns the ordering scalar of a pixel.
type Func func(pixel.RGBA) float64

// Method selects the ordering scalar.
type Method uint8

// Supported methods.
const (
	Default    Method = iota // Red + green + blue
	Red                      // Red channel
	Green                    // Green channel
	Blue                     // Blue channel
	Alpha                    // Alpha channel
	Hue                      // Hue in degrees
	Saturation               // Saturation
	Lightness                // Lightness in [0, 1]
)

var methodNames = [...]string{
	Default:    "default",
	Red:        "red",
	Green:      "green",
	Blue:       "blue",
	Alpha:      "alpha",
	Hue:        "hue",
	Saturation: "saturation",
	Lightness:  "lightness",
}

// Methods returns all supported methods in declaration order.
func Methods() []Method {
	methods := make([]Method, len(methodNames))
	for i := range methodNames {
		methods[i] = Method(i)
	}
	return methods
}

func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("method(%d)", uint8(m))
}

// ParseMethod parses a method by its (case-insensitive) name.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return Default, fmt.Errorf("scalar: unknown method %q", s)
}

func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) (err error) {
	*m, err = ParseMethod(string(text))
	return
}

// Func returns the extractor for the method. Unknown methods use [Sum].
func (m Method) Func() Func {
	switch m {
	case Red:
		return RedOf
	case Green:
		return GreenOf
	case Blue:
		return BlueOf
	case Alpha:
		return AlphaOf
	case Hue:
		return HueOf
	case Saturation:
		return SaturationOf
	case Lightness:
		return LightnessOf
	default:
		return Sum
	}
}
