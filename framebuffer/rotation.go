package framebuffer

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// ParseRotation accepts degrees (0, 90, 180, 270) and the names no, right/cw, flip and left/ccw.
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "°")) {
	case "", "no", "0":
		return NoRotation, nil
	case "90", "right", "cw":
		return Rotate90, nil
	case "180", "flip":
		return Rotate180, nil
	case "270", "left", "ccw":
		return Rotate270, nil
	default:
		return NoRotation, fmt.Errorf("framebuffer: invalid rotation %q", s)
	}
}

// Apply returns img turned clock wise by r.
func (r Rotation) Apply(img image.Image) image.Image {
	// imaging rotates counter-clockwise.
	switch r % 4 {
	case Rotate90:
		return imaging.Rotate270(img)
	case Rotate180:
		return imaging.Rotate180(img)
	case Rotate270:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
