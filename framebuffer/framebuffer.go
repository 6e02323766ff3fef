// Package framebuffer provides access to the operating system's native framebuffer
//
// This requires framebuffer device support in the operating system. The framebuffer can be
// opened with the [Open] call and is drawn to like any other [draw.Image]; [Show] previews a
// sorted image on it.
package framebuffer

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"

	"github.com/BeatGlow/pixelsort/draw"
	"github.com/BeatGlow/pixelsort/pixel"
)

// Errors
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrColorModel   = errors.New("framebuffer: unsupported color model")
)

// Framebuffer is a memory mapped framebuffer device.
type Framebuffer interface {
	pixel.Image

	// Close unmaps the pixel memory and closes the device.
	Close() error
}

// Show clears dst and draws img centered on it, turned by r and scaled down to fit if needed.
func Show(dst pixel.Image, img image.Image, r Rotation) {
	dst.Clear()

	var (
		b     = dst.Bounds()
		thumb = imaging.Fit(r.Apply(img), b.Dx(), b.Dy(), imaging.Box)
		size  = thumb.Bounds().Size()
		at    = b.Min.Add(image.Pt((b.Dx()-size.X)/2, (b.Dy()-size.Y)/2))
	)
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(size)}, thumb, image.Point{}, draw.Src)
}
