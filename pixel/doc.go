// Package pixel implements the pixel grid the sorter operates on, plus the packed 16-bit color
// formats used by framebuffer previews.
//
// All types are compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces.
package pixel
