// Package format decodes and encodes the image container formats supported by the command line
// tool.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Errors
var (
	ErrUnsupported = errors.New("format: unsupported image format")
)

// Format is an image container format.
type Format uint8

// Supported formats.
const (
	Unknown Format = iota
	PNG
	JPEG
	GIF
	BMP
	TIFF
	WebP
)

var formatNames = [...]string{
	Unknown: "unknown",
	PNG:     "png",
	JPEG:    "jpeg",
	GIF:     "gif",
	BMP:     "bmp",
	TIFF:    "tiff",
	WebP:    "webp",
}

var formatExtensions = map[string]Format{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".jpe":  JPEG,
	".gif":  GIF,
	".bmp":  BMP,
	".dib":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
	".webp": WebP,
}

// Formats returns all known formats.
func Formats() []Format {
	return []Format{PNG, JPEG, GIF, BMP, TIFF, WebP}
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return formatNames[Unknown]
}

// CanEncode reports whether images can be written in this format.
func (f Format) CanEncode() bool {
	switch f {
	case PNG, JPEG, GIF, BMP, TIFF:
		return true
	default:
		return false
	}
}

// Extension returns the canonical file extension, including the leading dot.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tiff"
	case Unknown:
		return ""
	default:
		return "." + f.String()
	}
}

// Parse parses a format name, also accepting "jpg" and "tif".
func Parse(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "jpg":
		return JPEG, nil
	case "tif":
		return TIFF, nil
	}
	for i, n := range formatNames {
		if n == name && Format(i) != Unknown {
			return Format(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// FromPath returns the format matching the file extension of path.
func FromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatExtensions[ext]; ok {
		return f, nil
	}
	return Unknown, fmt.Errorf("%w: no format for extension %q", ErrUnsupported, ext)
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) (err error) {
	*f, err = Parse(string(text))
	return
}
