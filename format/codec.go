package format

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register the WebP decoder
)

// EncodeOptions tune the encoders that have settings.
type EncodeOptions struct {
	// Quality of JPEG output, 1 to 100.
	Quality int

	// Colors is the palette size of GIF output, 1 to 256.
	Colors int

	// Compression of PNG output.
	Compression png.CompressionLevel
}

// DefaultEncodeOptions are the default encoder settings.
var DefaultEncodeOptions = EncodeOptions{
	Quality:     90,
	Colors:      256,
	Compression: png.DefaultCompression,
}

// Decode reads an image in any supported format. JPEG images are rotated according to their
// EXIF orientation tag.
func Decode(r io.Reader) (image.Image, Format, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Unknown, err
	}

	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, Unknown, ErrUnsupported
		}
		return nil, Unknown, fmt.Errorf("format: %w", err)
	}
	f, err := Parse(name)
	if err != nil {
		return nil, Unknown, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(f == JPEG))
	if err != nil {
		return nil, f, fmt.Errorf("format: decode %s: %w", f, err)
	}
	return img, f, nil
}

// Encode writes img in format f. A nil o uses [DefaultEncodeOptions].
func Encode(w io.Writer, img image.Image, f Format, o *EncodeOptions) error {
	if o == nil {
		o = &DefaultEncodeOptions
	}

	switch f {
	case PNG:
		e := png.Encoder{CompressionLevel: o.Compression}
		return e.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: clamp(o.Quality, 1, 100)})
	case GIF:
		return gif.Encode(w, img, &gif.Options{NumColors: clamp(o.Colors, 1, 256)})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupported, f)
	}
}

// Open decodes the image file at path.
func Open(path string) (image.Image, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Unknown, err
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// Save encodes img to the file at path. An Unknown format is derived from the path extension.
func Save(path string, img image.Image, f Format, o *EncodeOptions) (err error) {
	if f == Unknown {
		if f, err = FromPath(path); err != nil {
			return
		}
	}
	if !f.CanEncode() {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupported, f)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(out)
	if err = Encode(w, img, f, o); err != nil {
		return
	}
	return w.Flush()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
