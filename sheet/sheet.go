// Package sheet renders contact sheets that compare one image sorted through a sweep of
// luminance gates.
package sheet

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/disintegration/imaging"

	"github.com/BeatGlow/pixelsort/draw"
	"github.com/BeatGlow/pixelsort/internal/logging"
	"github.com/BeatGlow/pixelsort/pixel"
	"github.com/BeatGlow/pixelsort/sorter"
)

// Errors
var (
	ErrInvalidSweep = errors.New("sheet: invalid sweep")
)

// Layout
const (
	labelSize = 12
	padding   = 4

	// MaxTiles caps the number of gates in a sweep.
	MaxTiles = 1024
)

var (
	background = pixel.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
	panel      = pixel.RGBA{R: 0x24, G: 0x24, B: 0x24, A: 0xff}
	frame      = pixel.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	ink        = pixel.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

// Sweep describes the gates of a contact sheet: the gate lower bound steps from Start up to (not
// including) Stop, each gate spanning Span luminance units.
type Sweep struct {
	Start    float64
	Stop     float64
	Step     float64
	Span     float64
	Columns  int
	TileSize int
}

// DefaultSweep are the default sweep settings.
var DefaultSweep = Sweep{
	Start:    0,
	Stop:     255,
	Step:     32,
	Span:     64,
	Columns:  4,
	TileSize: 256,
}

// Validate checks that the sweep describes at least one tile.
func (s *Sweep) Validate() error {
	switch {
	case s.Step <= 0:
		return fmt.Errorf("%w: step %v must be positive", ErrInvalidSweep, s.Step)
	case s.Columns <= 0:
		return fmt.Errorf("%w: columns %d must be positive", ErrInvalidSweep, s.Columns)
	case s.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidSweep, s.TileSize)
	case s.Stop <= s.Start:
		return fmt.Errorf("%w: stop %v must be above start %v", ErrInvalidSweep, s.Stop, s.Start)
	case math.Ceil((s.Stop-s.Start)/s.Step) > MaxTiles:
		return fmt.Errorf("%w: more than %d tiles from %v to %v in steps of %v", ErrInvalidSweep, MaxTiles, s.Start, s.Stop, s.Step)
	}
	return nil
}

// Gates returns the gates of the sweep, in order.
func (s *Sweep) Gates() []sorter.Gate {
	if s.Validate() != nil {
		return nil
	}
	var gates []sorter.Gate
	for i := 0; ; i++ {
		lo := s.Start + float64(i)*s.Step
		if lo >= s.Stop {
			break
		}
		gates = append(gates, sorter.Gate{Min: lo, Max: lo + s.Span})
	}
	return gates
}

// Render sorts src once per gate of the sweep with the other settings taken from o, and lays the
// results out as labelled thumbnails.
func Render(src *pixel.Grid, s *Sweep, o *sorter.Options, log *slog.Logger) (*pixel.Grid, error) {
	if s == nil {
		s = &DefaultSweep
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if o == nil {
		o = &sorter.DefaultOptions
	}
	if log == nil {
		log = logging.Discard()
	}

	var (
		gates   = s.Gates()
		columns = min(s.Columns, len(gates))
		rows    = (len(gates) + columns - 1) / columns
		cellW   = s.TileSize + 2*padding
		cellH   = s.TileSize + 2*padding + draw.LabelHeight(labelSize)
		dst     = pixel.NewGrid(columns*cellW, rows*cellH)
	)
	dst.Fill(background)

	for i, gate := range gates {
		options := *o
		options.Gate = gate
		sorted := sorter.Apply(src, &options)
		log.Debug("Sorted sheet tile", "tile", i, "gate", gate.String())

		var (
			thumb  = imaging.Fit(sorted.NRGBA(), s.TileSize, s.TileSize, imaging.Lanczos)
			cell   = image.Pt(i%columns*cellW, i/columns*cellH)
			size   = thumb.Bounds().Size()
			offset = image.Pt((s.TileSize-size.X)/2, (s.TileSize-size.Y)/2)
			tile   = image.Rectangle{Min: cell.Add(image.Pt(padding, padding)).Add(offset)}
		)
		tile.Max = tile.Min.Add(size)
		draw.Box(dst, image.Rectangle{Min: cell, Max: cell.Add(image.Pt(cellW, cellH))}.Inset(padding/2), panel)
		draw.Draw(dst, tile, thumb, image.Point{}, draw.Src)
		draw.Rectangle(dst, tile.Inset(-1), frame)

		baseline := cell.Add(image.Pt(padding, padding+s.TileSize+draw.LabelHeight(labelSize)))
		if err := draw.Label(dst, baseline, labelSize, ink, gate.String()); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
