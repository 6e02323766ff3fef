package sheet

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/BeatGlow/pixelsort/pixel"
	"github.com/BeatGlow/pixelsort/sorter"
)

func TestGates(t *testing.T) {
	s := Sweep{Start: 0, Stop: 100, Step: 40, Span: 50, Columns: 2, TileSize: 8}
	want := []sorter.Gate{{Min: 0, Max: 50}, {Min: 40, Max: 90}, {Min: 80, Max: 130}}
	got := s.Gates()
	if len(got) != len(want) {
		t.Fatalf("expected %d gates, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("gate %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Sweep
	}{
		{"zero-step", Sweep{Stop: 10, Columns: 1, TileSize: 1}},
		{"negative-step", Sweep{Stop: 10, Step: -1, Columns: 1, TileSize: 1}},
		{"zero-columns", Sweep{Stop: 10, Step: 1, TileSize: 1}},
		{"zero-tile", Sweep{Stop: 10, Step: 1, Columns: 1}},
		{"empty-range", Sweep{Start: 10, Stop: 10, Step: 1, Columns: 1, TileSize: 1}},
		{"too-many-tiles", Sweep{Start: 0, Stop: 255, Step: 0.001, Columns: 4, TileSize: 256}},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if err := test.s.Validate(); !errors.Is(err, ErrInvalidSweep) {
				it.Errorf("expected ErrInvalidSweep, got %v", err)
			}
			if g := test.s.Gates(); g != nil {
				it.Errorf("expected no gates, got %v", g)
			}
			if _, err := Render(pixel.NewGrid(2, 2), &test.s, nil, nil); !errors.Is(err, ErrInvalidSweep) {
				it.Errorf("expected Render to fail with ErrInvalidSweep, got %v", err)
			}
		})
	}
	if err := DefaultSweep.Validate(); err != nil {
		t.Errorf("default sweep is invalid: %v", err)
	}
}

func TestRender(t *testing.T) {
	src := pixel.NewGrid(40, 20)
	rand.New(rand.NewSource(1)).Read(src.Pix)

	s := Sweep{Start: 0, Stop: 255, Step: 64, Span: 80, Columns: 3, TileSize: 32}
	dst, err := Render(src, &s, &sorter.Options{Order: sorter.RightToLeft}, nil)
	if err != nil {
		t.Fatal(err)
	}

	// 4 gates on 3 columns: 2 rows.
	cellW := s.TileSize + 2*padding
	if v := dst.Width(); v != 3*cellW {
		t.Errorf("expected width %d, got %d", 3*cellW, v)
	}
	if dst.Height() <= 2*(s.TileSize+2*padding) {
		t.Errorf("expected room for two rows of tiles and labels, got height %d", dst.Height())
	}

	// Used cells sit on a panel inside the padding.
	if v := dst.RGBAAt(padding/2, padding/2); v != panel {
		t.Errorf("expected panel color in used cell, got %#+v", v)
	}
	if v := dst.RGBAAt(0, 0); v != background {
		t.Errorf("expected background around the panel, got %#+v", v)
	}

	// Unused cell of the second row keeps the background.
	if v := dst.RGBAAt(dst.Width()-padding/2, dst.Height()-padding/2); v != background {
		t.Errorf("expected background in unused cell, got %#+v", v)
	}
}

func TestRenderEmptySource(t *testing.T) {
	s := Sweep{Start: 0, Stop: 10, Step: 10, Span: 10, Columns: 4, TileSize: 16}
	dst, err := Render(pixel.NewGrid(0, 0), &s, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v := dst.Width(); v != 16+2*padding {
		t.Errorf("expected a single column, got width %d", v)
	}
}

func TestMaxTiles(t *testing.T) {
	s := Sweep{Start: 0, Stop: MaxTiles, Step: 1, Span: 1, Columns: 32, TileSize: 1}
	if err := s.Validate(); err != nil {
		t.Fatalf("expected %d tiles to be allowed: %v", MaxTiles, err)
	}
	if n := len(s.Gates()); n != MaxTiles {
		t.Errorf("expected %d gates, got %d", MaxTiles, n)
	}

	s.Stop++
	if err := s.Validate(); !errors.Is(err, ErrInvalidSweep) {
		t.Errorf("expected ErrInvalidSweep above %d tiles, got %v", MaxTiles, err)
	}
}
