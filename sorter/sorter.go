// Package sorter implements luminance-gated pixel sorting along rows or columns of a grid.
//
// Every scan line is walked in index order. Pixels whose luminance falls inside the gate are
// collected into a run; a pixel outside the gate, or the end of the line, ends the run. The run is
// stably sorted by its scalar key and written back into the positions it was collected from.
// Pixels outside the gate are copied through unchanged.
//
// Vertical scans skip the last column and the last row of the grid: those pixels are never read
// and stay transparent black in the output.
package sorter

import (
	"cmp"
	"image"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/BeatGlow/pixelsort/pixel"
	"github.com/BeatGlow/pixelsort/scalar"
)

// Sort returns a new grid of the same size as src with the pixels of every run sorted by key.
// A nil key sorts by [scalar.Sum].
func Sort(src *pixel.Grid, gate Gate, order Order, axis Axis, key scalar.Func) *pixel.Grid {
	return Apply(src, &Options{
		Gate:  gate,
		Order: order,
		Axis:  axis,
		Key:   key,
	})
}

// Apply sorts src with the provided options and returns the result as a new grid. A nil o uses
// [DefaultOptions]. The source grid is not modified.
func Apply(src *pixel.Grid, o *Options) *pixel.Grid {
	if o == nil {
		o = &DefaultOptions
	}

	dst := pixel.NewGrid(src.Width(), src.Height())
	dst.Rect = dst.Rect.Add(src.Rect.Min)

	lines := scanLines(src.Rect, o.Axis)
	if o.Workers < 2 || lines.count < 2 {
		s := newScanner(dst, o)
		for i := 0; i < lines.count; i++ {
			s.scan(src, lines.start(i), lines.step, lines.length)
		}
		return dst
	}

	// Scan lines write disjoint cells of dst, so bands need no locking.
	var (
		g     errgroup.Group
		bands = min(lines.count, o.Workers*4)
	)
	g.SetLimit(o.Workers)
	for band := 0; band < bands; band++ {
		first, last := band*lines.count/bands, (band+1)*lines.count/bands
		g.Go(func() error {
			s := newScanner(dst, o)
			for i := first; i < last; i++ {
				s.scan(src, lines.start(i), lines.step, lines.length)
			}
			return nil
		})
	}
	_ = g.Wait()
	return dst
}

type lineSet struct {
	origin image.Point
	across image.Point // offset between the starts of adjacent lines
	step   image.Point // offset between adjacent pixels of a line
	count  int
	length int
}

func (l lineSet) start(i int) image.Point {
	return l.origin.Add(l.across.Mul(i))
}

func scanLines(r image.Rectangle, axis Axis) lineSet {
	if axis == Vertical {
		return lineSet{
			origin: r.Min,
			across: image.Pt(1, 0),
			step:   image.Pt(0, 1),
			count:  max(r.Dx()-1, 0),
			length: max(r.Dy()-1, 0),
		}
	}
	return lineSet{
		origin: r.Min,
		across: image.Pt(0, 1),
		step:   image.Pt(1, 0),
		count:  r.Dy(),
		length: r.Dx(),
	}
}

type entry struct {
	key   float64
	color pixel.RGBA
}

// scanner carries the pending run of the scan line being walked.
type scanner struct {
	dst       *pixel.Grid
	gate      Gate
	key       scalar.Func
	grouping  Grouping
	compare   func(a, b entry) int
	entries   []entry
	positions []image.Point
}

func newScanner(dst *pixel.Grid, o *Options) *scanner {
	s := &scanner{
		dst:      dst,
		gate:     o.Gate,
		key:      o.key(),
		grouping: o.Grouping,
	}
	if o.Order == RightToLeft {
		// Swapped operands keep equal keys in their original order.
		s.compare = func(a, b entry) int { return compareKeys(b.key, a.key) }
	} else {
		s.compare = func(a, b entry) int { return compareKeys(a.key, b.key) }
	}
	return s
}

func (s *scanner) scan(src *pixel.Grid, p, step image.Point, n int) {
	for i := 0; i < n; i, p = i+1, p.Add(step) {
		c := src.RGBAAt(p.X, p.Y)
		if s.gate.Contains(scalar.Luminance(c)) {
			s.entries = append(s.entries, entry{key: s.key(c), color: c})
			s.positions = append(s.positions, p)
			continue
		}
		if s.grouping == Runs {
			s.flush()
		}
		s.dst.SetRGBA(p.X, p.Y, c)
	}
	s.flush()
}

func (s *scanner) flush() {
	if len(s.entries) == 0 {
		return
	}
	slices.SortStableFunc(s.entries, s.compare)
	for i, p := range s.positions {
		s.dst.SetRGBA(p.X, p.Y, s.entries[i].color)
	}
	s.entries = s.entries[:0]
	s.positions = s.positions[:0]
}

// compareKeys orders keys totally: NaN is greater than every number and equal to itself.
func compareKeys(a, b float64) int {
	switch an, bn := math.IsNaN(a), math.IsNaN(b); {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	return cmp.Compare(a, b)
}
