package sorter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BeatGlow/pixelsort/scalar"
)

// Gate is the closed luminance interval [Min, Max] a pixel must fall in to be sorted.
//
// A gate with Min > Max is empty: every pixel passes through unsorted.
type Gate struct {
	Min float64
	Max float64
}

// Contains reports whether luminance lies inside the gate, bounds included.
func (g Gate) Contains(luminance float64) bool {
	return luminance >= g.Min && luminance <= g.Max
}

func (g Gate) String() string {
	return strconv.FormatFloat(g.Min, 'g', -1, 64) + "," + strconv.FormatFloat(g.Max, 'g', -1, 64)
}

// ParseGate parses a gate from its "min,max" form.
func ParseGate(s string) (Gate, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return Gate{}, fmt.Errorf("sorter: gate %q is not of the form min,max", s)
	}
	lower, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return Gate{}, fmt.Errorf("sorter: gate minimum %q is not a number", lo)
	}
	upper, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return Gate{}, fmt.Errorf("sorter: gate maximum %q is not a number", hi)
	}
	return Gate{Min: lower, Max: upper}, nil
}

// Order of the sorted pixels within a run.
type Order uint8

// Supported orders.
const (
	LeftToRight Order = iota // Ascending scalar
	RightToLeft              // Descending scalar

	Ascending  = LeftToRight
	Descending = RightToLeft
)

func (o Order) String() string {
	if o == RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

// ParseOrder parses "left-to-right" (or "ascending") and "right-to-left" (or "descending").
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left-to-right", "ascending", "asc":
		return LeftToRight, nil
	case "right-to-left", "descending", "desc":
		return RightToLeft, nil
	default:
		return LeftToRight, fmt.Errorf("sorter: unknown order %q", s)
	}
}

// Axis along which scan lines run.
type Axis uint8

// Supported axes.
const (
	Horizontal Axis = iota // Each row is a scan line
	Vertical               // Each column is a scan line
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis parses "horizontal" or "vertical".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h", "rows":
		return Horizontal, nil
	case "vertical", "v", "columns":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("sorter: unknown axis %q", s)
	}
}

// Grouping decides which in-gate pixels of a scan line are sorted together.
type Grouping uint8

// Supported groupings.
const (
	// Runs sorts every maximal contiguous in-gate span on its own.
	Runs Grouping = iota

	// Line sorts all in-gate pixels of a scan line together, skipping over the out-of-gate
	// pixels between them.
	Line
)

func (g Grouping) String() string {
	if g == Line {
		return "line"
	}
	return "runs"
}

// ParseGrouping parses "runs" or "line".
func ParseGrouping(s string) (Grouping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "runs", "run":
		return Runs, nil
	case "line":
		return Line, nil
	default:
		return Runs, fmt.Errorf("sorter: unknown grouping %q", s)
	}
}

// Options for [Apply].
type Options struct {
	// Gate selects the pixels that take part in sorting.
	Gate Gate

	// Order of the sorted runs.
	Order Order

	// Axis of the scan lines.
	Axis Axis

	// Method selects the sort key. Ignored when Key is set.
	Method scalar.Method

	// Key overrides Method with a custom extractor.
	Key scalar.Func

	// Grouping of in-gate pixels.
	Grouping Grouping

	// Workers is the number of scan lines processed concurrently; values below 2 sort on the
	// calling goroutine.
	Workers int
}

// DefaultOptions are the default sort options.
var DefaultOptions = Options{
	Gate:     Gate{Min: 40, Max: 90},
	Order:    LeftToRight,
	Axis:     Horizontal,
	Method:   scalar.Default,
	Grouping: Runs,
}

func (o *Options) key() scalar.Func {
	if o.Key != nil {
		return o.Key
	}
	return o.Method.Func()
}
