// Package gradient colors the samples of a curve along their order.
package gradient

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/waypath"
)

// tracer writes to trace with key 'gradient'
func tracer() tracing.Trace {
	return tracing.Select("gradient")
}

// Stop is a color key of a gradient at position At in [0,1].
type Stop struct {
	At    float64
	Color colorful.Color
}

// Gradient is a piecewise linear color ramp over [0,1].
// We store the stops in a TreeMap (sorted map), keyed by position.
type Gradient struct {
	stops *treemap.Map
}

// New creates a gradient from a set of stops. Positions are clamped to [0,1];
// a later stop at the same position replaces an earlier one.
func New(stops ...Stop) *Gradient {
	g := &Gradient{stops: treemap.NewWith(utils.Float64Comparator)}
	for _, s := range stops {
		g.AddStop(s.At, s.Color)
	}
	return g
}

// FromHex creates a gradient from colors in hex notation ("#rrggbb"),
// spread evenly over [0,1].
func FromHex(colors ...string) (*Gradient, error) {
	g := New()
	for i, h := range colors {
		c, err := ParseColor(h)
		if err != nil {
			return nil, fmt.Errorf("gradient color %d: %w", i, err)
		}
		at := 0.0
		if len(colors) > 1 {
			at = float64(i) / float64(len(colors)-1)
		}
		g.AddStop(at, c)
	}
	return g, nil
}

// ParseColor reads a color in hex notation ("#rgb" or "#rrggbb").
func ParseColor(s string) (colorful.Color, error) {
	return colorful.Hex(s)
}

// AddStop adds a color key. Part of builder functionality.
func (g *Gradient) AddStop(at float64, c colorful.Color) *Gradient {
	g.stops.Put(min(max(at, 0), 1), c)
	return g
}

// N returns the number of stops.
func (g *Gradient) N() int {
	return g.stops.Size()
}

// Evaluate returns the color at t, which is clamped to [0,1]. Colors
// between two stops are blended in RGB; outside of the stops the nearest
// stop's color applies. An empty gradient is white.
func (g *Gradient) Evaluate(t float64) colorful.Color {
	if g == nil || g.stops.Empty() {
		return waypath.White
	}
	t = min(max(t, 0), 1)
	lk, lv := g.stops.Floor(t)
	uk, uv := g.stops.Ceiling(t)
	switch {
	case lk == nil:
		return uv.(colorful.Color)
	case uk == nil:
		return lv.(colorful.Color)
	}
	lo, hi := lk.(float64), uk.(float64)
	if hi <= lo {
		return lv.(colorful.Color)
	}
	return lv.(colorful.Color).BlendRgb(uv.(colorful.Color), (t-lo)/(hi-lo))
}

// Colorize assigns every sample the gradient color at its relative index
// i/(count-1). A single sample gets the color at 0.
func Colorize(samples []*waypath.Waypoint, g *Gradient) {
	count := len(samples)
	for i, s := range samples {
		t := 0.0
		if count > 1 {
			t = float64(i) / float64(count-1)
		}
		s.LabelColor = g.Evaluate(t)
	}
	tracer().Debugf("colorized %d samples", count)
}
