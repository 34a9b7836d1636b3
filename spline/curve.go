package spline

import (
	"fmt"
	"math"

	"github.com/npillmayer/waypath"
	"github.com/npillmayer/waypath/tangent"
)

// Curve is a computed dynamic curve. It is immutable once created and
// safe for concurrent readers.
//
// Parameter queries treat the curve as a chain of cubic Bezier segments
// between consecutive samples, using uniform parameterization: every
// segment covers the same share of [0,1], regardless of its length.
type Curve struct {
	samples []*waypath.Waypoint
	closed  bool
}

// NewCurve wraps the result of Sample as a queryable curve. The samples
// are copied; later changes to res do not affect the curve.
func NewCurve(res *Result, closed bool) *Curve {
	if res == nil {
		return &Curve{closed: closed}
	}
	samples := make([]*waypath.Waypoint, len(res.Samples))
	for i, s := range res.Samples {
		wp := *s
		samples[i] = &wp
	}
	return &Curve{samples: samples, closed: closed}
}

// Len returns the number of samples.
func (c *Curve) Len() int {
	return len(c.samples)
}

// Closed is a predicate: is this curve cyclic?
func (c *Curve) Closed() bool {
	return c.closed
}

// IsEmpty is a predicate: does the curve have no samples?
func (c *Curve) IsEmpty() bool {
	return len(c.samples) == 0
}

// Validate returns an error wrapping waypath.ErrMissingConfiguration for an
// empty curve.
func (c *Curve) Validate() error {
	if c.IsEmpty() {
		return fmt.Errorf("%w: dynamic curve is empty", waypath.ErrMissingConfiguration)
	}
	return nil
}

// Sample returns a copy of sample i, with i wrapped or clamped as in PositionAtIndex.
func (c *Curve) Sample(i int) (waypath.Waypoint, bool) {
	if c.IsEmpty() {
		return waypath.Waypoint{}, false
	}
	return *c.samples[c.index(i)], true
}

// Samples returns copies of all samples, in order.
func (c *Curve) Samples() []waypath.Waypoint {
	s := make([]waypath.Waypoint, len(c.samples))
	for i, wp := range c.samples {
		s[i] = *wp
	}
	return s
}

// Positions returns the positions of all samples, in order.
func (c *Curve) Positions() []waypath.Vec3 {
	return waypath.Positions(c.Samples())
}

// PositionAt returns the point of the curve at parameter t, clamped to [0,1].
// An empty curve yields the null vector.
func (c *Curve) PositionAt(t float64) waypath.Vec3 {
	if c.IsEmpty() {
		return waypath.Zero
	}
	i, tt := c.segment(t)
	return tangent.Eval(c.samples[i].Frame, c.samples[(i+1)%len(c.samples)].Frame, tt)
}

// VelocityAt returns the derivative of the curve at parameter t, clamped
// to [0,1], multiplied by the number of samples. An empty curve yields the
// null vector.
func (c *Curve) VelocityAt(t float64) waypath.Vec3 {
	if c.IsEmpty() {
		return waypath.Zero
	}
	i, tt := c.segment(t)
	return velocity(c.samples, i, tt)
}

// PositionAtIndex returns the position of sample i. Indices wrap around for
// closed curves and are clamped for open ones.
func (c *Curve) PositionAtIndex(i int) waypath.Vec3 {
	if c.IsEmpty() {
		return waypath.Zero
	}
	return c.samples[c.index(i)].Position
}

// VelocityAtIndex returns the velocity at the start of sample i. Indices
// are resolved as for PositionAtIndex.
func (c *Curve) VelocityAtIndex(i int) waypath.Vec3 {
	if c.IsEmpty() {
		return waypath.Zero
	}
	return c.samples[c.index(i)].Velocity
}

// NearestIndex returns the index of the sample closest to p. Ties go to the
// lowest index. An empty curve yields -1.
//
// This is a linear scan over all samples.
func (c *Curve) NearestIndex(p waypath.Vec3) int {
	best, nearest := math.Inf(1), -1
	for i, s := range c.samples {
		if d := waypath.SqrDistance(p, s.Position); d < best {
			best, nearest = d, i
		}
	}
	return nearest
}

// NearestPosition returns the position of the sample closest to p.
func (c *Curve) NearestPosition(p waypath.Vec3) waypath.Vec3 {
	return c.PositionAtIndex(c.NearestIndex(p))
}

// String renders the curve's segments for debugging.
func (c *Curve) String() string {
	frames := make([]waypath.Frame, len(c.samples))
	for i, s := range c.samples {
		frames[i] = s.Frame
	}
	return tangent.AsString(frames, c.closed)
}

// segment maps t to a segment start index and a local parameter.
func (c *Curve) segment(t float64) (int, float64) {
	m := len(c.samples)
	segs := m
	if !c.closed {
		segs = m - 1
	}
	if math.IsNaN(t) {
		t = 0
	}
	t = min(max(t, 0), 1) * float64(segs)
	i := int(math.Floor(t))
	return i % m, t - float64(i)
}

func (c *Curve) index(i int) int {
	m := len(c.samples)
	if c.closed {
		return (i%m + m) % m
	}
	return min(max(i, 0), m-1)
}
