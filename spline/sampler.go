package spline

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/waypath"
	"github.com/npillmayer/waypath/tangent"
)

// tracer writes to trace with key 'spline'
func tracer() tracing.Trace {
	return tracing.Select("spline")
}

// HeightQuery finds a surface above or below a position. It returns the
// vertical coordinate of the nearest hit, or false if there is no surface.
// Implementations pre-filter multiple hits.
type HeightQuery interface {
	QueryHeight(p waypath.Vec3) (float64, bool)
}

// HeightQueryFunc adapts a function to the HeightQuery interface.
type HeightQueryFunc func(p waypath.Vec3) (float64, bool)

// QueryHeight implements HeightQuery.
func (f HeightQueryFunc) QueryHeight(p waypath.Vec3) (float64, bool) {
	return f(p)
}

// Options control one sampling pass.
type Options struct {
	Closed  bool        // connect the last control point back to the first
	Density int         // samples per 10 units of segment length
	Ground  HeightQuery // snap points onto a surface; nil disables snapping
}

// Result is the outcome of sampling a list of control points.
type Result struct {
	Samples  []*waypath.Waypoint // the dynamic curve, with frames and velocities
	Authored []waypath.Vec3      // positions of the control points after ground snapping
	Frames   []waypath.Frame     // tangent frames of the control points
}

// Sample expands control points into a dense dynamic curve.
//
// Segment i runs from point i to point i+1 (wrapping for closed curves) and
// is resolved into ceil(d*Density/10) steps, where d is the distance of
// the points before snapping. Open curves emit both ends of every segment,
// so neighbouring segments share a duplicated boundary sample; closed
// curves emit the start of every segment only. Every segment emits at least
// its start sample, and an open curve always ends on its last point.
//
// Sample does not modify points. With ground snapping enabled, the snapped
// control point positions are returned in Result.Authored; writing them
// back is the caller's business.
//
// Zero control points yield an empty result, one control point yields a
// single sample with zero velocity.
func Sample(points []waypath.Waypoint, opts Options) (*Result, error) {
	n := len(points)
	res := &Result{}
	if n == 0 {
		tracer().Debugf("no control points, empty curve")
		return res, nil
	}
	density := max(opts.Density, 0)
	distances := make([]float64, n)
	for i := range points {
		distances[i] = waypath.Distance(points[i].Position, points[(i+1)%n].Position)
	}
	res.Authored = make([]waypath.Vec3, n)
	for i, wp := range points {
		res.Authored[i] = snap(wp.Position, opts.Ground)
	}
	frames, err := tangent.Frames(res.Authored, opts.Closed)
	if err != nil {
		return nil, err
	}
	res.Frames = frames

	var curve []*waypath.Waypoint
	if n == 1 {
		curve = append(curve, boundary(points[0], res.Authored[0], frames[0]))
	}
	shift := 0
	if opts.Closed {
		shift = 1
	}
	for i := 0; i < n && n > 1; i++ {
		if i == n-1 && !opts.Closed {
			continue
		}
		next := (i + 1) % n
		steps := int(math.Ceil(distances[i] * float64(density) / 10))
		last := max(steps-shift, 0)
		for j := 0; j <= last; j++ {
			t := 0.0
			if steps > 0 {
				t = float64(j) / float64(steps)
			}
			pos := snap(tangent.Eval(frames[i], frames[next], t), opts.Ground)
			if j == 0 {
				curve = append(curve, boundary(points[i], pos, frames[i]))
				continue
			}
			if j == steps && !opts.Closed {
				curve = append(curve, boundary(points[next], pos, frames[i]))
				continue
			}
			curve = append(curve, &waypath.Waypoint{
				Position:   pos,
				IsTemp:     true,
				LabelColor: waypath.White,
				Frame:      frames[i],
			})
		}
		if steps == 0 && !opts.Closed && i == n-2 {
			curve = append(curve, boundary(points[next], res.Authored[next], frames[next]))
		}
		tracer().Debugf("segment %d: length %.4g, %d steps", i, distances[i], steps)
	}
	if err := refine(curve, opts.Closed); err != nil {
		return nil, err
	}
	res.Samples = curve
	tracer().Infof("sampled %d control points into %d samples", n, len(curve))
	return res, nil
}

// refine replaces the frames of the samples by frames fitted to the
// samples themselves and derives each sample's velocity from them.
func refine(curve []*waypath.Waypoint, closed bool) error {
	m := len(curve)
	positions := make([]waypath.Vec3, m)
	for i, s := range curve {
		positions[i] = s.Position
	}
	frames, err := tangent.Frames(positions, closed)
	if err != nil {
		return err
	}
	for i, s := range curve {
		s.Frame = frames[i]
	}
	for i, s := range curve {
		s.Velocity = velocity(curve, i, 0)
	}
	return nil
}

// velocity at sample i, parameter t within the segment towards sample i+1,
// scaled by the sample count.
func velocity(curve []*waypath.Waypoint, i int, t float64) waypath.Vec3 {
	m := len(curve)
	v := tangent.Velocity(curve[i].Frame, curve[(i+1)%m].Frame, t)
	return waypath.Scaled(v, float64(m))
}

// A sample coinciding with an authored control point.
func boundary(wp waypath.Waypoint, pos waypath.Vec3, f waypath.Frame) *waypath.Waypoint {
	return &waypath.Waypoint{
		Position:   pos,
		Caption:    wp.Caption,
		LabelColor: waypath.White,
		Frame:      f,
	}
}

func snap(p waypath.Vec3, ground HeightQuery) waypath.Vec3 {
	if ground == nil {
		return p
	}
	if h, ok := ground.QueryHeight(p); ok {
		p[1] = h
	}
	return p
}
