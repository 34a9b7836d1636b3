package tangent

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/waypath"
)

// tracer writes to trace with key 'tangent'
func tracer() tracing.Trace {
	return tracing.Select("tangent")
}

// Solve calculates the tangent frame of a point, given its neighbours.
// A nil neighbour is absent; it is then replaced by the reflection of the
// other neighbour through center. If both neighbours are absent, Solve
// returns an error wrapping waypath.ErrDegenerateInput.
func Solve(center waypath.Vec3, backward, forward *waypath.Vec3) (waypath.Frame, error) {
	if backward == nil && forward == nil {
		return waypath.Frame{}, fmt.Errorf("%w: frame at %s", waypath.ErrDegenerateInput,
			waypath.VString(center))
	}
	f := waypath.Frame{Center: center}
	if backward != nil {
		f.Backward = *backward
	} else {
		f.Backward = reflect(center, *forward)
	}
	if forward != nil {
		f.Forward = *forward
	} else {
		f.Forward = reflect(center, *backward)
	}
	bv := waypath.Sub(f.Backward, center)
	fv := waypath.Sub(f.Forward, center)

	mainNormal := waypath.Normalized(waypath.Cross(bv, fv))
	backwardNormal := waypath.Normalized(waypath.Cross(mainNormal, bv))
	forwardNormal := waypath.Normalized(waypath.Cross(fv, mainNormal))

	lenB := 0.5 * waypath.Length(bv)
	lenF := 0.5 * waypath.Length(fv)

	angle := (180 - math.Abs(waypath.AngleDeg(bv, fv))) / 2
	rad := angle * waypath.Deg2Rad
	tracer().Debugf("frame at %s: half angle = %.4g°", waypath.VString(center), angle)

	f.PerpBackward = shoulder(lenB, rad, backwardNormal, bv)
	f.PerpForward = shoulder(lenF, rad, forwardNormal, fv)
	f.Bisector = waypath.Normalized(waypath.Add(waypath.Normalized(fv), waypath.Normalized(bv)))
	return f, nil
}

// MustSolve is a compatibility helper which panics on degenerate input.
func MustSolve(center waypath.Vec3, backward, forward *waypath.Vec3) waypath.Frame {
	f, err := Solve(center, backward, forward)
	if err != nil {
		panic(err)
	}
	return f
}

// Frames solves the tangent frames for a sequence of positions. For closed
// paths the neighbours wrap around, for open paths the ends have one
// neighbour only. A single position is its own neighbour on both sides.
func Frames(positions []waypath.Vec3, closed bool) ([]waypath.Frame, error) {
	n := len(positions)
	frames := make([]waypath.Frame, n)
	if n == 1 {
		c := positions[0]
		f, err := Solve(c, &c, &c)
		if err != nil {
			return nil, err
		}
		frames[0] = f
		return frames, nil
	}
	for i := 0; i < n; i++ {
		var b, f *waypath.Vec3
		if closed {
			b = &positions[(n+i-1)%n]
			f = &positions[(i+1)%n]
		} else {
			if i > 0 {
				b = &positions[i-1]
			}
			if i < n-1 {
				f = &positions[i+1]
			}
		}
		frame, err := Solve(positions[i], b, f)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		frames[i] = frame
	}
	return frames, nil
}

// MustFrames is a compatibility helper which panics on degenerate input.
func MustFrames(positions []waypath.Vec3, closed bool) []waypath.Frame {
	frames, err := Frames(positions, closed)
	if err != nil {
		panic(err)
	}
	return frames
}

// Rotate the neighbour direction v by rad towards -normal and scale it to length l.
func shoulder(l, rad float64, normal, v waypath.Vec3) waypath.Vec3 {
	s := waypath.Scaled(normal, -math.Sin(rad))
	c := waypath.Scaled(waypath.Normalized(v), math.Cos(rad))
	return waypath.Scaled(waypath.Normalized(waypath.Add(s, c)), l)
}

func reflect(center, p waypath.Vec3) waypath.Vec3 {
	return waypath.Add(center, waypath.Sub(center, p))
}
