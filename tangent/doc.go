// Package tangent fits cubic Bezier handles to the points of a path.
/*

Every point of a path gets a tangent frame: two handles, one pointing
towards the previous point and one towards the next, which are collinear
and therefore make the curve pass smoothly through the point. The fit is
local: a frame depends on the point and its two neighbours only, there is
no global spline solve as with Hobby's algorithm.

The handles have half the length of the distance to the corresponding
neighbour. Both handles are rotated away from their neighbour by half of
the supplementary angle between the two neighbour directions, within the
plane spanned by them. At the ends of an open path the missing neighbour
is synthesized by reflecting the present one through the point, which
gives a straight one-sided tangent.

Usage

	frames, err := tangent.Frames(positions, closed)
	...
	p := tangent.Eval(frames[0], frames[1], 0.5)

Segment i of a path is the cubic Bezier curve

	Center(i) .. controls AbsForward(i) and AbsBackward(i+1) .. Center(i+1)

and AsString renders a list of frames in this MetaPost-like notation.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package tangent

import (
	"fmt"

	"github.com/npillmayer/waypath"
)

// AsString returns a path of tangent frames as a (debugging) string,
// including the absolute handle positions of every segment.
//
// Example, an open path through three points:
//
//	(0,0,0) .. controls (5.0000,0.0000,0.0000) and (6.4645,0.0000,-3.5355)
//	  .. (10,0,0) .. controls (13.5355,0.0000,3.5355) and (10.0000,0.0000,5.0000)
//	  .. (10,0,10)
func AsString(frames []waypath.Frame, cycle bool) string {
	var s string
	n := len(frames)
	for i := 0; i < n; i++ {
		if i > 0 {
			s += fmt.Sprintf(" and %s\n  .. ", vstring(frames[i].AbsBackward(), true))
		}
		s += vstring(frames[i].Center, false)
		if i < n-1 || cycle {
			s += fmt.Sprintf(" .. controls %s", vstring(frames[i].AbsForward(), true))
		}
	}
	if cycle && n > 0 {
		s += fmt.Sprintf(" and %s\n  .. cycle", vstring(frames[0].AbsBackward(), true))
	}
	return s
}
