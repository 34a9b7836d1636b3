package waypath

import (
	"errors"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrDegenerateInput indicates a tangent frame request without any neighbour.
	ErrDegenerateInput = errors.New("point needs at least one neighbour")
	// ErrIndex indicates an index outside the range of a point list.
	ErrIndex = errors.New("index out of range")
	// ErrMissingConfiguration indicates a curve without control points.
	ErrMissingConfiguration = errors.New("curve has no control points")
)

// White is the label color of fresh waypoints.
var White = colorful.Color{R: 1, G: 1, B: 1}

// Frame holds the Bezier handles of a point, derived from the positions of
// its neighbours. The perpendiculars are relative to Center.
type Frame struct {
	Center       Vec3 // the point itself
	Backward     Vec3 // previous point, or its reflection at an open end
	Forward      Vec3 // next point, or its reflection at an open end
	Bisector     Vec3 // unit bisector of the angle Backward-Center-Forward
	PerpForward  Vec3 // handle towards Forward
	PerpBackward Vec3 // handle towards Backward
}

// AbsForward returns the forward handle in world coordinates.
func (f Frame) AbsForward() Vec3 {
	return Add(f.Center, f.PerpForward)
}

// AbsBackward returns the backward handle in world coordinates.
func (f Frame) AbsBackward() Vec3 {
	return Add(f.Center, f.PerpBackward)
}

// Waypoint is either an authored control point (IsTemp == false) or a
// sample of a dynamic curve. Velocity and Frame are only meaningful for
// samples of a computed curve.
type Waypoint struct {
	Position   Vec3
	Velocity   Vec3
	Caption    string
	IsTemp     bool
	LabelColor colorful.Color
	Frame      Frame
}

// NewWaypoint creates an authored control point at pos.
func NewWaypoint(pos Vec3) Waypoint {
	return Waypoint{Position: pos, LabelColor: White}
}

// Positions extracts the positions of a list of waypoints.
func Positions(wps []Waypoint) []Vec3 {
	p := make([]Vec3, len(wps))
	for i, wp := range wps {
		p[i] = wp.Position
	}
	return p
}
