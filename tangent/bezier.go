package tangent

import (
	"fmt"
	"math"

	"github.com/npillmayer/waypath"
)

// Point evaluates the cubic Bezier curve p0 .. controls p1 and p2 .. p3
// at t, where t is clamped to [0,1].
func Point(p0, p1, p2, p3 waypath.Vec3, t float64) waypath.Vec3 {
	t = clamp01(t)
	u := 1 - t
	r := waypath.Scaled(p0, u*u*u)
	r = waypath.Add(r, waypath.Scaled(p1, 3*u*u*t))
	r = waypath.Add(r, waypath.Scaled(p2, 3*u*t*t))
	return waypath.Add(r, waypath.Scaled(p3, t*t*t))
}

// Derivative evaluates the first derivative of the cubic Bezier curve
// p0 .. controls p1 and p2 .. p3 at t, where t is clamped to [0,1].
func Derivative(p0, p1, p2, p3 waypath.Vec3, t float64) waypath.Vec3 {
	t = clamp01(t)
	u := 1 - t
	r := waypath.Scaled(waypath.Sub(p1, p0), 3*u*u)
	r = waypath.Add(r, waypath.Scaled(waypath.Sub(p2, p1), 6*u*t))
	return waypath.Add(r, waypath.Scaled(waypath.Sub(p3, p2), 3*t*t))
}

// Eval evaluates the segment from frame a to frame b at t.
func Eval(a, b waypath.Frame, t float64) waypath.Vec3 {
	return Point(a.Center, a.AbsForward(), b.AbsBackward(), b.Center, t)
}

// Velocity evaluates the derivative of the segment from frame a to frame b at t.
func Velocity(a, b waypath.Frame, t float64) waypath.Vec3 {
	return Derivative(a.Center, a.AbsForward(), b.AbsBackward(), b.Center, t)
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func vstring(v waypath.Vec3, iscontrol bool) string {
	if !waypath.IsFinite(v) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f,%.4f)", round(v[0]), round(v[1]), round(v[2]))
	}
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(v[0]), round(v[1]), round(v[2]))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
