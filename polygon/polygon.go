/*
Package polygon deals with planar polygons, mainly the footprints of closed
curves.

A footprint is the projection of a curve's samples onto the ground plane
(x and z of the sample positions). Footprints may be tested for containment
of points and clipped against each other.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"bytes"
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/waypath"
	"github.com/npillmayer/waypath/spline"
)

// L traces with key 'polygon'
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a planar polygon. Its knots are connected by straight lines.
type Polygon struct {
	knots []waypath.Pair
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Box creates a rectangle from two opposite corners.
func Box(p1, p2 waypath.Pair) *Polygon {
	xmin, xmax := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	ymin, ymax := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return NullPolygon().Knot(waypath.P(xmin, ymin)).Knot(waypath.P(xmax, ymin)).
		Knot(waypath.P(xmax, ymax)).Knot(waypath.P(xmin, ymax)).Cycle()
}

// Footprint projects the samples of a closed curve onto the XZ plane.
// Consecutive samples with the same projection are merged. The curve must
// yield at least three distinct knots.
func Footprint(c *spline.Curve) (*Polygon, error) {
	if c == nil || !c.Closed() {
		return nil, fmt.Errorf("%w: footprint needs a closed curve", waypath.ErrMissingConfiguration)
	}
	pg := NullPolygon()
	for _, p := range c.Positions() {
		pr := waypath.Flat(p)
		if n := pg.N(); n > 0 && pg.knots[n-1].Equal(pr) {
			continue
		}
		pg.Knot(pr)
	}
	for pg.N() > 1 && pg.knots[pg.N()-1].Equal(pg.knots[0]) {
		pg.knots = pg.knots[:pg.N()-1]
	}
	if pg.N() < 3 {
		return nil, fmt.Errorf("%w: footprint has %d distinct knots", waypath.ErrMissingConfiguration, pg.N())
	}
	L().Debugf("footprint of %d samples has %d knots", c.Len(), pg.N())
	return pg.Cycle(), nil
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p waypath.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// KnotAt returns knot i. Indices wrap around.
func (pg *Polygon) KnotAt(i int) waypath.Pair {
	n := pg.N()
	if n == 0 {
		return waypath.Origin
	}
	return pg.knots[(i%n+n)%n]
}

// Area returns the area enclosed by the polygon (shoelace formula).
// Open polygons and polygons with less than three knots have zero area.
func (pg *Polygon) Area() float64 {
	if !pg.cycle || pg.N() < 3 {
		return 0
	}
	a := 0.0
	for i := range pg.knots {
		p, q := pg.KnotAt(i), pg.KnotAt(i+1)
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return math.Abs(a) / 2
}

// Contains is a predicate: is p inside the polygon?
func (pg *Polygon) Contains(p waypath.Pair) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour().Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Overlaps is a predicate: do two closed polygons share an area?
func (pg *Polygon) Overlaps(other *Polygon) bool {
	if other == nil || pg.Area() == 0 || other.Area() == 0 {
		return false
	}
	a, b := pg.clip(), other.clip()
	if !a.BoundingBox().Overlaps(b.BoundingBox()) {
		return false
	}
	for _, ipg := range pg.Intersection(other) {
		if ipg.Area() > waypath.Epsilon {
			return true
		}
	}
	return false
}

// Intersection clips two closed polygons against each other. The result
// may consist of several disjoint polygons, or none at all.
func (pg *Polygon) Intersection(other *Polygon) []*Polygon {
	if other == nil || pg.Area() == 0 || other.Area() == 0 {
		return nil
	}
	result := pg.clip().Construct(polyclip.INTERSECTION, other.clip())
	pgs := make([]*Polygon, 0, len(result))
	for _, contour := range result {
		ipg := NullPolygon()
		for _, pt := range contour {
			ipg.Knot(waypath.P(pt.X, pt.Y))
		}
		pgs = append(pgs, ipg.Cycle())
	}
	L().Debugf("intersection yields %d polygon(s)", len(pgs))
	return pgs
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pg.N())
	for _, k := range pg.knots {
		c = append(c, polyclip.Point{X: k.X(), Y: k.Y()})
	}
	return c
}

func (pg *Polygon) clip() polyclip.Polygon {
	return polyclip.Polygon{pg.contour()}
}

// AsString returns a polygon in MetaPost-like notation.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var buf bytes.Buffer
	for i, k := range pg.knots {
		if i > 0 {
			buf.WriteString(" -- ")
		}
		buf.WriteString(k.String())
	}
	if pg.cycle {
		buf.WriteString(" -- cycle")
	}
	return buf.String()
}
