package polygon

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/waypath"
	"github.com/npillmayer/waypath/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(waypath.P(0, 0)).Knot(waypath.P(1, 3)).Knot(waypath.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	assert.Equal(t, 3, pg.N())
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
	assert.InDelta(t, 4.5, pg.Area(), 1e-9)
	assert.Equal(t, waypath.P(0, 0), pg.KnotAt(3))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(waypath.P(0, 5), waypath.P(4, 1))
	L().Infof("box = %s", AsString(box))
	assert.Equal(t, 4, box.N())
	assert.InDelta(t, 16, box.Area(), 1e-9)
	assert.True(t, box.Contains(waypath.P(2, 3)))
	assert.False(t, box.Contains(waypath.P(5, 3)))
}

func TestOpenPolygonHasNoArea(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(waypath.P(0, 0)).Knot(waypath.P(1, 3)).Knot(waypath.P(3, 0))
	assert.False(t, pg.IsCycle())
	assert.Equal(t, 0.0, pg.Area())
	assert.False(t, pg.Contains(waypath.P(1, 1)))
	assert.Nil(t, pg.Intersection(Box(waypath.P(0, 0), waypath.P(3, 3))))
}

func TestIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(waypath.P(0, 0), waypath.P(10, 10))
	b := Box(waypath.P(5, 5), waypath.P(15, 15))
	pgs := a.Intersection(b)
	require.Len(t, pgs, 1)
	L().Infof("a ∩ b = %s", AsString(pgs[0]))
	assert.InDelta(t, 25, pgs[0].Area(), 1e-9)
	assert.True(t, a.Overlaps(b))
	far := Box(waypath.P(20, 20), waypath.P(30, 30))
	assert.False(t, a.Overlaps(far))
	assert.Empty(t, a.Intersection(far))
}

func curve(t *testing.T, closed bool, density int, positions ...waypath.Vec3) *spline.Curve {
	t.Helper()
	wps := make([]waypath.Waypoint, len(positions))
	for i, p := range positions {
		wps[i] = waypath.NewWaypoint(p)
	}
	res, err := spline.Sample(wps, spline.Options{Closed: closed, Density: density})
	require.NoError(t, err)
	return spline.NewCurve(res, closed)
}

func TestFootprint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	square := []waypath.Vec3{waypath.V(0, 1, 0), waypath.V(10, 2, 0), waypath.V(10, 3, 10), waypath.V(0, 4, 10)}
	pg, err := Footprint(curve(t, true, 0, square...))
	require.NoError(t, err)
	assert.Equal(t, 4, pg.N())
	assert.InDelta(t, 100, pg.Area(), 1e-9)
	assert.True(t, pg.Contains(waypath.P(5, 5)))
	assert.False(t, pg.Contains(waypath.P(-1, 5)))

	smooth, err := Footprint(curve(t, true, 10, square...))
	require.NoError(t, err)
	assert.Greater(t, smooth.N(), 4)
	assert.True(t, smooth.Contains(waypath.P(5, 5)))
	assert.True(t, smooth.Overlaps(pg))
}

func TestFootprintNeedsClosedCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Footprint(curve(t, false, 5, waypath.V(0, 0, 0), waypath.V(10, 0, 0), waypath.V(10, 0, 10)))
	assert.ErrorIs(t, err, waypath.ErrMissingConfiguration)
	_, err = Footprint(curve(t, true, 0, waypath.V(0, 0, 0), waypath.V(10, 0, 0)))
	assert.ErrorIs(t, err, waypath.ErrMissingConfiguration)
	_, err = Footprint(nil)
	assert.ErrorIs(t, err, waypath.ErrMissingConfiguration)
}
