package points

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/waypath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(closed bool) *Store {
	return New(closed, waypath.V(0, 0, 0), waypath.V(10, 0, 0), waypath.V(10, 0, 10), waypath.V(0, 0, 10))
}

func vp(x, y, z float64) *waypath.Vec3 {
	v := waypath.V(x, y, z)
	return &v
}

func TestDefaultPositions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New(false)
	assert.Equal(t, 0, s.Add(nil))
	assert.Equal(t, waypath.Zero, s.Positions()[0])

	s = square(false)
	i := s.Add(nil)
	assert.Equal(t, 4, i)
	assert.Equal(t, waypath.V(0, 0, 10), s.Positions()[4], "open tail duplicates last point")

	s = square(true)
	i = s.Add(nil)
	assert.Equal(t, waypath.V(0, 0, 5), s.Positions()[i], "closed tail is midpoint of last and first")

	s = square(false)
	i = s.Insert(1, nil)
	assert.Equal(t, 1, i)
	assert.Equal(t, waypath.V(5, 0, 0), s.Positions()[1])

	s = square(true)
	s.Insert(0, nil)
	assert.Equal(t, waypath.V(0, 0, 5), s.Positions()[0], "closed head wraps to last point")
}

func TestInsertClampsIndex(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := square(false)
	assert.Equal(t, 0, s.Insert(-7, vp(1, 1, 1)))
	assert.Equal(t, waypath.V(1, 1, 1), s.Positions()[0])
	assert.Equal(t, 5, s.Insert(99, vp(2, 2, 2)), "clamps to the tail")
	assert.Equal(t, waypath.V(2, 2, 2), s.Positions()[5])
	assert.Equal(t, 6, s.Len())
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, closed := range []bool{false, true} {
		for i := 0; i <= 4; i++ {
			s := square(closed)
			before := s.Positions()
			at := s.Insert(i, nil)
			require.NoError(t, s.Delete(at))
			assert.Equal(t, before, s.Positions(), "closed=%v index=%d", closed, i)
		}
	}
}

func TestRelocate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := square(false)
	before := s.Positions()
	require.NoError(t, s.Relocate(2, 2))
	assert.Equal(t, before, s.Positions())

	require.NoError(t, s.Relocate(0, 3))
	assert.Equal(t, []waypath.Vec3{before[1], before[2], before[0], before[3]}, s.Positions())
	require.NoError(t, s.Relocate(2, 0))
	assert.Equal(t, before, s.Positions())

	require.NoError(t, s.Relocate(1, 4))
	assert.Equal(t, []waypath.Vec3{before[0], before[2], before[3], before[1]}, s.Positions())
	require.NoError(t, s.Relocate(3, 1))
	assert.Equal(t, before, s.Positions())
}

func TestRelocateRejectsBadIndex(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := square(false)
	before := s.Positions()
	assert.ErrorIs(t, s.Relocate(4, 0), waypath.ErrIndex)
	assert.ErrorIs(t, s.Relocate(-1, 0), waypath.ErrIndex)
	assert.ErrorIs(t, s.Relocate(0, 5), waypath.ErrIndex)
	assert.ErrorIs(t, s.Relocate(0, -1), waypath.ErrIndex)
	assert.Equal(t, before, s.Positions(), "rejected edits leave the store unchanged")
}

func TestDelete(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := square(false)
	require.NoError(t, s.Delete(17))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, waypath.V(10, 0, 10), s.Positions()[2])
	require.NoError(t, s.Delete(-3))
	assert.Equal(t, waypath.V(10, 0, 0), s.Positions()[0])
	require.NoError(t, s.Delete(0))
	require.NoError(t, s.Delete(0))
	assert.ErrorIs(t, s.Delete(0), waypath.ErrIndex)
}

func TestMoveAndCaption(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := square(true)
	require.NoError(t, s.Move(2, waypath.V(3, 4, 5)))
	require.NoError(t, s.SetCaption(2, "gate"))
	wp, err := s.At(2)
	require.NoError(t, err)
	assert.Equal(t, waypath.V(3, 4, 5), wp.Position)
	assert.Equal(t, "gate", wp.Caption)
	assert.False(t, wp.IsTemp)
	assert.ErrorIs(t, s.Move(4, waypath.Zero), waypath.ErrIndex)
	_, err = s.At(-1)
	assert.ErrorIs(t, err, waypath.ErrIndex)
}
