// Package points keeps the ordered list of authored control points of a path.
//
// A Store only knows about index arithmetic and default positions for new
// points. It does not recompute any curve; callers trigger recomputation
// after every edit.
package points

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/waypath"
)

// tracer writes to trace with key 'points'
func tracer() tracing.Trace {
	return tracing.Select("points")
}

// Store is an ordered, mutable sequence of control points with 0-based
// indices. The closed flag only influences default positions of inserted points.
type Store struct {
	list   *arraylist.List // of waypath.Waypoint
	closed bool
}

// New creates a store holding control points at the given positions.
func New(closed bool, positions ...waypath.Vec3) *Store {
	s := &Store{list: arraylist.New(), closed: closed}
	for _, p := range positions {
		s.list.Add(waypath.NewWaypoint(p))
	}
	return s
}

// Closed is a predicate: does the path connect its last point back to the first?
func (s *Store) Closed() bool {
	return s.closed
}

// SetClosed sets the closed flag.
func (s *Store) SetClosed(closed bool) {
	s.closed = closed
}

// Len returns the number of control points.
func (s *Store) Len() int {
	return s.list.Size()
}

// At returns a copy of the control point at index i.
func (s *Store) At(i int) (waypath.Waypoint, error) {
	v, ok := s.list.Get(i)
	if !ok {
		return waypath.Waypoint{}, fmt.Errorf("%w: point %d of %d", waypath.ErrIndex, i, s.Len())
	}
	return v.(waypath.Waypoint), nil
}

// Waypoints returns a copy of all control points, in order.
func (s *Store) Waypoints() []waypath.Waypoint {
	wps := make([]waypath.Waypoint, 0, s.Len())
	it := s.list.Iterator()
	for it.Next() {
		wps = append(wps, it.Value().(waypath.Waypoint))
	}
	return wps
}

// Positions returns the positions of all control points, in order.
func (s *Store) Positions() []waypath.Vec3 {
	return waypath.Positions(s.Waypoints())
}

// Add appends a control point and returns its index. If pos is nil, the
// position is derived as for Insert at the tail.
func (s *Store) Add(pos *waypath.Vec3) int {
	return s.Insert(s.Len(), pos)
}

// Insert puts a new control point at index, which is clamped to [0, Len()],
// and returns the effective index.
//
// Without an explicit position the point is placed at the origin for an
// empty store, on the last point when appending to an open path, and
// halfway between its new neighbours otherwise (wrapping around for
// closed paths).
func (s *Store) Insert(index int, pos *waypath.Vec3) int {
	n := s.Len()
	index = min(max(index, 0), n)
	var p waypath.Vec3
	switch {
	case pos != nil:
		p = *pos
	case n == 0:
		p = waypath.Zero
	case !s.closed && index == n:
		p = s.position(n - 1)
	default:
		p = waypath.Lerp(s.position((index-1+n)%n), s.position(index%n), 0.5)
	}
	s.list.Insert(index, waypath.NewWaypoint(p))
	tracer().Debugf("inserted point %d at %s", index, waypath.VString(p))
	return index
}

// Relocate moves the point at index from to index to, using list-move
// semantics: if to > from the target shifts left by one after removal.
// from must be in [0, Len()) and to in [0, Len()]. Relocating a point
// onto itself is a no-op.
func (s *Store) Relocate(from, to int) error {
	if from == to {
		return nil
	}
	n := s.Len()
	if to < 0 || from < 0 || to > n || from > n-1 {
		tracer().Errorf("cannot relocate point %d to %d, have %d points", from, to, n)
		return fmt.Errorf("%w: relocate from %d to %d with %d points", waypath.ErrIndex, from, to, n)
	}
	v, _ := s.list.Get(from)
	s.list.Remove(from)
	if to > from {
		to--
	}
	s.list.Insert(to, v)
	return nil
}

// Delete removes the point at index, which is clamped to [0, Len()-1].
// Deleting from an empty store is an error.
func (s *Store) Delete(index int) error {
	n := s.Len()
	if n == 0 {
		tracer().Errorf("cannot delete point %d from empty store", index)
		return fmt.Errorf("%w: delete %d from empty store", waypath.ErrIndex, index)
	}
	index = min(max(index, 0), n-1)
	s.list.Remove(index)
	tracer().Debugf("deleted point %d", index)
	return nil
}

// Move sets the position of the point at index.
func (s *Store) Move(index int, pos waypath.Vec3) error {
	wp, err := s.At(index)
	if err != nil {
		return err
	}
	wp.Position = pos
	s.list.Set(index, wp)
	return nil
}

// SetCaption sets the caption of the point at index.
func (s *Store) SetCaption(index int, caption string) error {
	wp, err := s.At(index)
	if err != nil {
		return err
	}
	wp.Caption = caption
	s.list.Set(index, wp)
	return nil
}

func (s *Store) position(i int) waypath.Vec3 {
	v, _ := s.list.Get(i)
	return v.(waypath.Waypoint).Position
}
