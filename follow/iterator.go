// Package follow hands out successive destinations along a curve to an
// agent moving on it.
//
// The iterator does not move anything and owns no goroutine. The host
// calls Poll once per tick with the agent's current position; when the
// agent is within the stopping distance of its destination, the iterator
// advances to the next sample.
package follow

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/waypath"
)

// tracer writes to trace with key 'follow'
func tracer() tracing.Trace {
	return tracing.Select("follow")
}

// Destinations is a sequence of positions to visit, e.g. a spline.Curve.
type Destinations interface {
	Len() int
	PositionAtIndex(i int) waypath.Vec3
	NearestIndex(p waypath.Vec3) int
}

// Mode tells an iterator what to do after the last destination.
type Mode int

// Modes of iteration. Loop is the default.
const (
	Loop     Mode = iota // start again at the first destination
	Once                 // stay at the last destination
	PingPong             // turn around and walk back
)

func (m Mode) String() string {
	switch m {
	case Once:
		return "once"
	case PingPong:
		return "ping-pong"
	}
	return "loop"
}

// Iterator walks over the positions of a Destinations sequence. What happens
// at the ends depends on its Mode.
//
// The sequence may change between calls, e.g. when src is a live curve
// engine; the current index is clamped to the sequence's length.
type Iterator struct {
	src      Destinations
	index    int
	step     int // +1 or -1
	done     bool
	mode     Mode
	stopping float64
	onChange func(index int, dest waypath.Vec3)
}

// New creates an iterator heading for the first position of src.
func New(src Destinations, stoppingDistance float64) (*Iterator, error) {
	if src == nil || src.Len() == 0 {
		return nil, fmt.Errorf("%w: nothing to follow", waypath.ErrMissingConfiguration)
	}
	if stoppingDistance < 0 {
		stoppingDistance = 0
	}
	return &Iterator{src: src, step: 1, stopping: stoppingDistance}, nil
}

// SetMode sets the behaviour at the ends of the sequence.
func (it *Iterator) SetMode(m Mode) *Iterator {
	it.mode = m
	return it
}

// Mode returns the iteration mode.
func (it *Iterator) Mode() Mode {
	return it.mode
}

// Done is a predicate: has an iterator in mode Once reached the last destination?
func (it *Iterator) Done() bool {
	return it.done
}

// OnChange registers a callback, called whenever the destination changes.
func (it *Iterator) OnChange(f func(index int, dest waypath.Vec3)) {
	it.onChange = f
}

// Index returns the index of the current destination.
func (it *Iterator) Index() int {
	return it.index
}

// Destination returns the current destination.
func (it *Iterator) Destination() waypath.Vec3 {
	return it.src.PositionAtIndex(it.index)
}

// StoppingDistance returns the distance at which a destination counts as reached.
func (it *Iterator) StoppingDistance() float64 {
	return it.stopping
}

// Arrived is a predicate: is position within the stopping distance of the destination?
func (it *Iterator) Arrived(position waypath.Vec3) bool {
	return waypath.SqrDistance(position, it.Destination()) <= it.stopping*it.stopping
}

// Poll checks whether position has reached the destination and, if so,
// advances to the next one. It returns true if the destination changed.
func (it *Iterator) Poll(position waypath.Vec3) bool {
	n := it.src.Len()
	if n == 0 || it.done {
		return false
	}
	it.index = min(it.index, n-1)
	if !it.Arrived(position) {
		return false
	}
	next := it.next(n)
	if next == it.index {
		return false
	}
	it.moveTo(next)
	return true
}

func (it *Iterator) next(n int) int {
	switch it.mode {
	case Once:
		if it.index+1 >= n {
			it.done = true
			tracer().Debugf("last destination %d reached", it.index)
			return it.index
		}
		return it.index + 1
	case PingPong:
		if n == 1 {
			return 0
		}
		if i := it.index + it.step; i >= 0 && i < n {
			return i
		}
		it.step = -it.step
		return it.index + it.step
	}
	return (it.index + 1) % n
}

// Resync makes the sample nearest to position the current destination,
// e.g. after the agent has been repositioned by other means.
func (it *Iterator) Resync(position waypath.Vec3) {
	if i := it.src.NearestIndex(position); i >= 0 && i != it.index {
		it.done = false
		it.moveTo(i)
	}
}

// Reset heads for the first position again, walking forward.
func (it *Iterator) Reset() {
	it.step, it.done = 1, false
	if it.index != 0 {
		it.moveTo(0)
	}
}

func (it *Iterator) moveTo(i int) {
	it.index = i
	dest := it.Destination()
	tracer().Debugf("destination %d at %s", i, waypath.VString(dest))
	if it.onChange != nil {
		it.onChange(i, dest)
	}
}
