package spline

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/waypath"
	"github.com/npillmayer/waypath/config"
	"github.com/npillmayer/waypath/follow"
	"github.com/npillmayer/waypath/gradient"
	"github.com/npillmayer/waypath/points"
)

// Engine ties a store of control points to its dynamic curve. Every edit
// through the engine is followed by a full recomputation.
//
// Edits must be serialized by the caller. Readers may call Curve from any
// goroutine: a recomputation builds a new Curve and publishes it with a
// single atomic swap, so a reader sees either the old or the new curve.
type Engine struct {
	store    *points.Store
	cfg      config.Curve
	ground   HeightQuery
	gradient *gradient.Gradient
	curve    atomic.Pointer[Curve]
}

var errNoSurface = fmt.Errorf("%w: ground snapping without a height query", config.ErrInvalidConfig)

// Option configures an Engine.
type Option func(*Engine)

// WithHeightQuery sets the surface used for ground snapping. Snapping
// happens only if the configuration enables it.
func WithHeightQuery(q HeightQuery) Option {
	return func(e *Engine) {
		e.ground = q
	}
}

// NewEngine creates an engine for store. The store's closed flag is
// overwritten by the configuration. The engine starts with an empty curve;
// call Recompute to derive the first one.
//
// Ground snapping needs a surface: enabling it without WithHeightQuery is
// a configuration error.
func NewEngine(store *points.Store, cfg config.Curve, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{store: store, cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if cfg.GroundSnap && e.ground == nil {
		return nil, errNoSurface
	}
	if err := e.setGradient(cfg.Gradient); err != nil {
		return nil, err
	}
	store.SetClosed(cfg.Closed)
	tracer().SetTraceLevel(cfg.Level())
	e.curve.Store(&Curve{closed: cfg.Closed})
	return e, nil
}

// Curve returns the most recently published dynamic curve. It is never nil.
func (e *Engine) Curve() *Curve {
	return e.curve.Load()
}

// Store returns the engine's control points.
func (e *Engine) Store() *points.Store {
	return e.store
}

// Config returns the current configuration.
func (e *Engine) Config() config.Curve {
	return e.cfg
}

// Recompute derives the dynamic curve from the control points and
// publishes it. With ground snapping enabled, the snapped positions are
// written back to the control points. On error nothing is changed and the
// previous curve stays published.
func (e *Engine) Recompute() error {
	opts := Options{Closed: e.cfg.Closed, Density: e.cfg.Density}
	if e.cfg.GroundSnap {
		opts.Ground = e.ground
	}
	res, err := Sample(e.store.Waypoints(), opts)
	if err != nil {
		tracer().Errorf("recompute failed: %v", err)
		return err
	}
	if opts.Ground != nil {
		for i, p := range res.Authored {
			if err := e.store.Move(i, p); err != nil {
				return fmt.Errorf("write back snapped point: %w", err)
			}
		}
	}
	gradient.Colorize(res.Samples, e.gradient)
	e.curve.Store(NewCurve(res, e.cfg.Closed))
	tracer().Infof("published curve of %d samples from %d control points", len(res.Samples), len(res.Authored))
	return nil
}

// Add appends a control point (see points.Store.Add) and recomputes.
func (e *Engine) Add(pos *waypath.Vec3) (int, error) {
	i := e.store.Add(pos)
	return i, e.Recompute()
}

// Insert inserts a control point (see points.Store.Insert) and recomputes.
func (e *Engine) Insert(index int, pos *waypath.Vec3) (int, error) {
	i := e.store.Insert(index, pos)
	return i, e.Recompute()
}

// Relocate moves a control point to another index and recomputes.
func (e *Engine) Relocate(from, to int) error {
	if err := e.store.Relocate(from, to); err != nil {
		return err
	}
	return e.Recompute()
}

// Delete removes a control point and recomputes.
func (e *Engine) Delete(index int) error {
	if err := e.store.Delete(index); err != nil {
		return err
	}
	return e.Recompute()
}

// Move sets the position of a control point and recomputes.
func (e *Engine) Move(index int, pos waypath.Vec3) error {
	if err := e.store.Move(index, pos); err != nil {
		return err
	}
	return e.Recompute()
}

// SetClosed opens or closes the curve and recomputes.
func (e *Engine) SetClosed(closed bool) error {
	e.cfg.Closed = closed
	e.store.SetClosed(closed)
	return e.Recompute()
}

// SetDensity changes the sampling density and recomputes.
func (e *Engine) SetDensity(density int) error {
	if density < 0 {
		return fmt.Errorf("%w: density %d < 0", config.ErrInvalidConfig, density)
	}
	e.cfg.Density = density
	return e.Recompute()
}

// SetGroundSnap switches ground snapping and recomputes. Snapping cannot
// be enabled for an engine without a height query.
func (e *Engine) SetGroundSnap(snap bool) error {
	if snap && e.ground == nil {
		tracer().Errorf("cannot snap to ground, no height query")
		return errNoSurface
	}
	e.cfg.GroundSnap = snap
	return e.Recompute()
}

// SetGradient replaces the color gradient and recomputes.
func (e *Engine) SetGradient(stops []config.Stop) error {
	if err := e.setGradient(stops); err != nil {
		return err
	}
	return e.Recompute()
}

func (e *Engine) setGradient(stops []config.Stop) error {
	g := gradient.New()
	for i, s := range stops {
		c, err := gradient.ParseColor(s.Color)
		if err != nil {
			return fmt.Errorf("%w: gradient stop %d: %v", config.ErrInvalidConfig, i, err)
		}
		g.AddStop(s.At, c)
	}
	e.cfg.Gradient = stops
	e.gradient = g
	return nil
}

// Follow creates a destination iterator over the engine's curve. The
// iterator always queries the most recently published curve, so edits
// after Follow move its destinations.
func (e *Engine) Follow(stoppingDistance float64) (*follow.Iterator, error) {
	return follow.New(e, stoppingDistance)
}

// Len returns the number of samples of the current curve.
func (e *Engine) Len() int {
	return e.Curve().Len()
}

// PositionAtIndex returns the position of sample i of the current curve.
func (e *Engine) PositionAtIndex(i int) waypath.Vec3 {
	return e.Curve().PositionAtIndex(i)
}

// NearestIndex returns the index of the sample of the current curve
// closest to p.
func (e *Engine) NearestIndex(p waypath.Vec3) int {
	return e.Curve().NearestIndex(p)
}
