// Package display holds the curve state shared by the rendering backends.
package display

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-viscoconv/anim"
)

// Errors returned by Store.
var (
	ErrNotSetup     = errors.New("display: update before setup")
	ErrUnevenCurve  = errors.New("display: curve X and Y lengths differ")
	ErrUnknownCurve = errors.New("display: unknown curve")
)

// Store implements anim.Display by keeping a copy of the latest data for
// every curve. Backends draw from the store; updates touch only the curves
// they name. Store is not safe for concurrent use.
type Store struct {
	curves [][2][]float64 // indexed by anim.CurveID
	seen   []bool
	ready  bool
	frames int
	dirty  bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		curves: make([][2][]float64, anim.Curves()),
		seen:   make([]bool, anim.Curves()),
	}
}

// Setup implements anim.Display.
func (s *Store) Setup(curves []anim.Curve) error {
	if err := s.validate(curves); err != nil {
		return err
	}
	for i := range s.seen {
		s.seen[i] = false
	}
	s.frames = 0
	s.apply(curves)
	s.ready = true
	return nil
}

// Update implements anim.Display.
func (s *Store) Update(changed []anim.Curve) error {
	if !s.ready {
		return ErrNotSetup
	}
	if err := s.validate(changed); err != nil {
		return err
	}
	s.apply(changed)
	s.frames++
	return nil
}

// validate checks a whole batch up front so a rejected batch leaves the
// store unchanged.
func (s *Store) validate(curves []anim.Curve) error {
	for _, c := range curves {
		if int(c.ID) < 0 || int(c.ID) >= len(s.curves) {
			return fmt.Errorf("%w: %d", ErrUnknownCurve, int(c.ID))
		}
		if len(c.X) != len(c.Y) {
			return fmt.Errorf("%w: %v has %d/%d", ErrUnevenCurve, c.ID.Label(), len(c.X), len(c.Y))
		}
	}
	return nil
}

func (s *Store) apply(curves []anim.Curve) {
	for _, c := range curves {
		// Frame data may alias driver buffers; keep our own copy.
		entry := &s.curves[c.ID]
		entry[0] = append(entry[0][:0], c.X...)
		entry[1] = append(entry[1][:0], c.Y...)
		s.seen[c.ID] = true
	}
	s.dirty = true
}

// Curve returns the stored data for id and whether it has been set.
func (s *Store) Curve(id anim.CurveID) (x, y []float64, ok bool) {
	if int(id) < 0 || int(id) >= len(s.curves) || !s.seen[id] {
		return nil, nil, false
	}
	return s.curves[id][0], s.curves[id][1], true
}

// Frames returns the number of updates applied since Setup.
func (s *Store) Frames() int {
	return s.frames
}

// TakeDirty reports whether the store changed since the last call and
// clears the flag.
func (s *Store) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}
