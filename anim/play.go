package anim

import (
	"context"
	"fmt"
	"time"
)

// Display is a rendering surface. Setup receives every curve once before
// the first frame; Update receives only the curves that changed.
type Display interface {
	Setup(curves []Curve) error
	Update(changed []Curve) error
}

// Play sets up disp with the scene's static and initial curves, then advances
// d once per tick and pushes the changed curves to disp.
//
// Play returns nil when the driver finishes or ticks is closed, ctx.Err()
// when ctx is cancelled, and a wrapped error if the display fails.
func Play(ctx context.Context, d *Driver, disp Display, ticks <-chan time.Time) error {
	s := d.Scene()
	if err := disp.Setup(append(s.StaticCurves(), s.InitialCurves()...)); err != nil {
		return fmt.Errorf("anim: display setup: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			frame, more := d.Advance()
			if !more {
				return nil
			}
			if err := disp.Update(frame.Curves); err != nil {
				return fmt.Errorf("anim: frame %d: %w", frame.Index, err)
			}
		}
	}
}
