// Package term renders the animation as character plots in a terminal
// using tcell.
package term

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-viscoconv/anim"
	"github.com/cwbudde/algo-viscoconv/internal/display"
	"github.com/cwbudde/algo-viscoconv/internal/plot"
)

const (
	panelGap     = 1
	lineGlyph    = '•'
	markerGlyph  = '●'
	zeroGlyph    = '·'
	minimumWidth = 20
)

// Terminal draws frames from a driver onto a tcell screen.
type Terminal struct {
	screen   tcell.Screen
	driver   *anim.Driver
	store    *display.Store
	interval time.Duration
}

// Open initialises the controlling terminal and returns a Terminal on it.
func Open(d *anim.Driver, interval time.Duration) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen, d, interval), nil
}

// New wraps an initialised screen. Run calls Fini on it when it returns.
func New(screen tcell.Screen, d *anim.Driver, interval time.Duration) *Terminal {
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	return &Terminal{
		screen:   screen,
		driver:   d,
		store:    display.NewStore(),
		interval: interval,
	}
}

// Run plays the animation until ctx is cancelled or the user presses q,
// Esc or Ctrl-C. When the animation ends without repeat the last frame
// stays on screen until then.
func (t *Terminal) Run(ctx context.Context) error {
	defer t.screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resized := make(chan struct{}, 1)
	go t.pollEvents(cancel, resized)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	played := make(chan error, 1)
	go func() { played <- anim.Play(ctx, t.driver, t, ticker.C) }()

	for {
		select {
		case err := <-played:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			played = nil
			log.WithField("frames", t.store.Frames()).Debug("animation finished")
		case <-resized:
			t.screen.Sync()
		case <-ctx.Done():
			if played != nil {
				<-played
			}
			return nil
		}
	}
}

func (t *Terminal) pollEvents(cancel context.CancelFunc, resized chan<- struct{}) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		case *tcell.EventResize:
			select {
			case resized <- struct{}{}:
			default:
			}
		}
	}
}

// Setup implements anim.Display.
func (t *Terminal) Setup(curves []anim.Curve) error {
	if err := t.store.Setup(curves); err != nil {
		return err
	}
	t.render()
	return nil
}

// Update implements anim.Display.
func (t *Terminal) Update(changed []anim.Curve) error {
	if err := t.store.Update(changed); err != nil {
		return err
	}
	t.render()
	return nil
}

func (t *Terminal) render() {
	t.screen.Clear()

	w, h := t.screen.Size()
	if w < minimumWidth || h < 8 {
		drawText(t.screen, 0, 0, "terminal too small", tcell.StyleDefault)
		t.screen.Show()
		return
	}

	grid := t.driver.Scene().Config().Grid
	for _, p := range plot.Layout(grid.Start, grid.Stop, w, h, panelGap) {
		t.drawPanel(p)
	}
	t.screen.Show()
}

func (t *Terminal) drawPanel(p plot.Panel) {
	if p.Limits.YMin < 0 && p.Limits.YMax > 0 {
		_, zy := p.Project(p.Limits.XMin, 0)
		row := int(math.Round(zy))
		style := tcell.StyleDefault.Dim(true)
		for x := p.Rect.X; x < p.Rect.X+p.Rect.W; x++ {
			t.screen.SetContent(x, row, zeroGlyph, nil, style)
		}
	}

	var legend []anim.CurveID
	for id := anim.CurveID(0); int(id) < anim.Curves(); id++ {
		if id.Panel() != p.ID {
			continue
		}
		xs, ys, ok := t.store.Curve(id)
		if !ok || len(xs) == 0 {
			continue
		}
		style := styleFor(id)
		if id == anim.CurveMarker {
			x, y := p.Project(xs[0], ys[0])
			t.screen.SetContent(int(math.Round(x)), int(math.Round(y)), markerGlyph, nil, style)
			continue
		}
		dx, dy := plot.Decimate(xs, ys, 2*p.Rect.W)
		for i := range dx {
			x, y := p.Project(dx[i], dy[i])
			t.screen.SetContent(int(math.Round(x)), int(math.Round(y)), lineGlyph, nil, style)
		}
		if id.Label() != "" {
			legend = append(legend, id)
		}
	}

	drawText(t.screen, p.Rect.X, p.Rect.Y, p.Title, tcell.StyleDefault.Bold(true))
	row := p.Rect.Y + p.Rect.H - 1
	for i := len(legend) - 1; i >= 0; i-- {
		id := legend[i]
		drawText(t.screen, p.Rect.X, row, "- "+id.Label(), styleFor(id))
		row--
	}
}

func styleFor(id anim.CurveID) tcell.Style {
	c := plot.Palette(id)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
