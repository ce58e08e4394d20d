// Package window renders the animation in a desktop window using ebiten.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-viscoconv/anim"
	"github.com/cwbudde/algo-viscoconv/internal/display"
	"github.com/cwbudde/algo-viscoconv/internal/plot"
)

const (
	defaultWidth  = 1400
	defaultHeight = 900
	panelGap      = 24
	markerRadius  = 5
	lineWidth     = 1.5
)

var (
	background = color.RGBA{0xea, 0xea, 0xf2, 0xff}
	panelFill  = color.RGBA{0xf4, 0xf4, 0xf8, 0xff}
	gridColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Options configures the window.
type Options struct {
	Width  int
	Height int
	TPS    int // frame ticks per second
	Title  string
}

// Window is an ebiten game that advances the driver once per tick and draws
// the four panels from a display.Store.
type Window struct {
	driver *anim.Driver
	store  *display.Store
	panels []plot.Panel
	opts   Options
}

// New creates a window for d and loads the scene's static and initial curves.
func New(d *anim.Driver, opts Options) (*Window, error) {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	if opts.Title == "" {
		opts.Title = "SLS convolution"
	}

	s := d.Scene()
	store := display.NewStore()
	if err := store.Setup(append(s.StaticCurves(), s.InitialCurves()...)); err != nil {
		return nil, err
	}

	grid := s.Config().Grid
	return &Window{
		driver: d,
		store:  store,
		panels: plot.Layout(grid.Start, grid.Stop, opts.Width, opts.Height, panelGap),
		opts:   opts,
	}, nil
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetTPS(w.opts.TPS)

	log.WithFields(log.Fields{
		"samples": w.driver.Scene().Len(),
		"frames":  w.driver.Frames(),
		"tps":     w.opts.TPS,
	}).Debug("opening window")

	err := ebiten.RunGame(w)
	log.WithField("frames", w.store.Frames()).Debug("window closed")
	return err
}

// Update advances the animation by one frame.
func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	frame, ok := w.driver.Advance()
	if !ok {
		return nil
	}
	return w.store.Update(frame.Curves)
}

// Draw renders all panels.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, p := range w.panels {
		w.drawPanel(screen, p)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (w *Window) Layout(_, _ int) (int, int) { return w.opts.Width, w.opts.Height }

func (w *Window) drawPanel(screen *ebiten.Image, p plot.Panel) {
	r := p.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), panelFill, false)

	// Zero line.
	if p.Limits.YMin < 0 && p.Limits.YMax > 0 {
		x0, y0 := p.Project(p.Limits.XMin, 0)
		x1, y1 := p.Project(p.Limits.XMax, 0)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, gridColor, false)
	}

	ebitenutil.DebugPrintAt(screen, p.Title, r.X+4, r.Y+2)

	legendY := r.Y + r.H - 16
	for id := anim.CurveID(0); int(id) < anim.Curves(); id++ {
		if id.Panel() != p.ID {
			continue
		}
		xs, ys, ok := w.store.Curve(id)
		if !ok || len(xs) == 0 {
			continue
		}
		clr := plot.Palette(id)

		if id == anim.CurveMarker {
			px, py := p.Project(xs[0], ys[0])
			vector.DrawFilledCircle(screen, float32(px), float32(py), markerRadius, clr, true)
			continue
		}

		drawPolyline(screen, p, xs, ys, clr)
		if label := id.Label(); label != "" {
			vector.DrawFilledRect(screen, float32(r.X+6), float32(legendY+6), 12, 3, clr, false)
			ebitenutil.DebugPrintAt(screen, label, r.X+22, legendY)
			legendY -= 14
		}
	}
}

func drawPolyline(screen *ebiten.Image, p plot.Panel, xs, ys []float64, clr color.Color) {
	dx, dy := plot.Decimate(xs, ys, 2*p.Rect.W)
	if len(dx) == 0 {
		return
	}
	px, py := p.Project(dx[0], dy[0])
	for i := 1; i < len(dx); i++ {
		qx, qy := p.Project(dx[i], dy[i])
		vector.StrokeLine(screen, float32(px), float32(py), float32(qx), float32(qy), lineWidth, clr, true)
		px, py = qx, qy
	}
}
