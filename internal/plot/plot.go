// Package plot maps curve data onto rectangular panels for the display
// backends: axis limits, palette, projection, and polyline decimation.
package plot

import (
	"image/color"
	"math"

	"github.com/cwbudde/algo-viscoconv/anim"
	"github.com/cwbudde/algo-viscoconv/dsp/core"
)

// Limits is an axis-aligned data range.
type Limits struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Rect is a panel area in device coordinates (pixels or terminal cells).
// Y grows downward.
type Rect struct {
	X, Y, W, H int
}

// Panel binds a data range to a device rectangle.
type Panel struct {
	ID     anim.Panel
	Title  string
	Limits Limits
	Rect   Rect
}

// Project maps a data point to device coordinates inside the panel.
// Points outside the limits are clamped to the panel border.
func (p Panel) Project(x, y float64) (float64, float64) {
	l := p.Limits
	fx := (x - l.XMin) / (l.XMax - l.XMin)
	fy := (y - l.YMin) / (l.YMax - l.YMin)
	fx = core.Clamp(fx, 0, 1)
	fy = core.Clamp(fy, 0, 1)

	px := float64(p.Rect.X) + fx*float64(p.Rect.W-1)
	py := float64(p.Rect.Y) + (1-fy)*float64(p.Rect.H-1)
	return px, py
}

// Layout returns the 2x2 panel arrangement for a time span, using fixed
// vertical limits per panel. Device space is w x h with gap cells between
// and around panels.
func Layout(start, stop float64, w, h, gap int) []Panel {
	pw := (w - 3*gap) / 2
	ph := (h - 3*gap) / 2
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}

	cell := func(col, row int) Rect {
		return Rect{X: gap + col*(pw+gap), Y: gap + row*(ph+gap), W: pw, H: ph}
	}

	return []Panel{
		{ID: anim.PanelLoad, Title: "strain", Limits: Limits{start, stop, -0.4, 1.2}, Rect: cell(0, 0)},
		{ID: anim.PanelSlide, Title: "sliding kernel", Limits: Limits{start, stop, -0.55, 0.75}, Rect: cell(1, 0)},
		{ID: anim.PanelKernel, Title: "relaxation modulus", Limits: Limits{start, stop, 0, 0.75}, Rect: cell(0, 1)},
		{ID: anim.PanelResult, Title: "stress", Limits: Limits{start, stop, -0.55, 0.75}, Rect: cell(1, 1)},
	}
}

// Palette returns the color used for a curve.
func Palette(id anim.CurveID) color.RGBA {
	switch id {
	case anim.CurveLoad:
		return hex(0x566573)
	case anim.CurveLoadRate, anim.CurveRate:
		return hex(0x3385ff)
	case anim.CurveMarker, anim.CurveConvolution:
		return hex(0xdc7633)
	case anim.CurveWindow, anim.CurveKernel:
		return hex(0x00b300)
	case anim.CurveProduct:
		return color.RGBA{R: 0xa6, G: 0x4d, B: 0xff, A: 0xb3}
	default:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
}

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Decimate reduces a curve to at most maxPoints points by keeping the
// samples with the largest |y| deviation per bucket, so narrow bumps stay
// visible. The returned slices are new.
func Decimate(xs, ys []float64, maxPoints int) ([]float64, []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if maxPoints <= 0 || n <= maxPoints {
		return append([]float64(nil), xs[:n]...), append([]float64(nil), ys[:n]...)
	}

	outX := make([]float64, 0, maxPoints)
	outY := make([]float64, 0, maxPoints)
	bucket := float64(n) / float64(maxPoints)
	for b := 0; b < maxPoints; b++ {
		lo := int(math.Floor(float64(b) * bucket))
		hi := int(math.Floor(float64(b+1) * bucket))
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		best := lo
		for i := lo + 1; i < hi; i++ {
			if math.Abs(ys[i]) > math.Abs(ys[best]) {
				best = i
			}
		}
		outX = append(outX, xs[best])
		outY = append(outY, ys[best])
	}
	return outX, outY
}
