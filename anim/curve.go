package anim

// Panel identifies one plot area of the display.
type Panel int

const (
	// PanelLoad shows strain load, strain rate and the tracing marker.
	PanelLoad Panel = iota

	// PanelSlide shows the strain rate and the sliding kernel window.
	PanelSlide

	// PanelKernel shows the static relaxation modulus.
	PanelKernel

	// PanelResult shows the growing convolution and the sliding product.
	PanelResult

	panelCount
)

// Panels lists all panels in display order.
func Panels() []Panel {
	return []Panel{PanelLoad, PanelSlide, PanelKernel, PanelResult}
}

// CurveID identifies a curve across frames.
type CurveID int

const (
	CurveLoad CurveID = iota
	CurveLoadRate
	CurveMarker
	CurveRate
	CurveWindow
	CurveKernel
	CurveConvolution
	CurveProduct

	curveCount
)

var curveInfo = [curveCount]struct {
	panel Panel
	label string
}{
	CurveLoad:        {PanelLoad, "strain load"},
	CurveLoadRate:    {PanelLoad, "d(strain)/dt"},
	CurveMarker:      {PanelLoad, ""},
	CurveRate:        {PanelSlide, "d(strain)/dt"},
	CurveWindow:      {PanelSlide, "0 padded G_SLS(-t)"},
	CurveKernel:      {PanelKernel, "G_SLS(t)"},
	CurveConvolution: {PanelResult, "convolution"},
	CurveProduct:     {PanelResult, "multiplication"},
}

// Panel returns the panel the curve is drawn in.
func (id CurveID) Panel() Panel {
	return curveInfo[id].panel
}

// Label returns the legend text; empty for unlabelled curves.
func (id CurveID) Label() string {
	return curveInfo[id].label
}

// Curves returns the number of distinct curve IDs.
func Curves() int {
	return int(curveCount)
}

// Curve is one polyline (or a single point) in a panel. X and Y have equal
// length. Slices may alias scene or driver storage and must be treated as
// read-only; driver-owned data is only valid until the next frame.
type Curve struct {
	ID CurveID
	X  []float64
	Y  []float64
}

// Frame is the set of curves that changed at frame Index.
type Frame struct {
	Index  int
	Curves []Curve
}
