package squircle

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

func TestPathSVG(t *testing.T) {
	p := Path{
		MoveTo(curve.Pt(10, 0)),
		RelCubicTo(curve.Vec(1.25, 0), curve.Vec(2.5, 0.5), curve.Vec(3.75, 1.5)),
		RelArcTo(5, curve.Vec(2.5, 2.5)),
		LineTo(curve.Pt(20, 30)),
		// Rounds to zero; must not serialize as "-0.0000".
		RelLineTo(curve.Vec(0, -1e-15)),
		ClosePath(),
	}
	want := "M 10.0000 0.0000 " +
		"c 1.2500 0.0000 2.5000 0.5000 3.7500 1.5000 " +
		"a 5.0000 5.0000 0 0 1 2.5000 2.5000 " +
		"L 20.0000 30.0000 " +
		"l 0.0000 0.0000 " +
		"Z"
	diff(t, want, p.SVG())
}

func TestPathLowering(t *testing.T) {
	// Without smoothing the outline is an ordinary rounded rectangle and
	// its area must agree with the closed form.
	s := NewSmoothRect(0, 0, 100, 100, 20, 0)
	rr := curve.NewRoundedRect(0, 0, 100, 100, 20)
	diff(t, rr.Area(), s.Area(), cmpopts.EquateApprox(0, 1e-6))

	// Perimeter of a rounded rectangle: the four straight remainders plus
	// a full circle.
	wantPerimeter := 2*(100.0+100.0) - 8*20.0 + 2*math.Pi*20.0
	diff(t, wantPerimeter, s.Perimeter(1e-6), cmpopts.EquateApprox(0, 1e-3))
}

func TestPathBoundingBox(t *testing.T) {
	s := NewSmoothRect(0, 0, 100, 100, 20, 0.8)
	got := s.Outline().BoundingBox()
	diff(t, curve.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestPathWinding(t *testing.T) {
	s := NewSmoothRect(0, 0, 100, 100, 20, 0.6)
	if w := s.Winding(curve.Pt(50, 50)); w != 1 {
		t.Errorf("got winding %d at the center, want 1", w)
	}
	if !s.Contains(curve.Pt(50, 50)) {
		t.Error("center must lie inside")
	}
	// Inside the embedded rectangle, but cut off by the corner.
	if s.Contains(curve.Pt(1, 1)) {
		t.Error("corner notch point must lie outside")
	}
}

func TestOutlineClosed(t *testing.T) {
	s := SmoothRect{
		Rect:      curve.Rect{X0: 0, Y0: 0, X1: 100, Y1: 60},
		Radii:     Radii{TopLeft: 30, TopRight: 10, BottomRight: 5, BottomLeft: 0},
		Smoothing: 0.7,
	}
	outline := s.Outline()
	if kind := outline[len(outline)-1].Kind; kind != ClosePathKind {
		t.Fatalf("outline ends in %v, want a close", outline[len(outline)-1])
	}

	var first, last curve.Point
	n := 0
	for seg := range curve.Segments(outline.PathElements(1e-6)) {
		if n == 0 {
			first = seg.Start()
		}
		last = seg.End()
		n++
	}
	if n == 0 {
		t.Fatal("outline has no segments")
	}
	if dist := last.Sub(first).Hypot(); dist > 1e-9 {
		t.Errorf("contour ends %v away from its start", dist)
	}
}

func TestCommandString(t *testing.T) {
	diff(t, "RelArcTo(5, (3, 4))", RelArcTo(5, curve.Vec(3, 4)).String())
	diff(t, "ClosePath", ClosePath().String())
}
