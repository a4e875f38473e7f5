package squircle

import (
	"iter"
	"math"
	"slices"

	"honnef.co/go/curve"
)

// Params are the inputs to [SVGPath].
//
// CornerRadius applies to all four corners; the per-corner fields override
// it individually when non-nil. A nil per-corner field means "use
// CornerRadius", while a pointer to 0 pins that corner to a sharp 90°
// corner.
type Params struct {
	Width  float64
	Height float64
	// CornerSmoothing is the corner smoothing factor, nominally in [0, 1].
	CornerSmoothing float64
	CornerRadius    float64

	TopLeftCornerRadius     *float64
	TopRightCornerRadius    *float64
	BottomRightCornerRadius *float64
	BottomLeftCornerRadius  *float64

	// PreserveSmoothing keeps the requested smoothing factor even when a
	// corner's budget would normally cap it.
	PreserveSmoothing bool
}

// SmoothRect resolves the parameters into a [SmoothRect] anchored at the
// origin.
func (p Params) SmoothRect() SmoothRect {
	radii := UniformRadii(p.CornerRadius)
	if p.TopLeftCornerRadius != nil {
		radii.TopLeft = *p.TopLeftCornerRadius
	}
	if p.TopRightCornerRadius != nil {
		radii.TopRight = *p.TopRightCornerRadius
	}
	if p.BottomRightCornerRadius != nil {
		radii.BottomRight = *p.BottomRightCornerRadius
	}
	if p.BottomLeftCornerRadius != nil {
		radii.BottomLeft = *p.BottomLeftCornerRadius
	}
	return SmoothRect{
		Rect:              curve.Rect{X1: p.Width, Y1: p.Height},
		Radii:             radii,
		Smoothing:         p.CornerSmoothing,
		PreserveSmoothing: p.PreserveSmoothing,
	}
}

// SVGPath computes the squircle outline described by params and returns it
// in SVG path-data syntax.
func SVGPath(params Params) string {
	return params.SmoothRect().Outline().SVG()
}

// Radii describes the corner radii of a [SmoothRect].
type Radii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadii returns radii using the same radius for all four corners.
func UniformRadii(radius float64) Radii {
	return Radii{radius, radius, radius, radius}
}

func (r Radii) Abs() Radii {
	return Radii{
		TopLeft:     math.Abs(r.TopLeft),
		TopRight:    math.Abs(r.TopRight),
		BottomRight: math.Abs(r.BottomRight),
		BottomLeft:  math.Abs(r.BottomLeft),
	}
}

// Clamp limits all radii to at most max.
//
// The outline pipeline does not need this: [DistributeBudgets] already caps
// radii by the per-corner budgets, which handles competing corners better
// than a uniform limit does. It is provided for callers porting rounded
// rectangle code.
func (r Radii) Clamp(max float64) Radii {
	return Radii{
		TopLeft:     min(r.TopLeft, max),
		TopRight:    min(r.TopRight, max),
		BottomRight: min(r.BottomRight, max),
		BottomLeft:  min(r.BottomLeft, max),
	}
}

func (r Radii) IsInf() bool {
	return math.IsInf(r.TopLeft, 0) ||
		math.IsInf(r.TopRight, 0) ||
		math.IsInf(r.BottomRight, 0) ||
		math.IsInf(r.BottomLeft, 0)
}

func (r Radii) IsNaN() bool {
	return math.IsNaN(r.TopLeft) ||
		math.IsNaN(r.TopRight) ||
		math.IsNaN(r.BottomRight) ||
		math.IsNaN(r.BottomLeft)
}

// uniform reports whether all four radii are identical.
func (r Radii) uniform() bool {
	return r.TopLeft == r.TopRight &&
		r.TopRight == r.BottomRight &&
		r.BottomRight == r.BottomLeft
}

// A SmoothRect is a rectangle whose corners are rounded with a squircle
// profile: a circular arc blended into the sides by continuous-curvature
// Bézier sections.
//
// With Smoothing 0 it draws a plain rounded rectangle; with radii of 0, a
// plain rectangle.
type SmoothRect struct {
	curve.Rect
	Radii Radii
	// Smoothing is the corner smoothing factor, nominally in [0, 1].
	Smoothing float64
	// PreserveSmoothing keeps the smoothing factor even when a corner's
	// budget would normally cap it.
	PreserveSmoothing bool
}

var _ curve.ClosedShape = SmoothRect{}

// NewSmoothRect returns a smooth rectangle with the same radius for all
// four corners.
func NewSmoothRect(x0, y0, x1, y1, radius, smoothing float64) SmoothRect {
	return SmoothRect{
		Rect:      curve.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1},
		Radii:     UniformRadii(radius),
		Smoothing: smoothing,
	}
}

// Outline computes the rectangle's outline as a command path.
//
// Four equal radii take a fast path that derives a single corner layout and
// shares it between the corners; otherwise the radii are first run through
// [DistributeBudgets].
func (s SmoothRect) Outline() Path {
	if s.Radii.uniform() {
		budget := min(s.Width(), s.Height()) / 2
		cp := PathParamsForCorner(NormalizedCorner{
			Radius: min(s.Radii.TopLeft, budget),
			Budget: budget,
		}, s.Smoothing, s.PreserveSmoothing)
		return OutlinePath(s.Rect, cp, cp, cp, cp)
	}
	nc := DistributeBudgets(s.Size(), s.Radii)
	return OutlinePath(s.Rect,
		PathParamsForCorner(nc.TopLeft, s.Smoothing, s.PreserveSmoothing),
		PathParamsForCorner(nc.TopRight, s.Smoothing, s.PreserveSmoothing),
		PathParamsForCorner(nc.BottomRight, s.Smoothing, s.PreserveSmoothing),
		PathParamsForCorner(nc.BottomLeft, s.Smoothing, s.PreserveSmoothing),
	)
}

// PathElements implements curve.Shape.
func (s SmoothRect) PathElements(tolerance float64) iter.Seq[curve.PathElement] {
	return s.Outline().PathElements(tolerance)
}

// Path implements curve.Shape.
func (s SmoothRect) Path(tolerance float64) curve.BezPath {
	return slices.Collect(s.PathElements(tolerance))
}

// Perimeter implements curve.Shape.
func (s SmoothRect) Perimeter(accuracy float64) float64 {
	return s.Outline().Perimeter(accuracy)
}

// Area implements curve.ClosedShape.
//
// The outline mixes arcs with Bézier sections whose extents depend on the
// smoothing split, so there is no closed form; the area is computed from
// the Bézier form instead.
func (s SmoothRect) Area() float64 {
	return s.Path(innerAccuracy).SignedArea()
}

// Winding implements curve.ClosedShape.
func (s SmoothRect) Winding(pt curve.Point) int {
	return s.Path(innerAccuracy).Winding(pt)
}

// Contains reports whether the point lies inside the outline. Unlike the
// embedded rectangle's containment check, it excludes the corner notches.
func (s SmoothRect) Contains(pt curve.Point) bool {
	return s.Winding(pt) != 0
}

func (s SmoothRect) Translate(v curve.Vec2) SmoothRect {
	s.Rect = s.Rect.Translate(v)
	return s
}

func (s SmoothRect) IsInf() bool {
	return s.Rect.IsInf() || s.Radii.IsInf() || math.IsInf(s.Smoothing, 0)
}

func (s SmoothRect) IsNaN() bool {
	return s.Rect.IsNaN() || s.Radii.IsNaN() || math.IsNaN(s.Smoothing)
}
