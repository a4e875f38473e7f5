package squircle

import "math"

// CornerPathParams describes the geometry of one smoothed corner: two
// flanking cubic Bézier sections and the circular arc between them.
//
// A, B, C and D are the distances a, b, c and d from figure 11.1 of the
// [Figma article]; they place the Béziers' control points along the
// rectangle's sides. A zero Radius leaves every field zero and degenerates
// the corner to a point.
//
// [Figma article]: https://www.figma.com/blog/desperately-seeking-squircles/
type CornerPathParams struct {
	A float64
	B float64
	C float64
	D float64
	// P is the total length the corner consumes along each adjacent side.
	P float64
	// Radius is the corner radius after budget clamping.
	Radius float64
	// ArcSectionLength is the axis-aligned extent of the circular arc's
	// chord.
	ArcSectionLength float64
}

// PathParamsForCorner derives the control-point layout for a single corner
// from its clamped radius and budget.
//
// smoothing is the corner smoothing factor, nominally in [0, 1]: 0 keeps the
// plain quarter-circle arc, 1 replaces it entirely with the Bézier sections.
// When preserveSmoothing is false, the factor is capped so that the expanded
// corner fits the budget. When it is true, the factor is kept and the
// flanking section lengths shrink instead.
func PathParamsForCorner(corner NormalizedCorner, smoothing float64, preserveSmoothing bool) CornerPathParams {
	radius := corner.Radius
	budget := corner.Budget

	// Radius 0 must short-circuit before the divisions below: 0/0 is NaN,
	// which min propagates.
	if radius == 0 {
		return CornerPathParams{}
	}

	p := (1 + smoothing) * radius
	if !preserveSmoothing {
		maxSmoothing := budget/radius - 1
		smoothing = min(smoothing, maxSmoothing)
		p = min(p, budget)
	}

	// The smoothing factor trades angular measure of the arc for the
	// flanking Bézier sections.
	arcMeasure := 90 * (1 - smoothing)
	arcSectionLength := math.Sin(radians(arcMeasure/2)) * radius * math.Sqrt2

	// a, b, c and d as in figure 11.1: alpha spans one Bézier section, beta
	// tilts its outer control arm.
	angleAlpha := (90 - arcMeasure) / 2
	p3ToP4Distance := radius * math.Tan(radians(angleAlpha/2))
	angleBeta := 45 * smoothing
	c := p3ToP4Distance * math.Cos(radians(angleBeta))
	d := c * math.Tan(radians(angleBeta))
	b := (p - arcSectionLength - c - d) / 3
	a := 2 * b

	if preserveSmoothing && p > budget {
		// The ideal expansion does not fit. Shrink a and b to the leftover
		// between the fixed sections; a keeps at least a sixth of it so the
		// control arms stay ordered.
		p1ToP3MaxDistance := budget - d - arcSectionLength - c
		minA := p1ToP3MaxDistance / 6
		maxB := p1ToP3MaxDistance - minA
		b = min(b, maxB)
		a = p1ToP3MaxDistance - b
		p = min(p, budget)
	}

	return CornerPathParams{
		A:                a,
		B:                b,
		C:                c,
		D:                d,
		P:                p,
		Radius:           radius,
		ArcSectionLength: arcSectionLength,
	}
}

// radians converts degrees to radians.
func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
