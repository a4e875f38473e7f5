package squircle

import "honnef.co/go/curve"

// OutlinePath assembles the closed outline of a rectangle from per-corner
// path parameters. The corners are given in the same order as [Radii]'s
// fields.
//
// The contour starts on the top edge, just before the top-right corner, and
// runs clockwise (in y-down coordinates): each corner contributes a Bézier
// section, the circular arc, and the mirrored Bézier section, or a single
// degenerate relative line when its radius is zero. The straight edges in
// between fall out of consecutive absolute anchors; the final top edge is
// drawn by closing the contour.
func OutlinePath(rect curve.Rect, tl, tr, br, bl CornerPathParams) Path {
	p := make(Path, 0, 17)
	p = append(p, MoveTo(curve.Pt(rect.X1-tr.P, rect.Y0)))
	p = appendTopRight(p, tr)
	p = append(p, LineTo(curve.Pt(rect.X1, rect.Y1-br.P)))
	p = appendBottomRight(p, br)
	p = append(p, LineTo(curve.Pt(rect.X0+bl.P, rect.Y1)))
	p = appendBottomLeft(p, bl)
	p = append(p, LineTo(curve.Pt(rect.X0, rect.Y0+tl.P)))
	p = appendTopLeft(p, tl)
	p = append(p, ClosePath())
	return p
}

// The four emitters below are sign and axis mirrors of each other. Each
// corner moves by (±P, ±P) in total.

func appendTopRight(p Path, cp CornerPathParams) Path {
	if cp.Radius <= 0 {
		return append(p, RelLineTo(curve.Vec(cp.P, 0)))
	}
	return append(p,
		RelCubicTo(
			curve.Vec(cp.A, 0),
			curve.Vec(cp.A+cp.B, 0),
			curve.Vec(cp.A+cp.B+cp.C, cp.D)),
		RelArcTo(cp.Radius, curve.Vec(cp.ArcSectionLength, cp.ArcSectionLength)),
		RelCubicTo(
			curve.Vec(cp.D, cp.C),
			curve.Vec(cp.D, cp.B+cp.C),
			curve.Vec(cp.D, cp.A+cp.B+cp.C)),
	)
}

func appendBottomRight(p Path, cp CornerPathParams) Path {
	if cp.Radius <= 0 {
		return append(p, RelLineTo(curve.Vec(0, cp.P)))
	}
	return append(p,
		RelCubicTo(
			curve.Vec(0, cp.A),
			curve.Vec(0, cp.A+cp.B),
			curve.Vec(-cp.D, cp.A+cp.B+cp.C)),
		RelArcTo(cp.Radius, curve.Vec(-cp.ArcSectionLength, cp.ArcSectionLength)),
		RelCubicTo(
			curve.Vec(-cp.C, cp.D),
			curve.Vec(-(cp.B+cp.C), cp.D),
			curve.Vec(-(cp.A+cp.B+cp.C), cp.D)),
	)
}

func appendBottomLeft(p Path, cp CornerPathParams) Path {
	if cp.Radius <= 0 {
		return append(p, RelLineTo(curve.Vec(-cp.P, 0)))
	}
	return append(p,
		RelCubicTo(
			curve.Vec(-cp.A, 0),
			curve.Vec(-(cp.A+cp.B), 0),
			curve.Vec(-(cp.A+cp.B+cp.C), -cp.D)),
		RelArcTo(cp.Radius, curve.Vec(-cp.ArcSectionLength, -cp.ArcSectionLength)),
		RelCubicTo(
			curve.Vec(-cp.D, -cp.C),
			curve.Vec(-cp.D, -(cp.B+cp.C)),
			curve.Vec(-cp.D, -(cp.A+cp.B+cp.C))),
	)
}

func appendTopLeft(p Path, cp CornerPathParams) Path {
	if cp.Radius <= 0 {
		return append(p, RelLineTo(curve.Vec(0, -cp.P)))
	}
	return append(p,
		RelCubicTo(
			curve.Vec(0, -cp.A),
			curve.Vec(0, -(cp.A+cp.B)),
			curve.Vec(cp.D, -(cp.A+cp.B+cp.C))),
		RelArcTo(cp.Radius, curve.Vec(cp.ArcSectionLength, -cp.ArcSectionLength)),
		RelCubicTo(
			curve.Vec(cp.C, -cp.D),
			curve.Vec(cp.B+cp.C, -cp.D),
			curve.Vec(cp.A+cp.B+cp.C, -cp.D)),
	)
}
