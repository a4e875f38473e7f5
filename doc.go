// Package squircle computes the outlines of rectangles with smoothly rounded
// corners, also known as squircles.
//
// A plain rounded rectangle joins its straight sides to its corner arcs with
// a curvature jump: the sides have curvature zero and the arcs 1/radius.
// Smoothed corners instead ease into the arc through a pair of cubic Bézier
// sections, spreading the transition over a longer stretch of the outline.
// The construction follows the one used by Figma's corner smoothing control,
// described in [Desperately seeking squircles].
//
// [SVGPath] produces SVG path data directly from a set of [Params].
// [SmoothRect] is the underlying shape type; it implements
// [curve.ClosedShape] and can be positioned freely.
//
// All functions in this package are pure, so values can be shared freely
// between goroutines.
//
// # Corner construction
//
// A corner with smoothing factor 0 is a plain quarter-circle arc of the
// corner radius. As the factor grows, the arc section shrinks and the Bézier
// sections on either side of it grow, until at factor 1 the arc vanishes and
// the corner consists of the two Bézier sections alone. Each corner extends
// (1+smoothing)·radius along both adjacent sides, space permitting.
// [PathParamsForCorner] computes the control layout for a single corner.
//
// # Radius budgets
//
// Corners compete for room on the sides they share. [DistributeBudgets]
// assigns each corner a budget, giving corners with larger radii
// proportionally more of a side, and caps each radius by its budget. This
// generalizes the usual min(radius, side/2) clamping of rounded rectangles
// to asymmetric radii.
//
// # Outlines
//
// Outlines are [Path] values, sequences of drawing commands that keep the
// corner arcs in arc form. [Path.SVG] serializes them as SVG path data.
// Geometric queries such as area and winding approximate the arcs with
// cubic Béziers by way of [curve.BezPath].
//
// # Literature
//
// The corner construction is based on the following sources:
//   - [Desperately seeking squircles] by Daniel Furse
//   - [Figma Squircles Approximation] by MartinRGB
//   - [figma-squircle] by Tuan Pham
//
// [Desperately seeking squircles]: https://www.figma.com/blog/desperately-seeking-squircles/
// [Figma Squircles Approximation]: https://github.com/MartinRGB/Figma_Squircles_Approximation
// [figma-squircle]: https://github.com/phamfoo/figma-squircle
package squircle
