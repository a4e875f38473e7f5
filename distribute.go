package squircle

import (
	"cmp"
	"math"
	"slices"

	"honnef.co/go/curve"
)

// corner identifies one of the four rectangle corners.
type corner int

const (
	topLeft corner = iota
	topRight
	bottomLeft
	bottomRight
)

// side identifies one of the four rectangle sides.
type side int

const (
	top side = iota
	left
	right
	bottom
)

// adjacent names a neighboring corner together with the shared side.
type adjacent struct {
	corner corner
	side   side
}

// adjacents is the total corner/side adjacency table. Budget distribution
// walks it instead of deriving neighbors.
var adjacents = [4][2]adjacent{
	topLeft:     {{topRight, top}, {bottomLeft, left}},
	topRight:    {{topLeft, top}, {bottomRight, right}},
	bottomLeft:  {{bottomRight, bottom}, {topLeft, left}},
	bottomRight: {{bottomLeft, bottom}, {topRight, right}},
}

// NormalizedCorner is one corner's radius after budget distribution. Radius
// never exceeds Budget.
type NormalizedCorner struct {
	// Radius is the corner radius, clamped to the budget.
	Radius float64
	// Budget is the length along each adjacent side that rounding and
	// smoothing of this corner may consume.
	Budget float64
}

// NormalizedCorners holds the result of [DistributeBudgets] for all four
// corners.
type NormalizedCorners struct {
	TopLeft     NormalizedCorner
	TopRight    NormalizedCorner
	BottomRight NormalizedCorner
	BottomLeft  NormalizedCorner
}

// DistributeBudgets splits the rectangle's sides into per-corner rounding and
// smoothing budgets and clamps each corner radius to its budget.
//
// Corners are processed in order of decreasing radius, so that larger radii
// claim space first. A corner whose neighbor along a side has no budget yet
// claims a share of that side proportional to the two radii; a corner whose
// neighbor has already been processed gets the side's leftover. The corner's
// budget is the smaller of its two side claims, and its radius is then
// clamped to the budget. If a corner and its neighbor both have radius 0, the
// shared side contributes no budget at all.
func DistributeBudgets(size curve.Size, radii Radii) NormalizedCorners {
	cornerRadii := [4]float64{
		topLeft:     radii.TopLeft,
		topRight:    radii.TopRight,
		bottomLeft:  radii.BottomLeft,
		bottomRight: radii.BottomRight,
	}
	// Budgets start out as -1; a non-negative value marks the corner as
	// processed.
	cornerBudgets := [4]float64{-1, -1, -1, -1}

	type entry struct {
		corner corner
		radius float64
	}
	entries := [...]entry{
		{topLeft, radii.TopLeft},
		{topRight, radii.TopRight},
		{bottomLeft, radii.BottomLeft},
		{bottomRight, radii.BottomRight},
	}
	// Stable, so that equal radii keep the fixed corner order.
	slices.SortStableFunc(entries[:], func(a, b entry) int {
		return cmp.Compare(b.radius, a.radius)
	})

	for _, e := range entries {
		budget := math.Inf(1)
		for _, adj := range adjacents[e.corner] {
			// Reads the working radius, which for already processed
			// neighbors is the clamped one.
			adjRadius := cornerRadii[adj.corner]

			var length float64
			switch adj.side {
			case top, bottom:
				length = size.Width
			case left, right:
				length = size.Height
			}

			var claim float64
			switch {
			case e.radius == 0 && adjRadius == 0:
				claim = 0
			case cornerBudgets[adj.corner] >= 0:
				claim = length - cornerBudgets[adj.corner]
			default:
				claim = e.radius / (e.radius + adjRadius) * length
			}
			budget = min(budget, claim)
		}
		cornerBudgets[e.corner] = budget
		cornerRadii[e.corner] = min(e.radius, budget)
	}

	return NormalizedCorners{
		TopLeft: NormalizedCorner{
			Radius: cornerRadii[topLeft],
			Budget: cornerBudgets[topLeft],
		},
		TopRight: NormalizedCorner{
			Radius: cornerRadii[topRight],
			Budget: cornerBudgets[topRight],
		},
		BottomRight: NormalizedCorner{
			Radius: cornerRadii[bottomRight],
			Budget: cornerBudgets[bottomRight],
		},
		BottomLeft: NormalizedCorner{
			Radius: cornerRadii[bottomLeft],
			Budget: cornerBudgets[bottomLeft],
		},
	}
}
