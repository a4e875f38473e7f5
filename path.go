package squircle

import (
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"

	"honnef.co/go/curve"
)

// innerAccuracy is the lowering accuracy for methods whose signatures carry
// no accuracy parameter.
const innerAccuracy = 1e-9

type CommandKind int

const (
	// Move directly to an absolute point, starting the contour.
	MoveToKind CommandKind = iota + 1
	// Draw a line to an absolute point.
	LineToKind
	// Draw a line to a point given relative to the current position.
	RelLineToKind
	// Draw a cubic Bézier whose control and end points are given relative
	// to the current position.
	RelCubicToKind
	// Draw a clockwise circular arc to a point given relative to the
	// current position.
	RelArcToKind
	// Close the contour.
	ClosePathKind
)

// Command is a single drawing command of an outline.
//
// The absolute kinds (MoveToKind, LineToKind) anchor the outline on the
// rectangle. The relative kinds describe the corner sections as deltas from
// the current position, which keeps a corner's values independent of its
// placement.
type Command struct {
	Kind CommandKind
	// End is the command's end point. The relative kinds store it as a
	// delta.
	End curve.Point
	// Ctrl1 and Ctrl2 are the control points of RelCubicToKind, as deltas.
	Ctrl1, Ctrl2 curve.Point
	// Radius is the circle radius of RelArcToKind.
	Radius float64
}

func (cmd Command) String() string {
	switch cmd.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", cmd.End)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", cmd.End)
	case RelLineToKind:
		return fmt.Sprintf("RelLineTo(%s)", cmd.End)
	case RelCubicToKind:
		return fmt.Sprintf("RelCubicTo(%s, %s, %s)", cmd.Ctrl1, cmd.Ctrl2, cmd.End)
	case RelArcToKind:
		return fmt.Sprintf("RelArcTo(%g, %s)", cmd.Radius, cmd.End)
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidCommand"
	}
}

func MoveTo(pt curve.Point) Command {
	return Command{Kind: MoveToKind, End: pt}
}

func LineTo(pt curve.Point) Command {
	return Command{Kind: LineToKind, End: pt}
}

func RelLineTo(d curve.Vec2) Command {
	return Command{Kind: RelLineToKind, End: curve.Point(d)}
}

func RelCubicTo(c1, c2, d curve.Vec2) Command {
	return Command{
		Kind:  RelCubicToKind,
		Ctrl1: curve.Point(c1),
		Ctrl2: curve.Point(c2),
		End:   curve.Point(d),
	}
}

func RelArcTo(radius float64, d curve.Vec2) Command {
	return Command{Kind: RelArcToKind, Radius: radius, End: curve.Point(d)}
}

func ClosePath() Command {
	return Command{Kind: ClosePathKind}
}

// Path is an ordered sequence of drawing commands forming one closed
// contour. Paths are produced fresh by [SmoothRect.Outline] and are never
// retained or mutated by this package.
type Path []Command

var _ curve.Shape = Path{}

// SVG returns the path in SVG path-data syntax.
//
// Every coordinate and control value is formatted with exactly four decimal
// places, so that a given outline always serializes to the same string. See
// [Path.WriteSVG] for a version that writes to an [io.Writer] instead.
func (p Path) SVG() string {
	sb := &strings.Builder{}
	p.WriteSVG(sb)
	return sb.String()
}

// WriteSVG writes the path in SVG path-data syntax to w. See [Path.SVG] for
// a version that returns a string instead.
func (p Path) WriteSVG(w io.Writer) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	first := true
	for _, cmd := range p {
		if !first {
			writef(" ")
		}
		first = false
		switch cmd.Kind {
		case MoveToKind:
			writef("M %s %s", coord(cmd.End.X), coord(cmd.End.Y))
		case LineToKind:
			writef("L %s %s", coord(cmd.End.X), coord(cmd.End.Y))
		case RelLineToKind:
			writef("l %s %s", coord(cmd.End.X), coord(cmd.End.Y))
		case RelCubicToKind:
			writef("c %s %s %s %s %s %s",
				coord(cmd.Ctrl1.X), coord(cmd.Ctrl1.Y),
				coord(cmd.Ctrl2.X), coord(cmd.Ctrl2.Y),
				coord(cmd.End.X), coord(cmd.End.Y))
		case RelArcToKind:
			// Rotation and the large-arc flag are structurally zero for
			// these arcs, and the sweep is always clockwise.
			writef("a %s %s 0 0 1 %s %s",
				coord(cmd.Radius), coord(cmd.Radius),
				coord(cmd.End.X), coord(cmd.End.Y))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}

// coord formats a coordinate with exactly four decimal places. Values that
// round to zero lose their sign, so that degenerate deltas don't flip
// between "0.0000" and "-0.0000" with the rounding direction.
func coord(n float64) string {
	s := strconv.FormatFloat(n, 'f', 4, 64)
	if s == "-0.0000" {
		return "0.0000"
	}
	return s
}

// PathElements lowers the path to curve path elements. Relative commands
// resolve against the running position, and arc commands expand to cubic
// Béziers with the given tolerance.
func (p Path) PathElements(tolerance float64) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		var pos curve.Point
		for _, cmd := range p {
			switch cmd.Kind {
			case MoveToKind:
				pos = cmd.End
				if !yield(curve.MoveTo(pos)) {
					return
				}
			case LineToKind:
				pos = cmd.End
				if !yield(curve.LineTo(pos)) {
					return
				}
			case RelLineToKind:
				pos = pos.Translate(curve.Vec2(cmd.End))
				if !yield(curve.LineTo(pos)) {
					return
				}
			case RelCubicToKind:
				c1 := pos.Translate(curve.Vec2(cmd.Ctrl1))
				c2 := pos.Translate(curve.Vec2(cmd.Ctrl2))
				pos = pos.Translate(curve.Vec2(cmd.End))
				if !yield(curve.CubicTo(c1, c2, pos)) {
					return
				}
			case RelArcToKind:
				end := pos.Translate(curve.Vec2(cmd.End))
				if !yieldArc(yield, pos, end, cmd.Radius, tolerance) {
					return
				}
				pos = end
			case ClosePathKind:
				if !yield(curve.ClosePath()) {
					return
				}
			default:
				panic("unreachable")
			}
		}
	}
}

// Path lowers the path to a [curve.BezPath].
func (p Path) Path(tolerance float64) curve.BezPath {
	return slices.Collect(p.PathElements(tolerance))
}

// Perimeter returns the length of the contour.
func (p Path) Perimeter(accuracy float64) float64 {
	return p.Path(accuracy).Arclen(accuracy)
}

// BoundingBox returns the smallest rectangle enclosing the path.
func (p Path) BoundingBox() curve.Rect {
	return p.Path(innerAccuracy).BoundingBox()
}

// yieldArc expands a clockwise circular arc from start to end into cubic
// Béziers and feeds them to yield. It reports whether iteration should
// continue.
func yieldArc(yield func(curve.PathElement) bool, start, end curve.Point, radius, tolerance float64) bool {
	chord := end.Sub(start)
	if chord.Hypot2() == 0 {
		// Fully smoothed corners have no arc section left.
		return true
	}
	if radius <= 0 {
		return yield(curve.LineTo(end))
	}

	// Endpoint to center conversion for a circular arc with the large-arc
	// flag unset and a positive sweep, following the SVG implementation
	// notes (F.6.5). Radii too small to span the endpoints are scaled up.
	halfChord2 := chord.Hypot2() / 4
	if radius*radius < halfChord2 {
		radius = math.Sqrt(halfChord2)
	}
	apothem := math.Sqrt(max(radius*radius-halfChord2, 0))
	center := start.Midpoint(end).Translate(
		curve.Vec(-chord.Y, chord.X).Normalize().Mul(apothem))
	startAngle := start.Sub(center).Angle()
	sweep := end.Sub(center).Angle() - startAngle
	if sweep <= 0 {
		sweep += 2 * math.Pi
	}

	arc := curve.Arc{
		Center:     center,
		Radii:      curve.Vec(radius, radius),
		StartAngle: startAngle,
		SweepAngle: sweep,
	}
	first := true
	for el := range arc.PathElements(tolerance) {
		// The arc's leading MoveTo restates the current position; dropping
		// it splices the arc into the contour.
		if first {
			first = false
			continue
		}
		if !yield(el) {
			return false
		}
	}
	return true
}
