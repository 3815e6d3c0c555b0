package lineclip

import "log/slog"

// maxPasses bounds the Cohen–Sutherland loop. Each endpoint needs at most two
// clamps (one per axis), plus a few more when rounding at a corner flips a code.
const maxPasses = 16

// ClipCohenSutherland clips the segment from p1 to p2 against w using the
// Cohen–Sutherland algorithm. It returns the part of the segment inside or on
// the boundary of w, and false if no part of the segment lies in w.
//
// Endpoints inside w are returned unchanged, and the result preserves the
// direction of the input. Clipping the result again yields the same segment.
// Segments with infinite or NaN coordinates are rejected.
func (w Window) ClipCohenSutherland(p1, p2 Point) (Segment, bool) {
	if !finite(p1, p2) {
		return Segment{}, false
	}
	code1 := w.Outcode(p1)
	code2 := w.Outcode(p2)

	for range maxPasses {
		if code1|code2 == Inside {
			return Segment{P0: p1, P1: p2}, true
		}
		if code1&code2 != 0 {
			return Segment{}, false
		}

		out, sel := code1, p1
		if out == Inside {
			out, sel = code2, p2
		}

		pt, ok := w.boundaryCrossing(p1, p2, out, sel)
		if !ok {
			return Segment{}, false
		}
		if out == code1 {
			p1 = pt
			code1 = w.Outcode(p1)
		} else {
			p2 = pt
			code2 = w.Outcode(p2)
		}
	}

	if debugEnabled() {
		Logger().Debug("cohen-sutherland did not settle",
			slog.String("window", w.String()),
			slog.String("p1", p1.String()),
			slog.String("p2", p2.String()))
	}
	return Segment{}, false
}

// boundaryCrossing intersects the line through p1 and p2 with the window
// boundary named by the highest-priority bit of code, testing Top, Bottom,
// Right and Left in that order. It reports false if the line has no extent
// along the axis that has to be crossed. A code without any of these bits
// leaves sel unchanged.
func (w Window) boundaryCrossing(p1, p2 Point, code Outcode, sel Point) (Point, bool) {
	d := p2.Sub(p1)
	switch {
	case code&Top != 0:
		if d.Y == 0 {
			return degenerate(p1, p2, Top)
		}
		return Point{X: p1.X + d.X*(w.yMax-p1.Y)/d.Y, Y: w.yMax}, true
	case code&Bottom != 0:
		if d.Y == 0 {
			return degenerate(p1, p2, Bottom)
		}
		return Point{X: p1.X + d.X*(w.yMin-p1.Y)/d.Y, Y: w.yMin}, true
	case code&Right != 0:
		if d.X == 0 {
			return degenerate(p1, p2, Right)
		}
		return Point{X: w.xMax, Y: p1.Y + d.Y*(w.xMax-p1.X)/d.X}, true
	case code&Left != 0:
		if d.X == 0 {
			return degenerate(p1, p2, Left)
		}
		return Point{X: w.xMin, Y: p1.Y + d.Y*(w.xMin-p1.X)/d.X}, true
	default:
		// Unreachable for codes produced by Outcode; maxPasses ends the loop.
		return sel, true
	}
}

func degenerate(p1, p2 Point, boundary Outcode) (Point, bool) {
	if debugEnabled() {
		Logger().Debug("zero coordinate delta toward boundary",
			slog.String("boundary", boundary.String()),
			slog.String("p1", p1.String()),
			slog.String("p2", p2.String()))
	}
	return Point{}, false
}

func finite(p1, p2 Point) bool {
	return !p1.IsInf() && !p1.IsNaN() && !p2.IsInf() && !p2.IsNaN()
}
