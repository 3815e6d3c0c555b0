package lineclip

import (
	"log/slog"
	"math"
)

const (
	// DefaultTolerance is the per-axis convergence threshold of the
	// midpoint method.
	DefaultTolerance = 1e-5

	// MaxBisections bounds the number of halvings performed by a single
	// boundary search, independently of the tolerance.
	MaxBisections = 50
)

// ClipMidpoint clips the segment from p1 to p2 against w by repeatedly
// bisecting it. Boundary crossings are approximated to within tolerance on
// each axis, so the result is not exact and re-clipping it is idempotent only
// within tolerance. It returns false if no part of the segment lies in w.
//
// If both endpoints are inside, they are returned unchanged. If exactly one
// endpoint is inside, the result starts at that endpoint, which may reverse
// the segment's direction. If both endpoints are outside, the result runs
// from the crossing nearest p1 to the crossing nearest p2.
//
// When both endpoints are outside, the search for an interior point stops
// subdividing at pieces shorter than tolerance on both axes. A window
// narrower than tolerance along the segment can therefore be missed, although
// [Window.ClipCohenSutherland] clips the segment; pass a smaller tolerance
// for such windows.
//
// A non-positive tolerance disables early termination and every search runs
// for [MaxBisections] steps. Segments with infinite or NaN coordinates are
// rejected.
func (w Window) ClipMidpoint(p1, p2 Point, tolerance float64) (Segment, bool) {
	if !finite(p1, p2) {
		return Segment{}, false
	}
	code1 := w.Outcode(p1)
	code2 := w.Outcode(p2)

	if code1|code2 == Inside {
		return Segment{P0: p1, P1: p2}, true
	}
	if code1&code2 != 0 {
		return Segment{}, false
	}

	switch {
	case code1 == Inside:
		return Segment{P0: p1, P1: w.bisect(p1, p2, tolerance)}, true
	case code2 == Inside:
		return Segment{P0: p2, P1: w.bisect(p2, p1, tolerance)}, true
	}

	// Both endpoints are outside, on different sides. The segment crosses
	// the window only if some point of it is inside.
	seed, ok := w.interiorPoint(p1, p2, tolerance)
	if !ok {
		if debugEnabled() {
			Logger().Debug("segment misses window",
				slog.String("window", w.String()),
				slog.String("p1", p1.String()),
				slog.String("p2", p2.String()),
				slog.String("code1", code1.String()),
				slog.String("code2", code2.String()))
		}
		return Segment{}, false
	}
	inter1 := w.bisect(seed, p1, tolerance)
	inter2 := w.bisect(seed, p2, tolerance)
	if !w.Contains(inter1) || !w.Contains(inter2) {
		return Segment{}, false
	}
	return Segment{P0: inter1, P1: inter2}, true
}

// bisect searches the segment from in, which must be inside w, to out, which
// must be outside, for the point where it leaves w. It returns the last
// in-window candidate.
func (w Window) bisect(in, out Point, tolerance float64) Point {
	a, b := in, out
	for range MaxBisections {
		m := a.Midpoint(b)
		if w.Contains(m) {
			a = m
		} else {
			b = m
		}
		if a.ApproxEqual(b, tolerance) {
			return a
		}
	}
	if tolerance > 0 && debugEnabled() {
		Logger().Debug("bisection did not converge",
			slog.Int("iterations", MaxBisections),
			slog.Float64("tolerance", tolerance),
			slog.Float64("gap", math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))))
	}
	return a
}

// span is a piece of the segment under subdivision.
type span struct {
	a, b         Point
	codeA, codeB Outcode
	depth        int
}

// interiorPoint looks for a point of the segment from p1 to p2 that lies in
// w by recursive midpoint subdivision. Pieces whose endpoints share an
// outside region cannot meet w and are discarded, as are pieces shorter than
// tolerance on both axes and pieces deeper than MaxBisections.
func (w Window) interiorPoint(p1, p2 Point, tolerance float64) (Point, bool) {
	stack := []span{{a: p1, b: p2, codeA: w.Outcode(p1), codeB: w.Outcode(p2)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m := s.a.Midpoint(s.b)
		codeM := w.Outcode(m)
		if codeM == Inside {
			return m, true
		}
		if s.depth >= MaxBisections || s.a.ApproxEqual(s.b, tolerance) || m == s.a || m == s.b {
			continue
		}
		if s.codeA&codeM == 0 {
			stack = append(stack, span{a: s.a, b: m, codeA: s.codeA, codeB: codeM, depth: s.depth + 1})
		}
		if codeM&s.codeB == 0 {
			stack = append(stack, span{a: m, b: s.b, codeA: codeM, codeB: s.codeB, depth: s.depth + 1})
		}
	}
	return Point{}, false
}
