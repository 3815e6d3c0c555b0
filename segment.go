package lineclip

import "fmt"

// Segment is a directed line segment. Clipping returns segments whose
// endpoints lie inside or on the boundary of the clip window.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Seg returns the segment from p0 to p1.
func Seg(p0, p1 Point) Segment {
	return Segment{P0: p0, P1: p1}
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

func (s Segment) Eval(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}

// Subsegment returns the part of s between the parameters t0 and t1.
func (s Segment) Subsegment(t0, t1 float64) Segment {
	return Segment{P0: s.Eval(t0), P1: s.Eval(t1)}
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

// Nearest returns the squared distance from pt to the closest point on s and
// that point's parameter t ∈ [0, 1].
func (s Segment) Nearest(pt Point) (distSq, t float64) {
	d := s.P1.Sub(s.P0)
	dotp := d.Dot(pt.Sub(s.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(s.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(s.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(s.Eval(t)).Hypot2()
		return dist, t
	}
}

// ApproxEqual reports whether the endpoints of s and o pairwise differ by
// less than tol on both axes. Direction matters; compare against o.Reverse()
// to ignore it.
func (s Segment) ApproxEqual(o Segment, tol float64) bool {
	return s.P0.ApproxEqual(o.P0, tol) && s.P1.ApproxEqual(o.P1, tol)
}

func (s Segment) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf()
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}

func (s Segment) String() string {
	return fmt.Sprintf("%v → %v", s.P0, s.P1)
}
