package lineclip

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentLength(t *testing.T) {
	s := Seg(Pt(0.0, 0.0), Pt(1.0, 1.0))
	want := math.Sqrt(2.0)
	if d := math.Abs(s.Length() - want); d > 1e-12 {
		t.Errorf("got length %v, want %v", s.Length(), want)
	}
	diff(t, s.Eval(0.5), Pt(0.5, 0.5))
	diff(t, s.Reverse(), Seg(Pt(1, 1), Pt(0, 0)))
}

func TestSegmentSubsegment(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(10, -20))
	diff(t, s.Subsegment(0.25, 0.75), Seg(Pt(2.5, -5), Pt(7.5, -15)))
	diff(t, s.Subsegment(1, 0), s.Reverse())
}

func TestSegmentNearest(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(10, 0))

	distSq, tt := s.Nearest(Pt(5, 3))
	diff(t, []float64{distSq, tt}, []float64{9, 0.5}, cmpopts.EquateApprox(0, 1e-12))

	distSq, tt = s.Nearest(Pt(-3, 4))
	diff(t, []float64{distSq, tt}, []float64{25, 0})

	distSq, tt = s.Nearest(Pt(13, -4))
	diff(t, []float64{distSq, tt}, []float64{25, 1})
}

func TestSegmentApproxEqual(t *testing.T) {
	s := Seg(Pt(-1, 0.5), Pt(1, 0.5))
	o := Seg(Pt(-1+1e-7, 0.5), Pt(1, 0.5-1e-7))
	if !s.ApproxEqual(o, 1e-5) {
		t.Errorf("%v and %v should be approximately equal", s, o)
	}
	if s.ApproxEqual(o.Reverse(), 1e-5) {
		t.Errorf("%v and %v have opposite directions", s, o.Reverse())
	}
}

func TestSegmentIsInf(t *testing.T) {
	if Seg(Pt(0.0, 0.0), Pt(1.0, 1.0)).IsInf() {
		t.Error("segment is infinite but shouldn't be")
	}
	if !Seg(Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)).IsInf() {
		t.Error("segment is finite but shouldn't be")
	}
	if !Seg(Pt(0.0, math.NaN()), Pt(1.0, 1.0)).IsNaN() {
		t.Error("segment isn't NaN but should be")
	}
}

func TestSegmentString(t *testing.T) {
	if got, want := Seg(Pt(-1, 0.5), Pt(1, 0.5)).String(), "(-1.000, 0.500) → (1.000, 0.500)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
