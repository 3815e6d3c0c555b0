package lineclip

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestClipCohenSutherland(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   Segment
		ok     bool
	}{
		{"inside", Pt(-0.5, -0.5), Pt(0.25, 0.75), Seg(Pt(-0.5, -0.5), Pt(0.25, 0.75)), true},
		{"on boundary", Pt(-1, -1), Pt(1, -1), Seg(Pt(-1, -1), Pt(1, -1)), true},
		{"left to top", Pt(-1.5, 1.0/6), Pt(0.5, 1.5), Seg(Pt(-1, 0.5), Pt(-0.25, 1)), true},
		{"horizontal through", Pt(-2, 0.5), Pt(2, 0.5), Seg(Pt(-1, 0.5), Pt(1, 0.5)), true},
		{"vertical through", Pt(0.5, -3), Pt(0.5, 3), Seg(Pt(0.5, -1), Pt(0.5, 1)), true},
		{"diagonal through corners", Pt(-2, -2), Pt(2, 2), Seg(Pt(-1, -1), Pt(1, 1)), true},
		{"inside to right", Pt(0, 0), Pt(2, 1), Seg(Pt(0, 0), Pt(1, 0.5)), true},
		{"right to inside", Pt(2, 1), Pt(0, 0), Seg(Pt(1, 0.5), Pt(0, 0)), true},
		{"same side", Pt(2, 2), Pt(3, 3), Segment{}, false},
		{"vertical outside", Pt(2, -3), Pt(2, 3), Segment{}, false},
		{"horizontal below", Pt(-3, -2), Pt(3, -2), Segment{}, false},
		{"misses corner", Pt(-2, 0.5), Pt(0.5, 3), Segment{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := unitWindow.ClipCohenSutherland(tt.p1, tt.p2)
			if ok != tt.ok {
				t.Fatalf("got ok = %t, want %t", ok, tt.ok)
			}
			diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-12))
		})
	}
}

func TestClipCohenSutherlandExactBounds(t *testing.T) {
	got, ok := unitWindow.ClipCohenSutherland(Pt(-1.5, 1.0/6), Pt(0.5, 1.5))
	if !ok {
		t.Fatal("expected a clipped segment")
	}
	if got.P0.X != -1 {
		t.Errorf("start should lie exactly on x_min, got %v", got.P0)
	}
	if got.P1.Y != 1 {
		t.Errorf("end should lie exactly on y_max, got %v", got.P1)
	}
}

func TestClipCohenSutherlandPreservesInside(t *testing.T) {
	w := MustWindow(-3, 5, 0, 10)
	segs := []Segment{
		Seg(Pt(-3, 0), Pt(5, 10)),
		Seg(Pt(1.2345, 6.789), Pt(4.999, 0.001)),
		Seg(Pt(0, 5), Pt(0, 5)),
	}
	for _, s := range segs {
		got, ok := w.ClipCohenSutherland(s.P0, s.P1)
		if !ok {
			t.Errorf("%v was rejected", s)
			continue
		}
		if got != s {
			t.Errorf("got %v, want %v unchanged", got, s)
		}
	}
}

func TestClipCohenSutherlandIdempotent(t *testing.T) {
	for _, s := range crossingSegments {
		first, ok := unitWindow.ClipCohenSutherland(s.P0, s.P1)
		if !ok {
			t.Errorf("%v was rejected", s)
			continue
		}
		second, ok := unitWindow.ClipCohenSutherland(first.P0, first.P1)
		if !ok {
			t.Errorf("re-clipping %v was rejected", first)
			continue
		}
		diff(t, first, second)
	}
}

func TestClipCohenSutherlandNonFinite(t *testing.T) {
	for _, s := range []Segment{
		Seg(Pt(math.Inf(-1), 0), Pt(0, 0)),
		Seg(Pt(0, 0), Pt(math.NaN(), 0)),
	} {
		if got, ok := unitWindow.ClipCohenSutherland(s.P0, s.P1); ok {
			t.Errorf("%v should be rejected, got %v", s, got)
		}
	}
}

func TestBoundaryCrossingDegenerate(t *testing.T) {
	tests := []struct {
		p1, p2 Point
		code   Outcode
	}{
		{Pt(-2, 2), Pt(2, 2), Top},
		{Pt(-2, -2), Pt(2, -2), Bottom},
		{Pt(2, -2), Pt(2, 2), Right},
		{Pt(-2, -2), Pt(-2, 2), Left},
	}
	for _, tt := range tests {
		if pt, ok := unitWindow.boundaryCrossing(tt.p1, tt.p2, tt.code, tt.p1); ok {
			t.Errorf("crossing %v from %v with zero extent: got %v, want none", tt.code, Seg(tt.p1, tt.p2), pt)
		}
	}

	pt, ok := unitWindow.boundaryCrossing(Pt(0, 0), Pt(1, 1), Outcode(16), Pt(1, 1))
	if !ok || pt != Pt(1, 1) {
		t.Errorf("unknown code should leave the point unchanged, got %v, %t", pt, ok)
	}
}
