package lineclip

import "testing"

func TestOutcode(t *testing.T) {
	w := MustWindow(-1, 1, -2, 2)
	tests := []struct {
		pt   Point
		want Outcode
	}{
		{Pt(0, 0), Inside},
		{Pt(-1.5, 0), Left},
		{Pt(1.5, 0), Right},
		{Pt(0, -3), Bottom},
		{Pt(0, 3), Top},
		{Pt(-5, 5), Left | Top},
		{Pt(5, 5), Right | Top},
		{Pt(-5, -5), Left | Bottom},
		{Pt(5, -5), Right | Bottom},
	}
	for _, tt := range tests {
		if got := w.Outcode(tt.pt); got != tt.want {
			t.Errorf("Outcode(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestOutcodeBoundaryIsInside(t *testing.T) {
	w := MustWindow(-1, 1, -2, 2)
	for _, pt := range []Point{Pt(-1, 0), Pt(1, 0), Pt(0, -2), Pt(0, 2), Pt(-1, -2), Pt(1, 2)} {
		if got := w.Outcode(pt); got != Inside {
			t.Errorf("Outcode(%v) = %v, want %v", pt, got, Inside)
		}
	}
	// Only the axis on the bound counts as inside.
	if got := w.Outcode(Pt(-1, 3)); got != Top {
		t.Errorf("Outcode(%v) = %v, want %v", Pt(-1, 3), got, Top)
	}
}

func TestOutcodeExclusive(t *testing.T) {
	// A zero-width window still yields at most one horizontal bit.
	w := MustWindow(0, 0, 0, 0)
	for _, pt := range []Point{Pt(-1, -1), Pt(1, 1), Pt(-1, 1), Pt(1, -1)} {
		c := w.Outcode(pt)
		if c&(Left|Right) == Left|Right || c&(Top|Bottom) == Top|Bottom {
			t.Errorf("Outcode(%v) = %v sets opposite bits", pt, c)
		}
	}
}

func TestOutcodeString(t *testing.T) {
	tests := []struct {
		code Outcode
		want string
	}{
		{Inside, "INSIDE"},
		{Left, "LEFT"},
		{Left | Top, "LEFT|TOP"},
		{Right | Bottom, "RIGHT|BOTTOM"},
		{Outcode(16), "Outcode(16)"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
