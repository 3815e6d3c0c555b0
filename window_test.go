package lineclip

import (
	"errors"
	"math"
	"testing"
)

func TestNewWindow(t *testing.T) {
	w, err := NewWindow(-1, 2, -3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff(t, []float64{w.MinX(), w.MaxX(), w.MinY(), w.MaxY()}, []float64{-1, 2, -3, 4})
	diff(t, []float64{w.Width(), w.Height()}, []float64{3, 7})
	diff(t, w.Center(), Pt(0.5, 0.5))

	// Zero-area windows are valid.
	if _, err := NewWindow(1, 1, 2, 2); err != nil {
		t.Errorf("unexpected error for degenerate window: %v", err)
	}
}

func TestNewWindowInvalid(t *testing.T) {
	tests := []struct {
		name                   string
		xMin, xMax, yMin, yMax float64
	}{
		{"reversed x", 1, -1, -1, 1},
		{"reversed y", -1, 1, 1, -1},
		{"NaN", math.NaN(), 1, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWindow(tt.xMin, tt.xMax, tt.yMin, tt.yMax)
			if !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("got error %v, want %v", err, ErrInvalidWindow)
			}
		})
	}
}

func TestMustWindowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustWindow to panic")
		}
	}()
	MustWindow(1, 0, 0, 1)
}

func TestNewWindowFromPoints(t *testing.T) {
	w, err := NewWindowFromPoints(Pt(1, -2), Pt(-1, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff(t, w, MustWindow(-1, 1, -2, 2), cmpAllowWindow)
}

func TestWindowContains(t *testing.T) {
	w := unitWindow
	for _, pt := range []Point{Pt(0, 0), Pt(-1, 0), Pt(1, 0), Pt(0, -1), Pt(0, 1), Pt(1, 1), Pt(-1, -1)} {
		if !w.Contains(pt) {
			t.Errorf("%v should be contained in %v", pt, w)
		}
	}
	for _, pt := range []Point{Pt(-1.0000001, 0), Pt(0, 1.0000001), Pt(2, 2), Pt(math.NaN(), 0)} {
		if w.Contains(pt) {
			t.Errorf("%v shouldn't be contained in %v", pt, w)
		}
	}
}

func TestWindowInflate(t *testing.T) {
	diff(t, unitWindow.Inflate(0.5, 1), MustWindow(-1.5, 1.5, -2, 2), cmpAllowWindow)
	// Shrinking stops at the center.
	diff(t, unitWindow.Inflate(-3, 0), MustWindow(0, 0, -1, 1), cmpAllowWindow)
}

func TestWindowString(t *testing.T) {
	if got, want := unitWindow.String(), "[-1.000, 1.000] × [-1.000, 1.000]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
