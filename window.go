package lineclip

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWindow is returned when a window's minimum bound exceeds its
// maximum bound on either axis, or when a bound is NaN.
var ErrInvalidWindow = errors.New("lineclip: invalid clip window")

// Window is an axis-aligned clip rectangle. The zero value is the degenerate
// window containing only the origin.
//
// A Window cannot be modified after construction and may be shared freely
// between goroutines.
type Window struct {
	xMin, xMax float64
	yMin, yMax float64
}

// NewWindow returns the window spanning [xMin, xMax] × [yMin, yMax]. It
// returns an error wrapping [ErrInvalidWindow] if xMin > xMax or yMin > yMax.
// Callers holding bounds in unknown order should use [NewWindowFromPoints].
func NewWindow(xMin, xMax, yMin, yMax float64) (Window, error) {
	if math.IsNaN(xMin) || math.IsNaN(xMax) || math.IsNaN(yMin) || math.IsNaN(yMax) {
		return Window{}, fmt.Errorf("%w: NaN bound", ErrInvalidWindow)
	}
	if xMin > xMax {
		return Window{}, fmt.Errorf("%w: x_min %g > x_max %g", ErrInvalidWindow, xMin, xMax)
	}
	if yMin > yMax {
		return Window{}, fmt.Errorf("%w: y_min %g > y_max %g", ErrInvalidWindow, yMin, yMax)
	}
	return Window{xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax}, nil
}

// NewWindowFromPoints returns the window with opposite corners p0 and p1,
// swapping coordinates as needed.
func NewWindowFromPoints(p0, p1 Point) (Window, error) {
	return NewWindow(min(p0.X, p1.X), max(p0.X, p1.X), min(p0.Y, p1.Y), max(p0.Y, p1.Y))
}

// MustWindow is like [NewWindow] but panics on invalid bounds.
func MustWindow(xMin, xMax, yMin, yMax float64) Window {
	w, err := NewWindow(xMin, xMax, yMin, yMax)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Window) MinX() float64 { return w.xMin }
func (w Window) MaxX() float64 { return w.xMax }
func (w Window) MinY() float64 { return w.yMin }
func (w Window) MaxY() float64 { return w.yMax }

func (w Window) Width() float64 {
	return w.xMax - w.xMin
}

func (w Window) Height() float64 {
	return w.yMax - w.yMin
}

func (w Window) Center() Point {
	return Point{
		X: 0.5 * (w.xMin + w.xMax),
		Y: 0.5 * (w.yMin + w.yMax),
	}
}

// Contains reports whether pt lies inside the window or on its boundary.
func (w Window) Contains(pt Point) bool {
	return w.xMin <= pt.X && pt.X <= w.xMax &&
		w.yMin <= pt.Y && pt.Y <= w.yMax
}

// Inflate expands the window by dx on the left and right and by dy on the
// bottom and top. Negative amounts shrink it, but never past its center.
func (w Window) Inflate(dx, dy float64) Window {
	c := w.Center()
	return Window{
		xMin: min(w.xMin-dx, c.X),
		xMax: max(w.xMax+dx, c.X),
		yMin: min(w.yMin-dy, c.Y),
		yMax: max(w.yMax+dy, c.Y),
	}
}

func (w Window) String() string {
	return fmt.Sprintf("[%.3f, %.3f] × [%.3f, %.3f]", w.xMin, w.xMax, w.yMin, w.yMax)
}
