package lineclip

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

// Map returns the element with f applied to each of its points.
func (el PathElement) Map(f func(Point) Point) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(f(el.P0))
	case LineToKind:
		return LineTo(f(el.P0))
	case CubicToKind:
		return CubicTo(f(el.P0), f(el.P1), f(el.P2))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// MapPath applies f to every point of every element of seq.
func MapPath(seq iter.Seq[PathElement], f func(Point) Point) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for el := range seq {
			if !yield(el.Map(f)) {
				return
			}
		}
	}
}

// BezPath is a path accumulated element by element.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// Truncate truncates the path, keeping the first n elements.
func (p *BezPath) Truncate(n int) {
	if n >= len(*p) {
		return
	}
	*p = (*p)[:n]
}

// PathElements returns the outline of the segment as an open subpath.
func (s Segment) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(s.P0)) &&
			yield(LineTo(s.P1))
	}
}

// PathElements returns the outline of the window as a closed subpath,
// counterclockwise in a y-up space.
func (w Window) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(w.xMin, w.yMin))) &&
			yield(LineTo(Pt(w.xMax, w.yMin))) &&
			yield(LineTo(Pt(w.xMax, w.yMax))) &&
			yield(LineTo(Pt(w.xMin, w.yMax))) &&
			yield(ClosePath())
	}
}
