package lineclip

import (
	"fmt"
	"strings"
)

// Outcode is the Cohen–Sutherland region code of a point relative to a window.
type Outcode uint8

const (
	Inside Outcode = 0
	Left   Outcode = 1
	Right  Outcode = 2
	Bottom Outcode = 4
	Top    Outcode = 8
)

// Outcode classifies pt relative to w. Left and Right are mutually exclusive,
// as are Bottom and Top. Points on a bound are inside on that axis.
func (w Window) Outcode(pt Point) Outcode {
	code := Inside
	if pt.X < w.xMin {
		code |= Left
	} else if pt.X > w.xMax {
		code |= Right
	}
	if pt.Y < w.yMin {
		code |= Bottom
	} else if pt.Y > w.yMax {
		code |= Top
	}
	return code
}

func (c Outcode) String() string {
	if c == Inside {
		return "INSIDE"
	}
	var names []string
	for _, b := range [...]struct {
		bit  Outcode
		name string
	}{{Left, "LEFT"}, {Right, "RIGHT"}, {Bottom, "BOTTOM"}, {Top, "TOP"}} {
		if c&b.bit != 0 {
			names = append(names, b.name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Outcode(%d)", uint8(c))
	}
	return strings.Join(names, "|")
}
