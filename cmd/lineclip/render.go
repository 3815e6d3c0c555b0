package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"iter"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"honnef.co/go/lineclip"
)

const (
	defaultPanelSize = 400
	minPanelSize     = 100

	// titleHeight is the strip above each panel holding its title.
	titleHeight = 20
	margin      = 30

	// extentPad widens the data extents so nothing touches the margin.
	extentPad = 0.1

	dashLen   = 3
	dotRadius = 3
	// strokeTolerance is the flattening tolerance in pixels.
	strokeTolerance = 0.1
)

var (
	windowColor = color.RGBA{R: 0xff, A: 0xff}
	sourceColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	frameColor  = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}

	// segmentColors cycle over the clipped segments.
	segmentColors = []color.RGBA{
		{B: 0xff, A: 0xff},                   // blue
		{G: 0x80, A: 0xff},                   // green
		{R: 0x80, B: 0x80, A: 0xff},          // purple
		{R: 0xff, G: 0xa5, A: 0xff},          // orange
		{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff}, // brown
		{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}, // pink
	}

	windowStroke  = lineclip.DefaultStroke.WithWidth(2)
	sourceStroke  = lineclip.DefaultStroke.WithDashes(0, []float64{dashLen, dashLen})
	clippedStroke = lineclip.DefaultStroke.WithWidth(3)
	frameStroke   = lineclip.DefaultStroke

	panelTitles = [...]string{"Source data", "Cohen-Sutherland", "Midpoint"}
)

// viewport maps logical coordinates into one square panel. The y axis points
// up in logical space and down in the image.
type viewport struct {
	xMin, yMin float64
	scale      float64
	// origin is the panel's top-left pixel, below its title.
	origin image.Point
	size   int
}

// newViewport fits the window and all finite segment endpoints into a panel
// of the given size.
func newViewport(w lineclip.Window, segs []lineclip.Segment, size int) viewport {
	lo, hi := lineclip.Pt(w.MinX(), w.MinY()), lineclip.Pt(w.MaxX(), w.MaxY())
	for _, s := range segs {
		if s.IsInf() || s.IsNaN() {
			continue
		}
		lo = lineclip.Pt(min(lo.X, s.P0.X, s.P1.X), min(lo.Y, s.P0.Y, s.P1.Y))
		hi = lineclip.Pt(max(hi.X, s.P0.X, s.P1.X), max(hi.Y, s.P0.Y, s.P1.Y))
	}
	ext := lineclip.MustWindow(lo.X, hi.X, lo.Y, hi.Y).Inflate(extentPad, extentPad)

	avail := float64(size - 2*margin)
	return viewport{
		xMin:  ext.MinX(),
		yMin:  ext.MinY(),
		scale: min(avail/ext.Width(), avail/ext.Height()),
		size:  size,
	}
}

func (v viewport) at(origin image.Point) viewport {
	v.origin = origin
	return v
}

// project returns the pixel position of pt.
func (v viewport) project(pt lineclip.Point) lineclip.Point {
	return lineclip.Pt(
		float64(v.origin.X+margin)+(pt.X-v.xMin)*v.scale,
		float64(v.origin.Y+v.size-margin)-(pt.Y-v.yMin)*v.scale,
	)
}

// canvas rasterizes filled paths onto an RGBA image.
type canvas struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

func newCanvas(width, height int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &canvas{img: img, r: vector.NewRasterizer(width, height)}
}

// fill paints the area enclosed by path, given in pixels.
func (c *canvas) fill(path iter.Seq[lineclip.PathElement], col color.Color) {
	for el := range path {
		switch el.Kind {
		case lineclip.MoveToKind:
			c.r.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case lineclip.LineToKind:
			c.r.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case lineclip.CubicToKind:
			c.r.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y))
		case lineclip.ClosePathKind:
			c.r.ClosePath()
		}
	}
	b := c.img.Bounds()
	c.r.Draw(c.img, b, image.NewUniform(col), image.Point{})
	c.r.Reset(b.Dx(), b.Dy())
}

func (c *canvas) stroke(path iter.Seq[lineclip.PathElement], style lineclip.Stroke, col color.Color) {
	c.fill(lineclip.StrokePath(path, style, strokeTolerance), col)
}

func (c *canvas) text(x, y int, s string) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (c *canvas) window(v viewport, w lineclip.Window) {
	c.stroke(lineclip.MapPath(w.PathElements(), v.project), windowStroke, windowColor)
}

func (c *canvas) segments(v viewport, segs []lineclip.Segment, clipped []lineclip.Segment, ok []bool) {
	for i, s := range segs {
		if s.IsInf() || s.IsNaN() {
			continue
		}
		c.stroke(lineclip.MapPath(s.PathElements(), v.project), sourceStroke, sourceColor)

		if ok == nil || !ok[i] {
			continue
		}
		col := segmentColors[i%len(segmentColors)]
		c.stroke(lineclip.MapPath(clipped[i].PathElements(), v.project), clippedStroke, col)
		for _, pt := range []lineclip.Point{clipped[i].P0, clipped[i].P1} {
			dot := lineclip.Circle{Center: v.project(pt), Radius: dotRadius}
			c.fill(dot.PathElements(strokeTolerance), col)
		}
	}
}

// render draws three panels side by side: the source data, the
// Cohen–Sutherland results and the midpoint results.
func render(w lineclip.Window, segs []lineclip.Segment, results []result, size int) *image.RGBA {
	c := newCanvas(3*size, size+titleHeight)
	base := newViewport(w, segs, size)

	cohen := make([]lineclip.Segment, len(results))
	cohenOK := make([]bool, len(results))
	mid := make([]lineclip.Segment, len(results))
	midOK := make([]bool, len(results))
	for i, r := range results {
		cohen[i], cohenOK[i] = r.cohen, r.cohenOK
		mid[i], midOK[i] = r.midpoint, r.midpointOK
	}

	for i, title := range panelTitles {
		origin := image.Pt(i*size, titleHeight)
		v := base.at(origin)

		edge := float64(origin.X+size) - 0.5
		frame := lineclip.Seg(lineclip.Pt(edge, float64(origin.Y)), lineclip.Pt(edge, float64(origin.Y+size)))
		c.stroke(frame.PathElements(), frameStroke, frameColor)
		c.text(origin.X+margin, titleHeight-5, title)

		c.window(v, w)
		switch i {
		case 0:
			c.segments(v, segs, nil, nil)
		case 1:
			c.segments(v, segs, cohen, cohenOK)
		case 2:
			c.segments(v, segs, mid, midOK)
		}
	}
	return c.img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the output file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("unable to encode the visualization: %w", err)
	}
	return f.Close()
}
