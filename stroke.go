package lineclip

import (
	"iter"
	"math"
)

// Join defines the connection between two segments of a stroke.
type Join int

const (
	// A straight line connecting the segments.
	BevelJoin Join = iota
	// The segments are extended to their natural intersection point.
	MiterJoin
)

// Cap defines the shape to be drawn at the ends of a stroke.
type Cap int

const (
	// Flat cap.
	ButtCap Cap = iota
	// Square cap with dimensions equal to half the stroke width.
	SquareCap
)

// Stroke describes the visual style of a stroke.
type Stroke struct {
	// Width of the stroke.
	Width float64
	// Style for connecting segments of the stroke.
	Join Join
	// Limit for miter joins.
	MiterLimit float64
	// Style for capping the beginning of an open subpath.
	StartCap Cap
	// Style for capping the end of an open subpath.
	EndCap Cap
	// Lengths of dashes in alternating on/off order.
	DashPattern []float64
	// Offset of the first dash.
	DashOffset float64
}

var DefaultStroke = Stroke{
	Width:      1.0,
	Join:       MiterJoin,
	MiterLimit: 4.0,
	StartCap:   ButtCap,
	EndCap:     ButtCap,
}

func (s Stroke) WithWidth(width float64) Stroke { s.Width = width; return s }
func (s Stroke) WithJoin(join Join) Stroke      { s.Join = join; return s }
func (s Stroke) WithCaps(cap Cap) Stroke        { s.StartCap, s.EndCap = cap, cap; return s }
func (s Stroke) WithDashes(offset float64, pattern []float64) Stroke {
	s.DashOffset, s.DashPattern = offset, pattern
	return s
}

type strokeCtx struct {
	yield func(PathElement) bool
	dead  bool
	// forward paths are yielded directly instead of being accumulated like
	// backwardPath is. emittedForward is set to true if any elements have been
	// yielded, and reset to false after a path is completed.
	emittedForward bool
	backwardPath   BezPath
	startPt        Point
	startNorm      Vec2
	startTan       Vec2
	lastPt         Point
	lastTan        Vec2
	// If hypot < (hypot + dot) * joinThresh omit join altogether.
	joinThresh float64
}

// StrokePath expands a stroke of a polyline path into a fill. The result
// consists of closed subpaths and can be filled with the nonzero rule.
//
// Cubic elements are stroked along their chord; the paths drawn by this
// package only contain straight lines. Joins between segments whose
// directions differ by less than tolerance are omitted.
func StrokePath(path iter.Seq[PathElement], style Stroke, tolerance float64) iter.Seq[PathElement] {
	if dashLength(style.DashPattern) <= 0 {
		return strokeUndashed(path, style, tolerance)
	}
	return strokeUndashed(Dash(path, style.DashOffset, style.DashPattern), style, tolerance)
}

func dashLength(pattern []float64) float64 {
	var sum float64
	for _, d := range pattern {
		sum += d
	}
	return sum
}

func strokeUndashed(path iter.Seq[PathElement], style Stroke, tolerance float64) iter.Seq[PathElement] {
	return func(yield func(v PathElement) bool) {
		ctx := strokeCtx{
			yield:      yield,
			joinThresh: 2.0 * tolerance / style.Width,
		}
		for el := range path {
			p0 := ctx.lastPt
			switch el.Kind {
			case MoveToKind:
				ctx.finish(style)
				ctx.startPt = el.P0
				ctx.lastPt = el.P0
			case LineToKind, CubicToKind:
				p1, _ := el.EndPoint()
				if p1 != p0 {
					tangent := p1.Sub(p0)
					ctx.doJoin(style, tangent)
					ctx.lastTan = tangent
					ctx.doLine(style, tangent, p1)
				}
			case ClosePathKind:
				if p0 != ctx.startPt {
					tangent := ctx.startPt.Sub(p0)
					ctx.doJoin(style, tangent)
					ctx.lastTan = tangent
					ctx.doLine(style, tangent, ctx.startPt)
				}
				ctx.finishClosed(style)
			}
			if ctx.dead {
				return
			}
		}
		ctx.finish(style)
	}
}

func (ctx *strokeCtx) doYield(el PathElement) {
	if ctx.dead {
		return
	}
	ctx.dead = !ctx.yield(el)
	ctx.emittedForward = true
}

// Append backward path to output.
func (ctx *strokeCtx) finish(style Stroke) {
	if !ctx.emittedForward {
		return
	}
	returnPt, _ := ctx.backwardPath[len(ctx.backwardPath)-1].EndPoint()
	d := ctx.lastPt.Sub(returnPt)
	switch style.EndCap {
	case ButtCap:
		ctx.LineTo(returnPt)
	case SquareCap:
		squareCap(ctx, false, ctx.lastPt, d)
	}
	extendReversed(ctx, ctx.backwardPath)
	switch style.StartCap {
	case ButtCap:
		ctx.ClosePath()
	case SquareCap:
		squareCap(ctx, true, ctx.startPt, ctx.startNorm)
	}

	ctx.emittedForward = false
	ctx.backwardPath.Truncate(0)
}

// Finish a closed path
func (ctx *strokeCtx) finishClosed(style Stroke) {
	if !ctx.emittedForward {
		return
	}
	ctx.doJoin(style, ctx.startTan)
	ctx.ClosePath()
	lastPt, _ := ctx.backwardPath[len(ctx.backwardPath)-1].EndPoint()
	ctx.MoveTo(lastPt)
	extendReversed(ctx, ctx.backwardPath)
	ctx.ClosePath()
	ctx.emittedForward = false
	ctx.backwardPath.Truncate(0)
}

func (ctx *strokeCtx) doJoin(style Stroke, tan0 Vec2) {
	scale := 0.5 * style.Width / tan0.Hypot()
	norm := Vec(-tan0.Y, tan0.X).Mul(scale)
	p0 := ctx.lastPt
	if !ctx.emittedForward {
		ctx.MoveTo(p0.Translate(norm.Negate()))
		ctx.backwardPath.MoveTo(p0.Translate(norm))
		ctx.startTan = tan0
		ctx.startNorm = norm
		return
	}

	ab := ctx.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)
	if dot > 0.0 && math.Abs(cross) < hypot*ctx.joinThresh {
		return
	}
	if style.Join == MiterJoin && 2.0*hypot < (hypot+dot)*style.MiterLimit*style.MiterLimit {
		lastScale := 0.5 * style.Width / ab.Hypot()
		lastNorm := Vec(-ab.Y, ab.X).Mul(lastScale)
		if cross > 0.0 {
			fpLast := p0.Translate(lastNorm.Negate())
			fpThis := p0.Translate(norm.Negate())
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			ctx.LineTo(fpThis.Translate(cd.Mul(h).Negate()))
		} else if cross < 0.0 {
			fpLast := p0.Translate(lastNorm)
			fpThis := p0.Translate(norm)
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			ctx.backwardPath.LineTo(fpThis.Translate(cd.Mul(h).Negate()))
		}
	}
	ctx.LineTo(p0.Translate(norm.Negate()))
	ctx.backwardPath.LineTo(p0.Translate(norm))
}

func (ctx *strokeCtx) doLine(style Stroke, tangent Vec2, p1 Point) {
	scale := 0.5 * style.Width / tangent.Hypot()
	norm := Vec(-tangent.Y, tangent.X).Mul(scale)
	ctx.LineTo(p1.Translate(norm.Negate()))
	ctx.backwardPath.LineTo(p1.Translate(norm))
	ctx.lastPt = p1
}

func (ctx *strokeCtx) LineTo(p1 Point) {
	ctx.doYield(LineTo(p1))
}

func (ctx *strokeCtx) ClosePath() {
	ctx.doYield(ClosePath())
}

func (ctx *strokeCtx) MoveTo(pt Point) {
	ctx.doYield(MoveTo(pt))
}

// squareCap extends the stroke by half its width past center. norm points
// from the stroke's center line to the side the cap starts on.
func squareCap(out *strokeCtx, close bool, center Point, norm Vec2) {
	along := Vec(-norm.Y, norm.X)
	out.LineTo(center.Translate(norm.Add(along)))
	out.LineTo(center.Translate(norm.Negate().Add(along)))
	if close {
		out.ClosePath()
	} else {
		out.LineTo(center.Translate(norm.Negate()))
	}
}

func extendReversed(out *strokeCtx, elements []PathElement) {
	for i := len(elements) - 1; i >= 1; i-- {
		end, _ := elements[i-1].EndPoint()
		out.LineTo(end)
	}
}

type dashState int

const (
	dashStateNeedInput dashState = iota
	dashStateToStash
	dashStateWorking
	dashStateFromStash
)

// Dash returns a dashing iterator. It consumes a sequence of path elements and produces a
// new sequence of path elements representing a dashed version of the original sequence.
//
// The dash pattern must contain at least one positive length. As in
// [StrokePath], cubic elements are followed along their chord.
func Dash(inner iter.Seq[PathElement], dashOffset float64, dashes []float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		dashIdx := 0
		isActive := true
		dashRemaining := dashes[dashIdx] - dashOffset
		// Find place in dashes array for initial offset.
		for dashRemaining < 0.0 {
			dashIdx = (dashIdx + 1) % len(dashes)
			dashRemaining += dashes[dashIdx]
			isActive = !isActive
		}
		next, stop := iter.Pull(inner)
		di := &dashIterator{
			innerNext:         next,
			dashes:            dashes,
			dashIdx:           dashIdx,
			initDashIdx:       dashIdx,
			initDashRemaining: dashRemaining,
			initIsActive:      isActive,
			isActive:          isActive,
			state:             dashStateNeedInput,
			dashRemaining:     dashRemaining,
		}
		defer stop()
		for {
			switch di.state {
			case dashStateNeedInput:
				if di.inputDone {
					return
				}
				di.getInput()
				if di.inputDone {
					return
				}
				di.state = dashStateToStash
			case dashStateToStash:
				if el, ok := di.step(); ok {
					di.stash = append(di.stash, el)
				}
			case dashStateWorking:
				if el, ok := di.step(); ok {
					if !yield(el) {
						return
					}
				}
			case dashStateFromStash:
				if di.stashIdx < len(di.stash) {
					el := di.stash[di.stashIdx]
					di.stashIdx++
					if !yield(el) {
						return
					}
				} else {
					di.stash = di.stash[:0]
					di.stashIdx = 0
					if di.inputDone {
						return
					}
					if di.closepathPending {
						di.closepathPending = false
						di.state = dashStateNeedInput
					} else {
						di.state = dashStateToStash
					}
				}
			}
		}
	}
}

type dashIterator struct {
	innerNext func() (PathElement, bool)

	inputDone         bool
	closepathPending  bool
	dashes            []float64
	dashIdx           int
	initDashIdx       int
	initDashRemaining float64
	initIsActive      bool
	isActive          bool
	state             dashState
	currentSeg        Segment
	t                 float64
	dashRemaining     float64
	segRemaining      float64
	startPt           Point
	lastPt            Point
	stash             []PathElement
	stashIdx          int
}

func (di *dashIterator) getInput() {
	for {
		if di.closepathPending {
			di.handleClosepath()
			break
		}
		nextEl, ok := di.innerNext()
		if !ok {
			di.inputDone = true
			di.state = dashStateFromStash
			return
		}
		p0 := di.lastPt
		switch nextEl.Kind {
		case MoveToKind:
			if len(di.stash) != 0 {
				di.state = dashStateFromStash
			}
			di.startPt = nextEl.P0
			di.lastPt = nextEl.P0
			di.resetPhase()
			continue
		case LineToKind, CubicToKind:
			p1, _ := nextEl.EndPoint()
			di.currentSeg = Seg(p0, p1)
			di.segRemaining = di.currentSeg.Length()
			di.lastPt = p1
		case ClosePathKind:
			di.closepathPending = true
			if p0 != di.startPt {
				di.currentSeg = Seg(p0, di.startPt)
				di.segRemaining = di.currentSeg.Length()
				di.lastPt = di.startPt
			} else {
				di.handleClosepath()
			}
		}
		break
	}
	di.t = 0.0
}

// Move arc length forward to next event.
func (di *dashIterator) step() (PathElement, bool) {
	var result PathElement
	var hasResult bool
	if di.state == dashStateToStash && len(di.stash) == 0 {
		if di.isActive {
			result = MoveTo(di.currentSeg.Eval(di.t))
			hasResult = true
		} else {
			di.state = dashStateWorking
		}
	} else if di.dashRemaining < di.segRemaining {
		// next transition is a dash transition
		rest := di.currentSeg.Subsegment(di.t, 1.0)
		t1 := di.dashRemaining / rest.Length()
		if di.isActive {
			result = LineTo(rest.Eval(t1))
			hasResult = true
			di.state = dashStateWorking
		} else {
			result = MoveTo(rest.Eval(t1))
			hasResult = true
		}
		di.isActive = !di.isActive
		di.t += t1 * (1.0 - di.t)
		di.segRemaining -= di.dashRemaining
		di.dashIdx++
		if di.dashIdx == len(di.dashes) {
			di.dashIdx = 0
		}
		di.dashRemaining = di.dashes[di.dashIdx]
	} else {
		if di.isActive {
			result = LineTo(di.currentSeg.P1)
			hasResult = true
		}
		di.dashRemaining -= di.segRemaining
		di.getInput()
	}
	return result, hasResult
}

func (di *dashIterator) handleClosepath() {
	if di.state == dashStateToStash {
		// Have looped back without breaking a dash, just play it back
		di.stash = append(di.stash, ClosePath())
	} else if di.isActive {
		// connect with path in stash, skip MoveTo.
		di.stashIdx = 1
	}
	di.state = dashStateFromStash
	di.resetPhase()
}

func (di *dashIterator) resetPhase() {
	di.dashIdx = di.initDashIdx
	di.dashRemaining = di.initDashRemaining
	di.isActive = di.initIsActive
}
