// Package lineclip clips 2D line segments against axis-aligned rectangular
// windows.
//
// # Windows and region codes
//
// A [Window] is a closed rectangle [x_min, x_max] × [y_min, y_max]. Points on
// its boundary are inside. [Window.Outcode] classifies a point with the
// four-bit region code used by Cohen and Sutherland:
//
//	1001 | 1000 | 1010
//	-----+------+-----
//	0001 | 0000 | 0010
//	-----+------+-----
//	0101 | 0100 | 0110
//
// where [Left] = 1, [Right] = 2, [Bottom] = 4 and [Top] = 8, with y growing
// upwards. A segment whose endpoints are both [Inside] lies entirely in the
// window. A segment whose endpoint codes share a bit lies entirely on one
// side of it and is rejected without further work.
//
// # Algorithms
//
// This package provides two independent clipping routines:
//
//   - [Window.ClipCohenSutherland] computes exact boundary intersections,
//     clamping one endpoint per step until both are inside or the segment is
//     rejected.
//   - [Window.ClipMidpoint] approximates boundary crossings by bisection.
//     Results are accurate to a caller-chosen tolerance on each axis (see
//     [DefaultTolerance]) and each search is bounded by [MaxBisections] steps.
//
// For segments that cross the window, both routines agree to within the
// tolerance. Both return false instead of a segment when nothing of the
// input lies in the window.
//
// # Degenerate input
//
// Cohen–Sutherland divides by the segment's extent along the axis of the
// boundary being crossed. When that extent is zero the segment is treated as
// not clipping to that boundary and the result is absent. Such cases, as
// well as bisections that fail to converge, are reported through the logger
// configured with [SetLogger].
//
// # Drawing
//
// Windows and segments describe their outlines as sequences of
// [PathElement]. [StrokePath] expands such a path into an area that can be
// filled by a rasterizer, optionally dashed, and [Circle.PathElements]
// approximates a circle with cubic Béziers. Only straight lines are stroked.
//
// # Concurrency
//
// Windows, points and segments are immutable values. All functions in this
// package are safe for concurrent use.
package lineclip
