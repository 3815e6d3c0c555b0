package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ttacon/chalk"
	"honnef.co/go/lineclip"
)

// mark renders the outcome of one clipping as a check mark or a cross.
func mark(ok, color bool) string {
	switch {
	case ok && color:
		return chalk.Green.Color("✓")
	case ok:
		return "✓"
	case color:
		return chalk.Red.Color("✗")
	default:
		return "✗"
	}
}

func printReport(out io.Writer, w lineclip.Window, segs []lineclip.Segment, results []result, color bool) {
	fmt.Fprintf(out, "\nClipping results for window %v:\n", w)
	fmt.Fprintln(out, strings.Repeat("-", 50))

	for i, s := range segs {
		r := results[i]
		fmt.Fprintf(out, "\nSegment %d: %v\n", i+1, s)
		fmt.Fprintf(out, "  Cohen–Sutherland: %s", mark(r.cohenOK, color))
		if r.cohenOK {
			fmt.Fprintf(out, " %v", r.cohen)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Midpoint:         %s", mark(r.midpointOK, color))
		if r.midpointOK {
			fmt.Fprintf(out, " %v", r.midpoint)
		}
		fmt.Fprintln(out)
	}
}
