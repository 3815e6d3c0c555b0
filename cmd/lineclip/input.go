package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/lineclip"
)

type input struct {
	window    lineclip.Window
	hasWindow bool
	segments  []lineclip.Segment
}

// testInput is the data set offered by the interactive front end.
func testInput() *input {
	return &input{
		window:    lineclip.MustWindow(-1, 1, -1, 1),
		hasWindow: true,
		segments: []lineclip.Segment{
			lineclip.Seg(lineclip.Pt(-1.5, 1.0/6), lineclip.Pt(0.5, 1.5)),
		},
	}
}

// newWindow builds a window from bounds given in any order.
func newWindow(xMin, xMax, yMin, yMax float64) (lineclip.Window, error) {
	return lineclip.NewWindowFromPoints(lineclip.Pt(xMin, yMin), lineclip.Pt(xMax, yMax))
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out[i] = v
	}
	return out, nil
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// parseWindowFlag parses "xmin,xmax,ymin,ymax".
func parseWindowFlag(s string) (lineclip.Window, error) {
	fields := splitFields(s)
	if len(fields) != 4 {
		return lineclip.Window{}, fmt.Errorf("window needs 4 bounds, got %d", len(fields))
	}
	v, err := parseFloats(fields)
	if err != nil {
		return lineclip.Window{}, fmt.Errorf("invalid window: %w", err)
	}
	return newWindow(v[0], v[1], v[2], v[3])
}

// parseInput reads one segment per line as "x1 y1 x2 y2", separated by
// whitespace or commas. A line "window xmin xmax ymin ymax" sets the clip
// window. Blank lines and text after # are ignored.
func parseInput(r io.Reader) (*input, error) {
	in := &input{}
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := splitFields(line)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "window" {
			if len(fields) != 5 {
				return nil, fmt.Errorf("line %d: window needs 4 bounds, got %d", lineno, len(fields)-1)
			}
			v, err := parseFloats(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			w, err := newWindow(v[0], v[1], v[2], v[3])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			in.window, in.hasWindow = w, true
			continue
		}

		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: segment needs 4 coordinates, got %d", lineno, len(fields))
		}
		v, err := parseFloats(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		in.segments = append(in.segments, lineclip.Seg(lineclip.Pt(v[0], v[1]), lineclip.Pt(v[2], v[3])))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("unable to read segments: %w", err)
	}
	return in, nil
}

// prompter asks for one value per line.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (p prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.sc.Text()), nil
}

func (p prompter) float(label string) (float64, error) {
	s, err := p.line(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// prompt collects the window and segments interactively. Reversed bounds
// are swapped.
func prompt(sc *bufio.Scanner, out io.Writer) (*input, error) {
	p := prompter{sc: sc, out: out}

	fmt.Fprintln(out, "=== Line clipping ===")
	answer, err := p.line("Use test data? (y/n): ")
	if err != nil {
		return nil, err
	}
	if strings.ToLower(answer) == "y" {
		fmt.Fprintln(out, "Loaded test data.")
		return testInput(), nil
	}

	fmt.Fprintln(out, "\nEnter the clip window bounds:")
	var b [4]float64
	for i, label := range []string{"x_min (left): ", "x_max (right): ", "y_min (bottom): ", "y_max (top): "} {
		if b[i], err = p.float(label); err != nil {
			return nil, err
		}
	}
	w, err := newWindow(b[0], b[1], b[2], b[3])
	if err != nil {
		return nil, err
	}

	s, err := p.line("\nHow many segments? ")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("invalid segment count %q", s)
	}

	in := &input{window: w, hasWindow: true}
	for i := range n {
		fmt.Fprintf(out, "\nSegment #%d:\n", i+1)
		var c [4]float64
		for j, label := range []string{"  x1: ", "  y1: ", "  x2: ", "  y2: "} {
			if c[j], err = p.float(label); err != nil {
				return nil, err
			}
		}
		in.segments = append(in.segments, lineclip.Seg(lineclip.Pt(c[0], c[1]), lineclip.Pt(c[2], c[3])))
	}
	return in, nil
}

var errNoSegments = errors.New("no segments to clip")
