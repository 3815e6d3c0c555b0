// Command lineclip clips line segments against a rectangular window with both
// the Cohen–Sutherland and the midpoint bisection algorithm, prints the
// results and optionally renders them to a PNG image.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/ttacon/chalk"
	"golang.org/x/term"
	"honnef.co/go/lineclip"
)

const HelpBanner = `
┬  ┬┌┐┌┌─┐┌─┐┬  ┬┌─┐
│  ││││├┤ │  │  │├─┘
┴─┘┴┘└┘└─┘└─┘┴─┘┴┴

Line segment clipping against a rectangular window.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Version indicates the current build version.
var Version = "dev"

type config struct {
	source    string
	window    string
	testData  bool
	tolerance float64
	output    string
	size      int
	workers   int
	debug     bool
	noColor   bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("lineclip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, HelpBanner, Version)
		fs.PrintDefaults()
	}

	cfg := &config{}
	fs.StringVar(&cfg.source, "in", "", "Segments file (use - for stdin)")
	fs.StringVar(&cfg.window, "window", "", `Clip window as "xmin,xmax,ymin,ymax"`)
	fs.BoolVar(&cfg.testData, "test", false, "Use the built-in test data")
	fs.Float64Var(&cfg.tolerance, "tol", lineclip.DefaultTolerance, "Midpoint method tolerance")
	fs.StringVar(&cfg.output, "out", "", "Write a PNG visualization to this file")
	fs.IntVar(&cfg.size, "size", defaultPanelSize, "Visualization panel size in pixels")
	fs.IntVar(&cfg.workers, "conc", runtime.NumCPU(), "Number of segments to clip concurrently")
	fs.BoolVar(&cfg.debug, "debug", false, "Log clipping diagnostics to stderr")
	fs.BoolVar(&cfg.noColor, "nocolor", false, "Disable colored output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.testData && cfg.source != "" {
		return nil, errors.New("-test and -in are mutually exclusive")
	}
	if cfg.size < minPanelSize {
		return nil, fmt.Errorf("panel size must be at least %d pixels", minPanelSize)
	}
	if cfg.workers <= 0 || cfg.workers > maxWorkers {
		cfg.workers = runtime.NumCPU()
	}
	return cfg, nil
}

func main() {
	log.SetFlags(0)

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if cfg.debug {
		lineclip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	color := !cfg.noColor && term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(cfg, os.Stdin, os.Stdout, color); err != nil {
		if color {
			log.Fatal(chalk.Red.Color(err.Error()))
		}
		log.Fatal(err)
	}
}

func run(cfg *config, stdin *os.File, stdout io.Writer, color bool) error {
	in, err := loadInput(cfg, stdin, stdout)
	if err != nil {
		return err
	}

	results := clipAll(in.window, in.segments, cfg.tolerance, cfg.workers)
	printReport(stdout, in.window, in.segments, results, color)

	if cfg.output == "" {
		return nil
	}
	img := render(in.window, in.segments, results, cfg.size)
	if err := writePNG(cfg.output, img); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nVisualization written to %s\n", cfg.output)
	return nil
}

// loadInput selects the input source: built-in test data, a segments file
// or pipe, or interactive prompts when stdin is a terminal.
func loadInput(cfg *config, stdin *os.File, stdout io.Writer) (*input, error) {
	var (
		in  *input
		err error
	)
	switch {
	case cfg.testData:
		in = testInput()
		fmt.Fprintln(stdout, "Loaded test data.")
	case cfg.source == pipeName:
		in, err = parseInput(stdin)
	case cfg.source != "":
		f, ferr := os.Open(cfg.source)
		if ferr != nil {
			return nil, fmt.Errorf("unable to open segments file: %w", ferr)
		}
		defer f.Close()
		in, err = parseInput(f)
	case term.IsTerminal(int(stdin.Fd())):
		in, err = prompt(bufio.NewScanner(stdin), stdout)
	default:
		in, err = parseInput(stdin)
	}
	if err != nil {
		return nil, err
	}

	if cfg.window != "" {
		w, err := parseWindowFlag(cfg.window)
		if err != nil {
			return nil, err
		}
		in.window = w
		in.hasWindow = true
	}
	if !in.hasWindow {
		return nil, errors.New("no clip window given; use -window or a window line in the input")
	}
	if len(in.segments) == 0 {
		return nil, errNoSegments
	}
	return in, nil
}
