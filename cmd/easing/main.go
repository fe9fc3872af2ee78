// Command easing prints CSS for cubic-bezier easing curves.
//
// Usage:
//
//	easing [flags] ease-in-out
//	easing [flags] 'cubic-bezier(0.34, 1.56, 0.64, 1)'
//	easing [flags] 0.34 1.56 0.64 1
//	easing [flags] -state curves.json
//
// For each curve it prints the name, the cubic-bezier() form and a linear()
// approximation.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"honnef.co/go/easing"
)

var (
	stateFile = flag.String("state", "", "Read curves from a state `file` (- for stdin)")
	steps     = flag.Int("steps", 10, "Number of steps of the linear() approximation")
	svg       = flag.Bool("svg", false, "Also print SVG path data")
	vars      = flag.Bool("vars", false, "Print CSS custom properties instead")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <keyword | cubic-bezier(...) | x1 y1 x2 y2>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *steps < 1 {
		log.Fatalf("-steps must be at least 1, got %d", *steps)
	}

	var col easing.Collection
	if *stateFile != "" {
		if flag.NArg() != 0 {
			flag.Usage()
			os.Exit(2)
		}
		if err := loadState(&col, *stateFile); err != nil {
			log.Fatal(err)
		}
	} else {
		name, e, err := parseArgs(flag.Args())
		if err != nil {
			flag.Usage()
			log.Fatal(err)
		}
		col.AddEasing(name, e)
	}

	if *vars {
		fmt.Print(col.CustomProperties())
		return
	}
	for c := range col.All() {
		fmt.Printf("%s\n", c.Name)
		fmt.Printf("  %s\n", c.CSS())
		fmt.Printf("  %s\n", c.LinearCSS(*steps))
		if *svg {
			fmt.Printf("  %s\n", c.Easing().Curve().SVG(easing.SVGOptions{MaxPrecision: 4, FlipY: true}))
		}
		p1, p2 := c.P1(), c.P2()
		if !easing.New(p1.X, p1.Y, p2.X, p2.Y).Monotonic() {
			log.Printf("warning: %q is not monotonic in time; linear() uses clamped control points", c.Name)
		}
	}
}

func loadState(col *easing.Collection, path string) error {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := col.UnmarshalState(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// parseArgs parses the positional arguments as either a single CSS easing or
// four control point coordinates.
func parseArgs(args []string) (string, easing.Easing, error) {
	switch len(args) {
	case 1:
		e, err := easing.ParseCSS(args[0])
		return strings.TrimSpace(args[0]), e, err
	case 4:
		var v [4]float64
		for i, arg := range args {
			n, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return "", easing.Easing{}, fmt.Errorf("argument %d: %w", i+1, err)
			}
			v[i] = n
		}
		e := easing.New(v[0], v[1], v[2], v[3])
		return "custom", e, nil
	default:
		return "", easing.Easing{}, fmt.Errorf("got %d arguments, want 1 or 4", len(args))
	}
}
