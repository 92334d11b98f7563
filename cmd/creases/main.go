// Command creases solves origami constructions and reports the resulting
// fold lines.
//
// Usage:
//
//	creases solve problem.yaml [--png out.png] [--imgcat] [--unique]
//	creases axiom 2 --point 0.25,0.25 --point 0.75,0.75
//
// The solve command reads a problem file (see package sheet for the format).
// The axiom command solves a single construction on the unit square, taking
// points as X,Y and lines as NX,NY,D for the line NX·x + NY·y = D.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"honnef.co/go/fold"
	"honnef.co/go/fold/internal/render"
	"honnef.co/go/fold/internal/sheet"
)

type options struct {
	png     string
	imgcat  bool
	size    int
	flaps   bool
	unique  bool
	color   bool
	dump    bool
	verbose bool

	file   string
	axiom  int
	points pointList
	lines  lineList
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("creases:"), err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var opts options
	app := kingpin.New("creases", "Compute the fold lines of origami constructions.")
	app.Flag("png", "Draw the paper and its folds to this PNG file.").StringVar(&opts.png)
	app.Flag("imgcat", "Show the PNG in the terminal.").BoolVar(&opts.imgcat)
	app.Flag("size", "Size of the PNG in pixels.").Default("512").IntVar(&opts.size)
	app.Flag("flaps", "Draw the flaps each fold moves.").BoolVar(&opts.flaps)
	app.Flag("color", "Color the output. Use --no-color to disable.").Default("true").BoolVar(&opts.color)
	app.Flag("dump", "Print the results as Go values.").BoolVar(&opts.dump)
	app.Flag("verbose", "Log solver diagnostics to stderr.").Short('v').BoolVar(&opts.verbose)

	solve := app.Command("solve", "Solve every construction of a problem file.")
	solve.Arg("file", "Problem file.").Required().ExistingFileVar(&opts.file)
	solve.Flag("unique", "Omit folds already produced by an earlier construction.").BoolVar(&opts.unique)

	axiom := app.Command("axiom", "Solve a single construction on the unit square.")
	axiom.Arg("n", "Axiom number, 1 to 7.").Required().IntVar(&opts.axiom)
	axiom.Flag("point", "Input point as X,Y. Repeatable.").Short('p').SetValue(&opts.points)
	axiom.Flag("line", "Input line as NX,NY,D. Repeatable.").Short('l').SetValue(&opts.lines)

	cmd, err := app.Parse(args)
	if err != nil {
		return err
	}

	if opts.verbose {
		fold.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var (
		paper   fold.Boundary
		results []sheet.Result
	)
	switch cmd {
	case solve.FullCommand():
		p, err := sheet.Load(opts.file)
		if err != nil {
			return err
		}
		paper = p.Paper
		results, err = p.Solve(opts.unique)
		if err != nil {
			return err
		}
	case axiom.FullCommand():
		c := fold.Construction{Axiom: opts.axiom, Points: opts.points, Lines: opts.lines}
		paper = fold.UnitSquare()
		folds, err := c.Solve(paper)
		if err != nil {
			return err
		}
		results = []sheet.Result{{
			Named: sheet.Named{Name: fmt.Sprintf("axiom-%d", opts.axiom), Construction: c},
			Folds: folds,
		}}
	}

	if opts.dump {
		pretty.Fprintf(stdout, "%# v\n", results)
	} else {
		writeReport(stdout, aurora.NewAurora(opts.color), paper, results)
	}

	if opts.png != "" {
		var folds []fold.Line
		for _, r := range results {
			folds = append(folds, r.Folds...)
		}
		if err := render.SavePNG(opts.png, paper, folds, render.Options{Size: opts.size, Flaps: opts.flaps}); err != nil {
			return err
		}
		if opts.imgcat {
			render.Show(opts.png)
		}
	}
	return nil
}

// writeReport prints each construction's folds in canonical form, followed
// by the crease each one leaves on the paper.
func writeReport(w io.Writer, au aurora.Aurora, bd fold.Boundary, results []sheet.Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%s %s\n", au.Bold(au.Cyan(r.Name)), au.Gray(12, fmt.Sprintf("(axiom %d)", r.Axiom)))
		if len(r.Folds) == 0 {
			fmt.Fprintf(w, "  %s\n", au.Yellow("no folds"))
			continue
		}
		for i, l := range r.Folds {
			l = l.Canonical()
			fmt.Fprintf(w, "  %d. %s", i+1, au.Green(l))
			if s, ok := bd.Clip(l); ok {
				fmt.Fprintf(w, " from %s to %s", s.A, s.B)
			}
			fmt.Fprintln(w)
		}
	}
}

// pointList collects repeated X,Y flags.
type pointList []fold.Vec2

func (pl *pointList) Set(s string) error {
	v, err := parseFloats(s, 2)
	if err != nil {
		return errors.Wrapf(err, "point %q", s)
	}
	*pl = append(*pl, fold.Vec(v[0], v[1]))
	return nil
}

func (pl *pointList) String() string { return fmt.Sprint([]fold.Vec2(*pl)) }
func (pl *pointList) IsCumulative() bool { return true }

// lineList collects repeated NX,NY,D flags. Normals need not have unit
// length; the line is rescaled to match.
type lineList []fold.Line

func (ll *lineList) Set(s string) error {
	v, err := parseFloats(s, 3)
	if err != nil {
		return errors.Wrapf(err, "line %q", s)
	}
	n := fold.Vec(v[0], v[1])
	if n.IsDegenerate() {
		return errors.Errorf("line %q: normal has no direction", s)
	}
	m := n.Hypot()
	*ll = append(*ll, fold.Line{U: n.Div(m), D: v[2] / m})
	return nil
}

func (ll *lineList) String() string { return fmt.Sprint([]fold.Line(*ll)) }
func (ll *lineList) IsCumulative() bool { return true }

func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, errors.Errorf("want %d comma-separated numbers, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
