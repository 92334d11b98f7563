// Package sheet reads folding problems from YAML files. A problem describes
// the outline of the paper and a list of constructions to perform on it.
//
// A problem file looks like this:
//
//	paper:
//	  width: 2
//	  height: 1
//	constructions:
//	  - name: diagonal
//	    axiom: 1
//	    points: [[0, 0], [2, 1]]
//	  - axiom: 3
//	    lines:
//	      - {normal: [0, 1], offset: 0.5}
//	      - {through: [0, 0], direction: [1, 1]}
//
// The paper is given by exactly one of width and height, polygon, or svg. A
// problem without paper uses the unit square. Lines are given by their
// normal and offset, by a point and a direction, or by two points from and to.
// Constructions without a name are given a random one.
package sheet

import (
	"io"
	"os"
	"path/filepath"
	"slices"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"honnef.co/go/fold"
)

var (
	ErrPaper = errors.New("sheet: paper needs exactly one of width and height, polygon, or svg")
	ErrLine  = errors.New("sheet: line needs exactly one of normal, through and direction, or from and to")
)

// File is the YAML document of a problem.
type File struct {
	Paper         Paper          `yaml:"paper"`
	Constructions []Construction `yaml:"constructions"`
}

type Paper struct {
	Width   float64 `yaml:"width,omitempty"`
	Height  float64 `yaml:"height,omitempty"`
	Polygon []Point `yaml:"polygon,omitempty"`
	// Path to an SVG file whose first polygon outlines the paper. Relative
	// paths are resolved against the directory of the problem file.
	SVG string `yaml:"svg,omitempty"`
}

type Construction struct {
	Name   string  `yaml:"name,omitempty"`
	Axiom  int     `yaml:"axiom"`
	Points []Point `yaml:"points,omitempty"`
	Lines  []Line  `yaml:"lines,omitempty"`
}

// Point is written as a sequence of two numbers.
type Point fold.Vec2

func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var xy []float64
	if err := value.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return errors.Errorf("line %d: point needs two coordinates, got %d", value.Line, len(xy))
	}
	*p = Point{X: xy[0], Y: xy[1]}
	return nil
}

// Line is one of the three ways of writing down a line.
type Line struct {
	Normal    *Point  `yaml:"normal,omitempty"`
	Offset    float64 `yaml:"offset,omitempty"`
	Through   *Point  `yaml:"through,omitempty"`
	Direction *Point  `yaml:"direction,omitempty"`
	From      *Point  `yaml:"from,omitempty"`
	To        *Point  `yaml:"to,omitempty"`
}

// Line converts l to normal form. A normal that isn't a unit vector is
// normalized, with the offset scaled to describe the same line.
func (l Line) Line() (fold.Line, error) {
	normal := l.Normal != nil
	through := l.Through != nil || l.Direction != nil
	from := l.From != nil || l.To != nil
	switch {
	case normal && !through && !from:
		n := fold.Vec2(*l.Normal)
		if n.IsDegenerate() {
			return fold.Line{}, errors.Errorf("sheet: normal %s has no direction", n)
		}
		m := n.Hypot()
		return fold.Line{U: n.Div(m), D: l.Offset / m}, nil
	case through && !normal && !from:
		if l.Through == nil || l.Direction == nil {
			return fold.Line{}, errors.Wrap(ErrLine, "through and direction go together")
		}
		dir := fold.Vec2(*l.Direction)
		if dir.IsDegenerate() {
			return fold.Line{}, errors.Errorf("sheet: direction %s is degenerate", dir)
		}
		return fold.LineThrough(fold.Vec2(*l.Through), dir), nil
	case from && !normal && !through:
		if l.From == nil || l.To == nil {
			return fold.Line{}, errors.Wrap(ErrLine, "from and to go together")
		}
		a, b := fold.Vec2(*l.From), fold.Vec2(*l.To)
		if b.Sub(a).IsDegenerate() {
			return fold.Line{}, errors.Errorf("sheet: points %s and %s coincide", a, b)
		}
		return fold.LineFromPoints(a, b), nil
	default:
		return fold.Line{}, ErrLine
	}
}

// Named is a construction together with its name.
type Named struct {
	Name string
	fold.Construction
}

// Problem is a decoded and validated problem file.
type Problem struct {
	Paper         fold.Boundary
	Constructions []Named
}

// Load reads the problem file at path.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "sheet: open problem")
	}
	defer f.Close()
	p, err := decode(f, filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return p, nil
}

// Decode reads a problem from r. SVG paths are resolved against the working
// directory.
func Decode(r io.Reader) (*Problem, error) {
	return decode(r, ".")
}

func decode(r io.Reader, dir string) (*Problem, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "sheet: decode problem")
	}

	paper, err := file.Paper.boundary(dir)
	if err != nil {
		return nil, err
	}
	p := &Problem{Paper: paper}
	names := make([]string, 0, len(file.Constructions))
	for _, c := range file.Constructions {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	for i, c := range file.Constructions {
		name := c.Name
		if name == "" {
			name = uniqueName(names)
			names = append(names, name)
		}
		fc, err := c.construction()
		if err != nil {
			return nil, errors.Wrapf(err, "construction %d (%s)", i, name)
		}
		p.Constructions = append(p.Constructions, Named{Name: name, Construction: fc})
	}
	return p, nil
}

func uniqueName(taken []string) string {
	for {
		name := petname.Generate(2, "-")
		if !slices.Contains(taken, name) {
			return name
		}
	}
}

func (c Construction) construction() (fold.Construction, error) {
	fc := fold.Construction{Axiom: c.Axiom}
	for _, p := range c.Points {
		fc.Points = append(fc.Points, fold.Vec2(p))
	}
	for i, l := range c.Lines {
		fl, err := l.Line()
		if err != nil {
			return fold.Construction{}, errors.Wrapf(err, "line %d", i)
		}
		fc.Lines = append(fc.Lines, fl)
	}
	if err := fc.Validate(); err != nil {
		return fold.Construction{}, err
	}
	return fc, nil
}

func (p Paper) boundary(dir string) (fold.Boundary, error) {
	rect := p.Width != 0 || p.Height != 0
	polygon := len(p.Polygon) != 0
	svg := p.SVG != ""
	n := 0
	for _, set := range []bool{rect, polygon, svg} {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return fold.UnitSquare(), nil
	case n > 1:
		return fold.Boundary{}, ErrPaper
	case rect:
		if p.Width <= 0 || p.Height <= 0 {
			return fold.Boundary{}, errors.Errorf("sheet: paper size %gx%g isn't positive", p.Width, p.Height)
		}
		bd, err := fold.NewRectBoundary(fold.Rect{X1: p.Width, Y1: p.Height})
		return bd, errors.Wrap(err, "sheet: paper")
	case polygon:
		vertices := make([]fold.Vec2, len(p.Polygon))
		for i, v := range p.Polygon {
			vertices[i] = fold.Vec2(v)
		}
		bd, err := fold.NewPolygonBoundary(vertices...)
		return bd, errors.Wrap(err, "sheet: paper polygon")
	default:
		path := p.SVG
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return fold.Boundary{}, errors.Wrap(err, "sheet: open paper outline")
		}
		defer f.Close()
		bd, err := ParseSVG(f)
		return bd, errors.Wrap(err, path)
	}
}

// Result holds the folds of one construction.
type Result struct {
	Named
	Folds []fold.Line
}

// Solve solves every construction on the problem's paper. If unique is set,
// folds equivalent to one already reported for an earlier construction are
// left out.
func (p *Problem) Solve(unique bool) ([]Result, error) {
	results := make([]Result, 0, len(p.Constructions))
	var seen []fold.Line
	for _, c := range p.Constructions {
		lines, err := c.Solve(p.Paper)
		if err != nil {
			return nil, errors.Wrapf(err, "construction %s", c.Name)
		}
		if unique {
			// seen is free of duplicates, so Unique passes it through
			// unchanged and only filters the new lines.
			all := slices.Collect(fold.Unique(slices.Values(slices.Concat(seen, lines))))
			lines = all[len(seen):]
			seen = all
		}
		results = append(results, Result{Named: c, Folds: lines})
	}
	return results, nil
}
