package sheet

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"honnef.co/go/fold"
)

var ErrNoPolygon = errors.New("sheet: SVG contains no polygon")

// ParseSVG reads the outline of the paper from the first polygon element of
// an SVG document. Other elements are ignored.
//
// SVG's y axis points down. The outline is flipped within its bounding box so
// that it appears the same way up in the paper's y-up coordinates.
func ParseSVG(r io.Reader) (fold.Boundary, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return fold.Boundary{}, errors.Wrap(err, "sheet: parse SVG")
	}
	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return fold.Boundary{}, ErrNoPolygon
	}
	vertices, err := parsePoints(polygons[0].Attributes["points"])
	if err != nil {
		return fold.Boundary{}, err
	}
	if len(vertices) == 0 {
		return fold.Boundary{}, errors.Wrap(ErrNoPolygon, "polygon has no points")
	}

	bbox := fold.NewRectFromPoints(vertices[0], vertices[0])
	for _, v := range vertices[1:] {
		bbox = bbox.UnionPoint(v)
	}
	flip := fold.FlipY.ThenTranslate(fold.Vec(0, bbox.Y0+bbox.Y1))
	for i, v := range vertices {
		vertices[i] = v.Transform(flip)
	}
	bd, err := fold.NewPolygonBoundary(vertices...)
	return bd, errors.Wrap(err, "sheet: SVG polygon")
}

// parsePoints parses the points attribute of a polygon, a list of
// coordinates separated by commas and white space.
func parsePoints(s string) ([]fold.Vec2, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("sheet: odd number of coordinates in %q", s)
	}
	points := make([]fold.Vec2, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "sheet: invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "sheet: invalid y value %q", fields[i+1])
		}
		points = append(points, fold.Vec(x, y))
	}
	return points, nil
}
