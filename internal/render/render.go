// Package render draws crease patterns as PNG images.
package render

import (
	"image/color"
	"io"
	"iter"
	"math"
	"os"
	"slices"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"honnef.co/go/fold"
)

const padding = 16

var (
	background = color.RGBA{0x20, 0x20, 0x24, 0xff}
	paper      = color.RGBA{0xf4, 0xf0, 0xe6, 0xff}
	edge       = color.RGBA{0x10, 0x10, 0x10, 0xff}
	flapColor  = color.RGBA{0x9e, 0xc5, 0xe8, 0x60}
)

// Colors of successive folds.
var palette = []color.RGBA{
	{0xd6, 0x27, 0x28, 0xff},
	{0x1f, 0x77, 0xb4, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
}

type Options struct {
	// Length in pixels of the image's longer side.
	Size int
	// Draw the part of the paper that each fold moves, in its folded
	// position.
	Flaps bool
}

// Render draws the paper and the folds and writes the image to w as a PNG.
// Folds are drawn as dashed lines, clipped to the paper.
func Render(w io.Writer, bd fold.Boundary, folds []fold.Line, opts Options) error {
	dc, err := draw(bd, folds, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(dc.EncodePNG(w), "render: encode PNG")
}

// SavePNG is like Render but writes the image to a file.
func SavePNG(path string, bd fold.Boundary, folds []fold.Line, opts Options) error {
	dc, err := draw(bd, folds, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(dc.SavePNG(path), "render: save PNG")
}

// Show displays the image at path inline, in terminals that support the
// iTerm2 image protocol.
func Show(path string) {
	imgcat.CatFile(path, os.Stdout)
}

// Viewport returns the transformation from paper to image coordinates and the
// image's size. The image's y axis points down.
func Viewport(bbox fold.Rect, size int) (fold.Affine, int, int, error) {
	avail := float64(size - 2*padding)
	extent := max(bbox.Width(), bbox.Height())
	if avail <= 0 || !(extent > 0) || math.IsInf(extent, 0) {
		return fold.Affine{}, 0, 0, errors.Errorf("render: can't fit %gx%g paper into %d pixels", bbox.Width(), bbox.Height(), size)
	}
	scale := avail / extent
	width := int(math.Round(bbox.Width()*scale)) + 2*padding
	height := int(math.Round(bbox.Height()*scale)) + 2*padding
	view := fold.Translate(bbox.Center().Negate()).
		ThenScale(scale, -scale).
		ThenTranslate(fold.Vec(float64(width)/2, float64(height)/2))
	return view, width, height, nil
}

func draw(bd fold.Boundary, folds []fold.Line, opts Options) (*gg.Context, error) {
	outline := bd.Vertices()
	if len(outline) == 0 {
		return nil, errors.New("render: paper has no outline")
	}
	view, width, height, err := Viewport(bd.BoundingBox(), opts.Size)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()

	polygon(dc, fold.Transform(slices.Values(outline), view))
	dc.SetColor(paper)
	dc.FillPreserve()
	dc.SetColor(edge)
	dc.SetLineWidth(2)
	dc.Stroke()

	if opts.Flaps {
		for _, l := range folds {
			f := Flap(bd, l)
			if len(f) < 3 {
				continue
			}
			polygon(dc, fold.Transform(slices.Values(f), view))
			dc.SetColor(flapColor)
			dc.Fill()
		}
	}

	dc.SetLineWidth(2)
	dc.SetDash(8, 4)
	for i, l := range folds {
		seg, ok := bd.Clip(l)
		if !ok {
			continue
		}
		seg = seg.Transform(view)
		dc.SetColor(palette[i%len(palette)])
		dc.DrawLine(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
		dc.Stroke()
	}
	return dc, nil
}

func polygon(dc *gg.Context, vertices iter.Seq[fold.Vec2]) {
	dc.NewSubPath()
	for v := range vertices {
		dc.LineTo(v.X, v.Y)
	}
	dc.ClosePath()
}

// Flap returns the part of the paper on the side of l that its normal points
// to, reflected across l. This is where that part ends up after folding. The
// result is empty if l doesn't divide the paper.
func Flap(bd fold.Boundary, l fold.Line) []fold.Vec2 {
	vertices := bd.Vertices()
	var out []fold.Vec2
	// Number of the paper's corners that move.
	var n int
	for i, a := range vertices {
		b := vertices[(i+1)%len(vertices)]
		da := l.SignedDistance(a)
		db := l.SignedDistance(b)
		if da >= 0 {
			out = append(out, a)
			n++
		}
		if (da < 0) != (db < 0) {
			t := da / (da - db)
			out = append(out, a.Lerp(b, t))
		}
	}
	if n == 0 || n == len(vertices) || len(out) < 3 {
		return nil
	}
	return slices.Collect(fold.Transform(slices.Values(out), l.Reflection()))
}
