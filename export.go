package main

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"paperfold/internal/paper"
	"paperfold/internal/silhouette"
	"paperfold/internal/solution"
)

// panel maps a rectangle of the plane onto a square region of the image.
type panel struct {
	left, top float64 // image position of (min.X, max.Y)
	min, max  paper.Vec2
	scale     float64
}

func fitPanel(x, y, size float64, min, max paper.Vec2) panel {
	span := math.Max(max.X-min.X, max.Y-min.Y)
	if span <= 0 {
		span = 1
	}
	scale := size / span
	return panel{
		left:  x + (size-(max.X-min.X)*scale)/2,
		top:   y + (size-(max.Y-min.Y)*scale)/2,
		min:   min,
		max:   max,
		scale: scale,
	}
}

func (p panel) at(v paper.Vec2) (float64, float64) {
	return p.left + (v.X-p.min.X)*p.scale, p.top + (p.max.Y-v.Y)*p.scale
}

func (p panel) path(dc *gg.Context, pts []paper.Vec2) {
	dc.NewSubPath()
	for i, v := range pts {
		x, y := p.at(v)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

func displayed(f paper.Facet) []paper.Vec2 {
	out := make([]paper.Vec2, len(f.Points))
	for i, p := range f.Points {
		out[i] = p.Displayed
	}
	return out
}

func material(f paper.Facet) []paper.Vec2 {
	out := make([]paper.Vec2, len(f.Points))
	for i, p := range f.Points {
		out[i] = p.Material
	}
	return out
}

// renderImage draws the folded sheet on the left half and the unfolded sheet
// with its creases on the right half of a 2*size by size image.
func renderImage(s paper.State, sil *silhouette.Silhouette, size int) (image.Image, error) {
	if size < 16 {
		return nil, fmt.Errorf("image size %d too small", size)
	}
	w, h := 2*size, size
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	fontSize := float64(size) / 40
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	pad := fontSize * 2
	inner := float64(size) - 2*pad

	lo, hi := s.Bounds()
	lo = paper.Vec(math.Min(lo.X, 0), math.Min(lo.Y, 0))
	hi = paper.Vec(math.Max(hi.X, 1), math.Max(hi.Y, 1))
	folded := fitPanel(pad, pad, inner, lo.Sub(paper.Vec(materialMargin, materialMargin)), hi.Add(paper.Vec(materialMargin, materialMargin)))
	sheet := fitPanel(float64(size)+pad, pad, inner, paper.Vec(-materialMargin, -materialMargin), paper.Vec(1+materialMargin, 1+materialMargin))

	drawGrid(dc, sheet)
	drawGrid(dc, folded)

	if sil != nil {
		dc.SetFillRuleEvenOdd()
		for _, poly := range sil.Polygons {
			folded.path(dc, poly)
		}
		for _, hole := range sil.Holes {
			folded.path(dc, hole)
		}
		dc.SetRGBA255(255, 192, 192, 204)
		dc.Fill()
		dc.SetFillRuleWinding()
		dc.SetRGB255(192, 64, 64)
		dc.SetLineWidth(1)
		for _, seg := range sil.Segments {
			x0, y0 := folded.at(seg[0])
			x1, y1 := folded.at(seg[1])
			dc.DrawLine(x0, y0, x1, y1)
			dc.Stroke()
		}
	}

	for _, f := range s {
		drawFacet(dc, folded, displayed(f), f.Front, 0.85)
		drawFacet(dc, sheet, material(f), f.Front, 1)
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawString(fmt.Sprintf("folded (%d facets)", len(s)), pad, pad-fontSize/2)
	dc.DrawString("sheet", float64(size)+pad, pad-fontSize/2)
	return dc.Image(), nil
}

func drawGrid(dc *gg.Context, p panel) {
	dc.SetRGB255(232, 232, 232)
	dc.SetLineWidth(1)
	for i := 0; i <= 10; i++ {
		t := float64(i) / 10
		x0, y0 := p.at(paper.Vec(t, 0))
		x1, y1 := p.at(paper.Vec(t, 1))
		dc.DrawLine(x0, y0, x1, y1)
		x0, y0 = p.at(paper.Vec(0, t))
		x1, y1 = p.at(paper.Vec(1, t))
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()
}

func drawFacet(dc *gg.Context, p panel, pts []paper.Vec2, front bool, alpha float64) {
	if len(pts) < 3 {
		return
	}
	p.path(dc, pts)
	if front {
		dc.SetRGBA(0.96, 0.87, 0.70, alpha)
	} else {
		dc.SetRGBA(0.8, 0.8, 0.8, alpha)
	}
	dc.FillPreserve()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.Stroke()
}

func exportPNG(filename string, s paper.State, sil *silhouette.Silhouette, size int) error {
	img, err := renderImage(s, sil, size)
	if err != nil {
		return err
	}
	return gg.SavePNG(filename, img)
}

func writeSolution(filename string, s paper.State) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := solution.FromState(s).Encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
