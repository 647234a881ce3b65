package numt

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// typeColors is the fixed overlap-type color mapping in the figure.
var typeColors = map[OverlapType]color.RGBA{
	OverlapComplete:     {G: 128, A: 255},         // green
	OverlapPartialLeft:  {B: 255, A: 255},         // blue
	OverlapPartialRight: {R: 255, A: 255},         // red
	OverlapInternal:     {R: 128, B: 128, A: 255}, // purple
}

// RenderFigure draws the query region and every overlapping record as
// horizontal tracks and saves the figure to path. The image format
// follows the extension (png, svg, pdf, ...). Records without overlap
// are left out of the figure, unlike the report. records and overlaps
// are parallel slices in catalog order.
func RenderFigure(path string, q QueryRegion, records []Record, overlaps []Overlap) error {
	p := plot.New()
	p.Title.Text = "NUMT Overlaps with Query Region"
	p.X.Label.Text = "Mitochondrial Genome Position"
	p.Y.Label.Text = "NUMT Index"
	p.Add(plotter.NewGrid())

	query, err := track(q.Start, q.End, 0)
	if err != nil {
		return &RenderError{Path: path, Err: err}
	}
	query.LineStyle.Width = vg.Points(3)
	query.LineStyle.Color = color.RGBA{A: 255}
	p.Add(query)
	p.Legend.Add("Query Region", query)

	y := 1
	for i, o := range overlaps {
		if o.Type == OverlapNone {
			continue
		}
		r := records[i]

		line, err := track(r.MtStart, r.MtEnd, y)
		if err != nil {
			return &RenderError{Path: path, Err: err}
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = typeColors[o.Type]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("NUMT %s (%s)", o.Code, o.Type), line)
		y++
	}

	p.Legend.Top = true
	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return &RenderError{Path: path, Err: err}
	}
	return nil
}

// track is a horizontal segment from start to end at height y.
func track(start, end, y int) (*plotter.Line, error) {
	return plotter.NewLine(plotter.XYs{
		{X: float64(start), Y: float64(y)},
		{X: float64(end), Y: float64(y)},
	})
}
