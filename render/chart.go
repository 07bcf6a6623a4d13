// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/danielhkuo/percent-back/models"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// Chart draws PercentBack against RaceDate as a PNG line chart. Records are
// plotted in the order given, one X position per record labelled with its
// date. No records gives empty axes.
func Chart(w io.Writer, records []models.RaceRecord, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Race Date"
	p.Y.Label.Text = "Percent Back"
	p.Add(plotter.NewGrid())

	if len(records) > 0 {
		pts := make(plotter.XYs, len(records))
		dates := make([]string, len(records))
		for i, r := range records {
			pts[i].X = float64(i)
			pts[i].Y = r.PercentBack
			dates[i] = r.RaceDate
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("failed to build chart line: %w", err)
		}
		p.Add(line, points)
		p.Legend.Add("Percent Back", line, points)
		p.NominalX(dates...)
	}

	c := vgimg.New(chartWidth, chartHeight)
	p.Draw(draw.New(c))

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return nil
}
