// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package stats

import (
	"github.com/js-arias/blind"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotCounts draws a horizontal bar chart
// with the number of sites of each clade.
func plotCounts(name string, counts []siteCount) error {
	p := plot.New()
	p.X.Label.Text = "sites"

	values := make(plotter.Values, 0, len(counts))
	labels := make([]string, 0, len(counts))
	for _, sc := range counts {
		values = append(values, float64(sc.sites))
		labels = append(labels, sc.label)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(10))
	if err != nil {
		return err
	}
	bars.Horizontal = true
	bars.Color = blind.Sequential(blind.Iridescent, 0.6)
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(labels...)

	height := vg.Length(len(counts))*vg.Points(14) + vg.Inch
	if height < 4*vg.Inch {
		height = 4 * vg.Inch
	}
	return p.Save(6*vg.Inch, height, name)
}
