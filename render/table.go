// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/danielhkuo/percent-back/models"
	"github.com/danielhkuo/percent-back/racetime"
	"github.com/danielhkuo/percent-back/raceview"
)

// Column headers shared by the text and spreadsheet exports
var headers = []string{"ID", "Race", "Date", "Distance (km)", "Percent Back"}

// Distance formats a distance in km, trimming trailing zeros
func Distance(km float64) string {
	return humanize.FtoaWithDigits(km, 2) + " km"
}

// Table renders records as a plain-text table in the given order. The footer
// carries the average percent back when there is at least one record.
func Table(records []models.RaceRecord) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)

	header := table.Row{}
	for _, h := range headers {
		header = append(header, h)
	}
	t.AppendHeader(header)

	for _, r := range records {
		t.AppendRow(table.Row{
			strconv.FormatInt(r.ID, 10),
			r.RaceName,
			r.RaceDate,
			Distance(r.RaceDistance),
			racetime.FormatPercent(r.PercentBack) + "%",
		})
	}

	if avg, ok := raceview.Average(records); ok {
		t.AppendFooter(table.Row{"", "", "", "Average", racetime.FormatPercent(avg) + "%"})
	}

	return t.Render()
}
