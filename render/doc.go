// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render turns race records into the formats the dashboard exports.

	text := render.Table(records)            // rounded text table, average footer
	err := render.Workbook(w, records)       // xlsx, one "Races" sheet
	err = render.Chart(w, records, "2024")   // PNG line chart

Records are rendered in the order given; sorting and filtering happen in
raceview before anything reaches this package.
*/
package render
