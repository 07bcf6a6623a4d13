// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raceview

import (
	"cmp"
	"sort"
	"strings"

	"github.com/danielhkuo/percent-back/models"
)

// SortState is the active sort key and direction of a view
type SortState struct {
	Key       string
	Direction string
}

var (
	// DefaultTableSort is applied when the table first loads
	DefaultTableSort = SortState{Key: models.FieldRaceDate, Direction: models.SortDesc}
	// ChartOrder is the order the chart plots races in
	ChartOrder = SortState{Key: models.FieldRaceDate, Direction: models.SortAsc}
)

// Toggle returns the state after the user sorts on key. The active key flips
// direction; any other key starts ascending.
func (s SortState) Toggle(key string) SortState {
	direction := models.SortAsc
	if s.Key == key && s.Direction == models.SortAsc {
		direction = models.SortDesc
	}
	return SortState{Key: key, Direction: direction}
}

func (s SortState) Model() models.SortState {
	return models.SortState{Key: s.Key, Direction: s.Direction}
}

type comparator func(a, b models.RaceRecord) int

var comparators = map[string]comparator{
	models.FieldID: func(a, b models.RaceRecord) int {
		return cmp.Compare(a.ID, b.ID)
	},
	models.FieldRaceName: func(a, b models.RaceRecord) int {
		return strings.Compare(a.RaceName, b.RaceName)
	},
	models.FieldRaceDate: func(a, b models.RaceRecord) int {
		return compareDates(a.RaceDate, b.RaceDate)
	},
	models.FieldRaceDistance: func(a, b models.RaceRecord) int {
		return cmp.Compare(a.RaceDistance, b.RaceDistance)
	},
	models.FieldPercentBack: func(a, b models.RaceRecord) int {
		return cmp.Compare(a.PercentBack, b.PercentBack)
	},
}

// ValidKey reports whether key names a sortable field
func ValidKey(key string) bool {
	_, ok := comparators[key]
	return ok
}

// SortBy returns a sorted copy of records. Equal keys keep their relative
// order. An unknown key leaves the copy in input order.
func SortBy(records []models.RaceRecord, key, direction string) []models.RaceRecord {
	sorted := make([]models.RaceRecord, len(records))
	copy(sorted, records)

	compare, ok := comparators[key]
	if !ok {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compare(sorted[i], sorted[j])
		if direction == models.SortDesc {
			return c > 0
		}
		return c < 0
	})

	return sorted
}

// compareDates orders chronologically when both dates parse, lexically otherwise
func compareDates(a, b string) int {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	if okA && okB {
		return ta.Compare(tb)
	}
	return strings.Compare(a, b)
}
