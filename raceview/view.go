// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raceview

import (
	"time"

	"github.com/danielhkuo/percent-back/models"
	"github.com/danielhkuo/percent-back/racetime"
)

// AllYears disables the year filter
const AllYears = 0

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// YearOf returns the calendar year written in a race date
func YearOf(date string) (int, bool) {
	t, ok := parseDate(date)
	if !ok {
		return 0, false
	}
	return t.Year(), true
}

// DeriveYears lists the years present in records, each once, in the order
// they first appear once the records are sorted by date ascending.
func DeriveYears(records []models.RaceRecord) []int {
	years := []int{}
	seen := make(map[int]bool)

	for _, race := range SortBy(records, models.FieldRaceDate, models.SortAsc) {
		year, ok := YearOf(race.RaceDate)
		if !ok || seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}

	return years
}

// FilterByYear keeps the races dated in year. AllYears returns records as is.
func FilterByYear(records []models.RaceRecord, year int) []models.RaceRecord {
	if year == AllYears {
		return records
	}

	filtered := []models.RaceRecord{}
	for _, race := range records {
		if y, ok := YearOf(race.RaceDate); ok && y == year {
			filtered = append(filtered, race)
		}
	}
	return filtered
}

// Average is the mean PercentBack rounded to two decimals. The bool is false
// for an empty input.
func Average(records []models.RaceRecord) (float64, bool) {
	if len(records) == 0 {
		return 0, false
	}

	total := 0.0
	for _, race := range records {
		total += race.PercentBack
	}
	return racetime.Round2(total / float64(len(records))), true
}

// Without drops the race with the given ID
func Without(records []models.RaceRecord, id int64) []models.RaceRecord {
	kept := make([]models.RaceRecord, 0, len(records))
	for _, race := range records {
		if race.ID != id {
			kept = append(kept, race)
		}
	}
	return kept
}

// Query is the filter and sort a view currently has selected
type Query struct {
	Year int
	Sort SortState
}

type Projection struct {
	Records    []models.RaceRecord
	Years      []int
	Average    float64
	HasAverage bool
}

// Project derives what a view shows from the fetched snapshot. It always
// starts from snapshot, so filters never compound.
func Project(snapshot []models.RaceRecord, q Query) Projection {
	filtered := FilterByYear(snapshot, q.Year)
	avg, ok := Average(filtered)

	return Projection{
		Records:    SortBy(filtered, q.Sort.Key, q.Sort.Direction),
		Years:      DeriveYears(snapshot),
		Average:    avg,
		HasAverage: ok,
	}
}
