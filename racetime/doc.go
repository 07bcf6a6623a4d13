// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package racetime parses race clock times and computes percent back.

# Clock Format

Two shapes are accepted, colon-separated:

	MM:SS     "05:30"   → 330
	HH:MM:SS  "1:05:30" → 3930

ParseClock reports failures with ErrInvalidTime. ParseTimeToSeconds is the
lenient form that returns 0 instead.

# Percent Back

	pb := racetime.CalculatePercentBack("21:00", "20:00") // 5.0

The value is (user - winner) / winner * 100, or 0 when either time is not a
positive number of seconds. It is only rounded for display:

	racetime.FormatPercent(racetime.Round2(pb)) // "5.00"

# Submission Checks

A Validator decides whether a pair of submitted times is usable:

	v := racetime.NewValidator(cfg.StrictTimes)
	pb, err := v.PercentBack(userTime, winnerTime)

ModeCompat (default) treats a 0 result as invalid only when some text was
entered. ModeStrict rejects any unparseable or zero time and accepts ties.
Both return ErrInvalidRaceTimes; handlers show InvalidTimesMessage for it.
*/
package racetime
