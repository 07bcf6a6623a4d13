// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package racetime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidTime      = errors.New("invalid race time")
	ErrInvalidRaceTimes = errors.New("invalid race times")
)

// InvalidTimesMessage is shown when a submission fails the time check
const InvalidTimesMessage = "Please enter valid race times (MM:SS or HH:MM:SS)."

// ParseClock converts MM:SS or HH:MM:SS into whole seconds.
// Field ranges are not checked, so "99:99" is 99*60+99.
func ParseClock(text string) (int, error) {
	parts := strings.Split(text, ":")

	var weights []int
	switch len(parts) {
	case 2:
		weights = []int{60, 1}
	case 3:
		weights = []int{3600, 60, 1}
	default:
		return 0, fmt.Errorf("%w: %q has %d fields", ErrInvalidTime, text, len(parts))
	}

	total := 0
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: bad field %q in %q", ErrInvalidTime, part, text)
		}
		if n > (math.MaxInt-total)/weights[i] {
			return 0, fmt.Errorf("%w: field %q overflows in %q", ErrInvalidTime, part, text)
		}
		total += n * weights[i]
	}

	return total, nil
}

// ParseTimeToSeconds is ParseClock with failures collapsed to 0.
func ParseTimeToSeconds(text string) int {
	seconds, err := ParseClock(text)
	if err != nil {
		return 0
	}
	return seconds
}

// CalculatePercentBack returns how far userTime is behind winnerTime, in
// percent of winnerTime. It returns 0 unless both times parse to a positive
// number of seconds.
func CalculatePercentBack(userTime, winnerTime string) float64 {
	return percentBack(ParseTimeToSeconds(userTime), ParseTimeToSeconds(winnerTime))
}

func percentBack(user, winner int) float64 {
	if user > 0 && winner > 0 {
		return float64(user-winner) / float64(winner) * 100
	}
	return 0
}

// Round2 rounds to two decimals for display
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatPercent renders a percent-back value the way the dashboard shows it
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
