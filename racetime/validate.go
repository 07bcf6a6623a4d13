// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package racetime

// Mode selects how a submission's two race times are checked.
type Mode int

const (
	// ModeCompat rejects a zero result only when some time text was entered.
	// A tie is therefore rejected too.
	ModeCompat Mode = iota
	// ModeStrict branches on each parse result and accepts ties.
	ModeStrict
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	default:
		return "compat"
	}
}

type Validator struct {
	Mode Mode
}

func NewValidator(strict bool) Validator {
	if strict {
		return Validator{Mode: ModeStrict}
	}
	return Validator{Mode: ModeCompat}
}

// PercentBack checks the submitted times and returns the unrounded value to
// send to the API. Two empty strings pass with 0; required-field checks are
// the caller's job.
func (v Validator) PercentBack(userTime, winnerTime string) (float64, error) {
	if v.Mode == ModeStrict {
		return strictPercentBack(userTime, winnerTime)
	}

	result := CalculatePercentBack(userTime, winnerTime)
	if result == 0 && (userTime != "" || winnerTime != "") {
		return 0, ErrInvalidRaceTimes
	}
	return result, nil
}

func strictPercentBack(userTime, winnerTime string) (float64, error) {
	if userTime == "" && winnerTime == "" {
		return 0, nil
	}

	user, err := ParseClock(userTime)
	if err != nil || user == 0 {
		return 0, ErrInvalidRaceTimes
	}
	winner, err := ParseClock(winnerTime)
	if err != nil || winner == 0 {
		return 0, ErrInvalidRaceTimes
	}

	return percentBack(user, winner), nil
}
