package engine

import "math"

const (
	// LevelXPCoef is the constant in the threshold curve: XP_next = floor(30 * Level^1.2)
	LevelXPCoef = 30.0

	// LevelXPExponent controls how steeply thresholds grow per level.
	LevelXPExponent = 1.2

	// ReviewXPRate dampens XP for repeat completions of already-finished lessons.
	ReviewXPRate = 0.1

	// LoginBonusXP is awarded on the first login of each calendar day.
	LoginBonusXP = 20
)

// ExpForNextLevel returns the XP required to advance from the given level to
// the next one. This is the single source of truth for level-up thresholds;
// levels below 1 are clamped.
func ExpForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(LevelXPCoef * math.Pow(float64(level), LevelXPExponent)))
}

// EffectiveGain converts a base XP amount into the amount actually credited.
// Review completions earn a tenth of the base, but never less than 1.
func EffectiveGain(base int, isReview bool) int {
	if !isReview {
		return base
	}
	gain := int(math.Floor(float64(base) * ReviewXPRate))
	if gain < 1 {
		gain = 1
	}
	return gain
}
