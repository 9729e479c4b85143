package service

import "math"

// CalcDropPercent returns how far current fell below previous, as a
// percentage of previous. A zero previous period is "no signal" and yields
// nil rather than infinity.
func CalcDropPercent(current float64, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	pct := (previous - current) / previous * 100
	return &pct
}

// CalcDeviationPercent returns the signed change of current relative to
// previous. Nil when previous is zero, same policy as CalcDropPercent.
func CalcDeviationPercent(current float64, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	pct := (current - previous) / previous * 100
	return &pct
}

// Rate returns numerator/denominator as a 0-100 percentage, with a zero
// denominator treated as no signal via ok=false.
func Rate(numerator int, denominator int) (rate float64, ok bool) {
	if denominator == 0 {
		return 0, false
	}
	return float64(numerator) / float64(denominator) * 100, true
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func roundScore(v float64) int {
	return int(math.Round(v))
}
