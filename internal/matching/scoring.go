// internal/matching/scoring.go
// Compatibility scoring with legacy and structured strategies

package matching

import (
	"math"
)

// Strategy identifies which scoring variant produced a score.
type Strategy int

const (
	StrategyLegacy Strategy = iota
	StrategyStructured
)

func (s Strategy) String() string {
	switch s {
	case StrategyStructured:
		return "structured"
	default:
		return "legacy"
	}
}

// SelectStrategy picks structured scoring when either party has any
// structured preference, legacy otherwise.
func SelectStrategy(subject, candidate Profile) Strategy {
	if !subject.Prefs.IsEmpty() || !candidate.Prefs.IsEmpty() {
		return StrategyStructured
	}
	return StrategyLegacy
}

var scorers = map[Strategy]func(subject, candidate Profile) float64{
	StrategyLegacy:     LegacyScore,
	StrategyStructured: StructuredScore,
}

// Score returns the pair's compatibility in [0, 1] and the strategy used.
func Score(subject, candidate Profile) (float64, Strategy) {
	strategy := SelectStrategy(subject, candidate)
	return roundScore(scorers[strategy](subject, candidate)), strategy
}

// LegacyScore uses location, age proximity and gender only.
func LegacyScore(subject, candidate Profile) float64 {
	score := 0.10

	if sameLocation(subject, candidate) {
		score += 0.40
	}

	if diff, ok := ageDiff(subject, candidate); ok {
		score += ageBand(diff, 0.30, 0.20, 0.10)
	}

	if genderDiffers(subject.Person, candidate.Person) {
		score += 0.20
	}

	return math.Min(score, 1.0)
}

// StructuredScore sums independent terms over demographics and both
// parties' structured preferences.
func StructuredScore(subject, candidate Profile) float64 {
	score := 0.05

	if sameLocation(subject, candidate) {
		score += 0.25
	}

	score += structuredAgeScore(subject, candidate)

	if genderDiffers(subject.Person, candidate.Person) {
		score += 0.10
	}

	score += heightScore(subject, candidate)
	score += 0.10 * directional(subject, candidate, fitnessDirection)
	score += 0.10 * directional(subject, candidate, ethnicityDirection)
	score += 0.10 * directional(subject, candidate, childrenDirection)

	if r := known(subject.aboutMe().Religion); r != "" && r == known(candidate.aboutMe().Religion) {
		score += 0.05
	}

	return math.Min(score, 1.0)
}

// structuredAgeScore gives the full weight when every stated age range
// accepts the other's age, which holds trivially when neither party states
// one. A violated range falls back to proximity bands.
func structuredAgeScore(subject, candidate Profile) float64 {
	stated := 0
	satisfied := 0
	for _, pair := range [][2]Profile{{subject, candidate}, {candidate, subject}} {
		holder, other := pair[0], pair[1]
		r := holder.lookingFor().AgeRange
		if r == nil {
			continue
		}
		stated++
		if other.Person.Age != nil && r.Contains(float64(*other.Person.Age)) {
			satisfied++
		}
	}
	if satisfied == stated {
		return 0.15
	}

	if diff, ok := ageDiff(subject, candidate); ok {
		return ageBand(diff, 0.15, 0.10, 0.05)
	}
	return 0
}

// heightScore counts the height ranges satisfied by the other party's height.
// It contributes nothing when neither party states a range.
func heightScore(subject, candidate Profile) float64 {
	satisfied := 0
	for _, pair := range [][2]Profile{{subject, candidate}, {candidate, subject}} {
		holder, other := pair[0], pair[1]
		r := holder.lookingFor().HeightRange
		h := other.aboutMe().Height
		if r != nil && h != nil && r.Contains(*h) {
			satisfied++
		}
	}
	switch satisfied {
	case 2:
		return 0.10
	case 1:
		return 0.05
	default:
		return 0
	}
}

// directionScore scores holder's preference against other. ok is false when
// holder states no preference on the dimension.
type directionScore func(holder, other Profile) (score float64, ok bool)

// directional averages a dimension over the directions that state a
// preference. With no stated preference on either side it returns 0.
func directional(subject, candidate Profile, fn directionScore) float64 {
	total, n := 0.0, 0
	if s, ok := fn(subject, candidate); ok {
		total += s
		n++
	}
	if s, ok := fn(candidate, subject); ok {
		total += s
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

func fitnessDirection(holder, other Profile) (float64, bool) {
	pref := known(holder.lookingFor().FitnessPreference)
	if pref == "" {
		return 0, false
	}
	if pref == FitnessAny {
		return 1, true
	}

	want, ok := fitnessRank[pref]
	if !ok {
		return 0, true
	}
	have, ok := fitnessRank[known(other.aboutMe().FitnessLevel)]
	if !ok {
		return 0, true
	}

	switch abs(want - have) {
	case 0:
		return 1, true
	case 1:
		return 0.5, true
	default:
		return 0, true
	}
}

func ethnicityDirection(holder, other Profile) (float64, bool) {
	prefs := holder.lookingFor().EthnicityPreference
	if prefs == nil {
		return 0, false
	}
	if len(*prefs) == 0 {
		return 1, true
	}

	actual := known(other.aboutMe().Ethnicity)
	if actual == "" {
		return 0, true
	}
	for _, e := range *prefs {
		if normalize(e) == actual {
			return 1, true
		}
	}
	return 0, true
}

func childrenDirection(holder, other Profile) (float64, bool) {
	wants := holder.lookingFor().WantsChildren
	if wants == nil {
		return 0, false
	}

	has := other.aboutMe().HasChildren
	switch {
	case has == nil:
		return 0.5, true
	case *has == *wants:
		return 1, true
	default:
		return 0, true
	}
}

func sameLocation(a, b Profile) bool {
	la, lb := known(a.Person.Location), known(b.Person.Location)
	return la != "" && la == lb
}

func ageDiff(a, b Profile) (int, bool) {
	if a.Person.Age == nil || b.Person.Age == nil {
		return 0, false
	}
	return abs(*a.Person.Age - *b.Person.Age), true
}

// ageBand awards near, mid or far for differences up to 3, 5 and 10 years.
func ageBand(diff int, near, mid, far float64) float64 {
	switch {
	case diff <= 3:
		return near
	case diff <= 5:
		return mid
	case diff <= 10:
		return far
	default:
		return 0
	}
}

// roundScore trims float noise so equal sums compare equal.
func roundScore(s float64) float64 {
	return math.Round(math.Max(0, math.Min(s, 1))*10000) / 10000
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
