// internal/matching/explanation.go

package matching

import (
	"fmt"
	"strings"
)

// FallbackExplanation is used when no specific reason applies.
const FallbackExplanation = "Potential match in the network"

// Explain summarizes why a pair may fit. It is a narrative independent of
// the score and may weigh things differently.
func Explain(subject, candidate Profile) string {
	var reasons []string

	if sameLocation(subject, candidate) {
		reasons = append(reasons, fmt.Sprintf("Both based in %s", strings.TrimSpace(*candidate.Person.Location)))
	}

	if diff, ok := ageDiff(subject, candidate); ok && diff <= 5 {
		reasons = append(reasons, "Compatible ages")
	}

	if genderDiffers(subject.Person, candidate.Person) {
		reasons = append(reasons, "Complementary match")
	}

	sa, ca := subject.aboutMe(), candidate.aboutMe()
	if r := known(sa.Religion); r != "" && r == known(ca.Religion) {
		reasons = append(reasons, fmt.Sprintf("Shared faith (%s)", strings.TrimSpace(*ca.Religion)))
	}
	if f := known(sa.FitnessLevel); f != "" && f == known(ca.FitnessLevel) {
		reasons = append(reasons, "Similar fitness level")
	}
	if e := known(sa.Ethnicity); e != "" && e == known(ca.Ethnicity) {
		reasons = append(reasons, "Shared cultural background")
	}

	if len(reasons) == 0 {
		return FallbackExplanation
	}
	return strings.Join(reasons, ", ")
}
