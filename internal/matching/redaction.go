// internal/matching/redaction.go

package matching

import "github.com/imadgeboyega/kiekky-matchmaker/internal/people"

// Redact reduces a candidate to the fields any matchmaker may see. Notes,
// preferences, personality and ownership never leave the engine, even for
// the requester's own people.
func Redact(candidate *people.Person) LimitedPerson {
	return LimitedPerson{
		ID:       candidate.ID,
		Name:     candidate.Name,
		Age:      candidate.Age,
		Location: candidate.Location,
		Gender:   candidate.Gender,
	}
}

// IsCrossMatchmaker is true for seed profiles and for people owned by
// anyone other than requesterID.
func IsCrossMatchmaker(candidate *people.Person, requesterID string) bool {
	return !candidate.OwnedBy(requesterID)
}
