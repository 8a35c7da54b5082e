// internal/matching/exclusion.go

package matching

import (
	"context"
	"fmt"
)

// ExclusionSet holds candidate IDs removed from a subject's pool before scoring.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds a set from ids.
func NewExclusionSet(ids ...string) ExclusionSet {
	set := make(ExclusionSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is excluded.
func (s ExclusionSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// DeclinedLister reads the candidates a matchmaker declined for a subject.
type DeclinedLister interface {
	DeclinedCandidateIDs(ctx context.Context, subjectID, matchmakerID string) ([]string, error)
}

// ResolveExclusions returns the candidates matchmakerID declined for
// subjectID. Accepted decisions exclude nothing.
func ResolveExclusions(ctx context.Context, decisions DeclinedLister, subjectID, matchmakerID string) (ExclusionSet, error) {
	ids, err := decisions.DeclinedCandidateIDs(ctx, subjectID, matchmakerID)
	if err != nil {
		return nil, fmt.Errorf("resolve exclusions: %w", err)
	}
	return NewExclusionSet(ids...), nil
}
