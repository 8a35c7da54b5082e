// internal/matching/models.go

package matching

import "time"

// Decision values
const (
	DecisionAccepted = "accepted"
	DecisionDeclined = "declined"
)

// MatchDecision is one matchmaker's verdict on a (subject, candidate) pair.
// The triple (MatchmakerID, SubjectID, CandidateID) is unique.
type MatchDecision struct {
	ID            string    `json:"id" db:"id"`
	MatchmakerID  string    `json:"matchmaker_id" db:"matchmaker_id"`
	SubjectID     string    `json:"subject_id" db:"subject_id"`
	CandidateID   string    `json:"candidate_id" db:"candidate_id"`
	Decision      string    `json:"decision" db:"decision"`
	DeclineReason *string   `json:"decline_reason,omitempty" db:"decline_reason"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// LimitedPerson is the only view of a candidate returned to callers.
type LimitedPerson struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Age      *int    `json:"age"`
	Location *string `json:"location"`
	Gender   *string `json:"gender"`
}

// MatchResult is one ranked, redacted and explained candidate.
type MatchResult struct {
	Person             LimitedPerson `json:"person"`
	CompatibilityScore float64       `json:"compatibility_score"`
	MatchExplanation   string        `json:"match_explanation"`
	IsCrossMatchmaker  bool          `json:"is_cross_matchmaker"`
}
