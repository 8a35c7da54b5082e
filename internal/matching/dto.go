// internal/matching/dto.go
package matching

// DecisionRequest is the payload for recording a verdict on a candidate
type DecisionRequest struct {
	Decision      string  `json:"decision" validate:"required,oneof=accepted declined"`
	DeclineReason *string `json:"decline_reason,omitempty" validate:"omitempty,max=500"`
}

// MatchesResponse wraps the ranked results
type MatchesResponse struct {
	SubjectID string        `json:"subject_id"`
	Matches   []MatchResult `json:"matches"`
}
