// internal/introductions/models.go

package introductions

import "time"

// Introduction statuses
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
	StatusCompleted = "completed"
)

// transitions lists the statuses reachable from each status.
var transitions = map[string][]string{
	StatusPending:  {StatusAccepted, StatusDeclined},
	StatusAccepted: {StatusCompleted, StatusDeclined},
}

// CanTransition reports whether an introduction may move from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCompleted:
		return true
	}
	return false
}

// Introduction is a proposed meeting between two people, created by the
// matchmaker who proposed it.
type Introduction struct {
	ID           string    `json:"id" db:"id"`
	MatchmakerID string    `json:"matchmaker_id" db:"matchmaker_id"`
	PersonAID    string    `json:"person_a_id" db:"person_a_id"`
	PersonBID    string    `json:"person_b_id" db:"person_b_id"`
	Status       string    `json:"status" db:"status"`
	Notes        *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

var introductionColumns = []string{
	"id", "matchmaker_id", "person_a_id", "person_b_id",
	"status", "notes", "created_at", "updated_at",
}
