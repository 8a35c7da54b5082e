// internal/people/models.go

package people

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"
)

// Person is a profile represented by a matchmaker, or a shared seed profile
// when MatchmakerID is nil.
type Person struct {
	ID           string          `json:"id"`
	MatchmakerID *string         `json:"matchmaker_id"`
	Active       bool            `json:"active"`
	Name         string          `json:"name"`
	Age          *int            `json:"age"`
	Location     *string         `json:"location"`
	Gender       *string         `json:"gender"`
	Preferences  json.RawMessage `json:"preferences,omitempty"`
	Personality  json.RawMessage `json:"personality,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OwnedBy reports whether matchmakerID owns p. Seed profiles are owned by nobody.
func (p *Person) OwnedBy(matchmakerID string) bool {
	return p.MatchmakerID != nil && *p.MatchmakerID == matchmakerID
}

// personRow mirrors the people table. JSONB columns are read as text.
type personRow struct {
	ID           string         `db:"id"`
	MatchmakerID sql.NullString `db:"matchmaker_id"`
	Active       bool           `db:"active"`
	Name         string         `db:"name"`
	Age          sql.NullInt64  `db:"age"`
	Location     sql.NullString `db:"location"`
	Gender       sql.NullString `db:"gender"`
	Preferences  sql.NullString `db:"preferences"`
	Personality  sql.NullString `db:"personality"`
	Notes        sql.NullString `db:"notes"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var personColumns = []string{
	"id", "matchmaker_id", "active", "name", "age", "location", "gender",
	"preferences", "personality", "notes", "created_at", "updated_at",
}

func (r *personRow) toPerson() *Person {
	p := &Person{
		ID:        r.ID,
		Active:    r.Active,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.MatchmakerID.Valid {
		p.MatchmakerID = &r.MatchmakerID.String
	}
	if r.Age.Valid {
		age := int(r.Age.Int64)
		p.Age = &age
	}
	if r.Location.Valid {
		p.Location = &r.Location.String
	}
	if r.Gender.Valid {
		p.Gender = &r.Gender.String
	}
	if r.Preferences.Valid {
		p.Preferences = json.RawMessage(r.Preferences.String)
	}
	if r.Personality.Valid {
		p.Personality = json.RawMessage(r.Personality.String)
	}
	if r.Notes.Valid {
		p.Notes = &r.Notes.String
	}
	return p
}

// jsonArg converts a raw document into a value lib/pq can bind to a JSONB
// column. Empty and null documents are stored as NULL.
func jsonArg(raw json.RawMessage) interface{} {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	return trimmed
}
