// internal/people/dto.go
package people

import "encoding/json"

// CreatePersonRequest is the payload for adding a person to a matchmaker's roster
type CreatePersonRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Age         *int            `json:"age,omitempty" validate:"omitempty,gte=18,lte=120"`
	Location    *string         `json:"location,omitempty" validate:"omitempty,max=200"`
	Gender      *string         `json:"gender,omitempty" validate:"omitempty,max=50"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
	Personality json.RawMessage `json:"personality,omitempty"`
	Notes       *string         `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

// UpdatePersonRequest carries a partial update; nil fields are left unchanged
type UpdatePersonRequest struct {
	Name        *string         `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Age         *int            `json:"age,omitempty" validate:"omitempty,gte=18,lte=120"`
	Location    *string         `json:"location,omitempty" validate:"omitempty,max=200"`
	Gender      *string         `json:"gender,omitempty" validate:"omitempty,max=50"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
	Personality json.RawMessage `json:"personality,omitempty"`
	Notes       *string         `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

// IsEmpty reports whether the update changes nothing
func (r *UpdatePersonRequest) IsEmpty() bool {
	return r.Name == nil && r.Age == nil && r.Location == nil && r.Gender == nil &&
		r.Preferences == nil && r.Personality == nil && r.Notes == nil
}
