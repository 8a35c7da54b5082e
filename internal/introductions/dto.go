// internal/introductions/dto.go
package introductions

// CreateIntroductionRequest proposes an introduction between two people
type CreateIntroductionRequest struct {
	PersonAID string  `json:"person_a_id" validate:"required,uuid"`
	PersonBID string  `json:"person_b_id" validate:"required,uuid,nefield=PersonAID"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateStatusRequest moves an introduction to a new status
type UpdateStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=accepted declined completed"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
