// internal/people/handlers.go

package people

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/auth"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/utils"
)

// Handler handles person-related HTTP requests
type Handler struct {
	service Service
}

// NewHandler creates a new people handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreatePerson adds a person to the caller's roster
func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	person, err := h.service.Create(r.Context(), matchmakerID, &req)
	if err != nil {
		utils.WriteError(w, err, "Failed to create person")
		return
	}

	utils.SuccessResponse(w, person, http.StatusCreated)
}

// ListPeople lists the caller's roster. ?include_inactive=true adds soft-deleted records.
func (h *Handler) ListPeople(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	includeInactive := r.URL.Query().Get("include_inactive") == "true"
	people, err := h.service.List(r.Context(), matchmakerID, includeInactive)
	if err != nil {
		utils.WriteError(w, err, "Failed to list people")
		return
	}

	utils.SuccessResponse(w, people, http.StatusOK)
}

// GetPerson returns one owned person
func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	person, err := h.service.Get(r.Context(), matchmakerID, chi.URLParam(r, "personID"))
	if err != nil {
		utils.WriteError(w, err, "Failed to get person")
		return
	}

	utils.SuccessResponse(w, person, http.StatusOK)
}

// UpdatePerson applies a partial update to an owned person
func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	person, err := h.service.Update(r.Context(), matchmakerID, chi.URLParam(r, "personID"), &req)
	if err != nil {
		utils.WriteError(w, err, "Failed to update person")
		return
	}

	utils.SuccessResponse(w, person, http.StatusOK)
}

// DeletePerson soft-deletes an owned person
func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.Deactivate(r.Context(), matchmakerID, chi.URLParam(r, "personID")); err != nil {
		utils.WriteError(w, err, "Failed to delete person")
		return
	}

	utils.MessageResponse(w, "Person deactivated", http.StatusOK)
}
