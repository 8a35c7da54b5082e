// internal/matching/handlers.go

package matching

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/auth"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/utils"
)

// Handler exposes matching over HTTP
type Handler struct {
	service Service
}

// NewHandler creates a new matching handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetMatches returns the top matches for a person the caller represents
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	subjectID := chi.URLParam(r, "personID")
	matches, err := h.service.FindMatches(r.Context(), matchmakerID, subjectID)
	if err != nil {
		utils.WriteError(w, err, "Failed to find matches")
		return
	}

	utils.SuccessResponse(w, MatchesResponse{SubjectID: subjectID, Matches: matches}, http.StatusOK)
}

// RecordDecision accepts or declines a candidate for a subject
func (h *Handler) RecordDecision(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	decision, err := h.service.RecordDecision(
		r.Context(), matchmakerID,
		chi.URLParam(r, "personID"), chi.URLParam(r, "candidateID"),
		&req,
	)
	if err != nil {
		utils.WriteError(w, err, "Failed to record decision")
		return
	}

	utils.SuccessResponse(w, decision, http.StatusOK)
}

// ListDecisions returns the caller's decisions for a subject
func (h *Handler) ListDecisions(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	decisions, err := h.service.ListDecisions(r.Context(), matchmakerID, chi.URLParam(r, "personID"))
	if err != nil {
		utils.WriteError(w, err, "Failed to list decisions")
		return
	}

	utils.SuccessResponse(w, decisions, http.StatusOK)
}
