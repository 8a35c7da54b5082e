// internal/introductions/handlers.go

package introductions

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/auth"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/utils"
)

// Handler handles introduction HTTP requests
type Handler struct {
	service Service
}

// NewHandler creates a new introductions handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateIntroduction proposes an introduction between two people
func (h *Handler) CreateIntroduction(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateIntroductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	intro, err := h.service.Create(r.Context(), matchmakerID, &req)
	if err != nil {
		utils.WriteError(w, err, "Failed to create introduction")
		return
	}

	utils.SuccessResponse(w, intro, http.StatusCreated)
}

// ListIntroductions lists the caller's introductions, optionally ?status=
func (h *Handler) ListIntroductions(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	intros, err := h.service.List(r.Context(), matchmakerID, r.URL.Query().Get("status"))
	if err != nil {
		utils.WriteError(w, err, "Failed to list introductions")
		return
	}

	utils.SuccessResponse(w, intros, http.StatusOK)
}

// UpdateIntroductionStatus moves an introduction to a new status
func (h *Handler) UpdateIntroductionStatus(w http.ResponseWriter, r *http.Request) {
	matchmakerID, ok := auth.MatchmakerIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	intro, err := h.service.UpdateStatus(r.Context(), matchmakerID, chi.URLParam(r, "introductionID"), &req)
	if err != nil {
		utils.WriteError(w, err, "Failed to update introduction")
		return
	}

	utils.SuccessResponse(w, intro, http.StatusOK)
}
