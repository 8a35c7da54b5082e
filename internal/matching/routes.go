// internal/matching/routes.go

package matching

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers matching routes behind authenticate
func RegisterRoutes(r chi.Router, handler *Handler, authenticate func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/api/v1/people/{personID}/matches", handler.GetMatches)
		r.Post("/api/v1/people/{personID}/matches/{candidateID}/decision", handler.RecordDecision)
		r.Get("/api/v1/people/{personID}/decisions", handler.ListDecisions)
	})
}
