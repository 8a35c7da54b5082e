// internal/introductions/routes.go

package introductions

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers introduction routes behind authenticate
func RegisterRoutes(r chi.Router, handler *Handler, authenticate func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/api/v1/introductions", handler.CreateIntroduction)
		r.Get("/api/v1/introductions", handler.ListIntroductions)
		r.Patch("/api/v1/introductions/{introductionID}", handler.UpdateIntroductionStatus)
	})
}
