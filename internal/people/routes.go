// internal/people/routes.go

package people

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers person routes behind authenticate
func RegisterRoutes(r chi.Router, handler *Handler, authenticate func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/api/v1/people", handler.CreatePerson)
		r.Get("/api/v1/people", handler.ListPeople)
		r.Get("/api/v1/people/{personID}", handler.GetPerson)
		r.Patch("/api/v1/people/{personID}", handler.UpdatePerson)
		r.Delete("/api/v1/people/{personID}", handler.DeletePerson)
	})
}
